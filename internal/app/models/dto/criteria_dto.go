package dto

// CreateCriteriaRequest represents a request to create an eligibility rule set.
// At least one branch must be selected; a nil MinPercentage means no minimum.
type CreateCriteriaRequest struct {
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	MinPercentage *float64 `json:"min_percentage" binding:"omitempty,gte=0,lte=100"`
	ActiveStatus  *bool    `json:"active_status,omitempty"`
	BranchIDs     []int64  `json:"branch_ids" binding:"required,min=1,dive,gt=0"`
}

// UpdateCriteriaRequest represents a request to update a rule set,
// replacing its allowed branch set.
type UpdateCriteriaRequest struct {
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	MinPercentage *float64 `json:"min_percentage" binding:"omitempty,gte=0,lte=100"`
	ActiveStatus  *bool    `json:"active_status,omitempty"`
	BranchIDs     []int64  `json:"branch_ids" binding:"required,min=1,dive,gt=0"`
}
