package models

// Criteria is an eligibility rule set reusable across drives.
// MinPercentage nil means no minimum. AllowedBranches must contain at
// least one branch at creation time.
type Criteria struct {
	ID              int64    `json:"criteria_id" db:"criteria_id"`
	Description     *string  `json:"description,omitempty" db:"description"`
	MinPercentage   *float64 `json:"min_percentage" db:"min_percentage"`
	ActiveStatus    bool     `json:"active_status" db:"active_status"`
	AllowedBranches []Branch `json:"allowed_branches,omitempty"`
}

// AllowsBranch reports whether the branch is in the allowed set.
func (c *Criteria) AllowsBranch(branchID int64) bool {
	for _, b := range c.AllowedBranches {
		if b.ID == branchID {
			return true
		}
	}
	return false
}
