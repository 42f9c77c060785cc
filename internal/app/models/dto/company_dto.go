package dto

// CreateCompanyRequest represents a request to register a company
type CreateCompanyRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Website   *string `json:"website,omitempty" binding:"omitempty,max=255"`
	Address   *string `json:"address,omitempty"`
	ContactNo *string `json:"contact_no,omitempty" binding:"omitempty,max=20"`
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Name      string  `json:"name" binding:"required,max=255"`
	Website   *string `json:"website,omitempty" binding:"omitempty,max=255"`
	Address   *string `json:"address,omitempty"`
	ContactNo *string `json:"contact_no,omitempty" binding:"omitempty,max=20"`
}
