package models

// Company represents a recruiting company. Name is unique case-insensitively.
type Company struct {
	ID        int64   `json:"company_id" db:"company_id"`
	Name      string  `json:"name" db:"name"`
	Website   *string `json:"website,omitempty" db:"website"`
	Address   *string `json:"address,omitempty" db:"address"`
	ContactNo *string `json:"contact_no,omitempty" db:"contact_no"`
}
