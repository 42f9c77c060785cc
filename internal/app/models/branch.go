package models

// Branch represents an academic branch/department used as an eligibility dimension
type Branch struct {
	ID   int64  `json:"branch_id" db:"branch_id"`
	Name string `json:"branch_name" db:"branch_name"`
}
