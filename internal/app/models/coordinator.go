package models

// Coordinator is a placement-cell staff account.
type Coordinator struct {
	ID           int64  `json:"coordinator_id" db:"coordinator_id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}
