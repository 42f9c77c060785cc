package models

// Student defines the student model based on the 'students' table.
// StudentID is the natural key used for login and as the placement
// foreign key. ResumeURL must be set before the student may apply to
// any drive.
type Student struct {
	StudentID    string   `json:"student_id" db:"student_id"`
	Name         string   `json:"name" db:"name"`
	Email        string   `json:"email" db:"email"`
	BranchID     int64    `json:"department_branch_id" db:"department_branch_id"`
	Percentage   *float64 `json:"percentage" db:"percentage"`
	Grade        *string  `json:"grade,omitempty" db:"grade"`
	Address      *string  `json:"address,omitempty" db:"address"`
	ContactNo    *string  `json:"contact_no,omitempty" db:"contact_no"`
	ResumeURL    *string  `json:"resume_url" db:"resume_url"`
	PasswordHash string   `json:"-" db:"password_hash"`

	// Relation (populated when needed)
	Branch *Branch `json:"branch,omitempty"`
}

// MeetsMinPercentage applies the eligibility percentage rule: a nil
// criteria minimum passes everyone, while a student with no recorded
// percentage fails any numeric minimum.
func (s *Student) MeetsMinPercentage(min *float64) bool {
	if min == nil {
		return true
	}
	if s.Percentage == nil {
		return false
	}
	return *s.Percentage >= *min
}
