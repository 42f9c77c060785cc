package dto

// CreateStudentRequest represents a request to register a student
type CreateStudentRequest struct {
	StudentID  string   `json:"student_id" binding:"required,max=50"`
	Name       string   `json:"name" binding:"required,max=255"`
	Email      string   `json:"email" binding:"required,email,max=255"`
	BranchID   int64    `json:"department_branch_id" binding:"required,gt=0"`
	Percentage *float64 `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	Grade      *string  `json:"grade,omitempty" binding:"omitempty,max=10"`
	Address    *string  `json:"address,omitempty"`
	ContactNo  *string  `json:"contact_no,omitempty" binding:"omitempty,max=20"`
	ResumeURL  *string  `json:"resume_url,omitempty"`
	Password   string   `json:"password" binding:"required,min=6"`
}

// UpdateStudentRequest represents a request to update a student's
// profile. Password is optional and re-hashed when supplied.
type UpdateStudentRequest struct {
	Name       string   `json:"name" binding:"required,max=255"`
	Email      string   `json:"email" binding:"required,email,max=255"`
	BranchID   int64    `json:"department_branch_id" binding:"required,gt=0"`
	Percentage *float64 `json:"percentage" binding:"omitempty,gte=0,lte=100"`
	Grade      *string  `json:"grade,omitempty" binding:"omitempty,max=10"`
	Address    *string  `json:"address,omitempty"`
	ContactNo  *string  `json:"contact_no,omitempty" binding:"omitempty,max=20"`
	ResumeURL  *string  `json:"resume_url,omitempty"`
	Password   *string  `json:"password,omitempty" binding:"omitempty,min=6"`
}

// ResumeUploadResponse is returned after a successful resume upload
type ResumeUploadResponse struct {
	ResumeURL string `json:"resume_url"`
}
