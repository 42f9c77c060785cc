package dto

// CreateBranchRequest represents a request to create a branch
type CreateBranchRequest struct {
	BranchName string `json:"branch_name" binding:"required,max=100"`
}

// UpdateBranchRequest represents a request to rename a branch
type UpdateBranchRequest struct {
	BranchName string `json:"branch_name" binding:"required,max=100"`
}
