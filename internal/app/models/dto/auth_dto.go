package dto

// CoordinatorLoginRequest represents a coordinator login request
type CoordinatorLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StudentLoginRequest represents a student login request
type StudentLoginRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the caller identity
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"`
	Role      string      `json:"role"`
	User      interface{} `json:"user"`
}
