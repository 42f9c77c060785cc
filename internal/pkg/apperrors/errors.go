package apperrors

import "errors"

// Error kinds. Every service-level failure wraps one of these five so
// the HTTP layer can map it to a status without inspecting messages.
var (
	// ErrNotFound: a referenced entity does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict: a uniqueness constraint was violated.
	ErrConflict = errors.New("conflict")
	// ErrForbidden: the caller's role or a business rule disallows the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrValidation: malformed or out-of-range input.
	ErrValidation = errors.New("validation failed")
	// ErrDependency: the store or blob storage failed unexpectedly. The
	// only kind logged as a systemic failure rather than a user outcome.
	ErrDependency = errors.New("dependency failure")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Entity-specific sentinels, each wrapping one of the five kinds so
// that errors.Is works against both the sentinel and the kind.
var (
	ErrBranchNotFound      = &CustomError{Err: ErrNotFound, Message: "branch not found"}
	ErrCompanyNotFound     = &CustomError{Err: ErrNotFound, Message: "company not found"}
	ErrCriteriaNotFound    = &CustomError{Err: ErrNotFound, Message: "criteria not found"}
	ErrDriveNotFound       = &CustomError{Err: ErrNotFound, Message: "drive not found"}
	ErrStudentNotFound     = &CustomError{Err: ErrNotFound, Message: "student not found"}
	ErrPlacementNotFound   = &CustomError{Err: ErrNotFound, Message: "placement not found"}
	ErrCoordinatorNotFound = &CustomError{Err: ErrNotFound, Message: "coordinator not found"}

	ErrCompanyExists        = &CustomError{Err: ErrConflict, Message: "company with this name already exists"}
	ErrStudentExists        = &CustomError{Err: ErrConflict, Message: "student ID or email already in use"}
	ErrDuplicateApplication = &CustomError{Err: ErrConflict, Message: "this student has already applied for this drive"}
	ErrBranchReferenced     = &CustomError{Err: ErrConflict, Message: "branch is referenced by students or criteria and cannot be deleted"}
	ErrDriveHasApplications = &CustomError{Err: ErrConflict, Message: "drive has applications and cannot be deleted"}

	ErrBranchNotEligible = &CustomError{Err: ErrForbidden, Message: "student's branch is not eligible for this drive"}
	ErrPercentageNotMet  = &CustomError{Err: ErrForbidden, Message: "student does not meet the minimum percentage for this drive"}
	ErrResumeRequired    = &CustomError{Err: ErrForbidden, Message: "a resume must be uploaded before applying"}
)

// CustomError represents application-specific errors carrying a
// wrapped kind and a user-renderable message.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of the error carrying context details
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	return &CustomError{Err: e.Err, Message: e.Message, Details: details}
}

// NewNotFoundError creates a NotFound error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a Conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a Forbidden error with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrForbidden, Message: message}
}

// NewValidationError creates a ValidationError with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewDependencyError wraps an unexpected store or blob-storage failure
func NewDependencyError(cause error, message string) error {
	return &CustomError{Err: errors.Join(ErrDependency, cause), Message: message}
}
