package dto

// CreateDriveRequest represents a request to create a placement drive.
// Dates are ISO 8601 strings; empty strings are treated as null.
type CreateDriveRequest struct {
	CompanyID           int64    `json:"company_id" binding:"required,gt=0"`
	CriteriaID          int64    `json:"criteria_id" binding:"required,gt=0"`
	JobTitle            string   `json:"job_title" binding:"required,max=255"`
	PackageLPA          *float64 `json:"package_lpa" binding:"omitempty,gte=0"`
	GradeOffered        *string  `json:"grade_offered,omitempty" binding:"omitempty,max=50"`
	DriveDate           *string  `json:"drive_date,omitempty"`
	ApplicationDeadline *string  `json:"application_deadline,omitempty"`
	Description         *string  `json:"description,omitempty"`
}

// UpdateDriveRequest represents a request to update a drive
type UpdateDriveRequest struct {
	CompanyID           int64    `json:"company_id" binding:"required,gt=0"`
	CriteriaID          int64    `json:"criteria_id" binding:"required,gt=0"`
	JobTitle            string   `json:"job_title" binding:"required,max=255"`
	PackageLPA          *float64 `json:"package_lpa" binding:"omitempty,gte=0"`
	GradeOffered        *string  `json:"grade_offered,omitempty" binding:"omitempty,max=50"`
	DriveDate           *string  `json:"drive_date,omitempty"`
	ApplicationDeadline *string  `json:"application_deadline,omitempty"`
	Description         *string  `json:"description,omitempty"`
}
