package dto

// CreatePlacementRequest represents a coordinator's request to record
// an application on a student's behalf. Applications created by the
// student apply endpoint carry only the drive id.
type CreatePlacementRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	DriveID   int64  `json:"drive_id" binding:"required,gt=0"`
}

// ApplyRequest is the student-facing application request
type ApplyRequest struct {
	DriveID int64 `json:"drive_id" binding:"required,gt=0"`
}

// UpdatePlacementRequest represents a status transition. When Status is
// Offered and PackageLPAConfirmed is absent, the drive's advertised
// package is filled in.
type UpdatePlacementRequest struct {
	Status              string   `json:"status" binding:"required"`
	PlacementDate       *string  `json:"placement_date,omitempty"`
	PackageLPAConfirmed *float64 `json:"package_lpa_confirmed" binding:"omitempty,gte=0"`
}
