package models

import "time"

// Placement is a single student's application against a single drive.
// At most one placement may exist per (student_id, drive_id) pair,
// enforced by a unique constraint on the placements table.
type Placement struct {
	ID                  int64           `json:"placement_id" db:"placement_id"`
	StudentID           string          `json:"student_id" db:"student_id"`
	DriveID             int64           `json:"drive_id" db:"drive_id"`
	Status              PlacementStatus `json:"status" db:"status"`
	ApplicationDate     time.Time       `json:"application_date" db:"application_date"`
	PlacementDate       *time.Time      `json:"placement_date" db:"placement_date"`
	PackageLPAConfirmed *float64        `json:"package_lpa_confirmed" db:"package_lpa_confirmed"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Drive   *Drive   `json:"drive,omitempty"`
}

// CountsAsPlaced reports whether this placement counts toward the
// placement rate. Offered counts even before the student accepts.
func (p *Placement) CountsAsPlaced() bool {
	return p.Status == StatusOffered || p.Status == StatusOfferAccepted
}
