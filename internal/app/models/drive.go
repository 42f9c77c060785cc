package models

import "time"

// Drive is a placement opportunity bound to one company and one criteria set.
// A drive cannot be deleted once it has applications.
type Drive struct {
	ID                  int64      `json:"drive_id" db:"drive_id"`
	CompanyID           int64      `json:"company_id" db:"company_id"`
	CriteriaID          int64      `json:"criteria_id" db:"criteria_id"`
	JobTitle            string     `json:"job_title" db:"job_title"`
	PackageLPA          *float64   `json:"package_lpa" db:"package_lpa"`
	GradeOffered        *string    `json:"grade_offered,omitempty" db:"grade_offered"`
	DriveDate           *time.Time `json:"drive_date" db:"drive_date"`
	ApplicationDeadline *time.Time `json:"application_deadline" db:"application_deadline"`
	Description         *string    `json:"description,omitempty" db:"description"`

	// Relations (populated when needed)
	Company  *Company  `json:"company,omitempty"`
	Criteria *Criteria `json:"criteria,omitempty"`
}

// DeadlineOpen reports whether applications are still open at the given
// instant. A drive with no deadline is always open by date.
func (d *Drive) DeadlineOpen(now time.Time) bool {
	return d.ApplicationDeadline == nil || !d.ApplicationDeadline.Before(now)
}
