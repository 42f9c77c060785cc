package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/dberrors"
)

// PlacementRepository handles database operations for placement records
type PlacementRepository struct {
	db *pgxpool.Pool
}

// NewPlacementRepository creates a new placement repository
func NewPlacementRepository(db *pgxpool.Pool) *PlacementRepository {
	return &PlacementRepository{
		db: db,
	}
}

// PlacementFilter narrows List results. Nil fields match everything.
type PlacementFilter struct {
	DriveID   *int64
	StudentID *string
	Status    *models.PlacementStatus
}

const placementColumns = `
	p.placement_id, p.student_id, p.drive_id, p.status, p.application_date,
	p.placement_date, p.package_lpa_confirmed,
	s.name, s.department_branch_id, s.percentage, s.resume_url,
	d.job_title, d.package_lpa, d.company_id,
	c.name`

func scanPlacement(row pgx.Row) (*models.Placement, error) {
	var placement models.Placement
	var student models.Student
	var drive models.Drive
	var company models.Company

	err := row.Scan(
		&placement.ID, &placement.StudentID, &placement.DriveID, &placement.Status,
		&placement.ApplicationDate, &placement.PlacementDate, &placement.PackageLPAConfirmed,
		&student.Name, &student.BranchID, &student.Percentage, &student.ResumeURL,
		&drive.JobTitle, &drive.PackageLPA, &drive.CompanyID,
		&company.Name,
	)
	if err != nil {
		return nil, err
	}

	student.StudentID = placement.StudentID
	drive.ID = placement.DriveID
	company.ID = drive.CompanyID
	drive.Company = &company
	placement.Student = &student
	placement.Drive = &drive
	return &placement, nil
}

// Create inserts a new application. The unique constraint on
// (student_id, drive_id) is the final arbiter against double applies.
func (r *PlacementRepository) Create(ctx context.Context, placement *models.Placement) error {
	query := `
		INSERT INTO placements (student_id, drive_id, status)
		VALUES ($1, $2, $3)
		RETURNING placement_id, application_date
	`

	err := r.db.QueryRow(ctx, query,
		placement.StudentID, placement.DriveID, placement.Status,
	).Scan(&placement.ID, &placement.ApplicationDate)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "placements_student_drive_key") {
			return apperrors.ErrDuplicateApplication
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDriveNotFound
		}
		return fmt.Errorf("error creating placement: %w", err)
	}

	return nil
}

// GetByID retrieves one placement with its student and drive
func (r *PlacementRepository) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	query := `
		SELECT` + placementColumns + `
		FROM placements p
		JOIN students s ON s.student_id = p.student_id
		JOIN drives d ON d.drive_id = p.drive_id
		JOIN companies c ON c.company_id = d.company_id
		WHERE p.placement_id = $1
	`

	placement, err := scanPlacement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrPlacementNotFound
		}
		return nil, fmt.Errorf("error retrieving placement: %w", err)
	}

	return placement, nil
}

// List retrieves placements matching the filter, newest application first
func (r *PlacementRepository) List(ctx context.Context, filter PlacementFilter) ([]*models.Placement, error) {
	query := `
		SELECT` + placementColumns + `
		FROM placements p
		JOIN students s ON s.student_id = p.student_id
		JOIN drives d ON d.drive_id = p.drive_id
		JOIN companies c ON c.company_id = d.company_id
		WHERE 1=1
	`

	var args []any
	if filter.DriveID != nil {
		args = append(args, *filter.DriveID)
		query += fmt.Sprintf(" AND p.drive_id = $%d", len(args))
	}
	if filter.StudentID != nil {
		args = append(args, *filter.StudentID)
		query += fmt.Sprintf(" AND p.student_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND p.status = $%d", len(args))
	}
	query += " ORDER BY p.application_date DESC, p.placement_id DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var placements []*models.Placement
	for rows.Next() {
		placement, err := scanPlacement(rows)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}
	return placements, rows.Err()
}

// ExistsForStudentAndDrive reports whether the student already has a
// placement record of any status for the drive
func (r *PlacementRepository) ExistsForStudentAndDrive(ctx context.Context, studentID string, driveID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM placements WHERE student_id = $1 AND drive_id = $2)`,
		studentID, driveID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking existing placement: %w", err)
	}
	return exists, nil
}

// UpdateStatus updates the lifecycle fields of one placement
func (r *PlacementRepository) UpdateStatus(ctx context.Context, placement *models.Placement) error {
	query := `
		UPDATE placements
		SET status = $1, placement_date = $2, package_lpa_confirmed = $3
		WHERE placement_id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		placement.Status, placement.PlacementDate, placement.PackageLPAConfirmed, placement.ID)
	if err != nil {
		return fmt.Errorf("error updating placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// Delete removes a placement record
func (r *PlacementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM placements WHERE placement_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting placement: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPlacementNotFound
	}

	return nil
}

// BackfillConfirmedPackages copies the drive package onto offered and
// accepted placements that never had a confirmed figure recorded.
// Returns the number of rows touched.
func (r *PlacementRepository) BackfillConfirmedPackages(ctx context.Context) (int64, error) {
	query := `
		UPDATE placements p
		SET package_lpa_confirmed = d.package_lpa
		FROM drives d
		WHERE d.drive_id = p.drive_id
		  AND p.status IN ($1, $2)
		  AND p.package_lpa_confirmed IS NULL
		  AND d.package_lpa IS NOT NULL
	`

	cmdTag, err := r.db.Exec(ctx, query, models.StatusOffered, models.StatusOfferAccepted)
	if err != nil {
		return 0, fmt.Errorf("error backfilling confirmed packages: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
