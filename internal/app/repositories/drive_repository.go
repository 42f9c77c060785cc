package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/pkg/apperrors"
)

// DriveRepository handles database operations for placement drives
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new drive repository
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{
		db: db,
	}
}

const driveColumns = `
	d.drive_id, d.company_id, d.criteria_id, d.job_title, d.package_lpa,
	d.grade_offered, d.drive_date, d.application_deadline, d.description,
	c.name, c.website, c.address, c.contact_no,
	cr.description, cr.min_percentage, cr.active_status`

// scanDrive scans one joined drive row with its company and criteria
func scanDrive(row pgx.Row) (*models.Drive, error) {
	var drive models.Drive
	var company models.Company
	var criteria models.Criteria

	err := row.Scan(
		&drive.ID, &drive.CompanyID, &drive.CriteriaID, &drive.JobTitle, &drive.PackageLPA,
		&drive.GradeOffered, &drive.DriveDate, &drive.ApplicationDeadline, &drive.Description,
		&company.Name, &company.Website, &company.Address, &company.ContactNo,
		&criteria.Description, &criteria.MinPercentage, &criteria.ActiveStatus,
	)
	if err != nil {
		return nil, err
	}

	company.ID = drive.CompanyID
	criteria.ID = drive.CriteriaID
	drive.Company = &company
	drive.Criteria = &criteria
	return &drive, nil
}

// GetByID retrieves a drive with its company, criteria and allowed branches
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.Drive, error) {
	query := `
		SELECT` + driveColumns + `
		FROM drives d
		JOIN companies c ON c.company_id = d.company_id
		JOIN criteria cr ON cr.criteria_id = d.criteria_id
		WHERE d.drive_id = $1
	`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}

	branches, err := loadCriteriaBranches(ctx, r.db, drive.CriteriaID)
	if err != nil {
		return nil, err
	}
	drive.Criteria.AllowedBranches = branches

	return drive, nil
}

// GetAll retrieves all drives with relations, newest first
func (r *DriveRepository) GetAll(ctx context.Context) ([]*models.Drive, error) {
	query := `
		SELECT` + driveColumns + `
		FROM drives d
		JOIN companies c ON c.company_id = d.company_id
		JOIN criteria cr ON cr.criteria_id = d.criteria_id
		ORDER BY d.drive_id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*models.Drive
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, drive)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One branch-set query per distinct criteria, not per drive.
	branchSets := make(map[int64][]models.Branch)
	for _, drive := range drives {
		if _, ok := branchSets[drive.CriteriaID]; ok {
			continue
		}
		branches, err := loadCriteriaBranches(ctx, r.db, drive.CriteriaID)
		if err != nil {
			return nil, err
		}
		branchSets[drive.CriteriaID] = branches
	}
	for _, drive := range drives {
		drive.Criteria.AllowedBranches = branchSets[drive.CriteriaID]
	}

	return drives, nil
}

// Create creates a new drive
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	query := `
		INSERT INTO drives (company_id, criteria_id, job_title, package_lpa,
			grade_offered, drive_date, application_deadline, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING drive_id
	`

	err := r.db.QueryRow(ctx, query,
		drive.CompanyID, drive.CriteriaID, drive.JobTitle, drive.PackageLPA,
		drive.GradeOffered, drive.DriveDate, drive.ApplicationDeadline, drive.Description,
	).Scan(&drive.ID)
	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}

	return nil
}

// Update updates an existing drive
func (r *DriveRepository) Update(ctx context.Context, drive *models.Drive) error {
	query := `
		UPDATE drives
		SET company_id = $1, criteria_id = $2, job_title = $3, package_lpa = $4,
			grade_offered = $5, drive_date = $6, application_deadline = $7, description = $8
		WHERE drive_id = $9
	`

	cmdTag, err := r.db.Exec(ctx, query,
		drive.CompanyID, drive.CriteriaID, drive.JobTitle, drive.PackageLPA,
		drive.GradeOffered, drive.DriveDate, drive.ApplicationDeadline, drive.Description,
		drive.ID)
	if err != nil {
		return fmt.Errorf("error updating drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}

// Count returns the number of drives
func (r *DriveRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM drives`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting drives: %w", err)
	}
	return count, nil
}

// HasApplications reports whether any placement references the drive
func (r *DriveRepository) HasApplications(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM placements WHERE drive_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking drive applications: %w", err)
	}
	return exists, nil
}

// Delete deletes a drive by ID. Callers must check HasApplications
// first; the FK also refuses as a backstop.
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM drives WHERE drive_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return nil
}
