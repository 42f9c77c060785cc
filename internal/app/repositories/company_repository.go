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

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{
		db: db,
	}
}

// Create creates a new company. Names collide case-insensitively via
// the companies_name_ci_key index.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	query := `
		INSERT INTO companies (name, website, address, contact_no)
		VALUES ($1, $2, $3, $4)
		RETURNING company_id
	`

	err := r.db.QueryRow(ctx, query,
		company.Name, company.Website, company.Address, company.ContactNo).Scan(&company.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_name_ci_key") {
			return apperrors.ErrCompanyExists
		}
		return fmt.Errorf("error creating company: %w", err)
	}

	return nil
}

// GetByID retrieves a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	query := `
		SELECT company_id, name, website, address, contact_no
		FROM companies
		WHERE company_id = $1
	`

	var company models.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.Website,
		&company.Address,
		&company.ContactNo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}

	return &company, nil
}

// GetAll retrieves all companies ordered by name
func (r *CompanyRepository) GetAll(ctx context.Context) ([]*models.Company, error) {
	query := `
		SELECT company_id, name, website, address, contact_no
		FROM companies
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*models.Company
	for rows.Next() {
		var company models.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Website,
			&company.Address,
			&company.ContactNo,
		); err != nil {
			return nil, err
		}
		companies = append(companies, &company)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return companies, nil
}

// ExistsByName checks whether a company with the name exists,
// case-insensitively, excluding a given id (0 to exclude nothing).
// Count returns the number of companies
func (r *CompanyRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting companies: %w", err)
	}
	return count, nil
}

func (r *CompanyRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM companies WHERE LOWER(name) = LOWER($1) AND company_id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking company existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing company
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	query := `
		UPDATE companies
		SET name = $1, website = $2, address = $3, contact_no = $4
		WHERE company_id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		company.Name, company.Website, company.Address, company.ContactNo, company.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "companies_name_ci_key") {
			return apperrors.ErrCompanyExists
		}
		return fmt.Errorf("error updating company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}

// Delete deletes a company. Drives referencing it refuse deletion.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM companies WHERE company_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("company has drives and cannot be deleted")
		}
		return fmt.Errorf("error deleting company: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCompanyNotFound
	}

	return nil
}
