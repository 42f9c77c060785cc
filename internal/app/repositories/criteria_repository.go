package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/db"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/dberrors"
)

// CriteriaRepository handles database operations for eligibility criteria
type CriteriaRepository struct {
	db *pgxpool.Pool
}

// NewCriteriaRepository creates a new criteria repository
func NewCriteriaRepository(db *pgxpool.Pool) *CriteriaRepository {
	return &CriteriaRepository{
		db: db,
	}
}

// Create inserts a criteria row together with its branch associations
// and re-reads the joined result. The three steps run in one
// transaction: a criteria must never exist without its branch set.
func (r *CriteriaRepository) Create(ctx context.Context, criteria *models.Criteria, branchIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO criteria (description, min_percentage, active_status)
			VALUES ($1, $2, $3)
			RETURNING criteria_id`,
			criteria.Description, criteria.MinPercentage, criteria.ActiveStatus,
		).Scan(&criteria.ID)
		if err != nil {
			return fmt.Errorf("error creating criteria: %w", err)
		}

		for _, branchID := range branchIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO criteria_branches (criteria_id, branch_id)
				VALUES ($1, $2)`,
				criteria.ID, branchID,
			); err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.NewValidationError(fmt.Sprintf("branch %d does not exist", branchID))
				}
				return fmt.Errorf("error associating branch %d: %w", branchID, err)
			}
		}

		branches, err := loadCriteriaBranches(ctx, tx, criteria.ID)
		if err != nil {
			return err
		}
		criteria.AllowedBranches = branches
		return nil
	})
}

// queryRower is satisfied by both pgxpool.Pool and pgx.Tx
type queryRower interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// loadCriteriaBranches fetches the allowed branch set for one criteria
func loadCriteriaBranches(ctx context.Context, q queryRower, criteriaID int64) ([]models.Branch, error) {
	rows, err := q.Query(ctx, `
		SELECT b.branch_id, b.branch_name
		FROM criteria_branches cb
		JOIN branches b ON b.branch_id = cb.branch_id
		WHERE cb.criteria_id = $1
		ORDER BY b.branch_id`,
		criteriaID)
	if err != nil {
		return nil, fmt.Errorf("error loading criteria branches: %w", err)
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

// GetByID retrieves a criteria with its allowed branches
func (r *CriteriaRepository) GetByID(ctx context.Context, id int64) (*models.Criteria, error) {
	query := `
		SELECT criteria_id, description, min_percentage, active_status
		FROM criteria
		WHERE criteria_id = $1
	`

	var criteria models.Criteria
	err := r.db.QueryRow(ctx, query, id).Scan(
		&criteria.ID,
		&criteria.Description,
		&criteria.MinPercentage,
		&criteria.ActiveStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCriteriaNotFound
		}
		return nil, fmt.Errorf("error retrieving criteria: %w", err)
	}

	branches, err := loadCriteriaBranches(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	criteria.AllowedBranches = branches

	return &criteria, nil
}

// GetAll retrieves all criteria with their allowed branches, ordered by id
func (r *CriteriaRepository) GetAll(ctx context.Context) ([]*models.Criteria, error) {
	rows, err := r.db.Query(ctx, `
		SELECT criteria_id, description, min_percentage, active_status
		FROM criteria
		ORDER BY criteria_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Criteria
	for rows.Next() {
		var criteria models.Criteria
		if err := rows.Scan(
			&criteria.ID,
			&criteria.Description,
			&criteria.MinPercentage,
			&criteria.ActiveStatus,
		); err != nil {
			return nil, err
		}
		result = append(result, &criteria)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, criteria := range result {
		branches, err := loadCriteriaBranches(ctx, r.db, criteria.ID)
		if err != nil {
			return nil, err
		}
		criteria.AllowedBranches = branches
	}

	return result, nil
}

// Update updates a criteria and replaces its branch associations in
// one transaction.
func (r *CriteriaRepository) Update(ctx context.Context, criteria *models.Criteria, branchIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE criteria
			SET description = $1, min_percentage = $2, active_status = $3
			WHERE criteria_id = $4`,
			criteria.Description, criteria.MinPercentage, criteria.ActiveStatus, criteria.ID)
		if err != nil {
			return fmt.Errorf("error updating criteria: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCriteriaNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM criteria_branches WHERE criteria_id = $1`, criteria.ID); err != nil {
			return fmt.Errorf("error clearing criteria branches: %w", err)
		}

		for _, branchID := range branchIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO criteria_branches (criteria_id, branch_id)
				VALUES ($1, $2)`,
				criteria.ID, branchID,
			); err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.NewValidationError(fmt.Sprintf("branch %d does not exist", branchID))
				}
				return fmt.Errorf("error associating branch %d: %w", branchID, err)
			}
		}

		branches, err := loadCriteriaBranches(ctx, tx, criteria.ID)
		if err != nil {
			return err
		}
		criteria.AllowedBranches = branches
		return nil
	})
}

// Delete deletes a criteria. Drives referencing it refuse deletion;
// branch associations cascade.
func (r *CriteriaRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM criteria WHERE criteria_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("criteria is used by drives and cannot be deleted")
		}
		return fmt.Errorf("error deleting criteria: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCriteriaNotFound
	}

	return nil
}
