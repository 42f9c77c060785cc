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

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{
		db: db,
	}
}

// Create creates a new branch
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	query := `
		INSERT INTO branches (branch_name)
		VALUES ($1)
		RETURNING branch_id
	`

	err := r.db.QueryRow(ctx, query, branch.Name).Scan(&branch.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("branch %q already exists", branch.Name))
		}
		return fmt.Errorf("error creating branch: %w", err)
	}

	return nil
}

// GetByID retrieves a branch by ID
func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*models.Branch, error) {
	query := `
		SELECT branch_id, branch_name
		FROM branches
		WHERE branch_id = $1
	`

	var branch models.Branch
	err := r.db.QueryRow(ctx, query, id).Scan(&branch.ID, &branch.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error retrieving branch: %w", err)
	}

	return &branch, nil
}

// GetAll retrieves all branches ordered by id
func (r *BranchRepository) GetAll(ctx context.Context) ([]*models.Branch, error) {
	query := `
		SELECT branch_id, branch_name
		FROM branches
		ORDER BY branch_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		var branch models.Branch
		if err := rows.Scan(&branch.ID, &branch.Name); err != nil {
			return nil, err
		}
		branches = append(branches, &branch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

// Update renames an existing branch
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	query := `
		UPDATE branches
		SET branch_name = $1
		WHERE branch_id = $2
	`

	cmdTag, err := r.db.Exec(ctx, query, branch.Name, branch.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("branch %q already exists", branch.Name))
		}
		return fmt.Errorf("error updating branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}

// Delete deletes a branch. The foreign keys from students and
// criteria_branches refuse deletion while the branch is referenced.
func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE branch_id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBranchReferenced
		}
		return fmt.Errorf("error deleting branch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}

	return nil
}
