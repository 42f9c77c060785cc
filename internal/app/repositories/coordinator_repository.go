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

// CoordinatorRepository handles database operations for coordinator accounts
type CoordinatorRepository struct {
	db *pgxpool.Pool
}

// NewCoordinatorRepository creates a new coordinator repository
func NewCoordinatorRepository(db *pgxpool.Pool) *CoordinatorRepository {
	return &CoordinatorRepository{
		db: db,
	}
}

// GetByEmail retrieves a coordinator account for login
func (r *CoordinatorRepository) GetByEmail(ctx context.Context, email string) (*models.Coordinator, error) {
	var coordinator models.Coordinator
	err := r.db.QueryRow(ctx, `
		SELECT coordinator_id, name, email, password_hash
		FROM coordinators
		WHERE LOWER(email) = LOWER($1)
	`, email).Scan(&coordinator.ID, &coordinator.Name, &coordinator.Email, &coordinator.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error retrieving coordinator: %w", err)
	}

	return &coordinator, nil
}

// Create creates a coordinator account. Used by seeding.
func (r *CoordinatorRepository) Create(ctx context.Context, coordinator *models.Coordinator) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO coordinators (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING coordinator_id
	`, coordinator.Name, coordinator.Email, coordinator.PasswordHash).Scan(&coordinator.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("coordinator email already registered")
		}
		return fmt.Errorf("error creating coordinator: %w", err)
	}

	return nil
}

// Count returns the number of coordinator accounts
func (r *CoordinatorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM coordinators`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting coordinators: %w", err)
	}
	return count, nil
}
