package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/auth"
)

// Default branches created on first startup so criteria can be defined
// immediately.
var defaultBranches = []string{
	"Computer Engineering",
	"Information Technology",
	"Electronics Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
}

// CreateDefaultData seeds the initial branches and, when no coordinator
// account exists yet, a default coordinator. Idempotent; safe to run on
// every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	branchRepo := repositories.NewBranchRepository(dbPool)
	coordinatorRepo := repositories.NewCoordinatorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (branches, coordinator)...")
	var finalErr error

	for _, name := range defaultBranches {
		branch := &models.Branch{Name: name}
		if err := branchRepo.Create(ctx, branch); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				continue
			}
			lgr.Error().Err(err).Str("branch", name).Msg("Error creating default branch")
			finalErr = errors.Join(finalErr, err)
		}
	}

	count, err := coordinatorRepo.Count(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if count > 0 {
		return finalErr
	}

	password := os.Getenv("SEED_COORDINATOR_PASSWORD")
	if password == "" {
		lgr.Warn().Msg("No coordinator accounts exist and SEED_COORDINATOR_PASSWORD is unset; skipping coordinator seed")
		return finalErr
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return errors.Join(finalErr, err)
	}

	email := os.Getenv("SEED_COORDINATOR_EMAIL")
	if email == "" {
		email = "coordinator@placehub.local"
	}

	coordinator := &models.Coordinator{
		Name:         "Placement Coordinator",
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := coordinatorRepo.Create(ctx, coordinator); err != nil && !errors.Is(err, apperrors.ErrConflict) {
		lgr.Error().Err(err).Msg("Error creating default coordinator")
		return errors.Join(finalErr, err)
	}

	lgr.Info().Str("email", email).Msg("Default coordinator account created")
	return finalErr
}
