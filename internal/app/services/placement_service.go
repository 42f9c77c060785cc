package services

import (
	"context"
	"errors"
	"time"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/cache"
	"github.com/arjun/placehub/internal/pkg/helpers"
	"github.com/arjun/placehub/internal/pkg/logger"
	"github.com/arjun/placehub/internal/pkg/metrics"
)

// Narrow store views so the lifecycle rules can be exercised against
// in-memory fakes. The pgx repositories satisfy these.
type studentGetter interface {
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
}

type driveGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Drive, error)
}

type placementStore interface {
	Create(ctx context.Context, placement *models.Placement) error
	GetByID(ctx context.Context, id int64) (*models.Placement, error)
	List(ctx context.Context, filter repositories.PlacementFilter) ([]*models.Placement, error)
	ExistsForStudentAndDrive(ctx context.Context, studentID string, driveID int64) (bool, error)
	UpdateStatus(ctx context.Context, placement *models.Placement) error
	Delete(ctx context.Context, id int64) error
	BackfillConfirmedPackages(ctx context.Context) (int64, error)
}

// PlacementService owns the application lifecycle: creating
// applications, moving them through statuses and removing them.
type PlacementService struct {
	placementRepo placementStore
	studentRepo   studentGetter
	driveRepo     driveGetter
	statsCache    *cache.StatsCache
}

// NewPlacementService creates a new placement service instance
func NewPlacementService(
	placementRepo placementStore,
	studentRepo studentGetter,
	driveRepo driveGetter,
	statsCache *cache.StatsCache,
) *PlacementService {
	return &PlacementService{
		placementRepo: placementRepo,
		studentRepo:   studentRepo,
		driveRepo:     driveRepo,
		statsCache:    statsCache,
	}
}

// Create records a new application after checking, in order: the
// student exists, the drive exists, no duplicate application, the
// percentage rule, the branch rule. The unique constraint backstops the
// duplicate check under concurrency.
func (s *PlacementService) Create(ctx context.Context, studentID string, driveID int64) (*models.Placement, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		s.countRejection(err)
		return nil, err
	}

	drive, err := s.driveRepo.GetByID(ctx, driveID)
	if err != nil {
		s.countRejection(err)
		return nil, err
	}

	exists, err := s.placementRepo.ExistsForStudentAndDrive(ctx, studentID, driveID)
	if err != nil {
		return nil, err
	}
	if exists {
		s.countRejection(apperrors.ErrDuplicateApplication)
		return nil, apperrors.ErrDuplicateApplication
	}

	if !student.MeetsMinPercentage(drive.Criteria.MinPercentage) {
		s.countRejection(apperrors.ErrPercentageNotMet)
		return nil, apperrors.ErrPercentageNotMet
	}

	if !drive.Criteria.AllowsBranch(student.BranchID) {
		s.countRejection(apperrors.ErrBranchNotEligible)
		return nil, apperrors.ErrBranchNotEligible
	}

	placement := &models.Placement{
		StudentID: studentID,
		DriveID:   driveID,
		Status:    models.StatusApplied,
	}

	if err := s.placementRepo.Create(ctx, placement); err != nil {
		s.countRejection(err)
		return nil, err
	}

	metrics.ApplicationsCreated.Inc()
	s.invalidateStats(ctx)

	placement.Student = student
	placement.Drive = drive
	return placement, nil
}

// Apply is the student-facing entry point. It additionally requires an
// uploaded resume before the usual application checks run.
func (s *PlacementService) Apply(ctx context.Context, studentID string, driveID int64) (*models.Placement, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.ResumeURL == nil || *student.ResumeURL == "" {
		s.countRejection(apperrors.ErrResumeRequired)
		return nil, apperrors.ErrResumeRequired
	}

	return s.Create(ctx, studentID, driveID)
}

// GetByID retrieves one placement
func (s *PlacementService) GetByID(ctx context.Context, id int64) (*models.Placement, error) {
	return s.placementRepo.GetByID(ctx, id)
}

// List retrieves placements matching the filter
func (s *PlacementService) List(ctx context.Context, filter repositories.PlacementFilter) ([]*models.Placement, error) {
	return s.placementRepo.List(ctx, filter)
}

// UpdateStatus moves a placement to a new status. Any transition
// between valid statuses is allowed; coordinators correct mistakes by
// moving records backwards. Moving to Offered fills the confirmed
// package from the drive when none was supplied.
func (s *PlacementService) UpdateStatus(ctx context.Context, id int64, status models.PlacementStatus, placementDate *string, packageLPA *float64) (*models.Placement, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("invalid placement status: " + string(status))
	}

	placement, err := s.placementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	parsedDate, err := helpers.ParseNullableDate(placementDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid placement_date format")
	}

	placement.Status = status
	if parsedDate != nil {
		placement.PlacementDate = parsedDate
	}
	if packageLPA != nil {
		placement.PackageLPAConfirmed = packageLPA
	}

	if status == models.StatusOffered && placement.PackageLPAConfirmed == nil {
		if placement.Drive != nil {
			placement.PackageLPAConfirmed = placement.Drive.PackageLPA
		}
		if placement.PlacementDate == nil {
			now := time.Now()
			placement.PlacementDate = &now
		}
	}

	if err := s.placementRepo.UpdateStatus(ctx, placement); err != nil {
		return nil, err
	}

	metrics.StatusUpdates.WithLabelValues(string(status)).Inc()
	s.invalidateStats(ctx)
	return placement, nil
}

// Delete removes an application record entirely
func (s *PlacementService) Delete(ctx context.Context, id int64) error {
	if err := s.placementRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateStats(ctx)
	return nil
}

// UpdateOfferedPackages backfills package_lpa_confirmed from the drive
// package for offered and accepted placements missing one. Returns the
// number of placements updated.
func (s *PlacementService) UpdateOfferedPackages(ctx context.Context) (int64, error) {
	updated, err := s.placementRepo.BackfillConfirmedPackages(ctx)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		logger.Info().Int64("updated", updated).Msg("Backfilled confirmed packages from drive packages")
		s.invalidateStats(ctx)
	}
	return updated, nil
}

func (s *PlacementService) invalidateStats(ctx context.Context) {
	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
}

func (s *PlacementService) countRejection(err error) {
	var reason string
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, apperrors.ErrConflict):
		reason = "duplicate"
	case errors.Is(err, apperrors.ErrForbidden):
		reason = "not_eligible"
	default:
		return
	}
	metrics.ApplicationsRejected.WithLabelValues(reason).Inc()
}
