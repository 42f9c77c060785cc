package services

import (
	"context"
	"strings"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
	"github.com/arjun/placehub/internal/pkg/cache"
	"github.com/arjun/placehub/internal/pkg/helpers"
)

// DriveService handles placement drive operations
type DriveService struct {
	driveRepo    *repositories.DriveRepository
	companyRepo  *repositories.CompanyRepository
	criteriaRepo *repositories.CriteriaRepository
	statsCache   *cache.StatsCache
}

// NewDriveService creates a new drive service instance
func NewDriveService(
	driveRepo *repositories.DriveRepository,
	companyRepo *repositories.CompanyRepository,
	criteriaRepo *repositories.CriteriaRepository,
	statsCache *cache.StatsCache,
) *DriveService {
	return &DriveService{
		driveRepo:    driveRepo,
		companyRepo:  companyRepo,
		criteriaRepo: criteriaRepo,
		statsCache:   statsCache,
	}
}

func (s *DriveService) driveFromRequest(ctx context.Context, companyID, criteriaID int64, jobTitle string, packageLPA *float64, gradeOffered, driveDate, deadline, description *string) (*models.Drive, error) {
	if strings.TrimSpace(jobTitle) == "" {
		return nil, apperrors.NewValidationError("job title cannot be empty")
	}

	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}
	if _, err := s.criteriaRepo.GetByID(ctx, criteriaID); err != nil {
		return nil, err
	}

	parsedDriveDate, err := helpers.ParseNullableDate(driveDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid drive_date format")
	}
	parsedDeadline, err := helpers.ParseNullableDate(deadline)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid application_deadline format")
	}

	return &models.Drive{
		CompanyID:           companyID,
		CriteriaID:          criteriaID,
		JobTitle:            strings.TrimSpace(jobTitle),
		PackageLPA:          packageLPA,
		GradeOffered:        gradeOffered,
		DriveDate:           parsedDriveDate,
		ApplicationDeadline: parsedDeadline,
		Description:         description,
	}, nil
}

// CreateDrive creates a new drive against an existing company and rule set
func (s *DriveService) CreateDrive(ctx context.Context, req *dto.CreateDriveRequest) (*models.Drive, error) {
	drive, err := s.driveFromRequest(ctx, req.CompanyID, req.CriteriaID, req.JobTitle,
		req.PackageLPA, req.GradeOffered, req.DriveDate, req.ApplicationDeadline, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.driveRepo.Create(ctx, drive); err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
	return s.driveRepo.GetByID(ctx, drive.ID)
}

// GetDriveByID retrieves a drive with company, criteria and branches
func (s *DriveService) GetDriveByID(ctx context.Context, id int64) (*models.Drive, error) {
	return s.driveRepo.GetByID(ctx, id)
}

// GetAllDrives retrieves all drives with relations, newest first
func (s *DriveService) GetAllDrives(ctx context.Context) ([]*models.Drive, error) {
	return s.driveRepo.GetAll(ctx)
}

// UpdateDrive updates an existing drive
func (s *DriveService) UpdateDrive(ctx context.Context, id int64, req *dto.UpdateDriveRequest) (*models.Drive, error) {
	if _, err := s.driveRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	drive, err := s.driveFromRequest(ctx, req.CompanyID, req.CriteriaID, req.JobTitle,
		req.PackageLPA, req.GradeOffered, req.DriveDate, req.ApplicationDeadline, req.Description)
	if err != nil {
		return nil, err
	}
	drive.ID = id

	if err := s.driveRepo.Update(ctx, drive); err != nil {
		return nil, err
	}

	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
	return s.driveRepo.GetByID(ctx, id)
}

// DeleteDrive deletes a drive. A drive with any application, whatever
// its status, cannot be deleted.
func (s *DriveService) DeleteDrive(ctx context.Context, id int64) error {
	if _, err := s.driveRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasApplications, err := s.driveRepo.HasApplications(ctx, id)
	if err != nil {
		return err
	}
	if hasApplications {
		return apperrors.ErrDriveHasApplications
	}

	if err := s.driveRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.statsCache.Invalidate(ctx, cache.KeyDashboardStats)
	return nil
}
