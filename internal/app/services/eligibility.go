package services

import (
	"context"
	"sort"
	"time"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/metrics"
)

// EligibleDrives filters the drives a student may still apply to at the
// given instant. A drive qualifies when its deadline has not passed, the
// student's branch is in the allowed set, the student meets the minimum
// percentage and the student has no placement record for it yet,
// whatever that record's status. The result is ordered by deadline,
// soonest first, with open-ended drives at the end.
func EligibleDrives(student *models.Student, drives []*models.Drive, applied map[int64]bool, now time.Time) []*models.Drive {
	var eligible []*models.Drive
	for _, drive := range drives {
		if drive.Criteria == nil {
			continue
		}
		if !drive.DeadlineOpen(now) {
			continue
		}
		if !drive.Criteria.AllowsBranch(student.BranchID) {
			continue
		}
		if !student.MeetsMinPercentage(drive.Criteria.MinPercentage) {
			continue
		}
		if applied[drive.ID] {
			continue
		}
		eligible = append(eligible, drive)
	}

	SortByDeadline(eligible)
	return eligible
}

// SortByDeadline orders drives by application deadline ascending.
// Drives without a deadline sort after every dated one.
func SortByDeadline(drives []*models.Drive) {
	sort.SliceStable(drives, func(i, j int) bool {
		a := drives[i].ApplicationDeadline
		b := drives[j].ApplicationDeadline
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
}

// EligibilityService computes per-student drive eligibility
type EligibilityService struct {
	studentRepo   *repositories.StudentRepository
	driveRepo     *repositories.DriveRepository
	placementRepo *repositories.PlacementRepository
}

// NewEligibilityService creates a new eligibility service instance
func NewEligibilityService(
	studentRepo *repositories.StudentRepository,
	driveRepo *repositories.DriveRepository,
	placementRepo *repositories.PlacementRepository,
) *EligibilityService {
	return &EligibilityService{
		studentRepo:   studentRepo,
		driveRepo:     driveRepo,
		placementRepo: placementRepo,
	}
}

// EligibleDrivesForStudent returns the drives the student may apply to
// right now
func (s *EligibilityService) EligibleDrivesForStudent(ctx context.Context, studentID string) ([]*models.Drive, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	drives, err := s.driveRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	placements, err := s.placementRepo.List(ctx, repositories.PlacementFilter{StudentID: &studentID})
	if err != nil {
		return nil, err
	}

	applied := make(map[int64]bool, len(placements))
	for _, p := range placements {
		applied[p.DriveID] = true
	}

	metrics.EligibilityChecks.Inc()
	return EligibleDrives(student, drives, applied, time.Now()), nil
}
