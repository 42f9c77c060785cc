package services

import (
	"context"
	"math"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/cache"
)

// StatsService derives the coordinator dashboard numbers from current
// records. Nothing here is stored; every figure is recomputed (or read
// from the advisory redis cache) on demand.
type StatsService struct {
	studentRepo   *repositories.StudentRepository
	branchRepo    *repositories.BranchRepository
	companyRepo   *repositories.CompanyRepository
	driveRepo     *repositories.DriveRepository
	placementRepo *repositories.PlacementRepository
	statsCache    *cache.StatsCache
}

// NewStatsService creates a new stats service instance
func NewStatsService(
	studentRepo *repositories.StudentRepository,
	branchRepo *repositories.BranchRepository,
	companyRepo *repositories.CompanyRepository,
	driveRepo *repositories.DriveRepository,
	placementRepo *repositories.PlacementRepository,
	statsCache *cache.StatsCache,
) *StatsService {
	return &StatsService{
		studentRepo:   studentRepo,
		branchRepo:    branchRepo,
		companyRepo:   companyRepo,
		driveRepo:     driveRepo,
		placementRepo: placementRepo,
		statsCache:    statsCache,
	}
}

// GetDashboardStats returns the full dashboard, cached for a short TTL
func (s *StatsService) GetDashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var cached dto.DashboardStats
	if s.statsCache.Get(ctx, cache.KeyDashboardStats, &cached) {
		return &cached, nil
	}

	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	branches, err := s.branchRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	placements, err := s.placementRepo.List(ctx, repositories.PlacementFilter{})
	if err != nil {
		return nil, err
	}
	totalCompanies, err := s.companyRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalDrives, err := s.driveRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeDashboardStats(students, branches, placements, totalCompanies, totalDrives)
	s.statsCache.Set(ctx, cache.KeyDashboardStats, stats)
	return stats, nil
}

// ComputeDashboardStats derives every dashboard figure from the given
// records. A student is "placed" when at least one of their placements
// is Offered or Offer_Accepted; an offer still counts before the
// student accepts it. All rates are whole percentages, rounded half up,
// and 0 whenever the denominator is empty.
func ComputeDashboardStats(
	students []*models.Student,
	branches []*models.Branch,
	placements []*models.Placement,
	totalCompanies, totalDrives int,
) *dto.DashboardStats {
	placedStudents := make(map[string]bool)
	for _, p := range placements {
		if p.CountsAsPlaced() {
			placedStudents[p.StudentID] = true
		}
	}

	stats := &dto.DashboardStats{
		TotalStudents:     len(students),
		TotalDrives:       totalDrives,
		TotalCompanies:    totalCompanies,
		TotalApplications: len(placements),
		PlacedStudents:    len(placedStudents),
		PlacementRate:     roundedRate(len(placedStudents), len(students)),
		AveragePackage:    averagePackage(placements),
		BranchStats:       branchBreakdown(students, branches, placedStudents),
		StatusBreakdown:   statusBreakdown(placements),
	}
	return stats
}

// averagePackage averages the confirmed package over placements that
// count as placed, falling back to the drive package when no confirmed
// figure was recorded. Placements with neither are skipped. Returns 0
// when nothing qualifies.
func averagePackage(placements []*models.Placement) float64 {
	var sum float64
	var count int
	for _, p := range placements {
		if !p.CountsAsPlaced() {
			continue
		}
		pkg := p.PackageLPAConfirmed
		if pkg == nil && p.Drive != nil {
			pkg = p.Drive.PackageLPA
		}
		if pkg == nil {
			continue
		}
		sum += *pkg
		count++
	}
	if count == 0 {
		return 0
	}
	return math.Round(sum/float64(count)*100) / 100
}

func branchBreakdown(students []*models.Student, branches []*models.Branch, placedStudents map[string]bool) []dto.BranchStats {
	totals := make(map[int64]int)
	placed := make(map[int64]int)
	for _, st := range students {
		totals[st.BranchID]++
		if placedStudents[st.StudentID] {
			placed[st.BranchID]++
		}
	}

	result := make([]dto.BranchStats, 0, len(branches))
	for _, b := range branches {
		result = append(result, dto.BranchStats{
			BranchID:       b.ID,
			BranchName:     b.Name,
			TotalStudents:  totals[b.ID],
			PlacedStudents: placed[b.ID],
			PlacementRate:  roundedRate(placed[b.ID], totals[b.ID]),
		})
	}
	return result
}

func statusBreakdown(placements []*models.Placement) []dto.StatusCount {
	counts := make(map[models.PlacementStatus]int)
	for _, p := range placements {
		counts[p.Status]++
	}

	result := make([]dto.StatusCount, 0, len(models.AllPlacementStatuses))
	for _, status := range models.AllPlacementStatuses {
		result = append(result, dto.StatusCount{
			Status:     string(status),
			Count:      counts[status],
			Percentage: roundedRate(counts[status], len(placements)),
		})
	}
	return result
}

func roundedRate(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
