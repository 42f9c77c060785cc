package services

import (
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/auth"
	"github.com/arjun/placehub/internal/pkg/cache"
	"github.com/arjun/placehub/internal/pkg/filestorage"
)

// Services holds all service instances
type Services struct {
	AuthService        *AuthService
	BranchService      *BranchService
	CompanyService     *CompanyService
	CriteriaService    *CriteriaService
	DriveService       *DriveService
	StudentService     *StudentService
	PlacementService   *PlacementService
	EligibilityService *EligibilityService
	StatsService       *StatsService
}

// NewServices creates and initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	resumeStorage filestorage.ResumeStorage,
	statsCache *cache.StatsCache,
) *Services {
	return &Services{
		AuthService:        NewAuthService(repos.CoordinatorRepository, repos.StudentRepository, jwtService),
		BranchService:      NewBranchService(repos.BranchRepository),
		CompanyService:     NewCompanyService(repos.CompanyRepository),
		CriteriaService:    NewCriteriaService(repos.CriteriaRepository),
		DriveService:       NewDriveService(repos.DriveRepository, repos.CompanyRepository, repos.CriteriaRepository, statsCache),
		StudentService:     NewStudentService(repos.StudentRepository, repos.BranchRepository, resumeStorage, statsCache),
		PlacementService:   NewPlacementService(repos.PlacementRepository, repos.StudentRepository, repos.DriveRepository, statsCache),
		EligibilityService: NewEligibilityService(repos.StudentRepository, repos.DriveRepository, repos.PlacementRepository),
		StatsService:       NewStatsService(repos.StudentRepository, repos.BranchRepository, repos.CompanyRepository, repos.DriveRepository, repos.PlacementRepository, statsCache),
	}
}
