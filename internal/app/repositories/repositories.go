package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	BranchRepository      *BranchRepository
	CompanyRepository     *CompanyRepository
	CriteriaRepository    *CriteriaRepository
	DriveRepository       *DriveRepository
	StudentRepository     *StudentRepository
	PlacementRepository   *PlacementRepository
	CoordinatorRepository *CoordinatorRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		BranchRepository:      NewBranchRepository(db),
		CompanyRepository:     NewCompanyRepository(db),
		CriteriaRepository:    NewCriteriaRepository(db),
		DriveRepository:       NewDriveRepository(db),
		StudentRepository:     NewStudentRepository(db),
		PlacementRepository:   NewPlacementRepository(db),
		CoordinatorRepository: NewCoordinatorRepository(db),
	}
}
