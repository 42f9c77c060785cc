package services

import (
	"context"
	"strings"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
)

// BranchService handles department branch operations
type BranchService struct {
	branchRepo *repositories.BranchRepository
}

// NewBranchService creates a new branch service instance
func NewBranchService(branchRepo *repositories.BranchRepository) *BranchService {
	return &BranchService{
		branchRepo: branchRepo,
	}
}

// CreateBranch creates a new branch
func (s *BranchService) CreateBranch(ctx context.Context, name string) (*models.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("branch name cannot be empty")
	}

	branch := &models.Branch{Name: name}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// GetBranchByID retrieves a branch by ID
func (s *BranchService) GetBranchByID(ctx context.Context, id int64) (*models.Branch, error) {
	return s.branchRepo.GetByID(ctx, id)
}

// GetAllBranches retrieves all branches
func (s *BranchService) GetAllBranches(ctx context.Context) ([]*models.Branch, error) {
	return s.branchRepo.GetAll(ctx)
}

// UpdateBranch renames a branch
func (s *BranchService) UpdateBranch(ctx context.Context, id int64, name string) (*models.Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("branch name cannot be empty")
	}

	branch := &models.Branch{ID: id, Name: name}
	if err := s.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// DeleteBranch deletes a branch. Refused while students or criteria
// still reference it.
func (s *BranchService) DeleteBranch(ctx context.Context, id int64) error {
	return s.branchRepo.Delete(ctx, id)
}
