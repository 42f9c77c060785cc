package services

import (
	"context"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
)

// CriteriaService handles eligibility rule set operations
type CriteriaService struct {
	criteriaRepo *repositories.CriteriaRepository
}

// NewCriteriaService creates a new criteria service instance
func NewCriteriaService(criteriaRepo *repositories.CriteriaRepository) *CriteriaService {
	return &CriteriaService{
		criteriaRepo: criteriaRepo,
	}
}

// CreateCriteria creates a rule set together with its allowed branch
// links in one transaction, so a rule set can never exist without at
// least one branch.
func (s *CriteriaService) CreateCriteria(ctx context.Context, req *dto.CreateCriteriaRequest) (*models.Criteria, error) {
	if len(req.BranchIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one branch must be selected")
	}

	criteria := &models.Criteria{
		Description:   req.Description,
		MinPercentage: req.MinPercentage,
		ActiveStatus:  true,
	}
	if req.ActiveStatus != nil {
		criteria.ActiveStatus = *req.ActiveStatus
	}

	if err := s.criteriaRepo.Create(ctx, criteria, dedupeIDs(req.BranchIDs)); err != nil {
		return nil, err
	}
	return criteria, nil
}

// GetCriteriaByID retrieves a rule set with its allowed branches
func (s *CriteriaService) GetCriteriaByID(ctx context.Context, id int64) (*models.Criteria, error) {
	return s.criteriaRepo.GetByID(ctx, id)
}

// GetAllCriteria retrieves all rule sets
func (s *CriteriaService) GetAllCriteria(ctx context.Context) ([]*models.Criteria, error) {
	return s.criteriaRepo.GetAll(ctx)
}

// UpdateCriteria updates a rule set, replacing its branch links
func (s *CriteriaService) UpdateCriteria(ctx context.Context, id int64, req *dto.UpdateCriteriaRequest) (*models.Criteria, error) {
	if len(req.BranchIDs) == 0 {
		return nil, apperrors.NewValidationError("at least one branch must be selected")
	}

	criteria, err := s.criteriaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	criteria.Description = req.Description
	criteria.MinPercentage = req.MinPercentage
	if req.ActiveStatus != nil {
		criteria.ActiveStatus = *req.ActiveStatus
	}

	if err := s.criteriaRepo.Update(ctx, criteria, dedupeIDs(req.BranchIDs)); err != nil {
		return nil, err
	}
	return criteria, nil
}

// DeleteCriteria deletes a rule set. Refused while drives reference it.
func (s *CriteriaService) DeleteCriteria(ctx context.Context, id int64) error {
	return s.criteriaRepo.Delete(ctx, id)
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
