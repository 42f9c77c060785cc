package services

import (
	"context"
	"strings"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/pkg/apperrors"
)

// CompanyService handles recruiting company operations
type CompanyService struct {
	companyRepo *repositories.CompanyRepository
}

// NewCompanyService creates a new company service instance
func NewCompanyService(companyRepo *repositories.CompanyRepository) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
	}
}

// CreateCompany registers a new company. Names are unique ignoring case.
func (s *CompanyService) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("company name cannot be empty")
	}

	company := &models.Company{
		Name:      name,
		Website:   req.Website,
		Address:   req.Address,
		ContactNo: req.ContactNo,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetCompanyByID retrieves a company by ID
func (s *CompanyService) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

// GetAllCompanies retrieves all companies
func (s *CompanyService) GetAllCompanies(ctx context.Context) ([]*models.Company, error) {
	return s.companyRepo.GetAll(ctx)
}

// UpdateCompany updates a company's details
func (s *CompanyService) UpdateCompany(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*models.Company, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("company name cannot be empty")
	}

	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = name
	company.Website = req.Website
	company.Address = req.Address
	company.ContactNo = req.ContactNo

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany deletes a company. Refused while drives reference it.
func (s *CompanyService) DeleteCompany(ctx context.Context, id int64) error {
	return s.companyRepo.Delete(ctx, id)
}
