package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
)

// CompanyController handles recruiting company operations
type CompanyController struct {
	companyService *services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService *services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// CreateCompany handles company registration
// @Summary Register a new company
// @Description Registers a recruiting company. Company names are unique ignoring case.
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCompanyRequest true "Company information"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Company already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	company, err := c.companyService.CreateCompany(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetCompanyByID retrieves a company by ID
// @Summary Get company by ID
// @Description Retrieves a specific company by its ID
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid company ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetCompanyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetAllCompanies retrieves all companies
// @Summary Get all companies
// @Description Retrieves a list of all recruiting companies
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	companies, err := c.companyService.GetAllCompanies(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      companies,
		Timestamp: time.Now(),
	})
}

// UpdateCompany updates a company
// @Summary Update a company
// @Description Updates an existing company's details
// @Tags companies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Updated company information"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Company name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	company, err := c.companyService.UpdateCompany(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// DeleteCompany deletes a company
// @Summary Delete a company
// @Description Deletes a company that has no drives
// @Tags companies
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 204 "Company deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid company ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Company has drives"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.DeleteCompany(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
