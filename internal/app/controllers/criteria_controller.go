package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
)

// CriteriaController handles eligibility rule set operations
type CriteriaController struct {
	criteriaService *services.CriteriaService
}

// NewCriteriaController creates a new CriteriaController
func NewCriteriaController(criteriaService *services.CriteriaService) *CriteriaController {
	return &CriteriaController{
		criteriaService: criteriaService,
	}
}

// CreateCriteria handles rule set creation
// @Summary Create an eligibility rule set
// @Description Creates a rule set with its allowed branches in one transaction. At least one branch is required.
// @Tags criteria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCriteriaRequest true "Criteria information"
// @Success 201 {object} dto.APIResponse{data=models.Criteria} "Criteria created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or unknown branch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /criteria [post]
func (c *CriteriaController) CreateCriteria(ctx *gin.Context) {
	var req dto.CreateCriteriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	criteria, err := c.criteriaService.CreateCriteria(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      criteria,
		Timestamp: time.Now(),
	})
}

// GetCriteriaByID retrieves a rule set by ID
// @Summary Get criteria by ID
// @Description Retrieves a rule set together with its allowed branches
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Param id path int true "Criteria ID"
// @Success 200 {object} dto.APIResponse{data=models.Criteria} "Criteria retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid criteria ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /criteria/{id} [get]
func (c *CriteriaController) GetCriteriaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	criteria, err := c.criteriaService.GetCriteriaByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      criteria,
		Timestamp: time.Now(),
	})
}

// GetAllCriteria retrieves all rule sets
// @Summary Get all criteria
// @Description Retrieves all eligibility rule sets with their allowed branches
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Criteria} "Criteria retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /criteria [get]
func (c *CriteriaController) GetAllCriteria(ctx *gin.Context) {
	criteria, err := c.criteriaService.GetAllCriteria(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      criteria,
		Timestamp: time.Now(),
	})
}

// UpdateCriteria updates a rule set
// @Summary Update a criteria
// @Description Updates a rule set, replacing its allowed branch set
// @Tags criteria
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Criteria ID"
// @Param request body dto.UpdateCriteriaRequest true "Updated criteria information"
// @Success 200 {object} dto.APIResponse{data=models.Criteria} "Criteria updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or unknown branch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /criteria/{id} [put]
func (c *CriteriaController) UpdateCriteria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCriteriaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	criteria, err := c.criteriaService.UpdateCriteria(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      criteria,
		Timestamp: time.Now(),
	})
}

// DeleteCriteria deletes a rule set
// @Summary Delete a criteria
// @Description Deletes a rule set that no drive references
// @Tags criteria
// @Produce json
// @Security BearerAuth
// @Param id path int true "Criteria ID"
// @Success 204 "Criteria deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid criteria ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Criteria not found"
// @Failure 409 {object} dto.ErrorResponse "Criteria is used by drives"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /criteria/{id} [delete]
func (c *CriteriaController) DeleteCriteria(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.criteriaService.DeleteCriteria(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
