package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
)

// BranchController handles department branch operations
type BranchController struct {
	branchService *services.BranchService
}

// NewBranchController creates a new BranchController
func NewBranchController(branchService *services.BranchService) *BranchController {
	return &BranchController{
		branchService: branchService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// CreateBranch handles branch creation
// @Summary Create a new branch
// @Description Creates a new department branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBranchRequest true "Branch information"
// @Success 201 {object} dto.APIResponse{data=models.Branch} "Branch created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 409 {object} dto.ErrorResponse "Branch already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches [post]
func (c *BranchController) CreateBranch(ctx *gin.Context) {
	var req dto.CreateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	branch, err := c.branchService.CreateBranch(ctx, req.BranchName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      branch,
		Timestamp: time.Now(),
	})
}

// GetBranchByID retrieves a branch by ID
// @Summary Get branch by ID
// @Description Retrieves a specific branch by its ID
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.APIResponse{data=models.Branch} "Branch retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid branch ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/{id} [get]
func (c *BranchController) GetBranchByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	branch, err := c.branchService.GetBranchByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      branch,
		Timestamp: time.Now(),
	})
}

// GetAllBranches retrieves all branches
// @Summary Get all branches
// @Description Retrieves a list of all department branches
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Branch} "Branches retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches [get]
func (c *BranchController) GetAllBranches(ctx *gin.Context) {
	branches, err := c.branchService.GetAllBranches(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      branches,
		Timestamp: time.Now(),
	})
}

// UpdateBranch renames a branch
// @Summary Update a branch
// @Description Renames an existing branch
// @Tags branches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Param request body dto.UpdateBranchRequest true "Updated branch information"
// @Success 200 {object} dto.APIResponse{data=models.Branch} "Branch updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 409 {object} dto.ErrorResponse "Branch name already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/{id} [put]
func (c *BranchController) UpdateBranch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBranchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	branch, err := c.branchService.UpdateBranch(ctx, id, req.BranchName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      branch,
		Timestamp: time.Now(),
	})
}

// DeleteBranch deletes a branch
// @Summary Delete a branch
// @Description Deletes a branch that is not referenced by students or criteria
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 204 "Branch deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid branch ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Branch not found"
// @Failure 409 {object} dto.ErrorResponse "Branch is still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /branches/{id} [delete]
func (c *BranchController) DeleteBranch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.branchService.DeleteBranch(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
