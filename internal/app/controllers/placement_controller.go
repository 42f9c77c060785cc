package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models"
	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/repositories"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
	"github.com/arjun/placehub/internal/pkg/apperrors"
)

// PlacementController handles the application lifecycle endpoints
type PlacementController struct {
	placementService *services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService *services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// CreatePlacement records an application on a student's behalf
// @Summary Create a placement record
// @Description Records an application for a student after eligibility checks. Coordinator only.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePlacementRequest true "Application details"
// @Success 201 {object} dto.APIResponse{data=models.Placement} "Placement created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Student fails the percentage or branch rule"
// @Failure 404 {object} dto.ErrorResponse "Student or drive not found"
// @Failure 409 {object} dto.ErrorResponse "Student already applied for this drive"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	placement, err := c.placementService.Create(ctx, req.StudentID, req.DriveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// Apply lets the authenticated student apply to a drive
// @Summary Apply to a drive
// @Description Applies the authenticated student to a drive. A resume must be on file first.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ApplyRequest true "Drive to apply to"
// @Success 201 {object} dto.APIResponse{data=models.Placement} "Application created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Resume missing or eligibility rule failed"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Already applied for this drive"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/apply [post]
func (c *PlacementController) Apply(ctx *gin.Context) {
	var req dto.ApplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	studentID := ctx.GetString(middleware.ContextStudentID)
	if studentID == "" {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}

	placement, err := c.placementService.Apply(ctx, studentID, req.DriveID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// GetPlacementByID retrieves one placement
// @Summary Get placement by ID
// @Description Retrieves a placement record with its student and drive
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [get]
func (c *PlacementController) GetPlacementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	placement, err := c.placementService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// ListPlacements retrieves placements with optional filters
// @Summary List placements
// @Description Retrieves placement records filtered by drive, student or status, newest application first
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param drive_id query int false "Filter by drive ID"
// @Param student_id query string false "Filter by student roll number"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.APIResponse{data=[]models.Placement} "Placements retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [get]
func (c *PlacementController) ListPlacements(ctx *gin.Context) {
	var filter repositories.PlacementFilter

	if driveIDStr := ctx.Query("drive_id"); driveIDStr != "" {
		driveID, err := strconv.ParseInt(driveIDStr, 10, 64)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("drive_id must be a number"))
			return
		}
		filter.DriveID = &driveID
	}
	if studentID := ctx.Query("student_id"); studentID != "" {
		filter.StudentID = &studentID
	}
	if statusStr := ctx.Query("status"); statusStr != "" {
		status := models.PlacementStatus(statusStr)
		if !status.IsValid() {
			middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid placement status: "+statusStr))
			return
		}
		filter.Status = &status
	}

	placements, err := c.placementService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placements,
		Timestamp: time.Now(),
	})
}

// UpdatePlacement moves a placement to a new status
// @Summary Update placement status
// @Description Sets a placement's status. Moving to Offered fills the confirmed package from the drive when absent.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Param request body dto.UpdatePlacementRequest true "New status and optional fields"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid status or date format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	placement, err := c.placementService.UpdateStatus(ctx, id,
		models.PlacementStatus(req.Status), req.PlacementDate, req.PackageLPAConfirmed)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// DeletePlacement removes an application record
// @Summary Delete a placement
// @Description Removes an application record entirely
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Placement ID"
// @Success 204 "Placement deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.placementService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateOfferedPackages backfills confirmed packages
// @Summary Backfill offered packages
// @Description Copies the drive package onto offered and accepted placements missing a confirmed figure
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=map[string]int64} "Backfill completed"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/update-offered-packages [post]
func (c *PlacementController) UpdateOfferedPackages(ctx *gin.Context) {
	updated, err := c.placementService.UpdateOfferedPackages(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      map[string]int64{"updated": updated},
		Timestamp: time.Now(),
	})
}
