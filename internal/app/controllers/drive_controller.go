package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
)

// DriveController handles placement drive operations
type DriveController struct {
	driveService *services.DriveService
}

// NewDriveController creates a new DriveController
func NewDriveController(driveService *services.DriveService) *DriveController {
	return &DriveController{
		driveService: driveService,
	}
}

// CreateDrive handles drive creation
// @Summary Create a new drive
// @Description Creates a placement drive against an existing company and rule set
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDriveRequest true "Drive information"
// @Success 201 {object} dto.APIResponse{data=models.Drive} "Drive created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Company or criteria not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [post]
func (c *DriveController) CreateDrive(ctx *gin.Context) {
	var req dto.CreateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	drive, err := c.driveService.CreateDrive(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      drive,
		Timestamp: time.Now(),
	})
}

// GetDriveByID retrieves a drive by ID
// @Summary Get drive by ID
// @Description Retrieves a drive with its company, criteria and allowed branches
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse{data=models.Drive} "Drive retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [get]
func (c *DriveController) GetDriveByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	drive, err := c.driveService.GetDriveByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      drive,
		Timestamp: time.Now(),
	})
}

// GetAllDrives retrieves all drives
// @Summary Get all drives
// @Description Retrieves all placement drives with their relations, newest first
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Drive} "Drives retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives [get]
func (c *DriveController) GetAllDrives(ctx *gin.Context) {
	drives, err := c.driveService.GetAllDrives(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      drives,
		Timestamp: time.Now(),
	})
}

// UpdateDrive updates a drive
// @Summary Update a drive
// @Description Updates an existing placement drive
// @Tags drives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.UpdateDriveRequest true "Updated drive information"
// @Success 200 {object} dto.APIResponse{data=models.Drive} "Drive updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive, company or criteria not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [put]
func (c *DriveController) UpdateDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	drive, err := c.driveService.UpdateDrive(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      drive,
		Timestamp: time.Now(),
	})
}

// DeleteDrive deletes a drive
// @Summary Delete a drive
// @Description Deletes a drive that has no applications of any status
// @Tags drives
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 204 "Drive deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid drive ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Failure 409 {object} dto.ErrorResponse "Drive has applications"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /drives/{id} [delete]
func (c *DriveController) DeleteDrive(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.driveService.DeleteDrive(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
