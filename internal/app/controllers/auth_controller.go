package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
)

// AuthController handles login for both account kinds
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// LoginCoordinator authenticates a coordinator
// @Summary Coordinator login
// @Description Authenticates a placement coordinator by email and password and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.CoordinatorLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/coordinator/login [post]
func (c *AuthController) LoginCoordinator(ctx *gin.Context) {
	var req dto.CoordinatorLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	response, err := c.authService.LoginCoordinator(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// LoginStudent authenticates a student
// @Summary Student login
// @Description Authenticates a student by roll number and password and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/student/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	response, err := c.authService.LoginStudent(ctx, req.StudentID, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}
