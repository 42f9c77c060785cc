package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjun/placehub/internal/app/models/dto"
	"github.com/arjun/placehub/internal/app/services"
	"github.com/arjun/placehub/internal/middleware"
)

// StatsController exposes the coordinator dashboard
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetDashboardStats returns the dashboard aggregates
// @Summary Get dashboard statistics
// @Description Returns placement totals, rates, branch breakdown and status breakdown, derived from current records
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStats} "Statistics retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/dashboard [get]
func (c *StatsController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.statsService.GetDashboardStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
