package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/middleware"
)

// StatsController serves the dashboard summary
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetStats returns the dashboard statistics
// @Summary Dashboard statistics
// @Description Returns employee totals, present/absent counts for the latest activity date, the recent-activity feed and the department distribution
// @Tags stats
// @Produce json
// @Success 200 {object} dto.StatsResponse "Statistics retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats [get]
func (c *StatsController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.Overview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
