package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emrek/registra/internal/app/models/dto"
	"github.com/emrek/registra/internal/app/services"
	"github.com/emrek/registra/internal/middleware"
)

// StatsController handles the dashboard stats endpoint.
type StatsController struct {
	statsService *services.StatsService
}

// NewStatsController creates a new StatsController.
func NewStatsController(statsService *services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// GetStats handles GET /api/v1/stats.
func (sc *StatsController) GetStats(c *gin.Context) {
	caller := middleware.CallerFromContext(c)

	stats, err := sc.statsService.GetDashboardStats(c.Request.Context(), caller)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStatsResponse(stats)))
}
