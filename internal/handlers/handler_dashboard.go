package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/NgurahFajar/damar-exchange-backend/internal/core/ports/services"
	"github.com/NgurahFajar/damar-exchange-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the admin landing statistics.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard/stats", h.getStats)
}

// getStats godoc
// @Summary Dashboard statistics
// @Description Returns catalog and gallery counts plus the time of the last rate update
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to load statistics"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load dashboard statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
