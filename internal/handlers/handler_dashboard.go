package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ronaldocristover/arisan-backend/internal/core/ports/services"
	"github.com/ronaldocristover/arisan-backend/internal/middleware"
)

// dashboardHandler serves the aggregate landing-page view.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rs,
	}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard
// @Description Assembles the landing-page view: active member count, current period stats, outstanding obligations, recent settlements and the overall journal summary
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build dashboard in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
