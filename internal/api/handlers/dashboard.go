package handlers

import (
	"net/http"

	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the monthly analytics rollup
type DashboardHandler struct {
	dashboard service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetStats handles GET /api/dashboard/stats
// @Summary Monthly dashboard
// @Description Property and tenant counts plus revenue, expenses and profit for a month (current month by default)
// @Tags dashboard
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} service.DashboardStats
// @Failure 400 {object} ErrorResponse "Invalid month or year"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	stats, err := h.dashboard.Compute(c.Request.Context(), actor, c.Query("month"), c.Query("year"))
	if err != nil {
		respondError(c, err, "failed to compute dashboard")
		return
	}

	c.JSON(http.StatusOK, stats)
}
