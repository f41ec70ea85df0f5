package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tridash/internal/service"
)

// DashboardHandler handles HTTP requests for dashboard aggregates.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetOverview handles GET /v1/dashboard/overview
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, overview)
}

// GetTrends handles GET /v1/dashboard/trends?days=N
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 90 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be an integer between 1 and 90"})
			return
		}
		days = parsed
	}

	trends, err := h.dashboardService.GetTrends(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, trends)
}
