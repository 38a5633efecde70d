package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoscanhq/ecoscan-api/internal/service"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// AnalyticsHandler serves the aggregate dashboard payload.
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// GetAnalytics returns totals, the environmental score, weekly CO2,
// impact distribution, the 30-day trend, and the current streak.
// GET /v1/analytics
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	summary, err := h.analyticsSvc.Dashboard(c.Request.Context())
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute analytics")
		return
	}

	utils.Success(c, http.StatusOK, "Successfully computed analytics", summary)
}
