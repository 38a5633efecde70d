package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecoscanhq/ecoscan-api/internal/disposal"
	"github.com/ecoscanhq/ecoscan-api/internal/service"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// ScanRequest is the shared request body for analyze and save endpoints.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required,min=5,max=32"`
	City    string `json:"city" binding:"required"`
}

// AnalysisHandler handles ad-hoc product analysis requests.
type AnalysisHandler struct {
	analysisSvc *service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisSvc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisSvc: analysisSvc}
}

// AnalyzeProduct analyzes a barcode for a city without persisting anything.
// POST /v1/analyze
func (h *AnalysisHandler) AnalyzeProduct(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "barcode (5-32 chars) and city are required")
		return
	}

	result, err := h.analysisSvc.Analyze(c.Request.Context(), strings.TrimSpace(req.Barcode), req.City)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.Success(c, http.StatusOK, "Analysis completed", result)
}

// respondAnalysisError maps pipeline errors onto HTTP statuses shared by
// the analyze and scan-save endpoints.
func respondAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrUnsupportedCity):
		utils.Error(c, http.StatusBadRequest, utils.ErrUnsupportedCity.Error(),
			"Unsupported city. Use one of: "+strings.Join(disposal.SupportedCities(), ", "))
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, http.StatusNotFound, utils.ErrProductNotFound.Error(),
			"Product not found in Open Food Facts. Try another barcode.")
	case errors.Is(err, utils.ErrLookupFailed):
		utils.Error(c, http.StatusBadGateway, utils.ErrLookupFailed.Error(),
			"Product lookup is currently unavailable")
	default:
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to analyze product")
	}
}
