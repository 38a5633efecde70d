package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ecoscanhq/ecoscan-api/internal/service"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// ReportHandler serves monthly CSV exports.
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetMonthlyReport streams one calendar month of scans as a CSV attachment.
// GET /v1/reports/monthly?year=2026&month=8
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "year and month query parameters are required")
		return
	}

	data, filename, err := h.reportSvc.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPeriod) {
			utils.Error(c, http.StatusBadRequest, utils.ErrInvalidPeriod.Error(), "year must be 2000-2100 and month 1-12")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build monthly report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
