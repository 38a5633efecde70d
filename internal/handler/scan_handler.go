package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ecoscanhq/ecoscan-api/internal/service"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

const (
	defaultHistoryLimit = 100
	maxHistoryLimit     = 1000
)

// ScanHandler handles persisted scan endpoints.
type ScanHandler struct {
	scanSvc *service.ScanService
}

// NewScanHandler creates a new ScanHandler.
func NewScanHandler(scanSvc *service.ScanService) *ScanHandler {
	return &ScanHandler{scanSvc: scanSvc}
}

// CreateScan analyzes a barcode and persists the result as one scan row.
// POST /v1/scans
func (h *ScanHandler) CreateScan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "barcode (5-32 chars) and city are required")
		return
	}

	scan, result, err := h.scanSvc.SaveScan(c.Request.Context(), strings.TrimSpace(req.Barcode), req.City)
	if err != nil {
		respondAnalysisError(c, err)
		return
	}

	utils.Success(c, http.StatusCreated, "Scan saved", gin.H{
		"scan":   scan,
		"result": result,
	})
}

// ListScans returns the most recent scans.
// GET /v1/scans?limit=100
func (h *ScanHandler) ListScans(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHistoryLimit {
			utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "limit must be between 1 and 1000")
			return
		}
		limit = parsed
	}

	scans, err := h.scanSvc.GetHistory(c.Request.Context(), limit)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve scan history")
		return
	}

	utils.Success(c, http.StatusOK, "Successfully retrieved scan history", gin.H{
		"items": scans,
	})
}

// GetScan returns one scan by id.
// GET /v1/scans/:id
func (h *ScanHandler) GetScan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		utils.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "scan id must be a positive integer")
		return
	}

	scan, err := h.scanSvc.GetScan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrScanNotFound) {
			utils.Error(c, http.StatusNotFound, utils.ErrScanNotFound.Error(), "Scan not found")
			return
		}
		utils.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to retrieve scan")
		return
	}

	utils.Success(c, http.StatusOK, "Successfully retrieved scan", scan)
}
