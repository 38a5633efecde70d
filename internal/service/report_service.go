package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/repository"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// reportColumns is the frozen export column order. Reporting consumers
// parse by position; do not reorder or rename.
var reportColumns = []string{
	"id", "product_name", "barcode", "city",
	"impact_score", "disposal_type", "co2_estimate", "timestamp",
}

// ReportService renders monthly scan exports as CSV.
type ReportService struct {
	scanRepo *repository.ScanRepository
}

// NewReportService constructs a ReportService.
func NewReportService(scanRepo *repository.ScanRepository) *ReportService {
	return &ReportService{scanRepo: scanRepo}
}

// MonthlyReport returns the CSV body and suggested filename for one
// calendar month of scans.
func (s *ReportService) MonthlyReport(ctx context.Context, year, month int) ([]byte, string, error) {
	if month < 1 || month > 12 {
		return nil, "", fmt.Errorf("%w: month must be 1-12", utils.ErrInvalidPeriod)
	}
	if year < 2000 || year > 2100 {
		return nil, "", fmt.Errorf("%w: year out of range", utils.ErrInvalidPeriod)
	}

	scans, err := s.scanRepo.GetMonthlyScans(ctx, year, month)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load monthly scans: %w", err)
	}

	data, err := renderCSV(scans)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ecoscan_report_%04d_%02d.csv", year, month)
	return data, filename, nil
}

// renderCSV writes the scans as CSV in the frozen column order.
func renderCSV(scans []models.ScanRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reportColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, scan := range scans {
		row := []string{
			strconv.FormatInt(scan.ID, 10),
			scan.ProductName,
			scan.Barcode,
			scan.City,
			string(scan.ImpactScore),
			string(scan.DisposalType),
			strconv.FormatFloat(scan.CO2Estimate, 'f', 2, 64),
			scan.Timestamp.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
