package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// ScanStore persists and reads scan rows. Implemented by
// repository.ScanRepository.
type ScanStore interface {
	Insert(ctx context.Context, scan *models.ScanRecord) error
	GetByID(ctx context.Context, id int64) (*models.ScanRecord, error)
	GetHistory(ctx context.Context, limit int) ([]models.ScanRecord, error)
}

// ScanService runs an analysis and persists the outcome as an immutable
// scan record, and serves scan reads.
type ScanService struct {
	analysis *AnalysisService
	scanRepo ScanStore
}

// NewScanService constructs a ScanService.
func NewScanService(analysis *AnalysisService, scanRepo ScanStore) *ScanService {
	return &ScanService{analysis: analysis, scanRepo: scanRepo}
}

// SaveScan analyzes the barcode for the city and persists one scan row.
// The stored impact tier and disposal action come straight from the fixed
// enumerations; no free-form values reach the database.
func (s *ScanService) SaveScan(ctx context.Context, barcode, city string) (*models.ScanRecord, *models.AnalysisResult, error) {
	result, err := s.analysis.Analyze(ctx, barcode, city)
	if err != nil {
		return nil, nil, err
	}

	scan := &models.ScanRecord{
		ProductName:  result.ProductName,
		Barcode:      result.Barcode,
		City:         result.City,
		ImpactScore:  result.ImpactScore,
		DisposalType: result.DisposalType,
		CO2Estimate:  result.CO2Estimate,
	}
	if err := s.scanRepo.Insert(ctx, scan); err != nil {
		return nil, nil, fmt.Errorf("failed to persist scan: %w", err)
	}
	return scan, result, nil
}

// GetHistory returns the most recent scans, newest first.
func (s *ScanService) GetHistory(ctx context.Context, limit int) ([]models.ScanRecord, error) {
	return s.scanRepo.GetHistory(ctx, limit)
}

// GetScan returns one scan by id.
func (s *ScanService) GetScan(ctx context.Context, id int64) (*models.ScanRecord, error) {
	scan, err := s.scanRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrScanNotFound
		}
		return nil, err
	}
	return scan, nil
}
