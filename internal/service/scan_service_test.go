package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
	"github.com/ecoscanhq/ecoscan-api/pkg/openfoodfacts"
)

func beefProduct() *openfoodfacts.Product {
	return &openfoodfacts.Product{
		ProductName:    "Ground Beef 500g",
		CategoriesTags: []string{"en:meats"},
		Packaging:      "Plastic bottle",
	}
}

// fakeScanStore is an in-memory ScanStore keyed by assigned id.
type fakeScanStore struct {
	rows      map[int64]models.ScanRecord
	nextID    int64
	insertErr error
}

func newFakeScanStore() *fakeScanStore {
	return &fakeScanStore{rows: make(map[int64]models.ScanRecord), nextID: 1}
}

func (f *fakeScanStore) Insert(ctx context.Context, scan *models.ScanRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	scan.ID = f.nextID
	scan.Timestamp = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	f.rows[scan.ID] = *scan
	f.nextID++
	return nil
}

func (f *fakeScanStore) GetByID(ctx context.Context, id int64) (*models.ScanRecord, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &row, nil
}

func (f *fakeScanStore) GetHistory(ctx context.Context, limit int) ([]models.ScanRecord, error) {
	var scans []models.ScanRecord
	for _, row := range f.rows {
		scans = append(scans, row)
	}
	return scans, nil
}

func TestSaveScan(t *testing.T) {
	t.Run("stored row mirrors the analysis result", func(t *testing.T) {
		store := newFakeScanStore()
		lookup := &stubLookup{product: beefProduct()}
		svc := NewScanService(NewAnalysisService(lookup, newMemoryCache()), store)

		scan, result, err := svc.SaveScan(context.Background(), "737628064502", "San Francisco")
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, result.ProductName, scan.ProductName)
		assert.Equal(t, result.Barcode, scan.Barcode)
		assert.Equal(t, result.City, scan.City)
		assert.Equal(t, result.ImpactScore, scan.ImpactScore)
		assert.Equal(t, result.DisposalType, scan.DisposalType)
		assert.Equal(t, result.CO2Estimate, scan.CO2Estimate)

		assert.True(t, scan.ImpactScore.Valid())
		assert.True(t, scan.DisposalType.Valid())
		assert.NotZero(t, scan.ID)
		assert.False(t, scan.Timestamp.IsZero())
		assert.Equal(t, *scan, store.rows[scan.ID])
	})

	t.Run("analysis failure persists nothing", func(t *testing.T) {
		store := newFakeScanStore()
		lookup := &stubLookup{err: errors.New("connection refused")}
		svc := NewScanService(NewAnalysisService(lookup, newMemoryCache()), store)

		_, _, err := svc.SaveScan(context.Background(), "737628064502", "Chicago")
		assert.ErrorIs(t, err, utils.ErrLookupFailed)
		assert.Empty(t, store.rows)
	})

	t.Run("insert failure surfaces wrapped", func(t *testing.T) {
		store := newFakeScanStore()
		store.insertErr = errors.New("connection reset")
		lookup := &stubLookup{product: beefProduct()}
		svc := NewScanService(NewAnalysisService(lookup, newMemoryCache()), store)

		_, _, err := svc.SaveScan(context.Background(), "737628064502", "Chicago")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to persist scan")
	})
}

func TestGetScan(t *testing.T) {
	t.Run("round-trips a saved scan", func(t *testing.T) {
		store := newFakeScanStore()
		lookup := &stubLookup{product: beefProduct()}
		svc := NewScanService(NewAnalysisService(lookup, newMemoryCache()), store)

		saved, _, err := svc.SaveScan(context.Background(), "737628064502", "San Francisco")
		require.NoError(t, err)

		got, err := svc.GetScan(context.Background(), saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, got)
	})

	t.Run("unknown id maps to scan not found", func(t *testing.T) {
		svc := NewScanService(nil, newFakeScanStore())

		_, err := svc.GetScan(context.Background(), 999)
		assert.ErrorIs(t, err, utils.ErrScanNotFound)
	})
}
