package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
	"github.com/ecoscanhq/ecoscan-api/pkg/openfoodfacts"
)

// stubLookup returns a canned product or error and counts invocations.
type stubLookup struct {
	product *openfoodfacts.Product
	err     error
	calls   int
}

func (s *stubLookup) GetProduct(ctx context.Context, barcode string) (*openfoodfacts.Product, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

// memoryCache is an in-memory ProductCache for tests.
type memoryCache struct {
	entries map[string]*models.ProductRecord
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]*models.ProductRecord)}
}

func (m *memoryCache) Get(ctx context.Context, barcode string) (*models.ProductRecord, error) {
	if p, ok := m.entries[barcode]; ok {
		return p, nil
	}
	return nil, errors.New("cache miss")
}

func (m *memoryCache) Set(ctx context.Context, barcode string, product *models.ProductRecord) error {
	m.entries[barcode] = product
	return nil
}

func TestAnalyze(t *testing.T) {
	t.Run("assembles full result for a meat product", func(t *testing.T) {
		lookup := &stubLookup{product: &openfoodfacts.Product{
			ProductName:    "Ground Beef 500g",
			ImageURL:       "https://images.example/beef.jpg",
			CategoriesTags: []string{"en:meats", "en:beef"},
			Packaging:      "Plastic bottle",
		}}
		svc := NewAnalysisService(lookup, newMemoryCache())

		result, err := svc.Analyze(context.Background(), "737628064502", "San Francisco")
		require.NoError(t, err)

		assert.Equal(t, "737628064502", result.Barcode)
		assert.Equal(t, "San Francisco", result.City)
		assert.Equal(t, "Ground Beef 500g", result.ProductName)
		assert.Equal(t, "https://images.example/beef.jpg", result.ProductImage)
		assert.Equal(t, models.TierHigh, result.ImpactScore)
		assert.Equal(t, "High Impact", result.ImpactLabel)
		assert.Equal(t, 5.0, result.CO2Estimate)
		assert.Equal(t, "plastic bottle", result.DisposalMaterial)
		assert.Equal(t, models.ActionRecycle, result.DisposalType)
		assert.Equal(t, "Plastic Bottle -> Recycle", result.DisposalDetail)
		assert.Equal(t, "♻", result.DisposalIcon)
		assert.Contains(t, result.SuggestedAlternative, "Ground Beef 500g")
		assert.Equal(t, "Plastic bottle", result.PackagingText)
	})

	t.Run("unsupported city rejected before the lookup runs", func(t *testing.T) {
		lookup := &stubLookup{product: &openfoodfacts.Product{ProductName: "Anything"}}
		svc := NewAnalysisService(lookup, newMemoryCache())

		_, err := svc.Analyze(context.Background(), "737628064502", "Nowhere")
		assert.ErrorIs(t, err, utils.ErrUnsupportedCity)
		assert.Zero(t, lookup.calls)
	})

	t.Run("unknown barcode maps to product not found", func(t *testing.T) {
		lookup := &stubLookup{err: openfoodfacts.ErrProductNotFound}
		svc := NewAnalysisService(lookup, newMemoryCache())

		_, err := svc.Analyze(context.Background(), "00000000000", "Chicago")
		assert.ErrorIs(t, err, utils.ErrProductNotFound)
	})

	t.Run("transport failure maps to lookup failed", func(t *testing.T) {
		lookup := &stubLookup{err: errors.New("connection refused")}
		svc := NewAnalysisService(lookup, newMemoryCache())

		_, err := svc.Analyze(context.Background(), "737628064502", "Chicago")
		assert.ErrorIs(t, err, utils.ErrLookupFailed)
	})

	t.Run("blank product name defaults to Unknown Product", func(t *testing.T) {
		lookup := &stubLookup{product: &openfoodfacts.Product{}}
		svc := NewAnalysisService(lookup, newMemoryCache())

		result, err := svc.Analyze(context.Background(), "737628064502", "Chicago")
		require.NoError(t, err)
		assert.Equal(t, "Unknown Product", result.ProductName)
		assert.Contains(t, result.SuggestedAlternative, "Unknown Product")
	})
}

func TestAnalyzeCaching(t *testing.T) {
	t.Run("cache hit skips the external lookup", func(t *testing.T) {
		cache := newMemoryCache()
		cache.entries["737628064502"] = &models.ProductRecord{
			Name:      "Cached Oat Drink",
			LabelTags: []string{"en:vegan"},
		}
		lookup := &stubLookup{err: errors.New("should not be called")}
		svc := NewAnalysisService(lookup, cache)

		result, err := svc.Analyze(context.Background(), "737628064502", "Chicago")
		require.NoError(t, err)
		assert.Equal(t, "Cached Oat Drink", result.ProductName)
		assert.Equal(t, models.TierLow, result.ImpactScore)
		assert.Zero(t, lookup.calls)
	})

	t.Run("successful lookup populates the cache", func(t *testing.T) {
		cache := newMemoryCache()
		lookup := &stubLookup{product: &openfoodfacts.Product{ProductName: "Oat Drink"}}
		svc := NewAnalysisService(lookup, cache)

		_, err := svc.Analyze(context.Background(), "123456789", "Chicago")
		require.NoError(t, err)
		require.Contains(t, cache.entries, "123456789")
		assert.Equal(t, "Oat Drink", cache.entries["123456789"].Name)

		// Second call is served from cache.
		_, err = svc.Analyze(context.Background(), "123456789", "Chicago")
		require.NoError(t, err)
		assert.Equal(t, 1, lookup.calls)
	})
}
