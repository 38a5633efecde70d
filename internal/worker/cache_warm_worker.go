package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ecoscanhq/ecoscan-api/internal/service"
)

// BarcodeSource lists recently scanned barcodes. Implemented by
// repository.ScanRepository.
type BarcodeSource interface {
	RecentBarcodes(ctx context.Context, limit int) ([]string, error)
}

// CacheWarmWorker periodically re-fetches the most recently scanned
// barcodes and refreshes their cache entries so repeat scans stay warm
// after the TTL lapses. Failures are logged and never fatal.
type CacheWarmWorker struct {
	scanRepo BarcodeSource
	lookup   service.ProductLookup
	cache    service.ProductCache
	interval time.Duration
	limit    int
}

// NewCacheWarmWorker constructs a CacheWarmWorker.
func NewCacheWarmWorker(
	scanRepo BarcodeSource,
	lookup service.ProductLookup,
	cache service.ProductCache,
	interval time.Duration,
	limit int,
) *CacheWarmWorker {
	return &CacheWarmWorker{
		scanRepo: scanRepo,
		lookup:   lookup,
		cache:    cache,
		interval: interval,
		limit:    limit,
	}
}

// Start begins the periodic warm loop until context is canceled.
func (w *CacheWarmWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Int("limit", w.limit).Msg("Starting cache warm worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Cache warm worker stopped")
			return
		}
	}
}

func (w *CacheWarmWorker) run(ctx context.Context) {
	barcodes, err := w.scanRepo.RecentBarcodes(ctx, w.limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load recent barcodes")
		return
	}
	if len(barcodes) == 0 {
		return
	}
	log.Info().Int("count", len(barcodes)).Msg("Warming product cache")

	for _, barcode := range barcodes {
		// Respect cancellation between items
		select {
		case <-ctx.Done():
			return
		default:
			w.warmBarcode(ctx, barcode)
		}
	}
}

func (w *CacheWarmWorker) warmBarcode(ctx context.Context, barcode string) {
	product, err := w.lookup.GetProduct(ctx, barcode)
	if err != nil {
		log.Warn().Err(err).Str("barcode", barcode).Msg("Cache warm lookup failed")
		return
	}
	if err := w.cache.Set(ctx, barcode, service.NewProductRecord(product)); err != nil {
		log.Warn().Err(err).Str("barcode", barcode).Msg("Failed to refresh cached product")
	}
}
