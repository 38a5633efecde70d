package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
)

// ProductCache caches normalized product records by barcode so repeat scans
// of the same product skip the external lookup.
type ProductCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewProductCache creates a new ProductCache with the given entry TTL.
func NewProductCache(redis *RedisClient, ttl time.Duration) *ProductCache {
	return &ProductCache{redis: redis, ttl: ttl}
}

// key returns the Redis key for a barcode.
func (c *ProductCache) key(barcode string) string {
	return fmt.Sprintf("product:%s", barcode)
}

// Set stores a product record for the barcode with the configured TTL.
func (c *ProductCache) Set(ctx context.Context, barcode string, product *models.ProductRecord) error {
	jsonData, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product record: %w", err)
	}
	return c.redis.Set(ctx, c.key(barcode), string(jsonData), c.ttl)
}

// Get retrieves a cached product record by barcode. A cache miss surfaces
// as the underlying redis error; callers fall through to the live lookup.
func (c *ProductCache) Get(ctx context.Context, barcode string) (*models.ProductRecord, error) {
	jsonData, err := c.redis.Get(ctx, c.key(barcode))
	if err != nil {
		return nil, err
	}

	var product models.ProductRecord
	if err := json.Unmarshal([]byte(jsonData), &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product record: %w", err)
	}
	return &product, nil
}
