package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL is the public Open Food Facts API host.
	DefaultBaseURL = "https://world.openfoodfacts.org"

	userAgent = "EcoScan/1.0 (+https://github.com/ecoscanhq/ecoscan-api)"
)

// ErrProductNotFound is returned when Open Food Facts has no product for
// the requested barcode.
var ErrProductNotFound = errors.New("product not found")

// Client is a minimal HTTP client for the Open Food Facts read API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	debug      bool
}

// NewClient constructs a new Open Food Facts client. An empty baseURL
// selects the public API host.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		debug:      os.Getenv("ENV") == "development",
	}
}

// GetProduct fetches product metadata by barcode. It returns
// ErrProductNotFound when the barcode is unknown and a transport or
// server error otherwise; callers decide whether to treat those as a
// lookup outage.
func (c *Client) GetProduct(ctx context.Context, barcode string) (*Product, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, barcode)

	if c.debug {
		log.Debug().Str("endpoint", endpoint).Msg("[OFF] Outgoing request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open food facts request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// The API answers 404 with a status=0 body for unknown barcodes; treat
	// both shapes as not found.
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open food facts returned status %d", resp.StatusCode)
	}

	var envelope productEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if envelope.Status != 1 || envelope.Product == nil {
		return nil, ErrProductNotFound
	}

	if c.debug {
		log.Debug().Str("barcode", barcode).Str("product", envelope.Product.Name()).Msg("[OFF] Product resolved")
	}

	return envelope.Product, nil
}
