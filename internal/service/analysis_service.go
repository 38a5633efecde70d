package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ecoscanhq/ecoscan-api/internal/disposal"
	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/scoring"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
	"github.com/ecoscanhq/ecoscan-api/pkg/openfoodfacts"
)

// ProductLookup resolves a barcode into product metadata. Implemented by
// the Open Food Facts client.
type ProductLookup interface {
	GetProduct(ctx context.Context, barcode string) (*openfoodfacts.Product, error)
}

// ProductCache stores normalized product records keyed by barcode.
type ProductCache interface {
	Get(ctx context.Context, barcode string) (*models.ProductRecord, error)
	Set(ctx context.Context, barcode string, product *models.ProductRecord) error
}

// AnalysisService runs the scan decision pipeline: lookup, impact
// classification, disposal resolution, CO2 estimate, and alternative
// suggestion. It produces either a full AnalysisResult or an error;
// there are no partial results and the lookup is never retried here.
type AnalysisService struct {
	lookup ProductLookup
	cache  ProductCache
}

// NewAnalysisService constructs an AnalysisService.
func NewAnalysisService(lookup ProductLookup, cache ProductCache) *AnalysisService {
	return &AnalysisService{lookup: lookup, cache: cache}
}

// Analyze validates the city, resolves the barcode into a product record
// (cache-first) and assembles the combined analysis payload.
func (s *AnalysisService) Analyze(ctx context.Context, barcode, city string) (*models.AnalysisResult, error) {
	if !disposal.IsSupported(city) {
		return nil, fmt.Errorf("%w: %q", utils.ErrUnsupportedCity, city)
	}

	record, err := s.fetchProduct(ctx, barcode)
	if err != nil {
		return nil, err
	}

	tier, reason := scoring.Classify(*record)
	packagingText := record.PackagingText()

	decision, err := disposal.Resolve(city, packagingText)
	if err != nil {
		// City was validated above; this only triggers if the supported
		// set and the rule table ever drift apart.
		return nil, err
	}

	productName := record.Name
	if productName == "" {
		productName = "Unknown Product"
	}

	return &models.AnalysisResult{
		Barcode:              barcode,
		City:                 city,
		ProductName:          productName,
		ProductImage:         record.ImageURL,
		ImpactScore:          tier,
		ImpactLabel:          tier.Label(),
		ImpactReason:         reason,
		CO2Estimate:          scoring.EstimateCO2(tier),
		DisposalMaterial:     decision.Material,
		DisposalType:         decision.Action,
		DisposalDetail:       decision.Detail,
		DisposalIcon:         decision.Icon,
		SuggestedAlternative: scoring.SuggestAlternative(tier, productName),
		PackagingText:        packagingText,
	}, nil
}

// fetchProduct consults the cache before going to the external lookup.
// Cache failures are treated as misses; lookup failures surface as
// product-not-found or lookup-failed per the error taxonomy.
func (s *AnalysisService) fetchProduct(ctx context.Context, barcode string) (*models.ProductRecord, error) {
	if cached, err := s.cache.Get(ctx, barcode); err == nil {
		return cached, nil
	}

	product, err := s.lookup.GetProduct(ctx, barcode)
	if err != nil {
		if errors.Is(err, openfoodfacts.ErrProductNotFound) {
			return nil, fmt.Errorf("%w: %s", utils.ErrProductNotFound, barcode)
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrLookupFailed, err)
	}

	record := NewProductRecord(product)
	if err := s.cache.Set(ctx, barcode, record); err != nil {
		log.Warn().Err(err).Str("barcode", barcode).Msg("Failed to cache product record")
	}
	return record, nil
}

// NewProductRecord normalizes an Open Food Facts payload into the
// classifier's input shape. Absent fields become empty values.
func NewProductRecord(p *openfoodfacts.Product) *models.ProductRecord {
	return &models.ProductRecord{
		Name:            p.Name(),
		ImageURL:        p.ImageURL,
		CategoryTags:    p.CategoriesTags,
		LabelTags:       p.LabelsTags,
		PackagingTags:   p.PackagingTags,
		PackagingRaw:    p.Packaging,
		IngredientsText: p.IngredientsText,
		NovaGroup:       p.NovaGroup.String(),
	}
}
