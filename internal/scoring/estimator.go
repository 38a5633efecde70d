package scoring

import (
	"fmt"
	"strings"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
)

// EstimateCO2 maps an impact tier to its mocked CO2 estimate in kg CO2e.
// Unknown tiers fall back to the Medium constant.
func EstimateCO2(tier models.ImpactTier) float64 {
	return tier.CO2()
}

// SuggestAlternative returns a lower-impact suggestion for the product,
// templated by tier. A blank product name becomes "this product".
func SuggestAlternative(tier models.ImpactTier, productName string) string {
	name := strings.TrimSpace(productName)
	if name == "" {
		name = "this product"
	}
	switch tier {
	case models.TierHigh:
		return fmt.Sprintf("Try a plant-based version of %s and choose minimal packaging.", name)
	case models.TierMedium:
		return fmt.Sprintf("Consider a less-processed or refill/bulk alternative to %s.", name)
	default:
		return fmt.Sprintf("%s is a lower-impact choice. Prioritize local sourcing when possible.", name)
	}
}
