package scoring

import (
	"strings"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
)

// signals holds the lower-cased text blobs a rule predicate can inspect.
type signals struct {
	combined  string
	category  string
	packaging string
	novaGroup string
}

// rule pairs a predicate with the tier and rationale it assigns.
type rule struct {
	match     func(s signals) bool
	tier      models.ImpactTier
	rationale string
}

// rules is evaluated top to bottom; the first match wins. Order is part of
// the contract: meat detection outranks processing level, which outranks
// plant-based and packaging indicators.
var rules = []rule{
	{
		match: func(s signals) bool {
			return strings.Contains(s.combined, "beef") || strings.Contains(s.combined, "meat")
		},
		tier:      models.TierHigh,
		rationale: "Category indicates meat-heavy product (higher footprint).",
	},
	{
		match: func(s signals) bool {
			return s.novaGroup == "4" || strings.Contains(s.category, "packaged-foods")
		},
		tier:      models.TierMedium,
		rationale: "Likely ultra-processed packaged food.",
	},
	{
		match: func(s signals) bool {
			return containsAny(s.combined, "plant", "vegan", "vegetarian", "plant-based")
		},
		tier:      models.TierLow,
		rationale: "Plant-based indicators found.",
	},
	{
		match: func(s signals) bool {
			return containsAny(s.packaging, "bulk", "recyclable", "paper")
		},
		tier:      models.TierLow,
		rationale: "Lower-impact packaging indicators found.",
	},
}

// defaultRationale is returned when no rule matches, including for
// completely empty records. The Medium fallback is deliberate policy.
const defaultRationale = "Insufficient certainty; assigned medium impact."

// Classify assigns an impact tier and rationale to a product record.
// It is a pure function: absent fields are treated as empty strings and
// the same input always yields the same result.
func Classify(product models.ProductRecord) (models.ImpactTier, string) {
	category := normalize(product.CategoryTags)
	labels := normalize(product.LabelTags)
	packaging := normalize(product.PackagingTags)
	name := strings.ToLower(product.Name)
	ingredients := strings.ToLower(product.IngredientsText)

	s := signals{
		combined:  strings.Join([]string{category, labels, packaging, name, ingredients}, " "),
		category:  category,
		packaging: packaging,
		novaGroup: strings.TrimSpace(product.NovaGroup),
	}

	for _, r := range rules {
		if r.match(s) {
			return r.tier, r.rationale
		}
	}
	return models.TierMedium, defaultRationale
}

func normalize(values []string) string {
	return strings.ToLower(strings.Join(values, " "))
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
