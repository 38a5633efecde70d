package disposal

import (
	"fmt"
	"strings"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// MaterialUnknown is the sentinel material when no known substring matches.
const MaterialUnknown = "unknown"

// knownMaterials is checked in order; the first substring match wins.
var knownMaterials = []string{
	"plastic bottle",
	"glass bottle",
	"greasy cardboard",
}

// supportedCities preserves the presentation order of the city selector.
var supportedCities = []string{"San Francisco", "Chicago"}

// cityRules maps city -> material -> action. The two cities currently carry
// identical rules; they are kept as separate tables so per-city divergence
// is a data edit, not a resolver change.
var cityRules = map[string]map[string]models.DisposalAction{
	"San Francisco": {
		"plastic bottle":   models.ActionRecycle,
		"glass bottle":     models.ActionRecycle,
		"greasy cardboard": models.ActionTrash,
	},
	"Chicago": {
		"plastic bottle":   models.ActionRecycle,
		"glass bottle":     models.ActionRecycle,
		"greasy cardboard": models.ActionTrash,
	},
}

// Decision is the resolved disposal guidance for one packaging description.
type Decision struct {
	City     string                `json:"city"`
	Material string                `json:"material"`
	Action   models.DisposalAction `json:"disposal_type"`
	Icon     string                `json:"icon"`
	Detail   string                `json:"detail"`
}

// SupportedCities returns the fixed set of cities with disposal rules.
func SupportedCities() []string {
	cities := make([]string, len(supportedCities))
	copy(cities, supportedCities)
	return cities
}

// IsSupported reports whether the city has a disposal table.
func IsSupported(city string) bool {
	_, ok := cityRules[city]
	return ok
}

// DetectMaterial extracts a simplified material type from free-text
// packaging, or MaterialUnknown when nothing matches.
func DetectMaterial(packagingText string) string {
	text := strings.ToLower(packagingText)
	for _, material := range knownMaterials {
		if strings.Contains(text, material) {
			return material
		}
	}
	return MaterialUnknown
}

// Resolve maps a city and packaging description to a disposal decision.
// Unsupported cities are a validation error; an unmatched material in a
// supported city resolves to Check Local Guidelines.
func Resolve(city, packagingText string) (Decision, error) {
	rulesForCity, ok := cityRules[city]
	if !ok {
		return Decision{}, fmt.Errorf("%w: %q", utils.ErrUnsupportedCity, city)
	}

	material := DetectMaterial(packagingText)
	action, ok := rulesForCity[material]
	if !ok {
		action = models.ActionCheckLocal
	}

	detail := "Material unclear. Follow local sorting guidelines."
	if material != MaterialUnknown {
		detail = fmt.Sprintf("%s -> %s", titleCase(material), action)
	}

	return Decision{
		City:     city,
		Material: material,
		Action:   action,
		Icon:     action.Icon(),
		Detail:   detail,
	}, nil
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
