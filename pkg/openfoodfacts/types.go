package openfoodfacts

import "encoding/json"

// productEnvelope is the Open Food Facts v2 product response wrapper.
// status is 1 when the barcode is known, 0 otherwise.
type productEnvelope struct {
	Status  int      `json:"status"`
	Product *Product `json:"product"`
}

// Product carries the subset of Open Food Facts product fields the
// classifier and disposal resolver consume. Everything else in the payload
// is ignored.
type Product struct {
	ProductName     string      `json:"product_name"`
	ProductNameEn   string      `json:"product_name_en"`
	ImageURL        string      `json:"image_url"`
	CategoriesTags  []string    `json:"categories_tags"`
	LabelsTags      []string    `json:"labels_tags"`
	PackagingTags   []string    `json:"packaging_tags"`
	Packaging       string      `json:"packaging"`
	IngredientsText string      `json:"ingredients_text"`
	NovaGroup       json.Number `json:"nova_group"`
}

// Name returns the best available product name, falling back to the
// English name when the localized one is missing.
func (p *Product) Name() string {
	if p.ProductName != "" {
		return p.ProductName
	}
	return p.ProductNameEn
}
