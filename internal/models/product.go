package models

import "strings"

// ProductRecord is the normalized product metadata consumed by the
// classifier. It is read-only input sourced from an external lookup;
// absent fields are represented as empty strings or nil slices.
type ProductRecord struct {
	Name            string   `json:"name"`
	ImageURL        string   `json:"image_url,omitempty"`
	CategoryTags    []string `json:"category_tags,omitempty"`
	LabelTags       []string `json:"label_tags,omitempty"`
	PackagingTags   []string `json:"packaging_tags,omitempty"`
	PackagingRaw    string   `json:"packaging_raw,omitempty"`
	IngredientsText string   `json:"ingredients_text,omitempty"`
	NovaGroup       string   `json:"nova_group,omitempty"`
}

// PackagingText joins packaging tags and the raw packaging string into the
// free-text blob used for disposal matching.
func (p ProductRecord) PackagingText() string {
	parts := append(append([]string{}, p.PackagingTags...), p.PackagingRaw)
	return strings.TrimSpace(strings.Join(parts, " "))
}
