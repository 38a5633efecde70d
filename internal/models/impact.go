package models

// ImpactTier enumerates the coarse environmental classification of a product.
type ImpactTier string

const (
	TierLow    ImpactTier = "Low"
	TierMedium ImpactTier = "Medium"
	TierHigh   ImpactTier = "High"
)

// impactCO2 maps each tier to its mocked CO2 estimate in kg CO2e.
var impactCO2 = map[ImpactTier]float64{
	TierHigh:   5.0,
	TierMedium: 2.5,
	TierLow:    0.8,
}

// impactLabels maps each tier to its display label.
var impactLabels = map[ImpactTier]string{
	TierHigh:   "High Impact",
	TierMedium: "Medium Impact",
	TierLow:    "Low Impact",
}

// impactPoints maps each tier to its environmental score contribution.
// Lower-impact choices earn more points.
var impactPoints = map[ImpactTier]int{
	TierHigh:   1,
	TierMedium: 2,
	TierLow:    3,
}

// Valid reports whether t is one of the fixed tiers.
func (t ImpactTier) Valid() bool {
	_, ok := impactCO2[t]
	return ok
}

// Label returns the display label for the tier, defaulting to Medium Impact.
func (t ImpactTier) Label() string {
	if label, ok := impactLabels[t]; ok {
		return label
	}
	return impactLabels[TierMedium]
}

// CO2 returns the mocked CO2 estimate for the tier, defaulting to Medium.
func (t ImpactTier) CO2() float64 {
	if co2, ok := impactCO2[t]; ok {
		return co2
	}
	return impactCO2[TierMedium]
}

// Points returns the environmental score points for the tier, defaulting to Medium.
func (t ImpactTier) Points() int {
	if pts, ok := impactPoints[t]; ok {
		return pts
	}
	return impactPoints[TierMedium]
}
