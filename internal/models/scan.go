package models

import "time"

// ScanRecord is one persisted, append-only scan. Rows are created once and
// never updated or deleted; the timestamp is assigned by the database.
type ScanRecord struct {
	ID           int64          `db:"id" json:"id"`
	ProductName  string         `db:"product_name" json:"product_name"`
	Barcode      string         `db:"barcode" json:"barcode"`
	City         string         `db:"city" json:"city"`
	ImpactScore  ImpactTier     `db:"impact_score" json:"impact_score"`
	DisposalType DisposalAction `db:"disposal_type" json:"disposal_type"`
	CO2Estimate  float64        `db:"co2_estimate" json:"co2_estimate"`
	Timestamp    time.Time      `db:"timestamp" json:"timestamp"`
}

// AnalysisResult is the combined outcome of one analysis and the sole
// payload handed to persistence and presentation.
type AnalysisResult struct {
	Barcode              string         `json:"barcode"`
	City                 string         `json:"city"`
	ProductName          string         `json:"product_name"`
	ProductImage         string         `json:"product_image,omitempty"`
	ImpactScore          ImpactTier     `json:"impact_score"`
	ImpactLabel          string         `json:"impact_label"`
	ImpactReason         string         `json:"impact_reason"`
	CO2Estimate          float64        `json:"co2_estimate"`
	DisposalMaterial     string         `json:"disposal_material"`
	DisposalType         DisposalAction `json:"disposal_type"`
	DisposalDetail       string         `json:"disposal_detail"`
	DisposalIcon         string         `json:"disposal_icon"`
	SuggestedAlternative string         `json:"suggested_alternative"`
	PackagingText        string         `json:"packaging_text"`
}

// DailyCO2 is one day of aggregated CO2 estimates.
type DailyCO2 struct {
	Day string  `db:"day" json:"day"`
	CO2 float64 `db:"co2" json:"co2"`
}

// ImpactCount is the number of scans recorded for one impact tier.
type ImpactCount struct {
	ImpactScore ImpactTier `db:"impact_score" json:"impact_score"`
	Count       int        `db:"count" json:"count"`
}

// DailyTrend is one day of aggregated CO2 and scan volume.
type DailyTrend struct {
	Day   string  `db:"day" json:"day"`
	CO2   float64 `db:"co2" json:"co2"`
	Scans int     `db:"scans" json:"scans"`
}
