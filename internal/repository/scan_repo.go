package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
)

// ScanRepository handles database operations for persisted scans.
// The scans table is append-only: rows are inserted once and never
// updated or deleted.
type ScanRepository struct {
	db *sqlx.DB
}

// NewScanRepository creates a new ScanRepository.
func NewScanRepository(db *sqlx.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Insert stores a new scan row. The database assigns id and timestamp,
// which are written back into the record.
func (r *ScanRepository) Insert(ctx context.Context, scan *models.ScanRecord) error {
	query := `INSERT INTO scans (product_name, barcode, city, impact_score, disposal_type, co2_estimate)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, timestamp`

	return r.db.QueryRowContext(ctx, query,
		scan.ProductName, scan.Barcode, scan.City, scan.ImpactScore, scan.DisposalType, scan.CO2Estimate,
	).Scan(&scan.ID, &scan.Timestamp)
}

// GetByID returns one scan row by id.
func (r *ScanRepository) GetByID(ctx context.Context, id int64) (*models.ScanRecord, error) {
	query := `SELECT id, product_name, barcode, city, impact_score, disposal_type, co2_estimate, timestamp
	          FROM scans WHERE id = $1`

	var scan models.ScanRecord
	if err := r.db.GetContext(ctx, &scan, query, id); err != nil {
		return nil, err
	}
	return &scan, nil
}

// GetHistory returns the most recent scans, newest first.
func (r *ScanRepository) GetHistory(ctx context.Context, limit int) ([]models.ScanRecord, error) {
	query := `SELECT id, product_name, barcode, city, impact_score, disposal_type, co2_estimate, timestamp
	          FROM scans
	          ORDER BY timestamp DESC, id DESC
	          LIMIT $1`

	var scans []models.ScanRecord
	if err := r.db.SelectContext(ctx, &scans, query, limit); err != nil {
		return nil, err
	}
	return scans, nil
}

// CountScans returns the total number of persisted scans.
func (r *ScanRepository) CountScans(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scans`).Scan(&count)
	return count, err
}

// TotalCO2 returns the sum of all CO2 estimates.
func (r *ScanRepository) TotalCO2(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(co2_estimate), 0) FROM scans`).Scan(&total)
	return total, err
}

// WeeklyImpactPoints returns the environmental score over the last N days.
// Points per tier: Low=3, Medium=2, High=1; unrecognized values count as
// Medium, matching the classifier's default policy.
func (r *ScanRepository) WeeklyImpactPoints(ctx context.Context, days int) (int, error) {
	query := `SELECT COALESCE(SUM(CASE impact_score
	                 WHEN 'Low' THEN 3
	                 WHEN 'Medium' THEN 2
	                 WHEN 'High' THEN 1
	                 ELSE 2 END), 0)
	          FROM scans
	          WHERE timestamp >= NOW() - ($1 * INTERVAL '1 day')`

	var points int
	err := r.db.QueryRowContext(ctx, query, days).Scan(&points)
	return points, err
}

// WeeklyCO2Series returns daily CO2 totals for the last 7 days. Days are
// bucketed in UTC so they line up with the streak calculation.
func (r *ScanRepository) WeeklyCO2Series(ctx context.Context) ([]models.DailyCO2, error) {
	query := `SELECT to_char((timestamp AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day,
	                 ROUND(COALESCE(SUM(co2_estimate), 0)::numeric, 2)::float8 AS co2
	          FROM scans
	          WHERE timestamp >= NOW() - INTERVAL '6 days'
	          GROUP BY (timestamp AT TIME ZONE 'UTC')::date
	          ORDER BY day ASC`

	var series []models.DailyCO2
	if err := r.db.SelectContext(ctx, &series, query); err != nil {
		return nil, err
	}
	return series, nil
}

// ImpactDistribution returns scan counts grouped by impact tier,
// most frequent first.
func (r *ScanRepository) ImpactDistribution(ctx context.Context) ([]models.ImpactCount, error) {
	query := `SELECT impact_score, COUNT(*) AS count
	          FROM scans
	          GROUP BY impact_score
	          ORDER BY count DESC`

	var distribution []models.ImpactCount
	if err := r.db.SelectContext(ctx, &distribution, query); err != nil {
		return nil, err
	}
	return distribution, nil
}

// TrendLine returns the daily CO2 and scan-volume trend over the last
// N days (inclusive of today).
func (r *ScanRepository) TrendLine(ctx context.Context, days int) ([]models.DailyTrend, error) {
	query := `SELECT to_char((timestamp AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day,
	                 ROUND(COALESCE(SUM(co2_estimate), 0)::numeric, 2)::float8 AS co2,
	                 COUNT(*) AS scans
	          FROM scans
	          WHERE timestamp >= NOW() - (($1 - 1) * INTERVAL '1 day')
	          GROUP BY (timestamp AT TIME ZONE 'UTC')::date
	          ORDER BY day ASC`

	var trend []models.DailyTrend
	if err := r.db.SelectContext(ctx, &trend, query, days); err != nil {
		return nil, err
	}
	return trend, nil
}

// ScanDays returns the distinct days with at least one scan, newest first,
// formatted as YYYY-MM-DD. Days are bucketed in UTC to match the streak
// walk over time.Now().UTC(); streak calculation happens in the service
// layer.
func (r *ScanRepository) ScanDays(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT to_char((timestamp AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS day
	          FROM scans
	          ORDER BY day DESC`

	var days []string
	if err := r.db.SelectContext(ctx, &days, query); err != nil {
		return nil, err
	}
	return days, nil
}

// GetMonthlyScans returns all scans within the given calendar month,
// oldest first, for reporting export.
func (r *ScanRepository) GetMonthlyScans(ctx context.Context, year, month int) ([]models.ScanRecord, error) {
	query := `SELECT id, product_name, barcode, city, impact_score, disposal_type, co2_estimate, timestamp
	          FROM scans
	          WHERE timestamp >= make_date($1, $2, 1)
	            AND timestamp < make_date($1, $2, 1) + INTERVAL '1 month'
	          ORDER BY timestamp ASC`

	var scans []models.ScanRecord
	if err := r.db.SelectContext(ctx, &scans, query, year, month); err != nil {
		return nil, err
	}
	return scans, nil
}

// RecentBarcodes returns the most recently scanned distinct barcodes, used
// by the cache warm worker.
func (r *ScanRepository) RecentBarcodes(ctx context.Context, limit int) ([]string, error) {
	query := `SELECT barcode
	          FROM scans
	          GROUP BY barcode
	          ORDER BY MAX(timestamp) DESC
	          LIMIT $1`

	var barcodes []string
	if err := r.db.SelectContext(ctx, &barcodes, query, limit); err != nil {
		return nil, err
	}
	return barcodes, nil
}
