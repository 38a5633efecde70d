package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/ecoscanhq/ecoscan-api/internal/models"
	"github.com/ecoscanhq/ecoscan-api/internal/repository"
)

const (
	scoreWindowDays = 7
	trendWindowDays = 30
)

// AnalyticsSummary is the dashboard payload assembled from the stored scans.
type AnalyticsSummary struct {
	TotalScans         int                  `json:"total_scans"`
	TotalCO2           float64              `json:"total_co2"`
	EnvironmentalScore int                  `json:"environmental_score"`
	WeeklyCO2          []models.DailyCO2    `json:"weekly_co2"`
	ImpactDistribution []models.ImpactCount `json:"impact_distribution"`
	Trend              []models.DailyTrend  `json:"trend"`
	CurrentStreak      int                  `json:"current_streak"`
}

// AnalyticsService assembles aggregate metrics over the scan history.
type AnalyticsService struct {
	scanRepo *repository.ScanRepository
}

// NewAnalyticsService constructs an AnalyticsService.
func NewAnalyticsService(scanRepo *repository.ScanRepository) *AnalyticsService {
	return &AnalyticsService{scanRepo: scanRepo}
}

// Dashboard returns totals, the 7-day environmental score, weekly CO2,
// impact distribution, the 30-day trend and the current daily streak.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*AnalyticsSummary, error) {
	totalScans, err := s.scanRepo.CountScans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count scans: %w", err)
	}

	totalCO2, err := s.scanRepo.TotalCO2(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to sum co2: %w", err)
	}

	score, err := s.scanRepo.WeeklyImpactPoints(ctx, scoreWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute environmental score: %w", err)
	}

	weekly, err := s.scanRepo.WeeklyCO2Series(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load weekly co2 series: %w", err)
	}

	distribution, err := s.scanRepo.ImpactDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load impact distribution: %w", err)
	}

	trend, err := s.scanRepo.TrendLine(ctx, trendWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load trend line: %w", err)
	}

	days, err := s.scanRepo.ScanDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan days: %w", err)
	}

	return &AnalyticsSummary{
		TotalScans:         totalScans,
		TotalCO2:           round2(totalCO2),
		EnvironmentalScore: score,
		WeeklyCO2:          weekly,
		ImpactDistribution: distribution,
		Trend:              trend,
		CurrentStreak:      computeStreak(days, time.Now().UTC()),
	}, nil
}

// computeStreak counts consecutive scan days ending today. days must be
// formatted YYYY-MM-DD; order does not matter.
func computeStreak(days []string, today time.Time) int {
	daySet := make(map[string]struct{}, len(days))
	for _, d := range days {
		daySet[d] = struct{}{}
	}

	streak := 0
	cursor := today
	for {
		if _, ok := daySet[cursor.Format("2006-01-02")]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
