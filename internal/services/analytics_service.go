package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/paintops/damagecast/internal/cache"
	"github.com/paintops/damagecast/internal/models"
)

// Analytics defaults
const (
	defaultDealerLimit     = 20
	worstCombinationsLimit = 10
	defaultTrendDays       = 30
)

// TrendPeriods is the closed set of bucket granularities for trends.
var TrendPeriods = map[string]bool{
	"daily":   true,
	"weekly":  true,
	"monthly": true,
}

// AnalyticsStore is the aggregation surface the analytics service needs.
// Implementations group and sort in the database; the service only shapes
// and labels the rows.
type AnalyticsStore interface {
	SummaryStats(ctx context.Context, start, end *time.Time) (*models.AnalyticsSummary, error)
	DealerStats(ctx context.Context, limit int) ([]models.DealerAnalytics, error)
	WarehouseStats(ctx context.Context) ([]models.WarehouseAnalytics, error)
	TrendBuckets(ctx context.Context, period string, start, end time.Time) ([]models.TrendPoint, error)
	CombinationStats(ctx context.Context, limit int) ([]models.VehicleCombinationStat, error)
}

// AnalyticsService handles dashboard aggregation business logic
type AnalyticsService struct {
	store AnalyticsStore
	cache *cache.AnalyticsCache
}

// NewAnalyticsService creates a new AnalyticsService. cache may be nil to
// disable result caching.
func NewAnalyticsService(store AnalyticsStore, c *cache.AnalyticsCache) *AnalyticsService {
	return &AnalyticsService{store: store, cache: c}
}

// Summary aggregates all stored shipments, optionally bounded by dates.
func (s *AnalyticsService) Summary(ctx context.Context, start, end *time.Time) (*models.AnalyticsSummary, error) {
	defer TrackTime("AnalyticsSummary", time.Now())

	key := summaryKey(start, end)
	if s.cache != nil {
		if cached, ok := s.cache.GetSummary(key); ok {
			return cached, nil
		}
	}

	summary, err := s.store.SummaryStats(ctx, start, end)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetSummary(key, summary)
	}
	return summary, nil
}

func summaryKey(start, end *time.Time) string {
	const layout = "2006-01-02"
	from, to := "min", "max"
	if start != nil {
		from = start.Format(layout)
	}
	if end != nil {
		to = end.Format(layout)
	}
	return from + ".." + to
}

// Dealers returns per-dealer aggregates ranked by total loss.
func (s *AnalyticsService) Dealers(ctx context.Context, limit int) ([]models.DealerAnalytics, error) {
	defer TrackTime("AnalyticsDealers", time.Now())

	if limit <= 0 {
		limit = defaultDealerLimit
	}

	if s.cache != nil {
		if cached, ok := s.cache.GetDealers(limit); ok {
			return cached, nil
		}
	}

	rows, err := s.store.DealerStats(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].RiskCategory = riskCategory(rows[i].AverageDamageRate)
	}

	if s.cache != nil {
		s.cache.SetDealers(limit, rows)
	}
	return rows, nil
}

// Warehouses returns per-warehouse aggregates ranked by damage rate.
func (s *AnalyticsService) Warehouses(ctx context.Context) ([]models.WarehouseAnalytics, error) {
	defer TrackTime("AnalyticsWarehouses", time.Now())

	if s.cache != nil {
		if cached, ok := s.cache.GetWarehouses(); ok {
			return cached, nil
		}
	}

	rows, err := s.store.WarehouseStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetWarehouses(rows)
	}
	return rows, nil
}

// Trend buckets the damage rate over a trailing window of days and labels
// the direction of movement between the first and last buckets.
func (s *AnalyticsService) Trend(ctx context.Context, period string, days int) (*models.TrendAnalysis, error) {
	defer TrackTime("AnalyticsTrend", time.Now())

	if !TrendPeriods[period] {
		return nil, fmt.Errorf("%w: period must be daily, weekly or monthly", models.ErrValidation)
	}
	if days <= 0 {
		days = defaultTrendDays
	}

	key := fmt.Sprintf("damage_rate|%s|%d", period, days)
	if s.cache != nil {
		if cached, ok := s.cache.GetTrend(key); ok {
			return cached, nil
		}
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	points, err := s.store.TrendBuckets(ctx, period, start, end)
	if err != nil {
		return nil, err
	}

	trend := &models.TrendAnalysis{
		Metric:     "damage_rate",
		Period:     period,
		DataPoints: points,
	}
	trend.TrendDirection, trend.ChangePercentage = trendDirection(points)

	if s.cache != nil {
		s.cache.SetTrend(key, trend)
	}
	return trend, nil
}

// trendDirection compares the first and last buckets. Fewer than two buckets
// cannot support a direction.
func trendDirection(points []models.TrendPoint) (string, float64) {
	if len(points) < 2 {
		return "insufficient_data", 0
	}

	first := points[0].Value
	last := points[len(points)-1].Value
	changePct := 0.0
	if first > 0 {
		changePct = (last - first) / first * 100
	}

	switch {
	case changePct > 5:
		return "increasing", changePct
	case changePct < -5:
		return "decreasing", changePct
	default:
		return "stable", changePct
	}
}

// Problems bundles the worst dealers, warehouses, and warehouse-vehicle
// combinations for Pareto-style review.
func (s *AnalyticsService) Problems(ctx context.Context) (*models.TopProblems, error) {
	defer TrackTime("AnalyticsProblems", time.Now())

	if s.cache != nil {
		if cached, ok := s.cache.GetProblems(); ok {
			return cached, nil
		}
	}

	dealers, err := s.Dealers(ctx, defaultDealerLimit)
	if err != nil {
		return nil, err
	}
	warehouses, err := s.Warehouses(ctx)
	if err != nil {
		return nil, err
	}
	combinations, err := s.store.CombinationStats(ctx, worstCombinationsLimit)
	if err != nil {
		return nil, err
	}

	problems := &models.TopProblems{
		TopDealers:        dealers,
		TopWarehouses:     warehouses,
		WorstCombinations: combinations,
	}

	if s.cache != nil {
		s.cache.SetProblems(problems)
	}

	log.WithFields(log.Fields{
		"dealers":      len(dealers),
		"warehouses":   len(warehouses),
		"combinations": len(combinations),
	}).Debug("Problem rankings assembled")

	return problems, nil
}
