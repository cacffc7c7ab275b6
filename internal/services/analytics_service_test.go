package services

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/paintops/damagecast/internal/cache"
	"github.com/paintops/damagecast/internal/models"
)

type stubAnalyticsStore struct {
	summary       *models.AnalyticsSummary
	dealerRows    []models.DealerAnalytics
	warehouseRows []models.WarehouseAnalytics
	points        []models.TrendPoint
	combos        []models.VehicleCombinationStat

	summaryCalls    int
	dealerCalls     int
	warehouseCalls  int
	trendCalls      int
	comboCalls      int
	lastDealerLimit int
	lastPeriod      string
	lastStart       time.Time
	lastEnd         time.Time
}

func (s *stubAnalyticsStore) SummaryStats(_ context.Context, _, _ *time.Time) (*models.AnalyticsSummary, error) {
	s.summaryCalls++
	return s.summary, nil
}

func (s *stubAnalyticsStore) DealerStats(_ context.Context, limit int) ([]models.DealerAnalytics, error) {
	s.dealerCalls++
	s.lastDealerLimit = limit
	return s.dealerRows, nil
}

func (s *stubAnalyticsStore) WarehouseStats(_ context.Context) ([]models.WarehouseAnalytics, error) {
	s.warehouseCalls++
	return s.warehouseRows, nil
}

func (s *stubAnalyticsStore) TrendBuckets(_ context.Context, period string, start, end time.Time) ([]models.TrendPoint, error) {
	s.trendCalls++
	s.lastPeriod = period
	s.lastStart = start
	s.lastEnd = end
	return s.points, nil
}

func (s *stubAnalyticsStore) CombinationStats(_ context.Context, _ int) ([]models.VehicleCombinationStat, error) {
	s.comboCalls++
	return s.combos, nil
}

// TestSummaryCachesPerDateRange serves repeat calls from cache and keys the
// cache by date range.
func TestSummaryCachesPerDateRange(t *testing.T) {
	store := &stubAnalyticsStore{summary: &models.AnalyticsSummary{TotalShipments: 9}}
	svc := NewAnalyticsService(store, cache.NewAnalyticsCache(time.Minute))

	ctx := context.Background()
	first, err := svc.Summary(ctx, nil, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.TotalShipments != 9 {
		t.Errorf("Expected 9 shipments, got %d", first.TotalShipments)
	}

	if _, err := svc.Summary(ctx, nil, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.summaryCalls != 1 {
		t.Errorf("Expected the second call to hit the cache, store saw %d calls", store.summaryCalls)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Summary(ctx, &start, nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.summaryCalls != 2 {
		t.Errorf("Expected a different date range to miss the cache, store saw %d calls", store.summaryCalls)
	}
}

// TestDealersLabelsRiskAndDefaultsLimit fills risk categories from the
// damage-rate ladder and normalizes the limit.
func TestDealersLabelsRiskAndDefaultsLimit(t *testing.T) {
	store := &stubAnalyticsStore{dealerRows: []models.DealerAnalytics{
		{DealerCode: 1, AverageDamageRate: 0.04},
		{DealerCode: 2, AverageDamageRate: 0.12},
		{DealerCode: 3, AverageDamageRate: 0.20},
	}}
	svc := NewAnalyticsService(store, nil)

	rows, err := svc.Dealers(context.Background(), 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if store.lastDealerLimit != 20 {
		t.Errorf("Expected default limit 20, got %d", store.lastDealerLimit)
	}
	expected := []models.RiskCategory{models.RiskLow, models.RiskHigh, models.RiskCritical}
	for i, row := range rows {
		if row.RiskCategory != expected[i] {
			t.Errorf("Dealer %d: expected %s, got %s", row.DealerCode, expected[i], row.RiskCategory)
		}
	}
}

// TestTrendWiring validates the period, derives the window from days, and
// labels the direction.
func TestTrendWiring(t *testing.T) {
	store := &stubAnalyticsStore{points: []models.TrendPoint{
		{Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Value: 0.05, Shipments: 10},
		{Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Value: 0.08, Shipments: 12},
	}}
	svc := NewAnalyticsService(store, nil)

	trend, err := svc.Trend(context.Background(), "daily", 30)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if trend.Metric != "damage_rate" || trend.Period != "daily" {
		t.Errorf("Expected damage_rate/daily, got %s/%s", trend.Metric, trend.Period)
	}
	if trend.TrendDirection != "increasing" {
		t.Errorf("Expected increasing, got %s", trend.TrendDirection)
	}
	if math.Abs(trend.ChangePercentage-60.0) > 1e-9 {
		t.Errorf("Expected +60%% change, got %v", trend.ChangePercentage)
	}
	if store.lastPeriod != "daily" {
		t.Errorf("Expected period passthrough, got %s", store.lastPeriod)
	}
	window := store.lastEnd.Sub(store.lastStart)
	if window < 29*24*time.Hour || window > 31*24*time.Hour {
		t.Errorf("Expected a ~30 day window, got %v", window)
	}

	if _, err := svc.Trend(context.Background(), "hourly", 30); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for an unknown period, got %v", err)
	}
}

// TestTrendDirectionLadder covers the direction bands and the degenerate
// cases.
func TestTrendDirectionLadder(t *testing.T) {
	mkPoints := func(values ...float64) []models.TrendPoint {
		points := make([]models.TrendPoint, len(values))
		for i, v := range values {
			points[i] = models.TrendPoint{Value: v}
		}
		return points
	}

	testCases := []struct {
		name      string
		points    []models.TrendPoint
		direction string
		changePct float64
	}{
		{"increasing", mkPoints(0.05, 0.06, 0.08), "increasing", 60},
		{"decreasing", mkPoints(0.10, 0.08), "decreasing", -20},
		{"stable", mkPoints(0.10, 0.102), "stable", 2},
		{"one point", mkPoints(0.10), "insufficient_data", 0},
		{"no points", nil, "insufficient_data", 0},
		{"zero start", mkPoints(0, 0.10), "stable", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			direction, changePct := trendDirection(tc.points)
			if direction != tc.direction {
				t.Errorf("Expected %s, got %s", tc.direction, direction)
			}
			if math.Abs(changePct-tc.changePct) > 1e-6 {
				t.Errorf("Expected change %v, got %v", tc.changePct, changePct)
			}
		})
	}
}

// TestProblemsAssembly bundles all three rankings and caches the result.
func TestProblemsAssembly(t *testing.T) {
	store := &stubAnalyticsStore{
		dealerRows:    []models.DealerAnalytics{{DealerCode: 5, AverageDamageRate: 0.2, TotalLoss: 90000}},
		warehouseRows: []models.WarehouseAnalytics{{Warehouse: "KOL", AverageDamageRate: 0.11}},
		combos: []models.VehicleCombinationStat{
			{Warehouse: "KOL", Vehicle: "Autorickshaw", DamageRate: 0.18, TotalLoss: 50000},
		},
	}
	svc := NewAnalyticsService(store, cache.NewAnalyticsCache(time.Minute))

	problems, err := svc.Problems(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(problems.TopDealers) != 1 || problems.TopDealers[0].RiskCategory != models.RiskCritical {
		t.Errorf("Expected one Critical dealer, got %+v", problems.TopDealers)
	}
	if len(problems.TopWarehouses) != 1 || problems.TopWarehouses[0].Warehouse != "KOL" {
		t.Errorf("Expected warehouse KOL, got %+v", problems.TopWarehouses)
	}
	if len(problems.WorstCombinations) != 1 || problems.WorstCombinations[0].Vehicle != "Autorickshaw" {
		t.Errorf("Expected the KOL-Autorickshaw combination, got %+v", problems.WorstCombinations)
	}

	if _, err := svc.Problems(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if store.comboCalls != 1 {
		t.Errorf("Expected the second call to hit the cache, store saw %d combo calls", store.comboCalls)
	}
}
