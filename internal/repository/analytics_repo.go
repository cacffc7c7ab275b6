package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paintops/damagecast/internal/models"
)

// trendTruncUnits maps the API period names to date_trunc units. Periods are
// validated upstream; the map also guards the SQL interpolation below.
var trendTruncUnits = map[string]string{
	"daily":   "day",
	"weekly":  "week",
	"monthly": "month",
}

// AnalyticsRepository runs the aggregation queries behind the analytics
// endpoints. All grouping and sorting happens in SQL.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// SummaryStats aggregates all shipments, optionally bounded by dates.
// An empty table yields a zeroed summary with null dates.
func (r *AnalyticsRepository) SummaryStats(ctx context.Context, start, end *time.Time) (*models.AnalyticsSummary, error) {
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if start != nil {
		args = append(args, *start)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if end != nil {
		args = append(args, *end)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT COUNT(*),
		       COALESCE(SUM(shipped), 0),
		       COALESCE(SUM(returned), 0),
		       COALESCE(SUM(loss_value), 0),
		       COUNT(*) FILTER (WHERE damage_rate >= 0.10),
		       COUNT(*) FILTER (WHERE damage_rate >= 0.15),
		       MIN(date),
		       MAX(date)
		FROM shipments%s
	`, where)

	summary := &models.AnalyticsSummary{}
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&summary.TotalShipments, &summary.TotalTinsShipped, &summary.TotalTinsReturned,
		&summary.TotalEstimatedLoss, &summary.HighRiskShipments, &summary.CriticalRiskShipments,
		&summary.DateRange.Start, &summary.DateRange.End,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate summary: %w", err)
	}

	if summary.TotalTinsShipped > 0 {
		summary.AverageDamageRate = float64(summary.TotalTinsReturned) / float64(summary.TotalTinsShipped)
	}
	return summary, nil
}

// DealerStats aggregates shipments per dealer, ranked by total loss
func (r *AnalyticsRepository) DealerStats(ctx context.Context, limit int) ([]models.DealerAnalytics, error) {
	query := `
		SELECT dealer_code,
		       COUNT(*) AS total_shipments,
		       COALESCE(SUM(returned)::float8 / NULLIF(SUM(shipped), 0), 0) AS average_damage_rate,
		       COALESCE(SUM(loss_value), 0) AS total_loss
		FROM shipments
		GROUP BY dealer_code
		ORDER BY total_loss DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query dealer stats: %w", err)
	}
	defer rows.Close()

	var dealers []models.DealerAnalytics
	for rows.Next() {
		var d models.DealerAnalytics
		if err := rows.Scan(&d.DealerCode, &d.TotalShipments, &d.AverageDamageRate, &d.TotalLoss); err != nil {
			return nil, fmt.Errorf("failed to scan dealer stats: %w", err)
		}
		dealers = append(dealers, d)
	}
	return dealers, rows.Err()
}

// WarehouseStats aggregates shipments per warehouse, ranked by damage rate
func (r *AnalyticsRepository) WarehouseStats(ctx context.Context) ([]models.WarehouseAnalytics, error) {
	query := `
		SELECT warehouse,
		       COUNT(*) AS total_shipments,
		       COALESCE(SUM(returned)::float8 / NULLIF(SUM(shipped), 0), 0) AS average_damage_rate,
		       COALESCE(SUM(loss_value), 0) AS total_loss
		FROM shipments
		GROUP BY warehouse
		ORDER BY average_damage_rate DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query warehouse stats: %w", err)
	}
	defer rows.Close()

	var warehouses []models.WarehouseAnalytics
	for rows.Next() {
		var w models.WarehouseAnalytics
		if err := rows.Scan(&w.Warehouse, &w.TotalShipments, &w.AverageDamageRate, &w.TotalLoss); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse stats: %w", err)
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, rows.Err()
}

// TrendBuckets groups shipments in [start, end] into period buckets. Each
// bucket value is total returned over total shipped for that bucket.
func (r *AnalyticsRepository) TrendBuckets(ctx context.Context, period string, start, end time.Time) ([]models.TrendPoint, error) {
	trunc, ok := trendTruncUnits[period]
	if !ok {
		return nil, fmt.Errorf("unsupported trend period %q", period)
	}

	query := fmt.Sprintf(`
		SELECT date_trunc('%s', date) AS bucket,
		       COALESCE(SUM(returned)::float8 / NULLIF(SUM(shipped), 0), 0) AS value,
		       COUNT(*) AS shipments
		FROM shipments
		WHERE date >= $1 AND date <= $2
		GROUP BY bucket
		ORDER BY bucket ASC
	`, trunc)

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query trend buckets: %w", err)
	}
	defer rows.Close()

	var points []models.TrendPoint
	for rows.Next() {
		var p models.TrendPoint
		if err := rows.Scan(&p.Date, &p.Value, &p.Shipments); err != nil {
			return nil, fmt.Errorf("failed to scan trend bucket: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// CombinationStats aggregates shipments per warehouse-vehicle pair, ranked
// by total loss
func (r *AnalyticsRepository) CombinationStats(ctx context.Context, limit int) ([]models.VehicleCombinationStat, error) {
	query := `
		SELECT warehouse, vehicle,
		       COUNT(*) AS total_shipments,
		       COALESCE(SUM(returned)::float8 / NULLIF(SUM(shipped), 0), 0) AS damage_rate,
		       COALESCE(SUM(loss_value), 0) AS total_loss
		FROM shipments
		GROUP BY warehouse, vehicle
		ORDER BY total_loss DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query combination stats: %w", err)
	}
	defer rows.Close()

	var combinations []models.VehicleCombinationStat
	for rows.Next() {
		var c models.VehicleCombinationStat
		if err := rows.Scan(&c.Warehouse, &c.Vehicle, &c.TotalShipments, &c.DamageRate, &c.TotalLoss); err != nil {
			return nil, fmt.Errorf("failed to scan combination stats: %w", err)
		}
		combinations = append(combinations, c)
	}
	return combinations, rows.Err()
}
