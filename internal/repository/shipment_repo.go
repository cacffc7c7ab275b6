package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paintops/damagecast/internal/models"
)

// ShipmentRepository handles database operations for shipment records
type ShipmentRepository struct {
	pool *pgxpool.Pool
}

// NewShipmentRepository creates a new ShipmentRepository
func NewShipmentRepository(pool *pgxpool.Pool) *ShipmentRepository {
	return &ShipmentRepository{pool: pool}
}

const shipmentInsertQuery = `
	INSERT INTO shipments (date, dealer_code, warehouse, product_code, vehicle,
	                       shipped, returned, damage_rate, loss_value, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
	RETURNING id, created_at, updated_at
`

// Insert creates a new shipment record
func (r *ShipmentRepository) Insert(ctx context.Context, sh *models.Shipment) error {
	err := r.pool.QueryRow(ctx, shipmentInsertQuery,
		sh.Date, sh.DealerCode, sh.Warehouse, sh.ProductCode, sh.Vehicle,
		sh.Shipped, sh.Returned, sh.DamageRate, sh.LossValue).
		Scan(&sh.ID, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

// InsertMany creates shipment records in a single round trip
func (r *ShipmentRepository) InsertMany(ctx context.Context, shipments []*models.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, sh := range shipments {
		batch.Queue(shipmentInsertQuery,
			sh.Date, sh.DealerCode, sh.Warehouse, sh.ProductCode, sh.Vehicle,
			sh.Shipped, sh.Returned, sh.DamageRate, sh.LossValue)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	for _, sh := range shipments {
		if err := br.QueryRow().Scan(&sh.ID, &sh.CreatedAt, &sh.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert shipment: %w", err)
		}
	}
	return nil
}

// GetByID retrieves a shipment by ID
func (r *ShipmentRepository) GetByID(ctx context.Context, id int64) (*models.Shipment, error) {
	query := `
		SELECT id, date, dealer_code, warehouse, product_code, vehicle,
		       shipped, returned, damage_rate, loss_value, created_at, updated_at
		FROM shipments
		WHERE id = $1
	`
	sh := &models.Shipment{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&sh.ID, &sh.Date, &sh.DealerCode, &sh.Warehouse, &sh.ProductCode, &sh.Vehicle,
		&sh.Shipped, &sh.Returned, &sh.DamageRate, &sh.LossValue, &sh.CreatedAt, &sh.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return sh, nil
}

// List retrieves shipments matching the filter, newest first, plus the
// total match count for pagination
func (r *ShipmentRepository) List(ctx context.Context, filter models.ShipmentFilter) ([]models.Shipment, int, error) {
	conditions := make([]string, 0, 4)
	args := make([]any, 0, 6)

	if filter.DealerCode > 0 {
		args = append(args, filter.DealerCode)
		conditions = append(conditions, fmt.Sprintf("dealer_code = $%d", len(args)))
	}
	if filter.Warehouse != "" {
		args = append(args, filter.Warehouse)
		conditions = append(conditions, fmt.Sprintf("warehouse = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM shipments"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
		SELECT id, date, dealer_code, warehouse, product_code, vehicle,
		       shipped, returned, damage_rate, loss_value, created_at, updated_at
		FROM shipments%s
		ORDER BY date DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shipments: %w", err)
	}
	defer rows.Close()

	var shipments []models.Shipment
	for rows.Next() {
		var sh models.Shipment
		if err := rows.Scan(
			&sh.ID, &sh.Date, &sh.DealerCode, &sh.Warehouse, &sh.ProductCode, &sh.Vehicle,
			&sh.Shipped, &sh.Returned, &sh.DamageRate, &sh.LossValue, &sh.CreatedAt, &sh.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan shipment: %w", err)
		}
		shipments = append(shipments, sh)
	}
	return shipments, total, rows.Err()
}

// Update persists the return metrics of a shipment
func (r *ShipmentRepository) Update(ctx context.Context, sh *models.Shipment) error {
	query := `
		UPDATE shipments
		SET returned = $1, damage_rate = $2, loss_value = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, sh.Returned, sh.DamageRate, sh.LossValue, sh.ID).
		Scan(&sh.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrShipmentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update shipment: %w", err)
	}
	return nil
}

// Delete removes a shipment record
func (r *ShipmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM shipments WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete shipment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrShipmentNotFound
	}
	return nil
}
