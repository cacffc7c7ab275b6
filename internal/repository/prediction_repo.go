package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/paintops/damagecast/internal/models"
)

// PredictionRepository handles database operations for the prediction audit log
type PredictionRepository struct {
	pool *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

// Insert stores one prediction outcome
func (r *PredictionRepository) Insert(ctx context.Context, p *models.StoredPrediction) error {
	query := `
		INSERT INTO predictions (id, created_at, dealer_code, warehouse, product_code,
		                         vehicle, shipped, predicted_damage_rate, predicted_returned,
		                         risk_category, confidence_score, estimated_loss, model_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.CreatedAt, p.DealerCode, p.Warehouse, p.ProductCode,
		p.Vehicle, p.Shipped, p.PredictedDamageRate, p.PredictedReturned,
		p.RiskCategory, p.ConfidenceScore, p.EstimatedLoss, p.ModelName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// Recent retrieves the most recently stored predictions
func (r *PredictionRepository) Recent(ctx context.Context, limit int) ([]models.StoredPrediction, error) {
	query := `
		SELECT id, created_at, dealer_code, warehouse, product_code, vehicle, shipped,
		       predicted_damage_rate, predicted_returned, risk_category,
		       confidence_score, estimated_loss, model_name
		FROM predictions
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var predictions []models.StoredPrediction
	for rows.Next() {
		var p models.StoredPrediction
		if err := rows.Scan(
			&p.ID, &p.CreatedAt, &p.DealerCode, &p.Warehouse, &p.ProductCode, &p.Vehicle, &p.Shipped,
			&p.PredictedDamageRate, &p.PredictedReturned, &p.RiskCategory,
			&p.ConfidenceScore, &p.EstimatedLoss, &p.ModelName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}
