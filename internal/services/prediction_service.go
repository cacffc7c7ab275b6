package services

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/paintops/damagecast/internal/features"
	"github.com/paintops/damagecast/internal/metrics"
	"github.com/paintops/damagecast/internal/models"
	"github.com/paintops/damagecast/internal/scoring"
)

// MaxBatchSize caps the number of shipments a single batch call accepts.
const MaxBatchSize = 100

// batchConcurrency bounds the worker pool for batch predictions.
const batchConcurrency = 8

// PredictionStore persists prediction outcomes for later inspection.
// Persistence is best-effort; a nil store disables it.
type PredictionStore interface {
	Insert(ctx context.Context, p *models.StoredPrediction) error
	Recent(ctx context.Context, limit int) ([]models.StoredPrediction, error)
}

// PredictionService runs the pipeline from raw shipment to scored result:
// feature engineering, model scoring, derived metrics, recommendations.
type PredictionService struct {
	engineer *features.Engineer
	adapter  *scoring.Adapter
	store    PredictionStore
	registry *metrics.Registry
}

// NewPredictionService creates a new PredictionService. store may be nil
// when outcomes should not be persisted; registry may be nil to disable
// instrumentation.
func NewPredictionService(engineer *features.Engineer, adapter *scoring.Adapter, store PredictionStore, registry *metrics.Registry) *PredictionService {
	return &PredictionService{
		engineer: engineer,
		adapter:  adapter,
		store:    store,
		registry: registry,
	}
}

// newID builds prefixed identifiers like pred_1f2e3d4c5b6a7980.
func newID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:16]
}

// Predict scores one shipment and assembles the full result.
func (s *PredictionService) Predict(ctx context.Context, shipment models.ShipmentInput, modelName string) (*models.PredictionResult, error) {
	start := time.Now()
	defer TrackTime("Predict", start)

	ctx, warnings := models.NewWarningContext(ctx)

	f, err := s.engineer.EngineerFeatures(ctx, shipment)
	if err != nil {
		return nil, err
	}

	rate := s.adapter.Predict(ctx, f, modelName)

	// Banker's rounding, matching how the training pipeline rounded counts
	returned := int(math.RoundToEven(rate * float64(shipment.Shipped)))

	result := &models.PredictionResult{
		PredictionID:            newID("pred"),
		Timestamp:               time.Now(),
		Input:                   shipment,
		PredictedDamageRate:     rate,
		PredictedReturned:       returned,
		RiskCategory:            riskCategory(rate),
		ConfidenceScore:         confidenceScore(f),
		EstimatedLoss:           float64(returned) * f.PricePerTin,
		ModelName:               strings.ToUpper(modelName),
		FeatureImportance:       featureImportance(f),
		Recommendations:         buildRecommendations(rate, f, shipment),
		DealerHistoricalRisk:    dealerRiskLevel(f.DealerHistoricalDamageRate),
		WarehouseHistoricalRisk: warehouseRiskLevel(f.WarehouseDamageRate),
		IsOverloaded:            f.Overloaded,
		LoadingRatio:            f.LoadingRatio,
	}

	s.persist(ctx, result)

	if s.registry != nil {
		s.registry.PredictionsTotal.WithLabelValues(string(result.RiskCategory)).Inc()
		s.registry.PredictionLatency.Observe(time.Since(start).Seconds())
	}

	for _, w := range warnings.GetWarnings() {
		log.WithFields(log.Fields{
			"code":          w.Code,
			"prediction_id": result.PredictionID,
		}).Warn(w.Message)
	}

	log.WithFields(log.Fields{
		"prediction_id": result.PredictionID,
		"risk_category": result.RiskCategory,
	}).Info("Prediction completed")

	return result, nil
}

// persist stores the outcome when a store is configured. A storage failure
// is logged and swallowed; the prediction itself already succeeded.
func (s *PredictionService) persist(ctx context.Context, r *models.PredictionResult) {
	if s.store == nil {
		return
	}
	stored := &models.StoredPrediction{
		ID:                  r.PredictionID,
		CreatedAt:           r.Timestamp,
		DealerCode:          r.Input.DealerCode,
		Warehouse:           r.Input.Warehouse,
		ProductCode:         r.Input.ProductCode,
		Vehicle:             r.Input.Vehicle,
		Shipped:             r.Input.Shipped,
		PredictedDamageRate: r.PredictedDamageRate,
		PredictedReturned:   r.PredictedReturned,
		RiskCategory:        r.RiskCategory,
		ConfidenceScore:     r.ConfidenceScore,
		EstimatedLoss:       r.EstimatedLoss,
		ModelName:           r.ModelName,
	}
	if err := s.store.Insert(ctx, stored); err != nil {
		log.WithError(err).WithField("prediction_id", r.PredictionID).Warn("Could not persist prediction")
	}
}

// PredictBatch scores up to MaxBatchSize shipments concurrently. A failed
// slot becomes an error record instead of failing the batch; output order
// follows input order.
func (s *PredictionService) PredictBatch(ctx context.Context, requests []models.PredictionRequest, modelName string) (*models.BatchResult, error) {
	defer TrackTime("PredictBatch", time.Now())

	if len(requests) == 0 {
		return nil, fmt.Errorf("%w: batch contains no shipments", models.ErrValidation)
	}
	if len(requests) > MaxBatchSize {
		return nil, fmt.Errorf("%w: batch size %d exceeds limit of %d", models.ErrValidation, len(requests), MaxBatchSize)
	}
	if modelName == "" {
		modelName = scoring.DefaultModelName
	}

	items := make([]models.BatchItem, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i := range requests {
		i := i // per-iteration copy; required while go.mod targets go < 1.22
		g.Go(func() error {
			req := requests[i]
			shipment, err := req.Normalize()
			if err != nil {
				items[i] = models.BatchItem{Err: err.Error(), Input: rawInput(req)}
				return nil
			}
			result, err := s.Predict(gctx, shipment, modelName)
			if err != nil {
				items[i] = models.BatchItem{Err: err.Error(), Input: shipment}
				return nil
			}
			items[i] = models.BatchItem{Result: result, Input: shipment}
			return nil
		})
	}
	// Workers record failures in their slot instead of returning errors
	_ = g.Wait()

	summary := summarizeBatch(len(requests), items)

	if s.registry != nil {
		s.registry.BatchesTotal.Inc()
		s.registry.BatchItemsFailed.Add(float64(summary.FailedPredictions))
	}

	batch := &models.BatchResult{
		BatchID:        newID("batch"),
		TotalShipments: len(requests),
		Predictions:    items,
		Summary:        summary,
	}

	log.WithFields(log.Fields{
		"batch_id":   batch.BatchID,
		"total":      summary.TotalShipments,
		"successful": summary.SuccessfulPredictions,
		"failed":     summary.FailedPredictions,
	}).Info("Batch prediction completed")

	return batch, nil
}

// rawInput echoes a request that failed normalization back into the error
// record, preserving what the caller sent.
func rawInput(req models.PredictionRequest) models.ShipmentInput {
	return models.ShipmentInput{
		Date:        req.Date.Time,
		DealerCode:  req.DealerCode,
		Warehouse:   req.Warehouse,
		ProductCode: req.ProductCode,
		Vehicle:     req.Vehicle,
		Shipped:     req.Shipped,
	}
}

func summarizeBatch(total int, items []models.BatchItem) models.BatchSummary {
	summary := models.BatchSummary{
		TotalShipments: total,
		RiskDistribution: map[models.RiskCategory]int{
			models.RiskLow:      0,
			models.RiskMedium:   0,
			models.RiskHigh:     0,
			models.RiskCritical: 0,
		},
	}

	var rateSum float64
	for _, item := range items {
		if item.Failed() {
			summary.FailedPredictions++
			continue
		}
		summary.SuccessfulPredictions++
		rateSum += item.Result.PredictedDamageRate
		summary.RiskDistribution[item.Result.RiskCategory]++
		summary.TotalEstimatedLoss += item.Result.EstimatedLoss
		if item.Result.RiskCategory == models.RiskHigh || item.Result.RiskCategory == models.RiskCritical {
			summary.HighRiskShipments++
		}
	}
	if summary.SuccessfulPredictions > 0 {
		summary.AverageDamageRate = rateSum / float64(summary.SuccessfulPredictions)
	}
	return summary
}

// Recent returns the latest persisted predictions, newest first.
func (s *PredictionService) Recent(ctx context.Context, limit int) ([]models.StoredPrediction, error) {
	if s.store == nil {
		return []models.StoredPrediction{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	predictions, err := s.store.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if predictions == nil {
		predictions = []models.StoredPrediction{}
	}
	return predictions, nil
}

// Models describes the loaded model registry.
func (s *PredictionService) Models() models.ModelsResponse {
	return models.ModelsResponse{
		AvailableModels: s.adapter.ModelNames(),
		DefaultModel:    scoring.DefaultModelName,
		TotalFeatures:   s.adapter.FeatureCount(),
	}
}
