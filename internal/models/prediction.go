package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// RiskCategory buckets a predicted damage rate
type RiskCategory string

const (
	RiskLow      RiskCategory = "Low"
	RiskMedium   RiskCategory = "Medium"
	RiskHigh     RiskCategory = "High"
	RiskCritical RiskCategory = "Critical"
)

// PredictionRequest represents the request body for a single prediction.
// Date defaults to the current time when omitted; Model defaults to xgboost.
type PredictionRequest struct {
	Date        FlexibleTime `json:"date" swaggertype:"string"`
	DealerCode  int          `json:"dealer_code" binding:"required,min=1,max=100"`
	Warehouse   string       `json:"warehouse" binding:"required"`
	ProductCode string       `json:"product_code" binding:"required"`
	Vehicle     string       `json:"vehicle" binding:"required"`
	Shipped     int          `json:"shipped" binding:"required,min=1"`
	Model       string       `json:"model,omitempty"`
}

// Normalize validates the closed-set fields and returns the canonical
// ShipmentInput for the pipeline.
func (r *PredictionRequest) Normalize() (ShipmentInput, error) {
	warehouse := strings.ToUpper(strings.TrimSpace(r.Warehouse))
	if !ValidWarehouses[warehouse] {
		return ShipmentInput{}, fmt.Errorf("%w: invalid warehouse code %q", ErrValidation, r.Warehouse)
	}

	vehicle := NormalizeVehicle(r.Vehicle)
	if !ValidVehicles[vehicle] {
		return ShipmentInput{}, fmt.Errorf("%w: invalid vehicle type %q", ErrValidation, r.Vehicle)
	}

	if !IsProductCode(r.ProductCode) {
		return ShipmentInput{}, fmt.Errorf("%w: product code must be exactly 9 digits", ErrValidation)
	}

	date := r.Date.Time
	if date.IsZero() {
		date = time.Now()
	}

	return ShipmentInput{
		Date:        date,
		DealerCode:  r.DealerCode,
		Warehouse:   warehouse,
		ProductCode: r.ProductCode,
		Vehicle:     vehicle,
		Shipped:     r.Shipped,
	}, nil
}

// ModelName returns the requested model name, defaulting to xgboost.
func (r *PredictionRequest) ModelName() string {
	if r.Model == "" {
		return "xgboost"
	}
	return r.Model
}

// RecommendationItem is a single actionable advisory
type RecommendationItem struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Impact   string `json:"impact"`
}

// PredictionResult is the assembled outcome of one prediction
type PredictionResult struct {
	PredictionID            string               `json:"prediction_id"`
	Timestamp               time.Time            `json:"timestamp"`
	Input                   ShipmentInput        `json:"input"`
	PredictedDamageRate     float64              `json:"predicted_damage_rate"`
	PredictedReturned       int                  `json:"predicted_returned"`
	RiskCategory            RiskCategory         `json:"risk_category"`
	ConfidenceScore         float64              `json:"confidence_score"`
	EstimatedLoss           float64              `json:"estimated_loss"`
	ModelName               string               `json:"model_name"`
	FeatureImportance       map[string]float64   `json:"feature_importance"`
	Recommendations         []RecommendationItem `json:"recommendations"`
	DealerHistoricalRisk    string               `json:"dealer_historical_risk,omitempty"`
	WarehouseHistoricalRisk string               `json:"warehouse_historical_risk,omitempty"`
	IsOverloaded            bool                 `json:"is_overloaded"`
	LoadingRatio            float64              `json:"loading_ratio"`
}

// BatchItem holds either a successful prediction or the error record for
// one batch slot. Exactly one of Result and Err is set; slots keep the
// position of the input that produced them.
type BatchItem struct {
	Result *PredictionResult
	Err    string
	Input  ShipmentInput
}

// Failed reports whether this slot carries an error record.
func (b BatchItem) Failed() bool {
	return b.Err != ""
}

func (b BatchItem) MarshalJSON() ([]byte, error) {
	if b.Failed() {
		type errRecord struct {
			Error        string        `json:"error"`
			ShipmentData ShipmentInput `json:"shipment_data"`
		}
		return json.Marshal(errRecord{Error: b.Err, ShipmentData: b.Input})
	}
	return json.Marshal(b.Result)
}

// BatchSummary aggregates the successful slots of a batch
type BatchSummary struct {
	TotalShipments        int                  `json:"total_shipments"`
	SuccessfulPredictions int                  `json:"successful_predictions"`
	FailedPredictions     int                  `json:"failed_predictions"`
	AverageDamageRate     float64              `json:"average_damage_rate"`
	RiskDistribution      map[RiskCategory]int `json:"risk_distribution"`
	TotalEstimatedLoss    float64              `json:"total_estimated_loss"`
	HighRiskShipments     int                  `json:"high_risk_shipments"`
}

// BatchResult is the envelope for a batch prediction call
type BatchResult struct {
	BatchID        string       `json:"batch_id"`
	TotalShipments int          `json:"total_shipments"`
	Predictions    []BatchItem  `json:"predictions"`
	Summary        BatchSummary `json:"summary"`
}

// BatchPredictionRequest represents the request body for batch predictions
type BatchPredictionRequest struct {
	Shipments []PredictionRequest `json:"shipments" binding:"required,min=1,max=100"`
	Model     string              `json:"model,omitempty"`
}

// StoredPrediction is the persisted copy of a prediction outcome,
// kept for analytics and audit.
type StoredPrediction struct {
	ID                  string       `json:"id"`
	CreatedAt           time.Time    `json:"created_at"`
	DealerCode          int          `json:"dealer_code"`
	Warehouse           string       `json:"warehouse"`
	ProductCode         string       `json:"product_code"`
	Vehicle             string       `json:"vehicle"`
	Shipped             int          `json:"shipped"`
	PredictedDamageRate float64      `json:"predicted_damage_rate"`
	PredictedReturned   int          `json:"predicted_returned"`
	RiskCategory        RiskCategory `json:"risk_category"`
	ConfidenceScore     float64      `json:"confidence_score"`
	EstimatedLoss       float64      `json:"estimated_loss"`
	ModelName           string       `json:"model_name"`
}

// ModelsResponse lists the loaded scoring models
type ModelsResponse struct {
	AvailableModels []string `json:"available_models"`
	DefaultModel    string   `json:"default_model"`
	TotalFeatures   int      `json:"total_features"`
}
