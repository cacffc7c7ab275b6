package repository

import (
	"context"
	"testing"
	"time"

	"github.com/paintops/damagecast/internal/models"
)

// TestPredictionInsertAndRecent stores outcomes and reads them back newest
// first.
func TestPredictionInsertAndRecent(t *testing.T) {
	resetTables(t)
	repo := NewPredictionRepository(testPool)

	base := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	ids := []string{"pred_000000000000000a", "pred_000000000000000b", "pred_000000000000000c"}
	for i, id := range ids {
		p := &models.StoredPrediction{
			ID:                  id,
			CreatedAt:           base.Add(time.Duration(i) * time.Hour),
			DealerCode:          42,
			Warehouse:           "MUM",
			ProductCode:         "321456678",
			Vehicle:             "Minitruck",
			Shipped:             25,
			PredictedDamageRate: 0.12,
			PredictedReturned:   3,
			RiskCategory:        models.RiskHigh,
			ConfidenceScore:     0.85,
			EstimatedLoss:       2400,
			ModelName:           "XGBOOST",
		}
		if err := repo.Insert(context.Background(), p); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	recent, err := repo.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(recent))
	}
	if recent[0].ID != ids[2] || recent[1].ID != ids[1] {
		t.Errorf("Expected newest first (%s, %s), got (%s, %s)", ids[2], ids[1], recent[0].ID, recent[1].ID)
	}
	if recent[0].RiskCategory != models.RiskHigh {
		t.Errorf("Expected High, got %s", recent[0].RiskCategory)
	}
	if recent[0].EstimatedLoss != 2400 {
		t.Errorf("Expected loss 2400, got %v", recent[0].EstimatedLoss)
	}
}
