package services

import (
	"fmt"

	"github.com/paintops/damagecast/internal/features"
	"github.com/paintops/damagecast/internal/models"
)

// buildRecommendations derives the advisory list for one scored shipment.
// Rules fire in a fixed order so equal inputs always produce equal output.
func buildRecommendations(predictedRate float64, f *features.Features, shipment models.ShipmentInput) []models.RecommendationItem {
	recs := make([]models.RecommendationItem, 0, 4)

	switch {
	case f.LoadingRatio > 1.5:
		recs = append(recs, models.RecommendationItem{
			Priority: "CRITICAL",
			Category: "Loading",
			Message: fmt.Sprintf("Severe overloading detected! Current: %.1f%% of capacity. Reduce load by at least %.0f%%",
				f.LoadingRatio*100, (f.LoadingRatio-1)*100),
			Impact: fmt.Sprintf("High risk of damage - Expected loss: ₹%.0f", f.ShipmentValue*0.25),
		})
	case f.LoadingRatio > 1.2:
		recs = append(recs, models.RecommendationItem{
			Priority: "HIGH",
			Category: "Loading",
			Message:  fmt.Sprintf("Significant overloading. Reduce load by %.0f%%", (f.LoadingRatio-1)*100),
			Impact:   "Moderate damage risk",
		})
	case f.LoadingRatio > 1.0:
		recs = append(recs, models.RecommendationItem{
			Priority: "MEDIUM",
			Category: "Loading",
			Message:  fmt.Sprintf("Vehicle overloaded. Consider reducing load by %.0f%%", (f.LoadingRatio-1)*100),
			Impact:   "Increased damage probability",
		})
	default:
		recs = append(recs, models.RecommendationItem{
			Priority: "LOW",
			Category: "Loading",
			Message:  "Loading within safe limits",
			Impact:   "Normal damage rate expected",
		})
	}

	switch {
	case shipment.Vehicle == string(models.VehicleAutorickshaw) && shipment.Shipped > 10:
		recs = append(recs, models.RecommendationItem{
			Priority: "MEDIUM",
			Category: "Vehicle",
			Message:  "Consider using Vikram or Minitruck for this shipment size",
			Impact:   "Better load distribution, reduced damage",
		})
	case shipment.Vehicle == string(models.VehicleVikram) && shipment.Shipped > 30:
		recs = append(recs, models.RecommendationItem{
			Priority: "MEDIUM",
			Category: "Vehicle",
			Message:  "Consider using Minitruck for this shipment size",
			Impact:   "Safer transport for large quantities",
		})
	}

	switch {
	case f.DealerHistoricalDamageRate > 0.12:
		recs = append(recs, models.RecommendationItem{
			Priority: "HIGH",
			Category: "Dealer",
			Message:  "High-risk dealer. Use extra protective packaging",
			Impact:   "Reduce damage by 20-30%",
		})
	case f.DealerHistoricalDamageRate > 0.08:
		recs = append(recs, models.RecommendationItem{
			Priority: "MEDIUM",
			Category: "Dealer",
			Message:  "Medium-risk dealer. Apply careful handling procedures",
			Impact:   "Maintain lower damage rates",
		})
	}

	if f.WarehouseDamageRate > 0.08 {
		recs = append(recs, models.RecommendationItem{
			Priority: "HIGH",
			Category: "Warehouse",
			Message:  "High-risk warehouse. Review loading and dispatch procedures",
			Impact:   "Process improvement needed",
		})
	}

	if predictedRate >= 0.10 {
		recs = append(recs,
			models.RecommendationItem{
				Priority: "HIGH",
				Category: "Packaging",
				Message:  "Use additional protective packaging and cushioning",
				Impact:   "Reduce breakage risk",
			},
			models.RecommendationItem{
				Priority: "MEDIUM",
				Category: "Scheduling",
				Message:  "Schedule delivery during off-peak hours",
				Impact:   "More careful handling, less rush",
			},
			models.RecommendationItem{
				Priority: "MEDIUM",
				Category: "Labeling",
				Message:  "Add 'FRAGILE - HANDLE WITH CARE' labels prominently",
				Impact:   "Increased handler awareness",
			},
		)
	}

	if f.IsMonsoon {
		recs = append(recs, models.RecommendationItem{
			Priority: "MEDIUM",
			Category: "Weather",
			Message:  "Monsoon season: Use waterproof covering",
			Impact:   "Protect from weather damage",
		})
	}

	if predictedRate < 0.05 && f.LoadingRatio <= 1.0 {
		recs = append(recs, models.RecommendationItem{
			Priority: "LOW",
			Category: "General",
			Message:  "Shipment appears safe. Proceed with standard procedures",
			Impact:   "Low risk of damage",
		})
	}

	return recs
}

// featureImportance reports the dominant risk drivers as weights normalized
// to sum to 1.
func featureImportance(f *features.Features) map[string]float64 {
	importance := map[string]float64{}

	if f.LoadingRatio > 1.0 {
		importance["Overloading"] = 0.35
	}
	if f.DealerHistoricalDamageRate > 0.08 {
		importance["Dealer Risk"] = 0.28
	}
	if f.WarehouseDamageRate > 0.07 {
		importance["Warehouse Risk"] = 0.20
	}
	importance["Vehicle Type"] = 0.15

	var total float64
	for _, v := range importance {
		total += v
	}
	if total > 0 {
		for k, v := range importance {
			importance[k] = v / total
		}
	}
	return importance
}

// riskCategory buckets a damage rate into the four risk levels.
func riskCategory(rate float64) models.RiskCategory {
	switch {
	case rate < 0.05:
		return models.RiskLow
	case rate < 0.10:
		return models.RiskMedium
	case rate < 0.15:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}

// dealerRiskLevel describes a dealer's historical damage rate.
func dealerRiskLevel(rate float64) string {
	switch {
	case rate < 0.05:
		return "Low Risk"
	case rate < 0.08:
		return "Medium Risk"
	case rate < 0.12:
		return "High Risk"
	default:
		return "Critical Risk"
	}
}

// warehouseRiskLevel grades a warehouse's historical damage rate.
func warehouseRiskLevel(rate float64) string {
	switch {
	case rate < 0.05:
		return "Excellent"
	case rate < 0.07:
		return "Good"
	case rate < 0.09:
		return "Fair"
	default:
		return "Poor"
	}
}

// confidenceScore starts from a base confidence and reduces it for inputs in
// poorly observed regions, clamped to [0.5, 1.0].
func confidenceScore(f *features.Features) float64 {
	confidence := 0.85

	if f.LoadingRatio > 2.0 {
		confidence -= 0.15
	}
	if f.DealerTotalShipments < 10 {
		confidence -= 0.10
	}

	if confidence < 0.5 {
		return 0.5
	}
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
