package models

import "time"

// AnalyticsSummary holds aggregate statistics over stored shipments
type AnalyticsSummary struct {
	TotalShipments        int       `json:"total_shipments"`
	TotalTinsShipped      int       `json:"total_tins_shipped"`
	TotalTinsReturned     int       `json:"total_tins_returned"`
	AverageDamageRate     float64   `json:"average_damage_rate"`
	TotalEstimatedLoss    float64   `json:"total_estimated_loss"`
	HighRiskShipments     int       `json:"high_risk_shipments"`
	CriticalRiskShipments int       `json:"critical_risk_shipments"`
	DateRange             DateRange `json:"date_range"`
}

// DateRange bounds the shipments covered by a summary
type DateRange struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// DealerAnalytics is the per-dealer aggregate row
type DealerAnalytics struct {
	DealerCode        int          `json:"dealer_code"`
	TotalShipments    int          `json:"total_shipments"`
	AverageDamageRate float64      `json:"average_damage_rate"`
	TotalLoss         float64      `json:"total_loss"`
	RiskCategory      RiskCategory `json:"risk_category"`
}

// WarehouseAnalytics is the per-warehouse aggregate row
type WarehouseAnalytics struct {
	Warehouse         string  `json:"warehouse"`
	TotalShipments    int     `json:"total_shipments"`
	AverageDamageRate float64 `json:"average_damage_rate"`
	TotalLoss         float64 `json:"total_loss"`
}

// TrendPoint is one bucket in a trend series
type TrendPoint struct {
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"`
	Shipments int       `json:"shipments"`
}

// TrendAnalysis describes how a metric moved over a trailing window.
// TrendDirection is one of increasing/decreasing/stable/insufficient_data;
// changes within 5% either way count as stable.
type TrendAnalysis struct {
	Metric           string       `json:"metric"`
	Period           string       `json:"period"`
	DataPoints       []TrendPoint `json:"data_points"`
	TrendDirection   string       `json:"trend_direction"`
	ChangePercentage float64      `json:"change_percentage"`
}

// VehicleCombinationStat is a warehouse/vehicle pair aggregate used for
// problem ranking
type VehicleCombinationStat struct {
	Warehouse      string  `json:"warehouse"`
	Vehicle        string  `json:"vehicle"`
	TotalShipments int     `json:"total_shipments"`
	DamageRate     float64 `json:"damage_rate"`
	TotalLoss      float64 `json:"total_loss"`
}

// TopProblems bundles the worst dealers, warehouses and combinations
type TopProblems struct {
	TopDealers        []DealerAnalytics        `json:"top_dealers"`
	TopWarehouses     []WarehouseAnalytics     `json:"top_warehouses"`
	WorstCombinations []VehicleCombinationStat `json:"worst_combinations"`
}
