package models

// DealerProfile is the precomputed historical aggregate for one dealer,
// produced offline and loaded read-only at startup. Field names follow the
// profile artifact keys.
type DealerProfile struct {
	DamageRate      float64 `json:"damage_rate"`
	OverloadFreq    float64 `json:"overload_freq"`
	TotalShipments  int     `json:"total_shipments"`
	AvgShipmentSize float64 `json:"avg_shipment_size,omitempty"`
	TotalLoss       float64 `json:"total_loss,omitempty"`
	RiskCategory    string  `json:"risk_category"`
}

// WarehouseProfile is the precomputed historical aggregate for one warehouse.
type WarehouseProfile struct {
	DamageRate     float64 `json:"damage_rate"`
	OverloadPct    float64 `json:"overload_pct"`
	TotalShipments int     `json:"total_shipments,omitempty"`
	TotalLoss      float64 `json:"total_loss,omitempty"`
}
