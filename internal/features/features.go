package features

// Features is the engineered feature record for one shipment. It is built
// once per prediction, owned by the call that produced it, and never shared
// across concurrent predictions. The wire names in Lookup define the
// vocabulary the model's feature list may reference.
type Features struct {
	// Parsed product code
	PaintType int
	Color     int
	TinSize   int

	// Pricing
	PaintCategory string // Cheap / Mid-range / Expensive; label only, never vectorized
	PricePerTin   float64
	ShipmentValue float64

	// Loading
	VehicleCapacity  int
	LoadingRatio     float64
	Overloaded       bool
	OverloadAmount   int
	IsExtremeLoading bool

	// Calendar
	Year         int
	Month        int
	Day          int
	DayOfWeek    int // 0 = Monday
	WeekOfYear   int
	IsWeekend    bool
	IsMonthStart bool
	IsMonthEnd   bool
	IsMonsoon    bool
	MonthSin     float64
	MonthCos     float64
	DayOfWeekSin float64
	DayOfWeekCos float64

	// Historical profiles
	DealerHistoricalDamageRate float64
	DealerOverloadFrequency    float64
	DealerTotalShipments       int
	DealerRiskCategoryEncoded  int
	WarehouseDamageRate        float64
	WarehouseOverloadPct       float64

	// Interactions and indices
	DealerWarehouseRisk float64
	VehicleLoadingRisk  float64
	ProductValueIndex   float64

	// Encoded categoricals
	VehicleEncoded         int
	WarehouseEncoded       int
	PaintCategoryEncoded   int
	TinSizeCategoryEncoded int

	// Raw passthrough
	Shipped    int
	DealerCode int
}

// Lookup resolves a feature by its wire name for vector assembly. The second
// return is false when the name is unknown or non-numeric; the model adapter
// zero-fills such slots rather than failing.
func (f *Features) Lookup(name string) (float64, bool) {
	switch name {
	case "paint_type":
		return float64(f.PaintType), true
	case "color":
		return float64(f.Color), true
	case "tin_size":
		return float64(f.TinSize), true
	case "price_per_tin":
		return f.PricePerTin, true
	case "shipment_value":
		return f.ShipmentValue, true
	case "vehicle_capacity":
		return float64(f.VehicleCapacity), true
	case "loading_ratio":
		return f.LoadingRatio, true
	case "overloaded":
		return boolToFloat(f.Overloaded), true
	case "overload_amount":
		return float64(f.OverloadAmount), true
	case "is_extreme_loading":
		return boolToFloat(f.IsExtremeLoading), true
	case "year":
		return float64(f.Year), true
	case "month":
		return float64(f.Month), true
	case "day":
		return float64(f.Day), true
	case "day_of_week":
		return float64(f.DayOfWeek), true
	case "week_of_year":
		return float64(f.WeekOfYear), true
	case "is_weekend":
		return boolToFloat(f.IsWeekend), true
	case "is_month_start":
		return boolToFloat(f.IsMonthStart), true
	case "is_month_end":
		return boolToFloat(f.IsMonthEnd), true
	case "is_monsoon":
		return boolToFloat(f.IsMonsoon), true
	case "month_sin":
		return f.MonthSin, true
	case "month_cos":
		return f.MonthCos, true
	case "day_of_week_sin":
		return f.DayOfWeekSin, true
	case "day_of_week_cos":
		return f.DayOfWeekCos, true
	case "dealer_historical_damage_rate":
		return f.DealerHistoricalDamageRate, true
	case "dealer_overload_frequency":
		return f.DealerOverloadFrequency, true
	case "dealer_total_shipments":
		return float64(f.DealerTotalShipments), true
	case "dealer_risk_category_encoded":
		return float64(f.DealerRiskCategoryEncoded), true
	case "warehouse_damage_rate":
		return f.WarehouseDamageRate, true
	case "warehouse_overload_pct":
		return f.WarehouseOverloadPct, true
	case "dealer_warehouse_risk":
		return f.DealerWarehouseRisk, true
	case "vehicle_loading_risk":
		return f.VehicleLoadingRisk, true
	case "product_value_index":
		return f.ProductValueIndex, true
	case "vehicle_encoded":
		return float64(f.VehicleEncoded), true
	case "warehouse_encoded":
		return float64(f.WarehouseEncoded), true
	case "paint_category_encoded":
		return float64(f.PaintCategoryEncoded), true
	case "tin_size_category_encoded":
		return float64(f.TinSizeCategoryEncoded), true
	case "shipped":
		return float64(f.Shipped), true
	case "dealer_code":
		return float64(f.DealerCode), true
	}
	return 0, false
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
