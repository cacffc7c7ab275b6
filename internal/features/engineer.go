package features

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/paintops/damagecast/internal/models"
	"github.com/paintops/damagecast/internal/profiles"
)

// ErrInvalidInput is the sentinel for malformed shipment fields.
// Handlers map it to HTTP 400.
var ErrInvalidInput = errors.New("invalid input")

// Paint price segments
const (
	PaintCheap     = "Cheap"
	PaintMidRange  = "Mid-range"
	PaintExpensive = "Expensive"
)

// priceMatrix maps paint category and tin size to the price per tin (INR).
// Sizes absent from the table resolve to the nearest listed size.
var priceMatrix = map[string]map[int]float64{
	PaintCheap: {
		123: 20, 234: 40, 345: 70, 456: 150, 567: 250,
		678: 350, 765: 500, 789: 600, 890: 700, 987: 1000,
	},
	PaintMidRange: {
		123: 30, 234: 60, 345: 100, 456: 220, 567: 400,
		678: 700, 765: 1000, 789: 1300, 890: 1500, 987: 2000,
	},
	PaintExpensive: {
		123: 40, 234: 80, 345: 140, 456: 250, 567: 500,
		678: 800, 765: 1000, 789: 1200, 890: 1400, 987: 1800,
	},
}

// vehicleCapacity is the tin capacity per vehicle type.
var vehicleCapacity = map[string]int{
	string(models.VehicleAutorickshaw): 13,
	string(models.VehicleVikram):       22,
	string(models.VehicleMinitruck):    40,
}

// defaultVehicleCapacity is used for unrecognized vehicle names (Vikram's).
const defaultVehicleCapacity = 22

var paintCategories = map[int]string{
	111: PaintCheap, 112: PaintCheap, 121: PaintCheap, 123: PaintCheap,
	213: PaintMidRange, 222: PaintMidRange, 232: PaintMidRange,
	321: PaintExpensive, 333: PaintExpensive, 343: PaintExpensive,
}

// Reference constants for the product value index.
const (
	referencePrice   = 500.0
	referenceTinSize = 500.0
)

// ParsedProductCode is the decomposition of a 9-digit product code.
type ParsedProductCode struct {
	PaintType int
	Color     int
	TinSize   int
}

// ParseProductCode splits a product code into its three zero-padded 3-digit
// groups. The code must be exactly 9 ASCII digits.
func ParseProductCode(code string) (ParsedProductCode, error) {
	if !models.IsProductCode(code) {
		return ParsedProductCode{}, fmt.Errorf("%w: product code must be exactly 9 digits, got %q", ErrInvalidInput, code)
	}

	paintType, _ := strconv.Atoi(code[0:3])
	color, _ := strconv.Atoi(code[3:6])
	tinSize, _ := strconv.Atoi(code[6:9])

	return ParsedProductCode{PaintType: paintType, Color: color, TinSize: tinSize}, nil
}

// CategorizePaintType maps a paint type code to its price segment.
// Unknown codes default to Mid-range.
func CategorizePaintType(paintType int) string {
	if cat, ok := paintCategories[paintType]; ok {
		return cat
	}
	return PaintMidRange
}

// TinPrice returns the price per tin for a category and tin size. An exact
// size hit returns directly; otherwise the nearest listed size is used, with
// ties resolving to the lower size.
func TinPrice(paintCategory string, tinSize int) float64 {
	sizePrices, ok := priceMatrix[paintCategory]
	if !ok {
		sizePrices = priceMatrix[PaintMidRange]
	}

	if price, ok := sizePrices[tinSize]; ok {
		return price
	}

	sizes := make([]int, 0, len(sizePrices))
	for size := range sizePrices {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	closest := sizes[0]
	bestDiff := abs(sizes[0] - tinSize)
	for _, size := range sizes[1:] {
		if diff := abs(size - tinSize); diff < bestDiff {
			closest = size
			bestDiff = diff
		}
	}
	return sizePrices[closest]
}

// VehicleCapacity returns the tin capacity for a vehicle name. The name is
// trimmed and title-cased first; unrecognized names get Vikram's capacity.
func VehicleCapacity(vehicle string) int {
	if c, ok := vehicleCapacity[models.NormalizeVehicle(vehicle)]; ok {
		return c
	}
	return defaultVehicleCapacity
}

// Engineer turns raw shipment records into model-ready feature records.
// It is stateless apart from the immutable profile snapshot and safe for
// concurrent use.
type Engineer struct {
	stats *profiles.Snapshot
}

// NewEngineer creates a feature engineer over a profile snapshot.
func NewEngineer(stats *profiles.Snapshot) *Engineer {
	if stats == nil {
		stats = profiles.NewSnapshot(nil, nil)
	}
	return &Engineer{stats: stats}
}

// EngineerFeatures builds the full feature record for one shipment.
// It fails only on a malformed product code; every other unknown degrades to
// a documented default, optionally noted on the warning collector in ctx.
func (e *Engineer) EngineerFeatures(ctx context.Context, shipment models.ShipmentInput) (*Features, error) {
	parsed, err := ParseProductCode(shipment.ProductCode)
	if err != nil {
		return nil, err
	}

	f := &Features{
		PaintType:  parsed.PaintType,
		Color:      parsed.Color,
		TinSize:    parsed.TinSize,
		Shipped:    shipment.Shipped,
		DealerCode: shipment.DealerCode,
	}

	f.PaintCategory = CategorizePaintType(parsed.PaintType)
	if _, known := paintCategories[parsed.PaintType]; !known {
		models.AddWarning(ctx, models.Warning{
			Code:    models.WarnUnknownPaintType,
			Message: fmt.Sprintf("paint type %d not in category map, defaulting to %s", parsed.PaintType, PaintMidRange),
		})
	}
	f.PricePerTin = TinPrice(f.PaintCategory, parsed.TinSize)
	f.ShipmentValue = float64(shipment.Shipped) * f.PricePerTin

	e.loadingMetrics(ctx, f, shipment)
	timeFeatures(f, shipment)
	e.dealerFeatures(ctx, f, shipment.DealerCode)
	e.warehouseFeatures(ctx, f, shipment.Warehouse)

	f.DealerWarehouseRisk = f.DealerHistoricalDamageRate * f.WarehouseDamageRate
	f.VehicleLoadingRisk = f.LoadingRatio * f.DealerHistoricalDamageRate
	f.ProductValueIndex = (f.PricePerTin / referencePrice) * (float64(parsed.TinSize) / referenceTinSize)

	f.VehicleEncoded = encodeVehicle(shipment.Vehicle)
	f.WarehouseEncoded = encodeWarehouse(shipment.Warehouse)
	f.PaintCategoryEncoded = encodePaintCategory(f.PaintCategory)
	f.TinSizeCategoryEncoded = encodeTinSizeCategory(parsed.TinSize)

	log.WithField("dealer_code", shipment.DealerCode).Debug("Engineered features for shipment")

	return f, nil
}

func (e *Engineer) loadingMetrics(ctx context.Context, f *Features, shipment models.ShipmentInput) {
	normalized := models.NormalizeVehicle(shipment.Vehicle)
	capacity, known := vehicleCapacity[normalized]
	if !known {
		capacity = defaultVehicleCapacity
		models.AddWarning(ctx, models.Warning{
			Code:    models.WarnUnknownVehicle,
			Message: fmt.Sprintf("vehicle %q not in capacity table, using capacity %d", shipment.Vehicle, capacity),
		})
	}

	f.VehicleCapacity = capacity
	if capacity > 0 {
		f.LoadingRatio = float64(shipment.Shipped) / float64(capacity)
	} else {
		f.LoadingRatio = 1.0
	}
	f.Overloaded = f.LoadingRatio > 1.0
	f.IsExtremeLoading = f.LoadingRatio > 1.5
	if over := shipment.Shipped - capacity; over > 0 {
		f.OverloadAmount = over
	}
}

func timeFeatures(f *Features, shipment models.ShipmentInput) {
	date := shipment.Date
	// Weekday with Monday = 0, matching the trained feature encoding
	weekday := (int(date.Weekday()) + 6) % 7
	_, isoWeek := date.ISOWeek()
	month := int(date.Month())

	f.Year = date.Year()
	f.Month = month
	f.Day = date.Day()
	f.DayOfWeek = weekday
	f.WeekOfYear = isoWeek
	f.IsWeekend = weekday >= 5
	f.IsMonthStart = date.Day() <= 5
	f.IsMonthEnd = date.Day() >= 25
	f.IsMonsoon = month >= 6 && month <= 9
	f.MonthSin = math.Sin(2 * math.Pi * float64(month) / 12)
	f.MonthCos = math.Cos(2 * math.Pi * float64(month) / 12)
	f.DayOfWeekSin = math.Sin(2 * math.Pi * float64(weekday) / 7)
	f.DayOfWeekCos = math.Cos(2 * math.Pi * float64(weekday) / 7)
}

func (e *Engineer) dealerFeatures(ctx context.Context, f *Features, dealerCode int) {
	profile, ok := e.stats.DealerProfile(dealerCode)
	if !ok {
		models.AddWarning(ctx, models.Warning{
			Code:    models.WarnUnseenDealer,
			Message: fmt.Sprintf("dealer %d has no historical profile, defaults applied", dealerCode),
		})
		profile = models.DealerProfile{
			DamageRate:     profiles.DefaultDamageRate,
			OverloadFreq:   profiles.DefaultOverloadFreq,
			TotalShipments: profiles.DefaultTotalShipments,
			RiskCategory:   profiles.DefaultRiskCategory,
		}
	}

	f.DealerHistoricalDamageRate = profile.DamageRate
	f.DealerOverloadFrequency = profile.OverloadFreq
	f.DealerTotalShipments = profile.TotalShipments
	f.DealerRiskCategoryEncoded = encodeRiskCategory(profile.RiskCategory)
}

func (e *Engineer) warehouseFeatures(ctx context.Context, f *Features, warehouse string) {
	profile, ok := e.stats.WarehouseProfile(warehouse)
	if !ok {
		models.AddWarning(ctx, models.Warning{
			Code:    models.WarnUnseenWarehouse,
			Message: fmt.Sprintf("warehouse %q has no historical profile, defaults applied", warehouse),
		})
		profile = models.WarehouseProfile{
			DamageRate:  profiles.DefaultDamageRate,
			OverloadPct: profiles.DefaultOverloadFreq,
		}
	}

	f.WarehouseDamageRate = profile.DamageRate
	f.WarehouseOverloadPct = profile.OverloadPct
}

func encodeRiskCategory(category string) int {
	switch category {
	case "Low":
		return 0
	case "Medium":
		return 1
	case "High":
		return 2
	case "Critical":
		return 3
	}
	return 1
}

// encodeVehicle encodes the raw vehicle name. Callers send normalized names
// through the API boundary; anything else encodes as Vikram.
func encodeVehicle(vehicle string) int {
	switch vehicle {
	case string(models.VehicleAutorickshaw):
		return 0
	case string(models.VehicleVikram):
		return 1
	case string(models.VehicleMinitruck):
		return 2
	}
	return 1
}

func encodeWarehouse(warehouse string) int {
	switch warehouse {
	case string(models.WarehouseNAG):
		return 0
	case string(models.WarehouseMUM):
		return 1
	case string(models.WarehouseGOA):
		return 2
	case string(models.WarehouseKOL):
		return 3
	case string(models.WarehousePUN):
		return 4
	}
	return 0
}

func encodePaintCategory(category string) int {
	switch category {
	case PaintCheap:
		return 0
	case PaintMidRange:
		return 1
	case PaintExpensive:
		return 2
	}
	return 1
}

func encodeTinSizeCategory(tinSize int) int {
	switch {
	case tinSize <= 300:
		return 0 // Small
	case tinSize <= 600:
		return 1 // Medium
	default:
		return 2 // Large
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
