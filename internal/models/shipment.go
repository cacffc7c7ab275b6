package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrValidation is the sentinel for boundary validation failures.
// Handlers map it to HTTP 400.
var ErrValidation = errors.New("validation failed")

// ErrShipmentNotFound is the sentinel for lookups of missing shipments.
// Handlers map it to HTTP 404.
var ErrShipmentNotFound = errors.New("shipment not found")

// VehicleType represents the vehicle used for a shipment
type VehicleType string

const (
	VehicleAutorickshaw VehicleType = "Autorickshaw"
	VehicleVikram       VehicleType = "Vikram"
	VehicleMinitruck    VehicleType = "Minitruck"
)

// Warehouse represents a dispatch warehouse code
type Warehouse string

const (
	WarehouseNAG Warehouse = "NAG"
	WarehouseMUM Warehouse = "MUM"
	WarehouseGOA Warehouse = "GOA"
	WarehouseKOL Warehouse = "KOL"
	WarehousePUN Warehouse = "PUN"
)

// ValidWarehouses is the closed set of dispatch warehouse codes.
var ValidWarehouses = map[string]bool{
	string(WarehouseNAG): true,
	string(WarehouseMUM): true,
	string(WarehouseGOA): true,
	string(WarehouseKOL): true,
	string(WarehousePUN): true,
}

// ValidVehicles is the closed set of vehicle type names.
var ValidVehicles = map[string]bool{
	string(VehicleAutorickshaw): true,
	string(VehicleVikram):       true,
	string(VehicleMinitruck):    true,
}

// ShipmentInput is the immutable raw shipment record the prediction
// pipeline consumes. Boundary validation (Normalize on the request types)
// guarantees warehouse/vehicle are members of their closed sets; the core
// still degrades gracefully when they are not.
type ShipmentInput struct {
	Date        time.Time `json:"date"`
	DealerCode  int       `json:"dealer_code"`
	Warehouse   string    `json:"warehouse"`
	ProductCode string    `json:"product_code"`
	Vehicle     string    `json:"vehicle"`
	Shipped     int       `json:"shipped"`
}

// Shipment is a persisted historical shipment record
type Shipment struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	DealerCode  int       `json:"dealer_code"`
	Warehouse   string    `json:"warehouse"`
	ProductCode string    `json:"product_code"`
	Vehicle     string    `json:"vehicle"`
	Shipped     int       `json:"shipped"`
	Returned    *int      `json:"returned,omitempty"`
	DamageRate  *float64  `json:"damage_rate,omitempty"`
	LossValue   *float64  `json:"loss_value,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateShipmentRequest represents the request body for recording a shipment
type CreateShipmentRequest struct {
	Date        FlexibleTime `json:"date" binding:"required" swaggertype:"string"`
	DealerCode  int          `json:"dealer_code" binding:"required,min=1,max=100"`
	Warehouse   string       `json:"warehouse" binding:"required"`
	ProductCode string       `json:"product_code" binding:"required"`
	Vehicle     string       `json:"vehicle" binding:"required"`
	Shipped     int          `json:"shipped" binding:"required,min=1"`
	Returned    *int         `json:"returned,omitempty"`
}

// UpdateShipmentRequest records the returned-tin count after delivery
type UpdateShipmentRequest struct {
	Returned *int `json:"returned" binding:"required,min=0"`
}

// ShipmentFilter narrows shipment listings
type ShipmentFilter struct {
	DealerCode int        `form:"dealer_code"`
	Warehouse  string     `form:"warehouse"`
	StartDate  *time.Time `form:"-"`
	EndDate    *time.Time `form:"-"`
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
}

// NormalizeVehicle trims whitespace and title-cases a vehicle name so
// "minitruck" and " MINITRUCK " both resolve to "Minitruck".
func NormalizeVehicle(vehicle string) string {
	fields := strings.Fields(strings.TrimSpace(vehicle))
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + strings.ToLower(f[1:])
	}
	return strings.Join(fields, " ")
}

// IsProductCode reports whether s is exactly 9 ASCII digits.
func IsProductCode(s string) bool {
	if len(s) != 9 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Normalize validates the closed-set fields and returns the canonical
// ShipmentInput. Warehouse codes are upper-cased and vehicle names
// title-cased before membership checks, matching what callers actually send.
func (r *CreateShipmentRequest) Normalize() (ShipmentInput, error) {
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

	if r.Returned != nil && (*r.Returned < 0 || *r.Returned > r.Shipped) {
		return ShipmentInput{}, fmt.Errorf("%w: returned tins must be between 0 and the shipped count", ErrValidation)
	}

	return ShipmentInput{
		Date:        r.Date.Time,
		DealerCode:  r.DealerCode,
		Warehouse:   warehouse,
		ProductCode: r.ProductCode,
		Vehicle:     vehicle,
		Shipped:     r.Shipped,
	}, nil
}
