package models

import (
	"context"
	"sync"
)

// WarningCode categorizes warnings by subsystem.
// W1xxx = product/pricing, W2xxx = historical profiles, W3xxx = scoring.
type WarningCode string

const (
	WarnUnknownPaintType  WarningCode = "W1001" // paint type not in the category map, defaulted to Mid-range
	WarnUnknownVehicle    WarningCode = "W1002" // vehicle name not in the capacity table, Vikram capacity used
	WarnUnseenDealer      WarningCode = "W2001" // dealer has no historical profile, defaults applied
	WarnUnseenWarehouse   WarningCode = "W2002" // warehouse has no historical profile, defaults applied
	WarnModelFallback     WarningCode = "W3001" // requested model not loaded, default model used
	WarnFallbackScore     WarningCode = "W3002" // no model available, fixed fallback rate used
	WarnMissingVectorFeat WarningCode = "W3003" // feature name absent from engineered record, zero-filled
)

// Warning represents a non-fatal default substitution encountered during
// processing. Substitutions never fail a request; warnings make them
// observable.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

type warningContextKey struct{}

// WarningCollector accumulates warnings during a prediction call chain.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []Warning
}

// NewWarningContext returns a context carrying a fresh WarningCollector,
// plus a reference to the collector so the caller can retrieve warnings later.
func NewWarningContext(ctx context.Context) (context.Context, *WarningCollector) {
	wc := &WarningCollector{}
	return context.WithValue(ctx, warningContextKey{}, wc), wc
}

// AddWarning appends a warning to the collector in ctx.
// If ctx has no collector, the call is a no-op.
func AddWarning(ctx context.Context, w Warning) {
	wc, ok := ctx.Value(warningContextKey{}).(*WarningCollector)
	if !ok || wc == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	wc.warnings = append(wc.warnings, w)
}

// GetWarnings returns all collected warnings.
func (wc *WarningCollector) GetWarnings() []Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return wc.warnings
}
