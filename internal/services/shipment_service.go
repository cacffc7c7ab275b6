package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/paintops/damagecast/internal/features"
	"github.com/paintops/damagecast/internal/models"
)

// List guards
const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// ShipmentStore is the persistence surface the shipment service needs.
// Lookups of missing ids return models.ErrShipmentNotFound.
type ShipmentStore interface {
	Insert(ctx context.Context, sh *models.Shipment) error
	InsertMany(ctx context.Context, shipments []*models.Shipment) error
	GetByID(ctx context.Context, id int64) (*models.Shipment, error)
	List(ctx context.Context, filter models.ShipmentFilter) ([]models.Shipment, int, error)
	Update(ctx context.Context, sh *models.Shipment) error
	Delete(ctx context.Context, id int64) error
}

// ShipmentService handles shipment record business logic
type ShipmentService struct {
	store ShipmentStore
}

// NewShipmentService creates a new ShipmentService
func NewShipmentService(store ShipmentStore) *ShipmentService {
	return &ShipmentService{store: store}
}

// Create validates and persists a new shipment record. When the returned
// count is already known the damage metrics are computed up front.
func (s *ShipmentService) Create(ctx context.Context, req *models.CreateShipmentRequest) (*models.Shipment, error) {
	input, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	sh := shipmentFromInput(input, req.Returned, time.Now())
	if err := s.store.Insert(ctx, sh); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"shipment_id": sh.ID,
		"dealer_code": sh.DealerCode,
	}).Info("Shipment recorded")

	return sh, nil
}

// ImportShipments validates parsed CSV rows against the same rules as the
// API boundary and inserts the valid ones. Row failures are reported in the
// result instead of aborting the file.
func (s *ShipmentService) ImportShipments(ctx context.Context, reqs []models.CreateShipmentRequest) (*models.ImportResult, error) {
	result := &models.ImportResult{TotalRows: len(reqs)}
	now := time.Now()

	valid := make([]*models.Shipment, 0, len(reqs))
	for i := range reqs {
		input, err := reqs[i].Normalize()
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.ImportRowError{Row: i + 1, Error: err.Error()})
			continue
		}
		valid = append(valid, shipmentFromInput(input, reqs[i].Returned, now))
	}

	if len(valid) > 0 {
		if err := s.store.InsertMany(ctx, valid); err != nil {
			return nil, err
		}
	}
	result.Imported = len(valid)

	log.WithFields(log.Fields{
		"imported": result.Imported,
		"failed":   result.Failed,
	}).Info("Shipment import completed")

	return result, nil
}

// Get returns one shipment by id.
func (s *ShipmentService) Get(ctx context.Context, id int64) (*models.Shipment, error) {
	return s.store.GetByID(ctx, id)
}

// List returns shipments matching the filter plus the total match count.
// Limits outside [1, 1000] are normalized in place so callers can report
// the paging that was actually applied.
func (s *ShipmentService) List(ctx context.Context, filter *models.ShipmentFilter) ([]models.Shipment, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.store.List(ctx, *filter)
}

// SetReturned records the returned-tin count after delivery and recomputes
// the damage metrics against the stored shipped count.
func (s *ShipmentService) SetReturned(ctx context.Context, id int64, returned int) (*models.Shipment, error) {
	sh, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if returned < 0 {
		return nil, fmt.Errorf("%w: returned tins cannot be negative", models.ErrValidation)
	}
	if returned > sh.Shipped {
		return nil, fmt.Errorf("%w: returned tins (%d) cannot exceed shipped tins (%d)", models.ErrValidation, returned, sh.Shipped)
	}

	applyReturn(sh, returned)
	sh.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, sh); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"shipment_id": sh.ID,
		"returned":    returned,
	}).Info("Shipment return recorded")

	return sh, nil
}

// Delete removes a shipment record.
func (s *ShipmentService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// shipmentFromInput builds a record from a validated input, deriving the
// damage metrics when the returned count is already known.
func shipmentFromInput(input models.ShipmentInput, returned *int, now time.Time) *models.Shipment {
	sh := &models.Shipment{
		Date:        input.Date,
		DealerCode:  input.DealerCode,
		Warehouse:   input.Warehouse,
		ProductCode: input.ProductCode,
		Vehicle:     input.Vehicle,
		Shipped:     input.Shipped,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if returned != nil {
		applyReturn(sh, *returned)
	}
	return sh
}

// applyReturn sets the returned count and the metrics derived from it.
func applyReturn(sh *models.Shipment, returned int) {
	rate := 0.0
	if sh.Shipped > 0 {
		rate = float64(returned) / float64(sh.Shipped)
	}
	loss := float64(returned) * tinPriceFor(sh.ProductCode)

	sh.Returned = &returned
	sh.DamageRate = &rate
	sh.LossValue = &loss
}

// tinPriceFor resolves the per-tin price from a product code. Codes are
// validated at the boundary, so a parse failure here just prices at zero.
func tinPriceFor(productCode string) float64 {
	parsed, err := features.ParseProductCode(productCode)
	if err != nil {
		return 0
	}
	return features.TinPrice(features.CategorizePaintType(parsed.PaintType), parsed.TinSize)
}
