package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/paintops/damagecast/internal/models"
)

type memShipmentStore struct {
	mu         sync.Mutex
	nextID     int64
	rows       map[int64]models.Shipment
	lastFilter models.ShipmentFilter
}

func newMemShipmentStore() *memShipmentStore {
	return &memShipmentStore{rows: make(map[int64]models.Shipment)}
}

func (s *memShipmentStore) Insert(_ context.Context, sh *models.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	sh.ID = s.nextID
	s.rows[sh.ID] = *sh
	return nil
}

func (s *memShipmentStore) InsertMany(_ context.Context, shipments []*models.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range shipments {
		s.nextID++
		sh.ID = s.nextID
		s.rows[sh.ID] = *sh
	}
	return nil
}

func (s *memShipmentStore) GetByID(_ context.Context, id int64) (*models.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.rows[id]
	if !ok {
		return nil, models.ErrShipmentNotFound
	}
	row := sh
	return &row, nil
}

func (s *memShipmentStore) List(_ context.Context, filter models.ShipmentFilter) ([]models.Shipment, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastFilter = filter
	out := make([]models.Shipment, 0, len(s.rows))
	for _, sh := range s.rows {
		out = append(out, sh)
	}
	return out, len(out), nil
}

func (s *memShipmentStore) Update(_ context.Context, sh *models.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[sh.ID]; !ok {
		return models.ErrShipmentNotFound
	}
	s.rows[sh.ID] = *sh
	return nil
}

func (s *memShipmentStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[id]; !ok {
		return models.ErrShipmentNotFound
	}
	delete(s.rows, id)
	return nil
}

func testCreateRequest() *models.CreateShipmentRequest {
	return &models.CreateShipmentRequest{
		Date:        models.FlexibleTime{Time: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		DealerCode:  42,
		Warehouse:   "mum",
		ProductCode: "321456678",
		Vehicle:     "minitruck",
		Shipped:     20,
	}
}

// TestCreateShipmentWithReturn computes the damage metrics up front when the
// returned count is already known, and canonicalizes the closed-set fields.
func TestCreateShipmentWithReturn(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	req := testCreateRequest()
	returned := 5
	req.Returned = &returned

	sh, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sh.ID != 1 {
		t.Errorf("Expected id 1, got %d", sh.ID)
	}
	if sh.Warehouse != "MUM" || sh.Vehicle != "Minitruck" {
		t.Errorf("Expected canonical MUM/Minitruck, got %s/%s", sh.Warehouse, sh.Vehicle)
	}
	if sh.Returned == nil || *sh.Returned != 5 {
		t.Errorf("Expected returned 5, got %v", sh.Returned)
	}
	if sh.DamageRate == nil || *sh.DamageRate != 0.25 {
		t.Errorf("Expected damage rate 0.25, got %v", sh.DamageRate)
	}
	// Expensive paint in a 678 tin prices at 800 per tin.
	if sh.LossValue == nil || *sh.LossValue != 4000 {
		t.Errorf("Expected loss 4000, got %v", sh.LossValue)
	}
	if sh.CreatedAt.IsZero() || sh.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
}

// TestCreateShipmentWithoutReturn leaves the damage metrics unset until the
// return count arrives.
func TestCreateShipmentWithoutReturn(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	sh, err := svc.Create(context.Background(), testCreateRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if sh.Returned != nil || sh.DamageRate != nil || sh.LossValue != nil {
		t.Errorf("Expected unset metrics, got returned=%v rate=%v loss=%v", sh.Returned, sh.DamageRate, sh.LossValue)
	}
}

// TestCreateShipmentValidation rejects bad closed-set values and impossible
// return counts before anything is stored.
func TestCreateShipmentValidation(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	badWarehouse := testCreateRequest()
	badWarehouse.Warehouse = "DEL"
	if _, err := svc.Create(context.Background(), badWarehouse); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown warehouse, got %v", err)
	}

	tooMany := testCreateRequest()
	returned := 25
	tooMany.Returned = &returned
	if _, err := svc.Create(context.Background(), tooMany); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for returned > shipped, got %v", err)
	}

	if len(store.rows) != 0 {
		t.Errorf("Expected nothing stored, got %d rows", len(store.rows))
	}
}

// TestImportShipments inserts valid rows and reports row-numbered errors
// for the rest without aborting the import.
func TestImportShipments(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	returned := 2
	reqs := []models.CreateShipmentRequest{
		*testCreateRequest(),
		{
			Date:        models.FlexibleTime{Time: time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
			DealerCode:  8,
			Warehouse:   "DEL",
			ProductCode: "123234345",
			Vehicle:     "Vikram",
			Shipped:     10,
		},
		{
			Date:        models.FlexibleTime{Time: time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC)},
			DealerCode:  9,
			Warehouse:   "KOL",
			ProductCode: "123234345",
			Vehicle:     "Vikram",
			Shipped:     10,
			Returned:    &returned,
		},
	}

	result, err := svc.ImportShipments(context.Background(), reqs)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.TotalRows != 3 || result.Imported != 2 || result.Failed != 1 {
		t.Errorf("Expected 3/2/1, got %d/%d/%d", result.TotalRows, result.Imported, result.Failed)
	}
	if len(result.Errors) != 1 || result.Errors[0].Row != 2 {
		t.Fatalf("Expected one error on row 2, got %+v", result.Errors)
	}
	if len(store.rows) != 2 {
		t.Errorf("Expected 2 stored rows, got %d", len(store.rows))
	}

	// Cheap paint in a 345 tin prices at 70 per tin.
	stored, err := store.GetByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stored.LossValue == nil || *stored.LossValue != 140 {
		t.Errorf("Expected loss 140, got %v", stored.LossValue)
	}
}

// TestSetReturnedRecomputesMetrics recomputes the damage metrics against the
// stored shipped count and persists the update.
func TestSetReturnedRecomputesMetrics(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	created, err := svc.Create(context.Background(), testCreateRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	updated, err := svc.SetReturned(context.Background(), created.ID, 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if updated.DamageRate == nil || *updated.DamageRate != 0.2 {
		t.Errorf("Expected damage rate 0.2, got %v", updated.DamageRate)
	}
	if updated.LossValue == nil || *updated.LossValue != 3200 {
		t.Errorf("Expected loss 3200, got %v", updated.LossValue)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Error("Expected UpdatedAt to move forward")
	}

	stored, err := store.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stored.Returned == nil || *stored.Returned != 4 {
		t.Errorf("Expected the update to be persisted, got %v", stored.Returned)
	}
}

// TestSetReturnedValidation rejects negative and impossible counts and
// propagates missing ids.
func TestSetReturnedValidation(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	created, err := svc.Create(context.Background(), testCreateRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := svc.SetReturned(context.Background(), created.ID, -1); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for negative count, got %v", err)
	}
	if _, err := svc.SetReturned(context.Background(), created.ID, 21); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for count above shipped, got %v", err)
	}
	if _, err := svc.SetReturned(context.Background(), 999, 1); !errors.Is(err, models.ErrShipmentNotFound) {
		t.Errorf("Expected ErrShipmentNotFound, got %v", err)
	}
}

// TestListNormalizesPaging clamps the limit into [1, 1000] and floors the
// offset at zero before hitting the store.
func TestListNormalizesPaging(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	testCases := []struct {
		name           string
		filter         models.ShipmentFilter
		expectedLimit  int
		expectedOffset int
	}{
		{"defaults", models.ShipmentFilter{}, 100, 0},
		{"cap", models.ShipmentFilter{Limit: 5000}, 1000, 0},
		{"negative offset", models.ShipmentFilter{Limit: 10, Offset: -2}, 10, 0},
		{"passthrough", models.ShipmentFilter{Limit: 25, Offset: 50}, 25, 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := svc.List(context.Background(), &tc.filter); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if store.lastFilter.Limit != tc.expectedLimit {
				t.Errorf("Expected limit %d, got %d", tc.expectedLimit, store.lastFilter.Limit)
			}
			if store.lastFilter.Offset != tc.expectedOffset {
				t.Errorf("Expected offset %d, got %d", tc.expectedOffset, store.lastFilter.Offset)
			}
		})
	}
}

// TestDeleteShipment removes the row and surfaces missing ids.
func TestDeleteShipment(t *testing.T) {
	store := newMemShipmentStore()
	svc := NewShipmentService(store)

	created, err := svc.Create(context.Background(), testCreateRequest())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, models.ErrShipmentNotFound) {
		t.Errorf("Expected ErrShipmentNotFound, got %v", err)
	}
}
