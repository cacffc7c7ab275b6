package profiles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/paintops/damagecast/internal/models"
)

// Defaults substituted when a dealer or warehouse has no historical profile,
// or a profile omits a field.
const (
	DefaultDamageRate     = 0.06
	DefaultOverloadFreq   = 0.20
	DefaultTotalShipments = 100
	DefaultRiskCategory   = "Medium"
)

// Snapshot holds the per-dealer and per-warehouse historical aggregates.
// It is loaded once at startup and never mutated afterwards, so concurrent
// readers need no locking.
type Snapshot struct {
	dealers    map[int]models.DealerProfile
	warehouses map[string]models.WarehouseProfile
}

// NewSnapshot builds a snapshot from already-materialized profile maps.
// Nil maps are treated as empty.
func NewSnapshot(dealers map[int]models.DealerProfile, warehouses map[string]models.WarehouseProfile) *Snapshot {
	if dealers == nil {
		dealers = map[int]models.DealerProfile{}
	}
	if warehouses == nil {
		warehouses = map[string]models.WarehouseProfile{}
	}
	return &Snapshot{dealers: dealers, warehouses: warehouses}
}

// DealerProfile returns the profile for a dealer code. The second return
// reports whether the dealer was present in the loaded artifact.
func (s *Snapshot) DealerProfile(code int) (models.DealerProfile, bool) {
	p, ok := s.dealers[code]
	return p, ok
}

// WarehouseProfile returns the profile for a warehouse code.
func (s *Snapshot) WarehouseProfile(code string) (models.WarehouseProfile, bool) {
	p, ok := s.warehouses[code]
	return p, ok
}

// DealerCount returns the number of loaded dealer profiles.
func (s *Snapshot) DealerCount() int { return len(s.dealers) }

// WarehouseCount returns the number of loaded warehouse profiles.
func (s *Snapshot) WarehouseCount() int { return len(s.warehouses) }

// rawDealerProfile mirrors the artifact JSON with optional fields so that
// partial profiles pick up per-field defaults.
type rawDealerProfile struct {
	DamageRate      *float64 `json:"damage_rate"`
	OverloadFreq    *float64 `json:"overload_freq"`
	TotalShipments  *int     `json:"total_shipments"`
	AvgShipmentSize *float64 `json:"avg_shipment_size"`
	TotalLoss       *float64 `json:"total_loss"`
	RiskCategory    *string  `json:"risk_category"`
}

type rawWarehouseProfile struct {
	DamageRate     *float64 `json:"damage_rate"`
	OverloadPct    *float64 `json:"overload_pct"`
	TotalShipments *int     `json:"total_shipments"`
	TotalLoss      *float64 `json:"total_loss"`
}

// Load reads dealer_profiles.json and warehouse_profiles.json from dir.
// Missing or unreadable artifacts are logged and skipped rather than
// failing startup; lookups then fall back to the documented defaults.
func Load(dir string) *Snapshot {
	s := NewSnapshot(nil, nil)

	if raw, ok := readArtifact(filepath.Join(dir, "dealer_profiles.json")); ok {
		var parsed map[string]rawDealerProfile
		if err := json.Unmarshal(raw, &parsed); err != nil {
			log.WithError(err).Warn("Could not parse dealer profiles, continuing without them")
		} else {
			for key, rp := range parsed {
				code, err := strconv.Atoi(key)
				if err != nil {
					log.WithField("dealer_key", key).Warn("Skipping dealer profile with non-numeric key")
					continue
				}
				s.dealers[code] = materializeDealer(rp)
			}
			log.WithField("dealers", len(s.dealers)).Info("Dealer profiles loaded")
		}
	}

	if raw, ok := readArtifact(filepath.Join(dir, "warehouse_profiles.json")); ok {
		var parsed map[string]rawWarehouseProfile
		if err := json.Unmarshal(raw, &parsed); err != nil {
			log.WithError(err).Warn("Could not parse warehouse profiles, continuing without them")
		} else {
			for code, rp := range parsed {
				s.warehouses[code] = materializeWarehouse(rp)
			}
			log.WithField("warehouses", len(s.warehouses)).Info("Warehouse profiles loaded")
		}
	}

	return s
}

func readArtifact(path string) ([]byte, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("path", path).Warn("Profile artifact not found, defaults will be used")
		} else {
			log.WithError(err).WithField("path", path).Warn("Could not read profile artifact")
		}
		return nil, false
	}
	return raw, true
}

func materializeDealer(rp rawDealerProfile) models.DealerProfile {
	p := models.DealerProfile{
		DamageRate:     DefaultDamageRate,
		OverloadFreq:   DefaultOverloadFreq,
		TotalShipments: DefaultTotalShipments,
		RiskCategory:   DefaultRiskCategory,
	}
	if rp.DamageRate != nil {
		p.DamageRate = *rp.DamageRate
	}
	if rp.OverloadFreq != nil {
		p.OverloadFreq = *rp.OverloadFreq
	}
	if rp.TotalShipments != nil {
		p.TotalShipments = *rp.TotalShipments
	}
	if rp.AvgShipmentSize != nil {
		p.AvgShipmentSize = *rp.AvgShipmentSize
	}
	if rp.TotalLoss != nil {
		p.TotalLoss = *rp.TotalLoss
	}
	if rp.RiskCategory != nil {
		p.RiskCategory = *rp.RiskCategory
	}
	return p
}

func materializeWarehouse(rp rawWarehouseProfile) models.WarehouseProfile {
	p := models.WarehouseProfile{
		DamageRate:  DefaultDamageRate,
		OverloadPct: DefaultOverloadFreq,
	}
	if rp.DamageRate != nil {
		p.DamageRate = *rp.DamageRate
	}
	if rp.OverloadPct != nil {
		p.OverloadPct = *rp.OverloadPct
	}
	if rp.TotalShipments != nil {
		p.TotalShipments = *rp.TotalShipments
	}
	if rp.TotalLoss != nil {
		p.TotalLoss = *rp.TotalLoss
	}
	return p
}
