package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// EquipmentID identifies an equipment kind in the catalog.
type EquipmentID string

const (
	EquipBoreDrill       EquipmentID = "bore_drill"
	EquipPlasmaCutter    EquipmentID = "plasma_cutter"
	EquipSeismicRig      EquipmentID = "seismic_rig"
	EquipHarmonicArray   EquipmentID = "harmonic_array"
	EquipCargoStabiliser EquipmentID = "cargo_stabiliser"
)

// EquipmentCategory partitions ship equipment by function. Only the mining
// category is visible to the extraction engine.
type EquipmentCategory string

const (
	CategoryMining  EquipmentCategory = "mining"
	CategoryUtility EquipmentCategory = "utility"
)

// MiningEquipmentKind is an immutable catalog entry for a piece of ship
// equipment.
type MiningEquipmentKind struct {
	ID          EquipmentID
	Name        string
	Category    EquipmentCategory
	Rate        float64 // extraction rate multiplier
	MiningLevel int     // minimum mining skill tier to operate
	PowerDraw   float64 // kW drawn while powered
}

// MiningEquipmentKindParams is the designer-facing construction payload.
type MiningEquipmentKindParams struct {
	ID          EquipmentID       `json:"id" jsonschema:"title=Equipment id,pattern=^[a-z0-9_]+$,minLength=1"`
	Name        string            `json:"name" jsonschema:"title=Display name,minLength=1"`
	Category    EquipmentCategory `json:"category" jsonschema:"title=Equipment category,enum=mining,enum=utility"`
	Rate        float64           `json:"rate" jsonschema:"title=Extraction rate multiplier,exclusiveMinimum=0"`
	MiningLevel int               `json:"miningLevel" jsonschema:"title=Minimum mining skill tier,minimum=0"`
	PowerDraw   float64           `json:"powerDraw" jsonschema:"title=Power draw in kW,minimum=0"`
}

// NewMiningEquipmentKind validates designer input and produces a catalog
// entry.
func NewMiningEquipmentKind(params MiningEquipmentKindParams) (MiningEquipmentKind, error) {
	id := EquipmentID(strings.TrimSpace(string(params.ID)))
	if id == "" {
		return MiningEquipmentKind{}, fmt.Errorf("equipment kind missing id")
	}
	if strings.TrimSpace(params.Name) == "" {
		return MiningEquipmentKind{}, fmt.Errorf("equipment kind %q missing name", id)
	}
	switch params.Category {
	case CategoryMining, CategoryUtility:
	default:
		return MiningEquipmentKind{}, fmt.Errorf("equipment kind %q has unknown category %q", id, params.Category)
	}
	if params.Rate <= 0 {
		return MiningEquipmentKind{}, fmt.Errorf("equipment kind %q must have positive rate", id)
	}
	if params.MiningLevel < 0 {
		return MiningEquipmentKind{}, fmt.Errorf("equipment kind %q has negative mining level", id)
	}
	if params.PowerDraw < 0 {
		return MiningEquipmentKind{}, fmt.Errorf("equipment kind %q has negative power draw", id)
	}
	return MiningEquipmentKind{
		ID:          id,
		Name:        params.Name,
		Category:    params.Category,
		Rate:        params.Rate,
		MiningLevel: params.MiningLevel,
		PowerDraw:   params.PowerDraw,
	}, nil
}

var equipmentCatalog = buildEquipmentCatalog()

func buildEquipmentCatalog() map[EquipmentID]MiningEquipmentKind {
	kinds := []MiningEquipmentKind{
		mustDefineEquipment(MiningEquipmentKindParams{
			ID:          EquipBoreDrill,
			Name:        "Bore Drill",
			Category:    CategoryMining,
			Rate:        1.0,
			MiningLevel: 0,
			PowerDraw:   8,
		}),
		mustDefineEquipment(MiningEquipmentKindParams{
			ID:          EquipPlasmaCutter,
			Name:        "Plasma Cutter",
			Category:    CategoryMining,
			Rate:        1.6,
			MiningLevel: 15,
			PowerDraw:   14,
		}),
		mustDefineEquipment(MiningEquipmentKindParams{
			ID:          EquipSeismicRig,
			Name:        "Seismic Rig",
			Category:    CategoryMining,
			Rate:        2.4,
			MiningLevel: 35,
			PowerDraw:   22,
		}),
		mustDefineEquipment(MiningEquipmentKindParams{
			ID:          EquipHarmonicArray,
			Name:        "Harmonic Array",
			Category:    CategoryMining,
			Rate:        3.5,
			MiningLevel: 60,
			PowerDraw:   35,
		}),
		mustDefineEquipment(MiningEquipmentKindParams{
			ID:          EquipCargoStabiliser,
			Name:        "Cargo Stabiliser",
			Category:    CategoryUtility,
			Rate:        0.1,
			MiningLevel: 0,
			PowerDraw:   4,
		}),
	}

	catalog := make(map[EquipmentID]MiningEquipmentKind, len(kinds))
	for _, kind := range kinds {
		catalog[kind.ID] = kind
	}
	return catalog
}

func mustDefineEquipment(params MiningEquipmentKindParams) MiningEquipmentKind {
	kind, err := NewMiningEquipmentKind(params)
	if err != nil {
		panic(err)
	}
	return kind
}

// EquipmentKindFor fetches the catalog entry for a given equipment id.
func EquipmentKindFor(id EquipmentID) (MiningEquipmentKind, bool) {
	kind, ok := equipmentCatalog[id]
	return kind, ok
}

// EquipmentKinds returns the list of equipment kinds sorted by identifier.
func EquipmentKinds() []MiningEquipmentKind {
	kinds := make([]MiningEquipmentKind, 0, len(equipmentCatalog))
	for _, kind := range equipmentCatalog {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].ID < kinds[j].ID
	})
	return kinds
}
