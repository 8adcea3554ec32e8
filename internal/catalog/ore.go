package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// OreID identifies an ore kind in the catalog.
type OreID string

const (
	OreIronate    OreID = "ironate"
	OreCupriteX   OreID = "cuprite_x"
	OreVelthium   OreID = "velthium"
	OreAuridium   OreID = "auridium"
	OreKrellite   OreID = "krellite"
	OreNullquartz OreID = "nullquartz"
)

// OreKind is an immutable catalog entry. Defined at program start, never
// mutated afterwards.
type OreKind struct {
	ID            OreID
	Name          string
	BaseValue     float64 // credits per unit
	MiningLevel   int     // minimum mining skill tier to extract
	MassPerUnitKg float64
}

// OreKindParams is the designer-facing construction payload.
type OreKindParams struct {
	ID            OreID   `json:"id" jsonschema:"title=Ore id,pattern=^[a-z0-9_]+$,minLength=1"`
	Name          string  `json:"name" jsonschema:"title=Display name,minLength=1"`
	BaseValue     float64 `json:"baseValue" jsonschema:"title=Base sale value in credits per unit,minimum=0"`
	MiningLevel   int     `json:"miningLevel" jsonschema:"title=Minimum mining skill tier,minimum=0"`
	MassPerUnitKg float64 `json:"massPerUnitKg" jsonschema:"title=Mass per unit in kilograms,exclusiveMinimum=0"`
}

// NewOreKind validates designer input and produces a catalog entry.
func NewOreKind(params OreKindParams) (OreKind, error) {
	id := OreID(strings.TrimSpace(string(params.ID)))
	if id == "" {
		return OreKind{}, fmt.Errorf("ore kind missing id")
	}
	if strings.TrimSpace(params.Name) == "" {
		return OreKind{}, fmt.Errorf("ore kind %q missing name", id)
	}
	if params.BaseValue < 0 {
		return OreKind{}, fmt.Errorf("ore kind %q has negative base value", id)
	}
	if params.MiningLevel < 0 {
		return OreKind{}, fmt.Errorf("ore kind %q has negative mining level", id)
	}
	if params.MassPerUnitKg <= 0 {
		return OreKind{}, fmt.Errorf("ore kind %q must have positive unit mass", id)
	}
	return OreKind{
		ID:            id,
		Name:          params.Name,
		BaseValue:     params.BaseValue,
		MiningLevel:   params.MiningLevel,
		MassPerUnitKg: params.MassPerUnitKg,
	}, nil
}

var oreCatalog = buildOreCatalog()

func buildOreCatalog() map[OreID]OreKind {
	kinds := []OreKind{
		mustDefineOre(OreKindParams{
			ID:            OreIronate,
			Name:          "Ironate",
			BaseValue:     4,
			MiningLevel:   0,
			MassPerUnitKg: 120,
		}),
		mustDefineOre(OreKindParams{
			ID:            OreCupriteX,
			Name:          "Cuprite-X",
			BaseValue:     8,
			MiningLevel:   0,
			MassPerUnitKg: 140,
		}),
		mustDefineOre(OreKindParams{
			ID:            OreVelthium,
			Name:          "Velthium",
			BaseValue:     15,
			MiningLevel:   20,
			MassPerUnitKg: 160,
		}),
		mustDefineOre(OreKindParams{
			ID:            OreAuridium,
			Name:          "Auridium",
			BaseValue:     28,
			MiningLevel:   40,
			MassPerUnitKg: 210,
		}),
		mustDefineOre(OreKindParams{
			ID:            OreKrellite,
			Name:          "Krellite",
			BaseValue:     46,
			MiningLevel:   65,
			MassPerUnitKg: 250,
		}),
		mustDefineOre(OreKindParams{
			ID:            OreNullquartz,
			Name:          "Nullquartz",
			BaseValue:     80,
			MiningLevel:   85,
			MassPerUnitKg: 300,
		}),
	}

	catalog := make(map[OreID]OreKind, len(kinds))
	for _, kind := range kinds {
		catalog[kind.ID] = kind
	}
	return catalog
}

func mustDefineOre(params OreKindParams) OreKind {
	kind, err := NewOreKind(params)
	if err != nil {
		panic(err)
	}
	return kind
}

// OreKindFor fetches the catalog entry for a given ore id.
func OreKindFor(id OreID) (OreKind, bool) {
	kind, ok := oreCatalog[id]
	return kind, ok
}

// OreKinds returns the list of ore kinds sorted by identifier. The sorted
// order is the canonical iteration order for selection tie-breaking.
func OreKinds() []OreKind {
	kinds := make([]OreKind, 0, len(oreCatalog))
	for _, kind := range oreCatalog {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].ID < kinds[j].ID
	})
	return kinds
}

// OreKindCount reports how many ore kinds the catalog defines. Mastery XP
// awards scale by this total.
func OreKindCount() int {
	return len(oreCatalog)
}
