package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestNewOreKindValidation(t *testing.T) {
	valid := OreKindParams{
		ID:            "regolith",
		Name:          "Regolith",
		BaseValue:     2,
		MiningLevel:   0,
		MassPerUnitKg: 90,
	}
	if _, err := NewOreKind(valid); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*OreKindParams)
	}{
		{name: "missing id", mutate: func(p *OreKindParams) { p.ID = " " }},
		{name: "missing name", mutate: func(p *OreKindParams) { p.Name = "" }},
		{name: "negative value", mutate: func(p *OreKindParams) { p.BaseValue = -1 }},
		{name: "negative level", mutate: func(p *OreKindParams) { p.MiningLevel = -1 }},
		{name: "zero mass", mutate: func(p *OreKindParams) { p.MassPerUnitKg = 0 }},
	}
	for _, tc := range cases {
		params := valid
		tc.mutate(&params)
		if _, err := NewOreKind(params); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestNewMiningEquipmentKindValidation(t *testing.T) {
	valid := MiningEquipmentKindParams{
		ID:       "test_laser",
		Name:     "Test Laser",
		Category: CategoryMining,
		Rate:     1.2,
	}
	if _, err := NewMiningEquipmentKind(valid); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*MiningEquipmentKindParams)
	}{
		{name: "missing id", mutate: func(p *MiningEquipmentKindParams) { p.ID = "" }},
		{name: "unknown category", mutate: func(p *MiningEquipmentKindParams) { p.Category = "weapons" }},
		{name: "zero rate", mutate: func(p *MiningEquipmentKindParams) { p.Rate = 0 }},
		{name: "negative power", mutate: func(p *MiningEquipmentKindParams) { p.PowerDraw = -1 }},
	}
	for _, tc := range cases {
		params := valid
		tc.mutate(&params)
		if _, err := NewMiningEquipmentKind(params); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestOreKindsSortedByID(t *testing.T) {
	kinds := OreKinds()
	if len(kinds) < 6 {
		t.Fatalf("catalog has %d ore kinds, want at least the 6 built-ins", len(kinds))
	}
	if !sort.SliceIsSorted(kinds, func(i, j int) bool { return kinds[i].ID < kinds[j].ID }) {
		t.Fatalf("ore kinds not sorted by id")
	}

	for _, id := range []OreID{OreIronate, OreCupriteX, OreVelthium, OreAuridium, OreKrellite, OreNullquartz} {
		if _, ok := OreKindFor(id); !ok {
			t.Fatalf("built-in ore %s missing", id)
		}
	}
	if _, ok := OreKindFor("unobtanium"); ok {
		t.Fatalf("unknown ore resolved")
	}
}

func TestEquipmentTierProgression(t *testing.T) {
	// Higher-rate equipment gates behind higher mining skill.
	order := []EquipmentID{EquipBoreDrill, EquipPlasmaCutter, EquipSeismicRig, EquipHarmonicArray}
	prevRate, prevGate := 0.0, -1
	for _, id := range order {
		kind, ok := EquipmentKindFor(id)
		if !ok {
			t.Fatalf("built-in equipment %s missing", id)
		}
		if kind.Category != CategoryMining {
			t.Fatalf("%s categorised as %s", id, kind.Category)
		}
		if kind.Rate <= prevRate || kind.MiningLevel <= prevGate {
			t.Fatalf("%s breaks tier progression: rate=%v gate=%d", id, kind.Rate, kind.MiningLevel)
		}
		prevRate, prevGate = kind.Rate, kind.MiningLevel
	}
}

func TestLoadOverlayMergesEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	doc := `{
		"ores": [
			{"id": "test_regolith", "name": "Regolith", "baseValue": 2, "miningLevel": 0, "massPerUnitKg": 90}
		],
		"equipment": [
			{"id": "test_auger", "name": "Test Auger", "category": "mining", "rate": 1.3, "miningLevel": 5, "powerDraw": 10}
		]
	}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	if err := LoadOverlay(path); err != nil {
		t.Fatalf("load overlay: %v", err)
	}
	ore, ok := OreKindFor("test_regolith")
	if !ok || ore.MassPerUnitKg != 90 {
		t.Fatalf("overlay ore not merged: %+v ok=%v", ore, ok)
	}
	equip, ok := EquipmentKindFor("test_auger")
	if !ok || equip.Rate != 1.3 {
		t.Fatalf("overlay equipment not merged: %+v ok=%v", equip, ok)
	}
}

func TestLoadOverlayMissingFileIsFine(t *testing.T) {
	if err := LoadOverlay(filepath.Join(t.TempDir(), "absent.json")); err != nil {
		t.Fatalf("missing overlay errored: %v", err)
	}
}

func TestLoadOverlayRejectsBadDocuments(t *testing.T) {
	dir := t.TempDir()

	malformed := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(malformed, []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadOverlay(malformed); err == nil {
		t.Fatalf("malformed overlay accepted")
	}

	invalid := filepath.Join(dir, "invalid.json")
	doc := `{"ores": [{"id": "bad_ore", "name": "Bad", "baseValue": 1, "massPerUnitKg": 0}]}`
	if err := os.WriteFile(invalid, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := LoadOverlay(invalid); err == nil {
		t.Fatalf("invalid ore accepted")
	}
}
