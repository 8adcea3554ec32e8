package universe

import (
	"os"
	"path/filepath"
	"testing"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

func writeUniverse(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "universe.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write universe file: %v", err)
	}
	return path
}

func TestLoadParsesUniverseFile(t *testing.T) {
	path := writeUniverse(t, `
locations:
  - key: test_belt
    name: Test Belt
    type: belt
    services: [mine]
    offerings:
      - ore: ironate
        multiplier: 1.2
  - key: test_station
    name: Test Station
    type: station
    services: [trade]
fleet:
  credits: 250
  ships:
    - name: SV Probe
      location: test_belt
      oreCapacityKg: 3000
      equipment: [bore_drill]
      crew:
        - name: Solo
          role: mining_ops
          skills:
            mining: 12
          traits: [prospector]
`)

	u, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(u.Locations) != 2 {
		t.Fatalf("got %d locations, want 2", len(u.Locations))
	}

	belt := u.LocationByKey("test_belt")
	if belt == nil || !belt.Minable() {
		t.Fatalf("belt not loaded or not minable: %+v", belt)
	}
	if mult, ok := belt.OfferingFor(catalog.OreIronate); !ok || mult != 1.2 {
		t.Fatalf("ironate offering = %v ok=%v, want 1.2", mult, ok)
	}

	if u.Fleet.Credits != 250 {
		t.Fatalf("fleet credits = %v, want 250", u.Fleet.Credits)
	}
	if len(u.Fleet.Ships) != 1 {
		t.Fatalf("got %d ships, want 1", len(u.Fleet.Ships))
	}
	ship := u.Fleet.Ships[0]
	if ship.OreCapacityKg != 3000 || ship.LocationKey != "test_belt" {
		t.Fatalf("unexpected ship %+v", ship)
	}
	if len(ship.Equipment) != 1 || ship.Equipment[0].Kind != catalog.EquipBoreDrill {
		t.Fatalf("equipment not installed: %v", ship.Equipment)
	}
	if !ship.Equipment[0].Powered {
		t.Fatalf("fresh equipment not powered")
	}
	miner := ship.Crew[0]
	if miner.Role != state.RoleMiningOps || miner.Skill(state.SkillMining) != 12 {
		t.Fatalf("unexpected crew %+v", miner)
	}
	if !miner.HasTrait("prospector") {
		t.Fatalf("trait not carried over")
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	u, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(u.Locations) == 0 || len(u.Fleet.Ships) == 0 {
		t.Fatalf("default universe is empty")
	}
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{
			name: "no locations",
			doc:  "fleet:\n  credits: 1\n",
		},
		{
			name: "unknown location type",
			doc: `
locations:
  - key: weird
    name: Weird
    type: nebula
`,
		},
		{
			name: "duplicate location key",
			doc: `
locations:
  - key: twin
    name: Twin A
    type: belt
  - key: twin
    name: Twin B
    type: belt
`,
		},
		{
			name: "unknown ore",
			doc: `
locations:
  - key: belt
    name: Belt
    type: belt
    offerings:
      - ore: unobtanium
        multiplier: 1
`,
		},
		{
			name: "negative multiplier",
			doc: `
locations:
  - key: belt
    name: Belt
    type: belt
    offerings:
      - ore: ironate
        multiplier: -1
`,
		},
		{
			name: "ship at unknown location",
			doc: `
locations:
  - key: belt
    name: Belt
    type: belt
fleet:
  ships:
    - name: SV Lost
      location: nowhere
`,
		},
		{
			name: "unknown equipment",
			doc: `
locations:
  - key: belt
    name: Belt
    type: belt
fleet:
  ships:
    - name: SV Odd
      location: belt
      equipment: [tractor_beam]
`,
		},
	}

	for _, tc := range cases {
		path := writeUniverse(t, tc.doc)
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestDefaultUniverseIsConsistent(t *testing.T) {
	u := Default()

	for _, loc := range u.Locations {
		if u.LocationByKey(loc.Key) != loc {
			t.Fatalf("location %s not resolvable by key", loc.Key)
		}
	}
	for _, ship := range u.Fleet.Ships {
		if u.LocationByKey(ship.LocationKey) == nil {
			t.Fatalf("ship %s starts at unknown location %s", ship.Name, ship.LocationKey)
		}
		if ship.OreCapacityKg <= 0 {
			t.Fatalf("ship %s has no cargo budget", ship.Name)
		}
	}

	// The starter ship can actually work: a miner aboard and somewhere
	// to dig.
	ship := u.Fleet.Ships[0]
	if len(ship.AssignedTo(state.RoleMiningOps)) == 0 {
		t.Fatalf("starter ship has no miner")
	}
	if ship.Commander() == nil {
		t.Fatalf("starter ship has no commander")
	}
	loc := u.LocationByKey(ship.LocationKey)
	if !loc.Minable() {
		t.Fatalf("starter ship parked somewhere unminable")
	}
}
