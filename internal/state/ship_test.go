package state

import (
	"testing"

	"starbelt/server/internal/catalog"
)

func TestAddOreMergesLedgerLines(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	ship.AddOre(catalog.OreIronate, 3)
	ship.AddOre(catalog.OreIronate, 2)
	ship.AddOre(catalog.OreCupriteX, 1)

	if got := ship.OreQuantity(catalog.OreIronate); got != 5 {
		t.Fatalf("ironate = %d, want 5", got)
	}
	if len(ship.OreCargo) != 2 {
		t.Fatalf("ledger has %d lines, want 2", len(ship.OreCargo))
	}

	ship.AddOre(catalog.OreIronate, 0)
	ship.AddOre(catalog.OreIronate, -4)
	if got := ship.OreQuantity(catalog.OreIronate); got != 5 {
		t.Fatalf("non-positive add changed the ledger: %d", got)
	}
}

func TestRemoveOreClampsAndDeletesEmptyLines(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	ship.AddOre(catalog.OreIronate, 5)

	if removed := ship.RemoveOre(catalog.OreIronate, 3); removed != 3 {
		t.Fatalf("removed %d, want 3", removed)
	}
	if removed := ship.RemoveOre(catalog.OreIronate, 10); removed != 2 {
		t.Fatalf("removed %d, want clamped 2", removed)
	}
	if len(ship.OreCargo) != 0 {
		t.Fatalf("empty line not deleted: %v", ship.OreCargo)
	}
	if removed := ship.RemoveOre(catalog.OreIronate, 1); removed != 0 {
		t.Fatalf("removed %d from empty ledger, want 0", removed)
	}
}

func TestRemainingOreCapacity(t *testing.T) {
	ship := NewShip("SV Test", 1000)
	ship.NonOreCargoKg = 100
	ship.AddOre(catalog.OreIronate, 5) // 5 * 120 kg = 600 kg

	if got := ship.RemainingOreCapacityKg(); got != 300 {
		t.Fatalf("remaining = %v, want 300", got)
	}

	ship.AddOre(catalog.OreIronate, 10)
	if got := ship.RemainingOreCapacityKg(); got != 0 {
		t.Fatalf("remaining = %v, want floor at 0", got)
	}
}

func TestOreCargoMass(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	ship.AddOre(catalog.OreIronate, 2)  // 240 kg
	ship.AddOre(catalog.OreCupriteX, 1) // 140 kg

	if got := ship.OreCargoMassKg(); got != 380 {
		t.Fatalf("mass = %v, want 380", got)
	}
}

func TestAssignedToPreservesCrewOrder(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	first := NewCrewMember("First", nil)
	first.Role = RoleMiningOps
	captain := NewCrewMember("Captain", nil)
	captain.Role = RoleCommand
	second := NewCrewMember("Second", nil)
	second.Role = RoleMiningOps
	ship.Crew = []*CrewMember{first, captain, second}

	miners := ship.AssignedTo(RoleMiningOps)
	if len(miners) != 2 || miners[0] != first || miners[1] != second {
		t.Fatalf("unexpected miner order: %v", miners)
	}
	if ship.Commander() != captain {
		t.Fatalf("commander lookup failed")
	}
}

func TestBestSkill(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	ship.Crew = []*CrewMember{
		NewCrewMember("A", map[Skill]int{SkillCommerce: 10}),
		NewCrewMember("B", map[Skill]int{SkillCommerce: 25}),
		NewCrewMember("C", map[Skill]int{SkillMining: 40}),
	}

	if got := ship.BestSkill(SkillCommerce); got != 25 {
		t.Fatalf("best commerce = %d, want 25", got)
	}
	if got := ship.BestSkill(SkillCommand); got != 0 {
		t.Fatalf("best command = %d, want 0", got)
	}
}

func TestPoweredMiningEquipmentFilters(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	drill := NewEquipmentInstance(catalog.EquipBoreDrill)
	dark := NewEquipmentInstance(catalog.EquipSeismicRig)
	dark.Powered = false
	utility := NewEquipmentInstance(catalog.EquipCargoStabiliser)
	ship.Equipment = []*EquipmentInstance{drill, dark, utility}

	powered := ship.PoweredMiningEquipment()
	if len(powered) != 1 || powered[0] != drill {
		t.Fatalf("unexpected powered set: %v", powered)
	}
}

func TestSnapshotCargoIsIndependent(t *testing.T) {
	ship := NewShip("SV Test", 5000)
	ship.AddOre(catalog.OreIronate, 5)

	snapshot := ship.SnapshotCargo()
	ship.RemoveOre(catalog.OreIronate, 5)

	if len(snapshot) != 1 || snapshot[0].Quantity != 5 {
		t.Fatalf("snapshot mutated with the ledger: %v", snapshot)
	}
}
