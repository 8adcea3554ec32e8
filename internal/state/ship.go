package state

import (
	"math"

	"github.com/google/uuid"

	"starbelt/server/internal/catalog"
)

// EquipmentInstance is a concrete piece of equipment installed on a ship.
// Degradation lives in [0,100] with 0 meaning factory-new; only the wear
// model mutates it. Powered is owned by the power-allocation subsystem.
type EquipmentInstance struct {
	ID          string
	Kind        catalog.EquipmentID
	Degradation float64
	Powered     bool
}

// NewEquipmentInstance installs a fresh instance of the given kind.
func NewEquipmentInstance(kind catalog.EquipmentID) *EquipmentInstance {
	return &EquipmentInstance{
		ID:      uuid.NewString(),
		Kind:    kind,
		Powered: true,
	}
}

// OreCargoEntry is one line of a ship's ore ledger. Quantity is always > 0;
// entries that reach zero are removed from the ledger.
type OreCargoEntry struct {
	Ore      catalog.OreID
	Quantity int
}

// MiningAccumulator tracks fractional extraction progress per ore kind.
// Every entry stays below 1.0 after a tick completes; the whole part is
// flushed into cargo each tick.
type MiningAccumulator map[catalog.OreID]float64

// Ship is the unit of simulation: crew, equipment, cargo, and mining state
// are all ship-local.
type Ship struct {
	ID            string
	Name          string
	LocationKey   string
	Crew          []*CrewMember
	Equipment     []*EquipmentInstance
	OreCargo      []OreCargoEntry
	Accumulator   MiningAccumulator
	SelectedOre   catalog.OreID // optional player preference, "" when unset
	OreCapacityKg float64       // total budget for ore cargo mass
	NonOreCargoKg float64       // mass held by non-ore cargo
	CreditsEarned float64
}

// NewShip creates an empty ship with the given ore-cargo budget.
func NewShip(name string, oreCapacityKg float64) *Ship {
	return &Ship{
		ID:            uuid.NewString(),
		Name:          name,
		OreCapacityKg: oreCapacityKg,
	}
}

// EnsureAccumulator lazily creates the mining accumulator on first use.
func (s *Ship) EnsureAccumulator() {
	if s.Accumulator == nil {
		s.Accumulator = make(MiningAccumulator)
	}
}

// AssignedTo returns the crew members holding the given role, in crew
// order. Assignment order is significant: miners claim equipment in this
// order.
func (s *Ship) AssignedTo(role Role) []*CrewMember {
	if s == nil {
		return nil
	}
	var assigned []*CrewMember
	for _, member := range s.Crew {
		if member.Role == role {
			assigned = append(assigned, member)
		}
	}
	return assigned
}

// Commander returns the crew member assigned to command, or nil.
func (s *Ship) Commander() *CrewMember {
	if s == nil {
		return nil
	}
	for _, member := range s.Crew {
		if member.Role == RoleCommand {
			return member
		}
	}
	return nil
}

// BestSkill returns the highest level of a skill among the crew.
func (s *Ship) BestSkill(skill Skill) int {
	best := 0
	if s == nil {
		return best
	}
	for _, member := range s.Crew {
		if level := member.Skill(skill); level > best {
			best = level
		}
	}
	return best
}

// CrewByID finds a crew member by identifier.
func (s *Ship) CrewByID(id string) *CrewMember {
	if s == nil {
		return nil
	}
	for _, member := range s.Crew {
		if member.ID == id {
			return member
		}
	}
	return nil
}

// OreQuantity returns the units of an ore kind currently held.
func (s *Ship) OreQuantity(ore catalog.OreID) int {
	if s == nil {
		return 0
	}
	for _, entry := range s.OreCargo {
		if entry.Ore == ore {
			return entry.Quantity
		}
	}
	return 0
}

// AddOre merges units into the ledger, creating an entry when needed.
func (s *Ship) AddOre(ore catalog.OreID, qty int) {
	if qty <= 0 {
		return
	}
	for i := range s.OreCargo {
		if s.OreCargo[i].Ore == ore {
			s.OreCargo[i].Quantity += qty
			return
		}
	}
	s.OreCargo = append(s.OreCargo, OreCargoEntry{Ore: ore, Quantity: qty})
}

// RemoveOre drains up to qty units of an ore kind and reports how many
// were actually removed. Entries that reach zero are deleted.
func (s *Ship) RemoveOre(ore catalog.OreID, qty int) int {
	if qty <= 0 {
		return 0
	}
	for i := range s.OreCargo {
		if s.OreCargo[i].Ore != ore {
			continue
		}
		removed := qty
		if removed > s.OreCargo[i].Quantity {
			removed = s.OreCargo[i].Quantity
		}
		s.OreCargo[i].Quantity -= removed
		if s.OreCargo[i].Quantity == 0 {
			s.OreCargo = append(s.OreCargo[:i], s.OreCargo[i+1:]...)
		}
		return removed
	}
	return 0
}

// SnapshotCargo copies the ledger so callers can iterate while selling.
func (s *Ship) SnapshotCargo() []OreCargoEntry {
	if s == nil || len(s.OreCargo) == 0 {
		return nil
	}
	snapshot := make([]OreCargoEntry, len(s.OreCargo))
	copy(snapshot, s.OreCargo)
	return snapshot
}

// OreCargoMassKg sums quantity times unit mass across the ledger.
func (s *Ship) OreCargoMassKg() float64 {
	var total float64
	for _, entry := range s.OreCargo {
		kind, ok := catalog.OreKindFor(entry.Ore)
		if !ok {
			continue
		}
		total += float64(entry.Quantity) * kind.MassPerUnitKg
	}
	return total
}

// RemainingOreCapacityKg is the mass budget still open for ore this tick.
// Never negative.
func (s *Ship) RemainingOreCapacityKg() float64 {
	remaining := s.OreCapacityKg - s.NonOreCargoKg - s.OreCargoMassKg()
	return math.Max(0, remaining)
}

// PoweredMiningEquipment returns the powered instances whose kind belongs
// to the mining category, in installation order.
func (s *Ship) PoweredMiningEquipment() []*EquipmentInstance {
	if s == nil {
		return nil
	}
	var powered []*EquipmentInstance
	for _, inst := range s.Equipment {
		if !inst.Powered {
			continue
		}
		kind, ok := catalog.EquipmentKindFor(inst.Kind)
		if !ok || kind.Category != catalog.CategoryMining {
			continue
		}
		powered = append(powered, inst)
	}
	return powered
}

// EquipmentByID finds an installed instance by identifier.
func (s *Ship) EquipmentByID(id string) *EquipmentInstance {
	if s == nil {
		return nil
	}
	for _, inst := range s.Equipment {
		if inst.ID == id {
			return inst
		}
	}
	return nil
}
