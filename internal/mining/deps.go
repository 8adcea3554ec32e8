package mining

import (
	"math/rand"
	"time"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
	"starbelt/server/logging"
)

// Mastery is the slice of the mastery subsystem the extraction engine
// consumes. XP awards report level-ups so the tick result can surface them.
type Mastery interface {
	AwardXP(crew *state.CrewMember, skill state.Skill, subject string, xp float64, skillLevel, subjectCount int) (leveledUp bool, newLevel int)
	OreYieldBonus(crew *state.CrewMember, ore catalog.OreID) float64
	PoolYieldBonus(crew *state.CrewMember, skill state.Skill) float64
	PoolDoubleChance(crew *state.CrewMember, skill state.Skill) float64
	PoolWearReduction(crew *state.CrewMember, skill state.Skill) float64
}

// CaptainBonus supplies ship-wide command multipliers.
type CaptainBonus interface {
	CommandMiningBonus(ship *state.Ship) float64
}

// TraitSource supplies personality multipliers for a named aspect.
type TraitSource interface {
	TraitModifier(crew *state.CrewMember, aspect string) float64
}

// HealthModel maps crew health in [0,100] to an efficiency in (0,1].
type HealthModel interface {
	HealthEfficiency(health float64) float64
}

// RoleSource resolves which crew members hold a shipboard role.
type RoleSource interface {
	AssignedTo(ship *state.Ship, role state.Role) []*state.CrewMember
}

// CapacitySource reports the open ore-cargo mass budget for a ship.
type CapacitySource interface {
	RemainingOreCapacityKg(ship *state.Ship) float64
}

// Deps bundles the injected collaborators. Zero-value fields are replaced
// with neutral defaults so the engine stays testable factor by factor.
type Deps struct {
	Mastery   Mastery
	Captain   CaptainBonus
	Traits    TraitSource
	Health    HealthModel
	Roles     RoleSource
	Capacity  CapacitySource
	RNG       *rand.Rand
	Publisher logging.Publisher
}

func (d Deps) normalized() Deps {
	if d.Mastery == nil {
		d.Mastery = neutralMastery{}
	}
	if d.Captain == nil {
		d.Captain = neutralCaptain{}
	}
	if d.Traits == nil {
		d.Traits = neutralTraits{}
	}
	if d.Health == nil {
		d.Health = neutralHealth{}
	}
	if d.Roles == nil {
		d.Roles = stateRoles{}
	}
	if d.Capacity == nil {
		d.Capacity = stateCapacity{}
	}
	if d.RNG == nil {
		d.RNG = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Publisher == nil {
		d.Publisher = logging.NopPublisher()
	}
	return d
}

type neutralMastery struct{}

func (neutralMastery) AwardXP(*state.CrewMember, state.Skill, string, float64, int, int) (bool, int) {
	return false, 0
}
func (neutralMastery) OreYieldBonus(*state.CrewMember, catalog.OreID) float64   { return 0 }
func (neutralMastery) PoolYieldBonus(*state.CrewMember, state.Skill) float64    { return 0 }
func (neutralMastery) PoolDoubleChance(*state.CrewMember, state.Skill) float64  { return 0 }
func (neutralMastery) PoolWearReduction(*state.CrewMember, state.Skill) float64 { return 0 }

type neutralCaptain struct{}

func (neutralCaptain) CommandMiningBonus(*state.Ship) float64 { return 0 }

type neutralTraits struct{}

func (neutralTraits) TraitModifier(*state.CrewMember, string) float64 { return 1 }

type neutralHealth struct{}

func (neutralHealth) HealthEfficiency(float64) float64 { return 1 }

// stateRoles reads role assignment straight off the ship.
type stateRoles struct{}

func (stateRoles) AssignedTo(ship *state.Ship, role state.Role) []*state.CrewMember {
	return ship.AssignedTo(role)
}

// stateCapacity reads the cargo budget straight off the ship. Mass banked
// earlier in the same tick is already on the ledger, so the remaining
// budget shrinks as passes land.
type stateCapacity struct{}

func (stateCapacity) RemainingOreCapacityKg(ship *state.Ship) float64 {
	return ship.RemainingOreCapacityKg()
}
