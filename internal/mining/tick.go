package mining

import (
	"context"
	"errors"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
	"starbelt/server/logging"
	logmining "starbelt/server/logging/mining"
)

// ErrCannotMine reports that extraction is impossible here: the location
// lacks the mine service or offers nothing, or the ship has no powered
// mining equipment. Distinct from a successful tick that happened to bank
// zero units.
var ErrCannotMine = errors.New("mining: ship cannot mine at this location")

// LevelUp records a mastery level gained during a tick.
type LevelUp struct {
	CrewID   string
	Ore      catalog.OreID
	NewLevel int
}

// Result is the transient outcome of one extraction tick for one ship.
type Result struct {
	Extracted map[catalog.OreID]int
	HoldFull  bool
	LevelUps  []LevelUp
	Claimed   []string // equipment instance IDs used this tick
}

// Engine runs the per-tick extraction simulation. It is stateless between
// ticks; all mutable state lives on the ship.
type Engine struct {
	deps Deps
}

// NewEngine constructs an engine with neutral defaults for any collaborator
// left nil.
func NewEngine(deps Deps) *Engine {
	return &Engine{deps: deps.normalized()}
}

// Tick runs one extraction pass for a ship orbiting a location. Each
// powered mining instance serves at most one miner per tick; the claim set
// is local to this invocation, so ships never observe each other's claims.
func (e *Engine) Tick(ship *state.Ship, loc *state.Location, tick uint64) (Result, error) {
	if !loc.Minable() {
		return Result{}, ErrCannotMine
	}
	powered := ship.PoweredMiningEquipment()
	if len(powered) == 0 {
		return Result{}, ErrCannotMine
	}

	ship.EnsureAccumulator()
	res := Result{Extracted: make(map[catalog.OreID]int)}
	claimed := make(map[string]*state.EquipmentInstance)

	miners := e.deps.Roles.AssignedTo(ship, state.RoleMiningOps)
	var topMiner *state.CrewMember
	if len(miners) == 0 {
		e.crewlessPass(ship, loc, powered, claimed, &res, tick)
	} else {
		for _, miner := range miners {
			if topMiner == nil || miner.Skill(state.SkillMining) > topMiner.Skill(state.SkillMining) {
				topMiner = miner
			}
			e.minerPass(ship, loc, miner, powered, claimed, &res, tick)
		}
	}

	wearReduction := 0.0
	if topMiner != nil {
		wearReduction = e.deps.Mastery.PoolWearReduction(topMiner, state.SkillMining)
	}
	applyWear(claimed, wearReduction)

	return res, nil
}

// minerPass runs steps 1-10 of the yield pipeline for one miner.
func (e *Engine) minerPass(ship *state.Ship, loc *state.Location, miner *state.CrewMember, powered []*state.EquipmentInstance, claimed map[string]*state.EquipmentInstance, res *Result, tick uint64) {
	skill := miner.Skill(state.SkillMining)
	inst := bestInstanceFor(powered, claimed, skill)
	if inst == nil {
		return
	}
	claim(inst, claimed, res)

	ore, ok := SelectOre(loc, skill, ship.SelectedOre)
	if !ok {
		return
	}
	kind, _ := catalog.EquipmentKindFor(inst.Kind)
	locationMult, _ := loc.OfferingFor(ore)

	yield := product(e.minerFactors(ship, miner, kind, inst, ore, locationMult))
	doubleChance := e.deps.Mastery.PoolDoubleChance(miner, state.SkillMining)
	e.bank(ship, ore, yield, doubleChance, false, res, tick)

	// Training happens even when the hold is full: XP tracks the uncapped
	// fractional yield.
	if leveled, newLevel := e.deps.Mastery.AwardXP(miner, state.SkillMining, string(ore), yield, skill, catalog.OreKindCount()); leveled {
		res.LevelUps = append(res.LevelUps, LevelUp{CrewID: miner.ID, Ore: ore, NewLevel: newLevel})
		logmining.MasteryLevelUp(context.Background(), e.deps.Publisher, tick, logging.CrewRef(miner.ID), logmining.MasteryLevelUpPayload{
			Ore:      string(ore),
			NewLevel: newLevel,
		})
	}
}

// crewlessPass runs the reduced unattended-equipment mode: one instance,
// tier-0 ores only, no crew-derived factors.
func (e *Engine) crewlessPass(ship *state.Ship, loc *state.Location, powered []*state.EquipmentInstance, claimed map[string]*state.EquipmentInstance, res *Result, tick uint64) {
	inst := bestInstanceFor(powered, claimed, -1)
	if inst == nil {
		return
	}
	claim(inst, claimed, res)

	ore, ok := SelectOre(loc, 0, ship.SelectedOre)
	if !ok {
		return
	}
	kind, _ := catalog.EquipmentKindFor(inst.Kind)
	locationMult, _ := loc.OfferingFor(ore)

	yield := product(crewlessFactors(kind, inst, locationMult))
	e.bank(ship, ore, yield, 0, true, res, tick)
}

// bestInstanceFor picks the unclaimed powered instance with the highest
// rate multiplier whose skill gate the miner clears. Installation order
// breaks ties. A negative skill disables the gate (crew-less mode).
func bestInstanceFor(powered []*state.EquipmentInstance, claimed map[string]*state.EquipmentInstance, skill int) *state.EquipmentInstance {
	var (
		best     *state.EquipmentInstance
		bestRate float64
	)
	for _, inst := range powered {
		if _, taken := claimed[inst.ID]; taken {
			continue
		}
		kind, ok := catalog.EquipmentKindFor(inst.Kind)
		if !ok {
			continue
		}
		if skill >= 0 && kind.MiningLevel > skill {
			continue
		}
		if best == nil || kind.Rate > bestRate {
			best = inst
			bestRate = kind.Rate
		}
	}
	return best
}

func claim(inst *state.EquipmentInstance, claimed map[string]*state.EquipmentInstance, res *Result) {
	claimed[inst.ID] = inst
	res.Claimed = append(res.Claimed, inst.ID)
}
