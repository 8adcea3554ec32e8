package mining

import (
	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

const (
	// BaseRate is the units-per-tick anchor every other factor scales.
	BaseRate = 0.2
	// CrewlessMultiplier replaces the crew-derived factors when equipment
	// runs unattended.
	CrewlessMultiplier = 0.25
	// EffectivenessDivisor converts degradation into lost rate; at 100%
	// degradation the equipment runs at half effectiveness.
	EffectivenessDivisor = 200.0
)

// Factor is one named contribution to the yield product. Keeping the
// factors named and folding them in one place keeps the formula auditable
// factor by factor.
type Factor struct {
	Name  string
	Value float64
}

func product(factors []Factor) float64 {
	total := 1.0
	for _, f := range factors {
		total *= f.Value
	}
	return total
}

// effectiveRate derates an equipment kind's rate by instance degradation.
func effectiveRate(kind catalog.MiningEquipmentKind, inst *state.EquipmentInstance) float64 {
	return kind.Rate * (1 - inst.Degradation/EffectivenessDivisor)
}

// minerFactors assembles the per-miner yield product for one tick.
func (e *Engine) minerFactors(ship *state.Ship, miner *state.CrewMember, kind catalog.MiningEquipmentKind, inst *state.EquipmentInstance, ore catalog.OreID, locationMult float64) []Factor {
	skill := miner.Skill(state.SkillMining)
	return []Factor{
		{Name: "base", Value: BaseRate},
		{Name: "equipment", Value: effectiveRate(kind, inst)},
		{Name: "skill", Value: 1 + float64(skill)/100},
		{Name: "mastery", Value: 1 + e.deps.Mastery.OreYieldBonus(miner, ore)},
		{Name: "pool", Value: 1 + e.deps.Mastery.PoolYieldBonus(miner, state.SkillMining)},
		{Name: "captain", Value: 1 + e.deps.Captain.CommandMiningBonus(ship)},
		{Name: "location", Value: locationMult},
		{Name: "trait", Value: e.deps.Traits.TraitModifier(miner, "mining_yield")},
		{Name: "health", Value: e.deps.Health.HealthEfficiency(miner.Health)},
	}
}

// crewlessFactors assembles the reduced unattended-equipment product. No
// skill, mastery, captain, trait, or health factors apply.
func crewlessFactors(kind catalog.MiningEquipmentKind, inst *state.EquipmentInstance, locationMult float64) []Factor {
	return []Factor{
		{Name: "base", Value: BaseRate},
		{Name: "equipment", Value: effectiveRate(kind, inst)},
		{Name: "crewless", Value: CrewlessMultiplier},
		{Name: "location", Value: locationMult},
	}
}
