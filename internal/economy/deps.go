package economy

import (
	"starbelt/server/internal/state"
	"starbelt/server/logging"
)

// Mastery is the slice of the mastery subsystem the economy consumes:
// commerce pool pricing bonuses and XP awards for the commander.
type Mastery interface {
	AwardXP(crew *state.CrewMember, skill state.Skill, subject string, xp float64, skillLevel, subjectCount int) (leveledUp bool, newLevel int)
	PoolSellBonus(crew *state.CrewMember) float64
}

// FleetAura supplies the income multiplier from fleet proximity.
type FleetAura interface {
	FleetAuraIncomeMultiplier(ship *state.Ship, fleet *state.Fleet) float64
}

// Deps bundles the injected collaborators. Nil fields fall back to neutral
// defaults.
type Deps struct {
	Mastery   Mastery
	Aura      FleetAura
	Publisher logging.Publisher
}

func (d Deps) normalized() Deps {
	if d.Mastery == nil {
		d.Mastery = neutralMastery{}
	}
	if d.Aura == nil {
		d.Aura = neutralAura{}
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
func (neutralMastery) PoolSellBonus(*state.CrewMember) float64 { return 0 }

type neutralAura struct{}

func (neutralAura) FleetAuraIncomeMultiplier(*state.Ship, *state.Fleet) float64 { return 1 }
