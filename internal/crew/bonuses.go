package crew

import "starbelt/server/internal/state"

// commandMiningRate converts the commander's command skill into a
// ship-wide mining bonus fraction: +0.2% per level, +20% at level 100.
const commandMiningRate = 0.002

// Bonuses implements the captain-bonus collaborator from ship crew state.
type Bonuses struct{}

// CommandMiningBonus is the ship-wide mining fraction contributed by the
// commander. Ships without a commander get nothing.
func (Bonuses) CommandMiningBonus(ship *state.Ship) float64 {
	commander := ship.Commander()
	if commander == nil {
		return 0
	}
	return commandMiningRate * float64(commander.Skill(state.SkillCommand))
}

// FleetAuraIncomeMultiplier scales income by fleet proximity: +1% per
// other fleet ship at the same location, capped at +10%.
func (Bonuses) FleetAuraIncomeMultiplier(ship *state.Ship, fleet *state.Fleet) float64 {
	if ship == nil || fleet == nil {
		return 1
	}
	nearby := 0
	for _, other := range fleet.ShipsAt(ship.LocationKey) {
		if other != ship {
			nearby++
		}
	}
	if nearby > 10 {
		nearby = 10
	}
	return 1 + 0.01*float64(nearby)
}
