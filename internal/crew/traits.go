package crew

import "starbelt/server/internal/state"

const (
	TraitProspector state.Trait = "prospector"
	TraitMethodical state.Trait = "methodical"
	TraitReckless   state.Trait = "reckless"
	TraitHaggler    state.Trait = "haggler"
)

// AspectMiningYield names the modifier aspect the extraction engine
// queries.
const AspectMiningYield = "mining_yield"

// traitModifiers maps (trait, aspect) to a plain multiplier. Unlisted
// combinations are neutral.
var traitModifiers = map[state.Trait]map[string]float64{
	TraitProspector: {AspectMiningYield: 1.10},
	TraitMethodical: {AspectMiningYield: 1.04},
	TraitReckless:   {AspectMiningYield: 0.92},
}

// Traits implements the personality collaborator.
type Traits struct{}

// TraitModifier multiplies the modifiers of every trait the crew member
// carries for the given aspect.
func (Traits) TraitModifier(member *state.CrewMember, aspect string) float64 {
	if member == nil {
		return 1
	}
	modifier := 1.0
	for _, trait := range member.Traits {
		if byAspect, ok := traitModifiers[trait]; ok {
			if value, ok := byAspect[aspect]; ok {
				modifier *= value
			}
		}
	}
	return modifier
}
