package mining

import (
	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
)

// SelectOre resolves which ore a miner extracts this tick.
//
// A set preference that the location offers is honored only when the
// miner's skill clears the ore's tier gate; it is never silently swapped
// for another ore, so a gated preference idles the miner. A preference the
// location does not offer falls back to auto-selection: among permitted
// ores, the one maximizing baseValue times the location's yield
// multiplier, ties broken by catalog order.
func SelectOre(loc *state.Location, miningSkill int, preference catalog.OreID) (catalog.OreID, bool) {
	if preference != "" {
		if _, offered := loc.OfferingFor(preference); offered {
			kind, ok := catalog.OreKindFor(preference)
			if !ok || kind.MiningLevel > miningSkill {
				return "", false
			}
			return preference, true
		}
	}

	var (
		best      catalog.OreID
		bestScore float64
		found     bool
	)
	for _, kind := range catalog.OreKinds() {
		mult, offered := loc.OfferingFor(kind.ID)
		if !offered || kind.MiningLevel > miningSkill {
			continue
		}
		score := kind.BaseValue * mult
		if !found || score > bestScore {
			best = kind.ID
			bestScore = score
			found = true
		}
	}
	return best, found
}
