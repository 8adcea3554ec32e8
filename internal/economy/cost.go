package economy

import (
	"context"
	"sort"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
	"starbelt/server/logging"
	logeconomy "starbelt/server/logging/economy"
)

// Shortfall reports an ore requirement the fleet cannot cover.
type Shortfall struct {
	Ore       catalog.OreID
	Required  int
	Available int
}

// CheckResourceCost reports, per required ore kind, how far the fleet's
// combined holdings fall short. An empty result means the cost is
// affordable.
func CheckResourceCost(fleet *state.Fleet, required map[catalog.OreID]int) []Shortfall {
	var shortfalls []Shortfall
	for _, ore := range sortedOres(required) {
		need := required[ore]
		if need <= 0 {
			continue
		}
		have := fleet.TotalOre(ore)
		if have < need {
			shortfalls = append(shortfalls, Shortfall{Ore: ore, Required: need, Available: have})
		}
	}
	return shortfalls
}

// DeductResourceCost drains the required ore from the fleet, walking ships
// in fleet order until each requirement is satisfied. Affordability must be
// confirmed with CheckResourceCost first; deduction does not self-validate.
func (m *Market) DeductResourceCost(fleet *state.Fleet, required map[catalog.OreID]int, tick uint64) {
	fleetRef := logging.EntityRef{ID: "fleet", Kind: logging.EntityKindFleet}
	for _, ore := range sortedOres(required) {
		need := required[ore]
		if need <= 0 {
			continue
		}
		remaining := need
		for _, ship := range fleet.Ships {
			if remaining == 0 {
				break
			}
			remaining -= ship.RemoveOre(ore, remaining)
		}
		logeconomy.ResourceCostDeducted(context.Background(), m.deps.Publisher, tick, fleetRef, logeconomy.ResourceCostDeductedPayload{
			Ore:      string(ore),
			Quantity: need - remaining,
		})
	}
}

func sortedOres(required map[catalog.OreID]int) []catalog.OreID {
	ores := make([]catalog.OreID, 0, len(required))
	for ore := range required {
		ores = append(ores, ore)
	}
	sort.Slice(ores, func(i, j int) bool { return ores[i] < ores[j] })
	return ores
}
