package mining

import (
	"context"
	"math"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
	"starbelt/server/logging"
	logmining "starbelt/server/logging/mining"
)

// bank converts one pass's fractional yield into whole cargo units.
//
// The two capacity outcomes are deliberately asymmetric: when not even one
// unit fits, the accumulator rolls back to its pre-pass value (nothing
// banked, nothing lost); when some units fit but not all, the surplus is
// clipped and the fractional remainder is zeroed so a capacity-starved
// miner cannot bank unbounded sub-unit progress.
func (e *Engine) bank(ship *state.Ship, ore catalog.OreID, yield, doubleChance float64, crewless bool, res *Result, tick uint64) {
	acc := ship.Accumulator
	before := acc[ore]

	acc[ore] += yield
	whole := int(math.Floor(acc[ore]))
	acc[ore] -= float64(whole)

	// Double-extraction rolls use the pre-roll count so doubled units never
	// compound.
	units := whole
	if doubleChance > 0 {
		for i := 0; i < whole; i++ {
			if e.deps.RNG.Float64() < doubleChance {
				units++
			}
		}
	}

	kind, ok := catalog.OreKindFor(ore)
	if !ok {
		acc[ore] = before
		return
	}

	remaining := e.deps.Capacity.RemainingOreCapacityKg(ship)
	maxUnits := int(math.Floor(remaining / kind.MassPerUnitKg))
	if maxUnits <= 0 {
		res.HoldFull = true
		acc[ore] = before
		logmining.HoldFull(context.Background(), e.deps.Publisher, tick, logging.ShipRef(ship.ID), logmining.HoldFullPayload{Ore: string(ore)})
		return
	}
	if units > maxUnits {
		units = maxUnits
		res.HoldFull = true
		acc[ore] = 0
		logmining.HoldFull(context.Background(), e.deps.Publisher, tick, logging.ShipRef(ship.ID), logmining.HoldFullPayload{Ore: string(ore), Clipped: true})
	}

	if units <= 0 {
		return
	}
	ship.AddOre(ore, units)
	res.Extracted[ore] += units
	logmining.OreExtracted(context.Background(), e.deps.Publisher, tick, logging.ShipRef(ship.ID), logmining.OreExtractedPayload{
		Ore:      string(ore),
		Units:    units,
		Crewless: crewless,
	})
}
