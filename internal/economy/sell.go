package economy

import (
	"context"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/state"
	"starbelt/server/logging"
	logeconomy "starbelt/server/logging/economy"
)

// Market executes sales and ore-denominated purchases against the fleet
// ledgers.
type Market struct {
	deps Deps
}

// NewMarket constructs a market with neutral defaults for nil
// collaborators.
func NewMarket(deps Deps) *Market {
	return &Market{deps: deps.normalized()}
}

// Sell validates, prices, and settles a sale of qty units of an ore kind.
// Selling zero, a negative amount, or more than held is a no-op returning
// zero credits.
func (m *Market) Sell(fleet *state.Fleet, ship *state.Ship, ore catalog.OreID, qty int, loc *state.Location, tick uint64) float64 {
	held := ship.OreQuantity(ore)
	if qty <= 0 || qty > held {
		logeconomy.SellRejected(context.Background(), m.deps.Publisher, tick, logging.ShipRef(ship.ID), logeconomy.SellRejectedPayload{
			Ore:       string(ore),
			Requested: qty,
			Held:      held,
			Reason:    "invalid quantity",
		})
		return 0
	}
	kind, ok := catalog.OreKindFor(ore)
	if !ok {
		return 0
	}

	commander := ship.Commander()
	price := SellPrice(kind, loc.Type, ship.BestSkill(state.SkillCommerce), m.deps.Mastery.PoolSellBonus(commander))
	credits := price * float64(qty) * m.deps.Aura.FleetAuraIncomeMultiplier(ship, fleet)

	ship.RemoveOre(ore, qty)
	fleet.Credits += credits
	ship.CreditsEarned += credits

	if commander != nil {
		m.deps.Mastery.AwardXP(commander, state.SkillCommerce, loc.Key, float64(qty), commander.Skill(state.SkillCommerce), 0)
	}

	logeconomy.OreSold(context.Background(), m.deps.Publisher, tick, logging.ShipRef(ship.ID), logging.LocationRef(loc.Key), logeconomy.OreSoldPayload{
		Ore:       string(ore),
		Quantity:  qty,
		UnitPrice: price,
		Credits:   credits,
		ShipName:  ship.Name,
	})
	return credits
}

// SellAll liquidates the ship's entire ore ledger at the location. The
// cargo list is snapshotted first so settlement can mutate it safely.
func (m *Market) SellAll(fleet *state.Fleet, ship *state.Ship, loc *state.Location, tick uint64) float64 {
	var total float64
	for _, entry := range ship.SnapshotCargo() {
		total += m.Sell(fleet, ship, entry.Ore, entry.Quantity, loc, tick)
	}
	return total
}
