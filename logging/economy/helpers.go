package economy

import (
	"context"

	"starbelt/server/logging"
)

const (
	// EventOreSold is emitted whenever an ore sale settles.
	EventOreSold logging.EventType = "economy.ore_sold"
	// EventSellRejected is emitted when a sale fails validation.
	EventSellRejected logging.EventType = "economy.sell_rejected"
	// EventResourceCostDeducted is emitted after a fleet-wide ore deduction.
	EventResourceCostDeducted logging.EventType = "economy.resource_cost_deducted"
)

// OreSoldPayload describes a settled sale.
type OreSoldPayload struct {
	Ore       string  `json:"ore"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Credits   float64 `json:"credits"`
	ShipName  string  `json:"shipName"`
}

// SellRejectedPayload describes why a sale was refused.
type SellRejectedPayload struct {
	Ore       string `json:"ore"`
	Requested int    `json:"requested"`
	Held      int    `json:"held"`
	Reason    string `json:"reason"`
}

// ResourceCostDeductedPayload describes a purchase paid in ore.
type ResourceCostDeductedPayload struct {
	Ore      string `json:"ore"`
	Quantity int    `json:"quantity"`
}

// OreSold publishes a settled-sale event.
func OreSold(ctx context.Context, pub logging.Publisher, tick uint64, ship logging.EntityRef, location logging.EntityRef, payload OreSoldPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventOreSold,
		Tick:     tick,
		Actor:    ship,
		Targets:  []logging.EntityRef{location},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}

// SellRejected publishes a refused-sale event.
func SellRejected(ctx context.Context, pub logging.Publisher, tick uint64, ship logging.EntityRef, payload SellRejectedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSellRejected,
		Tick:     tick,
		Actor:    ship,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}

// ResourceCostDeducted publishes a fleet ore-deduction event.
func ResourceCostDeducted(ctx context.Context, pub logging.Publisher, tick uint64, fleet logging.EntityRef, payload ResourceCostDeductedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventResourceCostDeducted,
		Tick:     tick,
		Actor:    fleet,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
		Payload:  payload,
	})
}
