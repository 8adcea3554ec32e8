package mining

import (
	"context"

	"starbelt/server/logging"
)

const (
	// EventOreExtracted is emitted when a tick banks whole ore units.
	EventOreExtracted logging.EventType = "mining.ore_extracted"
	// EventHoldFull is emitted when a tick hits the cargo capacity wall.
	EventHoldFull logging.EventType = "mining.hold_full"
	// EventMasteryLevelUp is emitted when a miner's ore mastery levels.
	EventMasteryLevelUp logging.EventType = "mining.mastery_level_up"
)

// OreExtractedPayload describes the units banked during one tick.
type OreExtractedPayload struct {
	Ore      string `json:"ore"`
	Units    int    `json:"units"`
	Crewless bool   `json:"crewless,omitempty"`
}

// HoldFullPayload describes a capacity-limited extraction pass.
type HoldFullPayload struct {
	Ore     string `json:"ore"`
	Clipped bool   `json:"clipped"`
}

// MasteryLevelUpPayload describes a mastery level gain.
type MasteryLevelUpPayload struct {
	Ore      string `json:"ore"`
	NewLevel int    `json:"newLevel"`
}

// OreExtracted publishes a banked-extraction event.
func OreExtracted(ctx context.Context, pub logging.Publisher, tick uint64, ship logging.EntityRef, payload OreExtractedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventOreExtracted,
		Tick:     tick,
		Actor:    ship,
		Severity: logging.SeverityDebug,
		Category: logging.CategoryMining,
		Payload:  payload,
	})
}

// HoldFull publishes a capacity-wall event.
func HoldFull(ctx context.Context, pub logging.Publisher, tick uint64, ship logging.EntityRef, payload HoldFullPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventHoldFull,
		Tick:     tick,
		Actor:    ship,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryMining,
		Payload:  payload,
	})
}

// MasteryLevelUp publishes a mastery level gain for a crew member.
func MasteryLevelUp(ctx context.Context, pub logging.Publisher, tick uint64, crew logging.EntityRef, payload MasteryLevelUpPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventMasteryLevelUp,
		Tick:     tick,
		Actor:    crew,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryMining,
		Payload:  payload,
	})
}
