package server

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"starbelt/server/internal/catalog"
	"starbelt/server/internal/economy"
	"starbelt/server/internal/mining"
	"starbelt/server/internal/state"
	"starbelt/server/internal/universe"
	"starbelt/server/logging"
)

// HubConfig tunes the simulation loop.
type HubConfig struct {
	TickRate int
	Logger   *log.Logger
}

// DefaultHubConfig returns the standard one-tick-per-second loop.
func DefaultHubConfig() HubConfig {
	return HubConfig{TickRate: tickRate}
}

// Hub owns the universe, the fleet, and the connected subscribers, and
// drives the fixed-timestep simulation. All fleet state is mutated under
// the hub lock; each ship's tick runs to completion before any result is
// observable.
type Hub struct {
	mu          sync.Mutex
	cfg         HubConfig
	universe    *universe.Universe
	engine      *mining.Engine
	market      *economy.Market
	publisher   logging.Publisher
	logger      *log.Logger
	subscribers map[string]*Subscriber
	nextSubID   atomic.Uint64
	pending     []Command
	tick        uint64
	holdFull    map[string]bool // ship ID -> last tick hit the capacity wall
}

// Subscriber is one websocket consumer of state broadcasts. The broadcast
// goroutine and the session reader both write to the connection, so every
// write must go through Send; gorilla/websocket forbids concurrent writers.
type Subscriber struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

// ID identifies the subscriber for Unsubscribe.
func (s *Subscriber) ID() string { return s.id }

// Send writes one text message under the connection write lock.
func (s *Subscriber) Send(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// NewHub wires the hub with its engine, market, and universe.
func NewHub(cfg HubConfig, uni *universe.Universe, engine *mining.Engine, market *economy.Market, publisher logging.Publisher) *Hub {
	if cfg.TickRate <= 0 {
		cfg.TickRate = tickRate
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	return &Hub{
		cfg:         cfg,
		universe:    uni,
		engine:      engine,
		market:      market,
		publisher:   publisher,
		logger:      cfg.Logger,
		subscribers: make(map[string]*Subscriber),
		holdFull:    make(map[string]bool),
	}
}

// Subscribe registers a websocket connection and returns the subscriber
// handle plus the current state snapshot.
func (h *Hub) Subscribe(conn *websocket.Conn) (*Subscriber, StateMessage) {
	sub := &Subscriber{
		id:   fmt.Sprintf("sub-%d", h.nextSubID.Add(1)),
		conn: conn,
	}
	h.mu.Lock()
	h.subscribers[sub.id] = sub
	snapshot := h.snapshotLocked()
	h.mu.Unlock()
	return sub, snapshot
}

// Unsubscribe drops a connection.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	sub, ok := h.subscribers[id]
	if ok {
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

// Enqueue queues a player command for the next tick.
func (h *Hub) Enqueue(cmd Command) {
	h.mu.Lock()
	h.pending = append(h.pending, cmd)
	h.mu.Unlock()
}

// RunSimulation drives the fixed-timestep loop until stop closes.
func (h *Hub) RunSimulation(stop <-chan struct{}) {
	interval := time.Second / time.Duration(h.cfg.TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			snapshot := h.step()
			h.broadcastState(snapshot)
		}
	}
}

// step advances the simulation one tick: queued commands first, then one
// extraction pass per ship at a minable location.
func (h *Hub) step() StateMessage {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tick++
	commands := h.pending
	h.pending = nil
	for _, cmd := range commands {
		h.applyCommandLocked(cmd)
	}

	for _, ship := range h.universe.Fleet.Ships {
		loc := h.universe.LocationByKey(ship.LocationKey)
		if loc == nil {
			continue
		}
		result, err := h.engine.Tick(ship, loc, h.tick)
		if err != nil {
			// Not minable here; nothing to record.
			h.holdFull[ship.ID] = false
			continue
		}
		h.holdFull[ship.ID] = result.HoldFull
	}

	return h.snapshotLocked()
}

func (h *Hub) applyCommandLocked(cmd Command) {
	ship := h.universe.Fleet.ShipByID(cmd.ShipID)
	if ship == nil {
		h.logger.Printf("command %s for unknown ship %s", cmd.Type, cmd.ShipID)
		return
	}
	loc := h.universe.LocationByKey(ship.LocationKey)

	switch cmd.Type {
	case CommandSell:
		if loc == nil {
			return
		}
		h.market.Sell(h.universe.Fleet, ship, catalog.OreID(cmd.Ore), cmd.Quantity, loc, h.tick)
	case CommandSellAll:
		if loc == nil {
			return
		}
		h.market.SellAll(h.universe.Fleet, ship, loc, h.tick)
	case CommandSelectOre:
		if cmd.Ore != "" {
			if _, ok := catalog.OreKindFor(catalog.OreID(cmd.Ore)); !ok {
				h.logger.Printf("selectOre for unknown ore %q", cmd.Ore)
				return
			}
		}
		ship.SelectedOre = catalog.OreID(cmd.Ore)
	case CommandAssignRole:
		member := ship.CrewByID(cmd.CrewID)
		if member == nil {
			h.logger.Printf("assignRole for unknown crew %s", cmd.CrewID)
			return
		}
		member.Role = state.Role(cmd.Role)
	case CommandSetPower:
		inst := ship.EquipmentByID(cmd.EquipmentID)
		if inst == nil {
			h.logger.Printf("setPower for unknown equipment %s", cmd.EquipmentID)
			return
		}
		inst.Powered = cmd.Powered
	default:
		h.logger.Printf("unknown command type %q", cmd.Type)
	}
}

func (h *Hub) snapshotLocked() StateMessage {
	fleet := h.universe.Fleet
	msg := StateMessage{
		Type:       "state",
		Tick:       h.tick,
		Credits:    fleet.Credits,
		ServerTime: time.Now().UnixMilli(),
	}
	for _, ship := range fleet.Ships {
		msg.Ships = append(msg.Ships, h.shipViewLocked(ship))
	}
	return msg
}

func (h *Hub) shipViewLocked(ship *state.Ship) ShipView {
	view := ShipView{
		ID:            ship.ID,
		Name:          ship.Name,
		Location:      ship.LocationKey,
		SelectedOre:   string(ship.SelectedOre),
		CargoMassKg:   ship.OreCargoMassKg(),
		RemainingKg:   ship.RemainingOreCapacityKg(),
		CreditsEarned: ship.CreditsEarned,
		HoldFull:      h.holdFull[ship.ID],
	}
	for _, entry := range ship.OreCargo {
		view.Cargo = append(view.Cargo, CargoView{Ore: string(entry.Ore), Quantity: entry.Quantity})
	}
	for _, inst := range ship.Equipment {
		view.Equipment = append(view.Equipment, EquipmentView{
			ID:          inst.ID,
			Kind:        string(inst.Kind),
			Degradation: inst.Degradation,
			Powered:     inst.Powered,
		})
	}
	for _, member := range ship.Crew {
		skills := make(map[string]int, len(member.Skills))
		for skill, level := range member.Skills {
			skills[string(skill)] = level
		}
		view.Crew = append(view.Crew, CrewView{
			ID:     member.ID,
			Name:   member.Name,
			Role:   string(member.Role),
			Health: member.Health,
			Skills: skills,
		})
	}
	return view
}

// broadcastState fans the snapshot out to every subscriber, dropping any
// connection that fails to accept the write.
func (h *Hub) broadcastState(msg StateMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Printf("failed to marshal state message: %v", err)
		return
	}

	h.mu.Lock()
	subs := make(map[string]*Subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mu.Unlock()

	for id, sub := range subs {
		if err := sub.Send(data); err != nil {
			h.logger.Printf("failed to send update to %s: %v", id, err)
			h.Unsubscribe(id)
		}
	}
}

// Tick reports the current simulation tick.
func (h *Hub) Tick() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.tick
}

// Universe exposes the loaded universe for diagnostics.
func (h *Hub) Universe() *universe.Universe {
	return h.universe
}
