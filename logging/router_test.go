package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"starbelt/server/logging"
	"starbelt/server/logging/sinks"
)

func newTestRouter(t *testing.T, cfg logging.Config) (*logging.Router, *sinks.MemorySink) {
	t.Helper()
	sink := sinks.NewMemorySink()
	clock := logging.ClockFunc(func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	})
	router, err := logging.NewRouter(clock, cfg, []logging.NamedSink{{Name: "memory", Sink: sink}})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	return router, sink
}

func closeRouter(t *testing.T, router *logging.Router) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("close router: %v", err)
	}
}

func TestRouterDeliversEventsToSinks(t *testing.T) {
	router, sink := newTestRouter(t, logging.DefaultConfig())

	for i := 0; i < 3; i++ {
		router.Publish(context.Background(), logging.Event{
			Type:     "mining.ore_extracted",
			Tick:     uint64(i + 1),
			Actor:    logging.ShipRef("ship-1"),
			Severity: logging.SeverityInfo,
			Category: logging.CategoryMining,
		})
	}
	closeRouter(t, router)

	events := sink.Events()
	if len(events) != 3 {
		t.Fatalf("sink received %d events, want 3", len(events))
	}
	if events[0].Time.IsZero() {
		t.Fatalf("router did not stamp event time")
	}
	if events[0].Actor.Kind != logging.EntityKindShip {
		t.Fatalf("actor kind = %s, want ship", events[0].Actor.Kind)
	}

	stats := router.Stats()
	if stats.EventsTotal != 3 || stats.DroppedTotal != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.MinimumSeverity = logging.SeverityWarn
	router, sink := newTestRouter(t, cfg)

	router.Publish(context.Background(), logging.Event{Type: "quiet", Severity: logging.SeverityDebug})
	router.Publish(context.Background(), logging.Event{Type: "loud", Severity: logging.SeverityError})
	closeRouter(t, router)

	events := sink.Events()
	if len(events) != 1 || events[0].Type != "loud" {
		t.Fatalf("unexpected events after filtering: %v", events)
	}
}

func TestRouterIgnoresUntypedEvents(t *testing.T) {
	router, sink := newTestRouter(t, logging.DefaultConfig())

	router.Publish(context.Background(), logging.Event{Severity: logging.SeverityInfo})
	closeRouter(t, router)

	if events := sink.Events(); len(events) != 0 {
		t.Fatalf("untyped event delivered: %v", events)
	}
}

func TestRouterMergesConfiguredFields(t *testing.T) {
	cfg := logging.DefaultConfig()
	cfg.Fields = map[string]any{"node": "test-1", "tick": "never"}
	router, sink := newTestRouter(t, cfg)

	router.Publish(context.Background(), logging.Event{
		Type:     "mining.ore_extracted",
		Severity: logging.SeverityInfo,
		Extra:    map[string]any{"tick": "mine"},
	})
	closeRouter(t, router)

	events := sink.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	extra := events[0].Extra
	if extra["node"] != "test-1" {
		t.Fatalf("configured field missing: %v", extra)
	}
	// Event-set fields win over configured ones.
	if extra["tick"] != "mine" {
		t.Fatalf("configured field overwrote event field: %v", extra)
	}
}

func TestRouterSinkLookup(t *testing.T) {
	router, sink := newTestRouter(t, logging.DefaultConfig())
	defer closeRouter(t, router)

	if got := router.Sink("memory"); got != sink {
		t.Fatalf("sink lookup returned %v", got)
	}
	if got := router.Sink("absent"); got != nil {
		t.Fatalf("unknown sink resolved: %v", got)
	}
}

func TestWithFieldsWrapsPublisher(t *testing.T) {
	var captured logging.Event
	inner := logging.PublisherFunc(func(_ context.Context, event logging.Event) {
		captured = event
	})

	pub := logging.WithFields(inner, map[string]any{"ship": "SV Test"})
	pub.Publish(context.Background(), logging.Event{Type: "test", Severity: logging.SeverityInfo})

	if captured.Extra["ship"] != "SV Test" {
		t.Fatalf("field not attached: %v", captured.Extra)
	}

	if nop := logging.WithFields(nil, map[string]any{"a": 1}); nop == nil {
		t.Fatalf("nil publisher not replaced with nop")
	}
}

func TestJSONSinkWritesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	sink := sinks.NewJSONSink(&buf, 0)

	event := logging.Event{
		Type:     "economy.ore_sold",
		Tick:     7,
		Time:     time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		Actor:    logging.ShipRef("ship-1"),
		Severity: logging.SeverityInfo,
		Category: logging.CategoryEconomy,
	}
	if err := sink.Write(event); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not one JSON document per line: %v", err)
	}
	if decoded["type"] != "economy.ore_sold" {
		t.Fatalf("unexpected type %v", decoded["type"])
	}
	if decoded["tick"] != float64(7) {
		t.Fatalf("unexpected tick %v", decoded["tick"])
	}
}
