package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	server "starbelt/server"
	"starbelt/server/internal/catalog"
	"starbelt/server/internal/crew"
	"starbelt/server/internal/economy"
	"starbelt/server/internal/mastery"
	"starbelt/server/internal/mining"
	servernet "starbelt/server/internal/net"
	"starbelt/server/internal/universe"
	"starbelt/server/logging"
	loggingSinks "starbelt/server/logging/sinks"
)

// The shared mastery system serves both consumers.
var (
	_ mining.Mastery  = (*mastery.System)(nil)
	_ economy.Mastery = (*mastery.System)(nil)
)

// Config carries process-level options. Env vars override the zero value:
// STARBELT_ADDR, STARBELT_UNIVERSE, STARBELT_CATALOG, STARBELT_LOG_SINKS,
// STARBELT_LOG_JSON.
type Config struct {
	Addr         string
	UniversePath string
	CatalogPath  string
	Logger       *log.Logger
}

func (cfg Config) normalized() Config {
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if raw := os.Getenv("STARBELT_ADDR"); raw != "" {
		cfg.Addr = raw
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if raw := os.Getenv("STARBELT_UNIVERSE"); raw != "" {
		cfg.UniversePath = raw
	}
	if cfg.UniversePath == "" {
		cfg.UniversePath = "config/universe.yaml"
	}
	if raw := os.Getenv("STARBELT_CATALOG"); raw != "" {
		cfg.CatalogPath = raw
	}
	if cfg.CatalogPath == "" {
		cfg.CatalogPath = "config/catalog.json"
	}
	return cfg
}

// Run wires the process and serves until the listener fails.
func Run(ctx context.Context, cfg Config) error {
	cfg = cfg.normalized()
	logger := cfg.Logger

	if err := catalog.LoadOverlay(cfg.CatalogPath); err != nil {
		return fmt.Errorf("failed to load catalog overlay: %w", err)
	}

	uni, err := universe.Load(cfg.UniversePath)
	if err != nil {
		return fmt.Errorf("failed to load universe: %w", err)
	}

	router, err := newLoggingRouter()
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		if cerr := router.Close(ctx); cerr != nil {
			logger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	masterySystem := mastery.NewSystem()
	bonuses := crew.Bonuses{}

	engine := mining.NewEngine(mining.Deps{
		Mastery:   masterySystem,
		Captain:   bonuses,
		Traits:    crew.Traits{},
		Health:    crew.Health{},
		Publisher: router,
	})
	market := economy.NewMarket(economy.Deps{
		Mastery:   masterySystem,
		Aura:      bonuses,
		Publisher: router,
	})

	hubCfg := server.DefaultHubConfig()
	hubCfg.Logger = logger
	hub := server.NewHub(hubCfg, uni, engine, market, router)

	stop := make(chan struct{})
	go hub.RunSimulation(stop)
	defer close(stop)

	handler := servernet.NewHTTPHandler(hub, servernet.HTTPHandlerConfig{Logger: logger})
	srv := &http.Server{Addr: cfg.Addr, Handler: handler}
	logger.Printf("server listening on %s", srv.Addr)

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func newLoggingRouter() (*logging.Router, error) {
	logConfig := logging.DefaultConfig()
	if raw := os.Getenv("STARBELT_LOG_SINKS"); raw != "" {
		logConfig.EnabledSinks = strings.Split(raw, ",")
	}

	var namedSinks []logging.NamedSink
	if logConfig.HasSink("console") {
		namedSinks = append(namedSinks, logging.NamedSink{
			Name: "console",
			Sink: loggingSinks.NewConsoleSink(os.Stdout),
		})
	}
	if logConfig.HasSink("json") {
		path := os.Getenv("STARBELT_LOG_JSON")
		if path == "" {
			path = "starbelt-events.ndjson"
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open json log %s: %w", path, err)
		}
		namedSinks = append(namedSinks, logging.NamedSink{
			Name: "json",
			Sink: loggingSinks.NewJSONSink(file, logConfig.JSON.FlushInterval),
		})
	}

	return logging.NewRouter(nil, logConfig, namedSinks)
}
