package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pressmill/console/internal/api"
	"github.com/pressmill/console/internal/auth"
	"github.com/pressmill/console/internal/autosave"
	"github.com/pressmill/console/internal/config"
	"github.com/pressmill/console/internal/connectivity"
	"github.com/pressmill/console/internal/db"
	"github.com/pressmill/console/internal/draftstore"
	"github.com/pressmill/console/internal/logger"
	"github.com/pressmill/console/internal/model"
	"github.com/pressmill/console/internal/status"
)

func setLoggers(l zerolog.Logger) {
	config.SetLogger(l.With().Str("component", "config").Logger())
	db.SetLogger(l.With().Str("component", "db").Logger())
	draftstore.SetLogger(l.With().Str("component", "draftstore").Logger())
	connectivity.SetLogger(l.With().Str("component", "connectivity").Logger())
	autosave.SetLogger(l.With().Str("component", "autosave").Logger())
	api.SetLogger(l.With().Str("component", "api").Logger())
}

func newAuthProvider(cfg *config.Config, l zerolog.Logger) auth.Provider {
	if !cfg.Auth.Enabled {
		return auth.NewStaticProvider("")
	}

	switch cfg.Auth.Type {
	case "static":
		return auth.NewStaticProvider(model.UserID(cfg.Auth.StaticUserID))
	default:
		key := os.Getenv("CLERK_SECRET_KEY")
		if key == "" {
			l.Warn().Msg("CLERK_SECRET_KEY not set, falling back to static identity")
			return auth.NewStaticProvider(model.UserID(cfg.Auth.StaticUserID))
		}
		return auth.NewClerkProvider(key)
	}
}

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if err := config.LoadConfig(configPath); err != nil {
		os.Stderr.WriteString("Failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	cfg := config.AppConfig

	l := logger.New(cfg.Logging.Level)
	setLoggers(l)

	l.Info().Str("config", configPath).Msg("Starting " + cfg.Site.Name)

	store := draftstore.Open(cfg.Storage.Path)
	defer store.Close()

	broadcaster := status.NewBroadcaster()

	// The daemon has no browser event source, so reachability is driven
	// manually (tooling, tests, a future platform hook).
	sig := connectivity.NewManualSignal(true)
	monitor := connectivity.NewMonitor(store, sig, config.AppConfig.Autosave.ConnectivityPoll())
	monitor.SetBroadcaster(broadcaster)
	monitor.Start()
	defer monitor.Stop()

	_ = newAuthProvider(cfg, l)

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	_ = client // the editor surfaces hang their requests off this client

	// Periodic retention sweep of stale local drafts.
	sweep := time.NewTicker(cfg.Storage.SweepInterval())
	defer sweep.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sweep.C:
			removed, err := store.ClearOldDrafts(cfg.Storage.Retention())
			if err != nil {
				l.Error().Err(err).Msg("Retention sweep failed")
				continue
			}
			if removed > 0 {
				l.Info().Int("removed", removed).Msg("Retention sweep complete")
			}
		case s := <-quit:
			l.Info().Str("signal", s.String()).Msg("Shutting down")
			return
		}
	}
}
