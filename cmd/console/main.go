package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/zineb0v0/viaCargo/internal/adapters/fleet"
	"github.com/zineb0v0/viaCargo/internal/adapters/sessions"
	"github.com/zineb0v0/viaCargo/internal/config"
	"github.com/zineb0v0/viaCargo/internal/console"
	"github.com/zineb0v0/viaCargo/internal/platform/logging"
	"github.com/zineb0v0/viaCargo/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (fleet HTTP client, Redis sessions) behind
// ports and starts the console server.
func main() {
	// Missing .env is fine outside local runs.
	_ = godotenv.Load()

	logger := logging.New("viacargo-console", "info")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger = logging.New("viacargo-console", cfg.App.LogLevel)

	client, err := fleet.New(cfg.Fleet.BaseURL, fleet.WithTimeout(cfg.Fleet.Timeout))
	if err != nil {
		logger.Fatal().Err(err).Msg("fleet client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	store, err := sessions.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.SessionTTL)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("redis session store")
	}

	orc := services.NewOrchestrator(client, client, client, client, client, cfg.Fleet.RoutingTimeout)

	router := console.NewRouter(logger, console.Deps{
		Parcels: client,
		Trucks:  client,
		History: client,
		Auth:    client,
		Store:   store,
		Orc:     orc,
	})

	run(logger, cfg.App.Port, router)
}

func run(logger zerolog.Logger, port string, handler http.Handler) {
	// WriteTimeout leaves room for slow backend fetches behind the
	// dashboard aggregation.
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info().Str("addr", srv.Addr).Msg("console listening")
	logger.Fatal().Err(srv.ListenAndServe()).Msg("server stopped")
}
