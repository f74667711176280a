package main

import (
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/zineb0v0/viaCargo/internal/adapters/fleetdb"
	"github.com/zineb0v0/viaCargo/internal/platform/db"
	"github.com/zineb0v0/viaCargo/internal/platform/logging"
)

// dbtool stands up the fleet backend's database: it creates the schema
// and loads seed data so a local backend has admins, trucks and
// parcels to work with.
func main() {
	// Missing .env is fine outside local runs.
	_ = godotenv.Load()

	logger := logging.New("viacargo-dbtool", getEnv("VIACARGO_LOG_LEVEL", "info"))

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		logger.Fatal().Msg("DATABASE_URL is required")
	}
	seedPath := getEnv("SEED_PATH", "data/seeds/fleet.json")

	conn, err := db.Open(databaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()

	logger.Info().Msg("initializing schema")
	if err := fleetdb.InitSchema(conn); err != nil {
		logger.Fatal().Err(err).Msg("schema initialization failed")
	}

	logger.Info().Str("path", seedPath).Msg("seeding")
	if err := fleetdb.SeedFromJSON(conn, seedPath); err != nil {
		logger.Fatal().Err(err).Msg("seeding failed")
	}
	logger.Info().Msg("done")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
