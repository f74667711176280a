package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "VIACARGO"

// Config holds every setting the console reads from the environment.
type Config struct {
	App   AppConfig
	Fleet FleetConfig
	Redis RedisConfig
}

type AppConfig struct {
	Port     string `envconfig:"VIACARGO_PORT" default:"8080"`
	LogLevel string `envconfig:"VIACARGO_LOG_LEVEL" default:"info"`
}

// FleetConfig points the console at the fleet backend.
type FleetConfig struct {
	BaseURL string `envconfig:"VIACARGO_FLEET_URL" required:"true"`
	// Timeout is the transport default ceiling for calls without an
	// explicit per-call bound.
	Timeout time.Duration `envconfig:"VIACARGO_FLEET_TIMEOUT" default:"15s"`
	// RoutingTimeout bounds the routing-optimization call specifically.
	RoutingTimeout time.Duration `envconfig:"VIACARGO_ROUTING_TIMEOUT" default:"30s"`
}

type RedisConfig struct {
	Addr       string        `envconfig:"VIACARGO_REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"VIACARGO_REDIS_PASSWORD"`
	DB         int           `envconfig:"VIACARGO_REDIS_DB" default:"0"`
	SessionTTL time.Duration `envconfig:"VIACARGO_SESSION_TTL" default:"12h"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
