// Package config resolves application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Session backend names.
const (
	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

// Config holds all runtime settings.
type Config struct {
	Host string `env:"STRAFEN_HOST" envDefault:""`
	Port int    `env:"STRAFEN_PORT" envDefault:"8080"`

	// Driver selects the relational store: "sqlite" (default, local file)
	// or "postgres" (DSN required).
	Driver string `env:"STRAFEN_DB_DRIVER" envDefault:"sqlite"`
	// DSN is the sqlite file path or the postgres connection string.
	DSN string `env:"STRAFEN_DB_DSN" envDefault:"strafenkasse.db"`

	// TreasurerCode is the shared access code for the treasurer role.
	// It is checked by exact string match; this is a convenience gate,
	// not a security boundary.
	TreasurerCode string        `env:"STRAFEN_KASSIER_CODE" envDefault:"1970"`
	SessionTTL    time.Duration `env:"STRAFEN_SESSION_TTL" envDefault:"24h"`

	// Sessions selects the session backend: "memory" or "redis".
	Sessions string `env:"STRAFEN_SESSIONS" envDefault:"memory"`
	RedisURL string `env:"STRAFEN_REDIS_URL" envDefault:"redis://localhost:6379"`
}

// Load parses configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("invalid STRAFEN_DB_DRIVER %q: must be %q or %q", c.Driver, DriverSQLite, DriverPostgres)
	}
	switch c.Sessions {
	case SessionsMemory, SessionsRedis:
	default:
		return fmt.Errorf("invalid STRAFEN_SESSIONS %q: must be %q or %q", c.Sessions, SessionsMemory, SessionsRedis)
	}
	if c.DSN == "" {
		return fmt.Errorf("STRAFEN_DB_DSN is required")
	}
	return nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
