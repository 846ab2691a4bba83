package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// State backend names accepted in configuration.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds server configuration, populated from the environment.
type Config struct {
	Port          int           `env:"PORT" envDefault:"8080"`
	OrgConfigPath string        `env:"ORG_CONFIG_PATH" envDefault:"organizations.json"`
	StateBackend  string        `env:"STATE_BACKEND" envDefault:"memory"`
	SQLitePath    string        `env:"SQLITE_PATH" envDefault:"cert-publisher.db"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	RenderTimeout time.Duration `env:"RENDER_TIMEOUT" envDefault:"30s"`
	PreviewScale  float64       `env:"PREVIEW_SCALE" envDefault:"1.5"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c Config) Validate() error {
	switch c.StateBackend {
	case BackendMemory, BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("config error: unknown state backend %q", c.StateBackend)
	}
	if c.StateBackend == BackendPostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required for the postgres backend")
	}
	if c.PreviewScale <= 0 {
		return fmt.Errorf("config error: preview scale must be positive")
	}
	return nil
}
