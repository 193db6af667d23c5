package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port            int           `envconfig:"PORT" default:"8080"`
		ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
		CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`
	}

	DB struct {
		Path string `envconfig:"DB_PATH" default:"./data/expenses.db"`
	}

	Log struct {
		Level  string `envconfig:"LOG_LEVEL" default:"info"`
		Format string `envconfig:"LOG_FORMAT" default:"text"`
	}

	Tracker struct {
		// EarnersOnly counts only members with earning status set in total earnings.
		EarnersOnly bool `envconfig:"EARNERS_ONLY" default:"false"`
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

// Load reads an optional .env file from the working directory, then the environment.
// Variables already set in the environment win over .env values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.Log.Format != "text" && cfg.Log.Format != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.Log.Format)
	}

	return &cfg, nil
}
