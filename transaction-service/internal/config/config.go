package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment. An empty RedisAddr disables event
// publishing.
type Config struct {
	Port          string `env:"PORT"           envDefault:"8084"`
	LogLevel      string `env:"LOG_LEVEL"      envDefault:"info"`
	LogPretty     bool   `env:"LOG_PRETTY"     envDefault:"false"`
	GinMode       string `env:"GIN_MODE"       envDefault:"release"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// EventsEnabled reports whether a Redis stream should receive events.
func (c Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}

// Load reads the given dotenv files, if present, then parses the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
