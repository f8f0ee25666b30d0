package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config keeps runtime settings for the tracker.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" env-default:"productivity.db"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
