package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration.
type Config struct {
	Env       string `env:"ONTASTE_ENV" envDefault:"dev"`
	LogLevel  string `env:"ONTASTE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ONTASTE_LOG_FORMAT" envDefault:"text"`
	DBPath    string `env:"ONTASTE_DB_PATH" envDefault:"ontaste.db"`
	MenuPath  string `env:"ONTASTE_MENU_PATH"`
	Output    string `env:"ONTASTE_OUTPUT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown log and output formats.
func (c Config) Validate() error {
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("ONTASTE_LOG_FORMAT: unknown format %q (want text or json)", c.LogFormat)
	}
	if !slices.Contains([]string{"text", "json"}, c.Output) {
		return fmt.Errorf("ONTASTE_OUTPUT: unknown format %q (want text or json)", c.Output)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("ONTASTE_DB_PATH: must not be empty")
	}
	return nil
}
