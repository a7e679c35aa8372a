package library

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings read from the environment. Command-line flags
// override them.
type Config struct {
	MaxBooks    int    `env:"SMARTLIB_MAX_BOOKS" envDefault:"0"`
	MaxRequests int    `env:"SMARTLIB_MAX_REQUESTS" envDefault:"0"`
	MaxActions  int    `env:"SMARTLIB_MAX_ACTIONS" envDefault:"0"`
	MaxIssued   int    `env:"SMARTLIB_MAX_ISSUED" envDefault:"0"`
	LogLevel    string `env:"SMARTLIB_LOG_LEVEL" envDefault:"warn"`
	SeedFile    string `env:"SMARTLIB_SEED"`
}

// LoadConfig parses Config from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Limits returns the container budgets.
func (c Config) Limits() Limits {
	return Limits{
		Books:    c.MaxBooks,
		Requests: c.MaxRequests,
		Actions:  c.MaxActions,
		Issued:   c.MaxIssued,
	}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
