package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath string // hcl file or directory; the demo graph when empty

	TraceTarget string // trace to this name instead of looking for a cycle
	PrintTree   bool

	LogFormat string
	LogLevel  string
}

// ErrInvalidConfig is wrapped by every validation failure of NewConfig.
var ErrInvalidConfig = errors.New("invalid configuration")

// NewConfig validates cfg, fills in defaults and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("%w: log-format must be 'text' or 'json'", ErrInvalidConfig)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn', or 'error'", ErrInvalidConfig)
	}

	return &cfg, nil
}
