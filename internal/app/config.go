package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/gridcalc/internal/config"
	"github.com/vk/gridcalc/internal/notify"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string // text | json
	LogLevel  string // debug | info | warn | error

	// File evaluation.
	SheetPath    string
	OutputFormat config.Format
	OutFile      string // stdout when empty
	OutDir       string // required when SheetPath is a directory

	// HTTP server.
	Port            int
	RateLimit       float64 // requests per second, 0 disables
	RateBurst       int
	NotifyURL       string // socket.io push disabled when empty
	NotifyNamespace string
	NotifyEvent     string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = config.FormatJSON
	}
	format, err := config.ParseFormat(string(cfg.OutputFormat))
	if err != nil {
		return nil, err
	}
	cfg.OutputFormat = format
	if cfg.OutFile != "" && cfg.OutDir != "" {
		return nil, errors.New("an output file and an output directory are mutually exclusive")
	}
	if format == config.FormatXLSX && cfg.OutFile == "" && cfg.OutDir == "" {
		return nil, errors.New("xlsx output requires an output file")
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.RateLimit < 0 {
		return nil, fmt.Errorf("rate limit must not be negative, got %v", cfg.RateLimit)
	}
	if cfg.RateBurst < 0 {
		return nil, fmt.Errorf("rate burst must not be negative, got %d", cfg.RateBurst)
	}
	if cfg.RateLimit > 0 && cfg.RateBurst == 0 {
		cfg.RateBurst = 1
	}
	if cfg.NotifyEvent == "" {
		cfg.NotifyEvent = notify.DefaultEvent
	}

	return &cfg, nil
}
