// Package logging provides structured logging for dispatch.
// Supports JSON and console formats with per-component child loggers.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Out    io.Writer
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Out:    os.Stderr,
	}
}

var (
	global   zerolog.Logger = zerolog.Nop()
	globalMu sync.RWMutex
)

// Init configures the global logger.
func Init(cfg Config) error {
	logger, err := New(cfg)
	if err != nil {
		return err
	}
	globalMu.Lock()
	global = logger
	globalMu.Unlock()
	return nil
}

// New creates a logger from the given configuration.
func New(cfg Config) (zerolog.Logger, error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "console"
	}
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Out
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: cfg.Out}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Component returns the global logger tagged with a component name.
func Component(name string) zerolog.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global.With().Str("component", name).Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
