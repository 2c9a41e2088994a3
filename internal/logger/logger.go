// Package logger configures the process-wide slog logger for the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Config selects the destination and verbosity.
type Config struct {
	// Output defaults to os.Stderr.
	Output io.Writer
	Debug  bool
	JSON   bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs a logger built from cfg, both as L() and as slog's default.
func Setup(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	l := slog.New(h)

	mu.Lock()
	global = l
	mu.Unlock()
	slog.SetDefault(l)

	l.Debug("logger.initialized", "debug", cfg.Debug, "json", cfg.JSON)
	return l
}

// L returns the logger installed by Setup, or a discarding logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
