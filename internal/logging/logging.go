// Package logging builds the process slog.Logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configure New.
type Options struct {
	Service   string
	Env       string
	Level     string
	Format    string // "text" (default) or "json"
	Writer    io.Writer
	AddSource bool
	// SetDefault installs the logger as slog.Default.
	SetDefault bool
}

// New returns a logger tagged with service and env attributes.
func New(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: opts.AddSource,
	}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(w, hopts)
	} else {
		h = slog.NewTextHandler(w, hopts)
	}

	base := slog.New(h)
	if opts.Service != "" {
		base = base.With("service", opts.Service)
	}
	if opts.Env != "" {
		base = base.With("env", opts.Env)
	}

	if opts.SetDefault {
		slog.SetDefault(base)
	}
	return base
}

// ParseLevel maps debug, warn/warning and error to their slog levels.
// Anything else is info.
func ParseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
