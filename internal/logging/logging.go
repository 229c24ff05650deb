// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs a global slog logger writing to stderr. Output is JSON when
// LOVESIM_JSON_LOG is 1, true or json, text otherwise. LOVESIM_LOG_LEVEL
// selects debug, info, warn or error.
func Init(service string) *slog.Logger {
	return New(os.Stderr, service, os.Getenv("LOVESIM_JSON_LOG"), os.Getenv("LOVESIM_LOG_LEVEL"))
}

// New builds a logger from explicit settings and makes it the default.
func New(w io.Writer, service, mode, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if jsonMode(mode) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("service", service)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel maps a level name to a slog.Level. Unknown names are info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func jsonMode(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "json":
		return true
	}
	return false
}
