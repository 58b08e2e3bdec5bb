// Package logging provides the structured logger shared by the fetch loop
// and the display backends.
package logging

import (
	"io"
	"log/slog"
)

// New creates a structured logger with JSON output at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// ParseLevel maps a flag value to a slog level, defaulting to warn so the
// board's own frames are not interleaved with log noise.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
