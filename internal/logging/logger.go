// Package logging configures slog for the server and provides the gin
// request logging middleware.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log levels accepted in LOG_LEVEL.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Output formats accepted in LOG_FORMAT.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New builds a logger writing to w (stderr when nil).
func New(w io.Writer, level, format string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, FormatJSON) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel maps a level name to slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, "WARNING":
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
