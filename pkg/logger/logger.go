package logger

import (
	"log/slog"
	"strings"
)

// HandlerFunc builds the slog handler for a minimum level.
type HandlerFunc func(level slog.Level) slog.Handler

func New(level string, handler HandlerFunc) *slog.Logger {
	return slog.New(handler(getSlogLevel(level)))
}

// ---- Helpers ----
func getSlogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
