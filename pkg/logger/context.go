package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const loggerKey contextKey = "logger"

// ToContext stores a logger in the context
func ToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the request logger, falling back to slog.Default so
// callers never get nil.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With adds attributes to the context logger and returns both the new logger
// and a context carrying it:
//
//	log, ctx := logger.With(ctx, "uid", uid)
func With(ctx context.Context, args ...any) (*slog.Logger, context.Context) {
	logger := FromContext(ctx).With(args...)
	return logger, ToContext(ctx, logger)
}
