package helpers

import (
	"context"
	"log/slog"

	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

// TestLogger returns a logger that discards everything.
func TestLogger() *slog.Logger {
	return logger.New("", logger.NewTestHandler)
}

// TestCtx returns a context carrying a test logger.
func TestCtx() context.Context {
	return logger.ToContext(context.Background(), TestLogger())
}
