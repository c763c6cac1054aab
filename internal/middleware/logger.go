package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

type loggerMiddleware struct {
	Log *slog.Logger
}

func NewLoggerMiddleware(log *slog.Logger) *loggerMiddleware {
	return &loggerMiddleware{Log: log}
}

// LoggerMiddleware puts a request-scoped logger into the context and logs the
// outcome of every request. It must run after chi's RequestID.
func (m *loggerMiddleware) LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := chimiddleware.GetReqID(r.Context())

		enrichedLogger := m.Log.With(
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
		)
		ctx := logger.ToContext(r.Context(), enrichedLogger)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		enrichedLogger.Debug("request completed", "status", ww.Status(), "bytes", ww.BytesWritten())
	})
}
