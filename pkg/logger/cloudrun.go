package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// CloudRunHandler writes one JSON object per record using the Cloud Logging
// field names (severity, message, time) with attributes nested under data.
type CloudRunHandler struct {
	level slog.Level
	attrs []slog.Attr

	mu  *sync.Mutex
	out io.Writer
}

func NewCloudRunHandler(level slog.Level) slog.Handler {
	return newCloudRunHandler(level, os.Stdout)
}

func newCloudRunHandler(level slog.Level, out io.Writer) *CloudRunHandler {
	return &CloudRunHandler{level: level, mu: new(sync.Mutex), out: out}
}

func (h *CloudRunHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *CloudRunHandler) Handle(_ context.Context, r slog.Record) error {
	event := map[string]any{
		"severity": mapSeverity(r.Level),
		"message":  r.Message,
		"time":     r.Time.Format(time.RFC3339Nano),
	}

	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		data := make(map[string]any, len(h.attrs)+r.NumAttrs())
		for _, a := range h.attrs {
			data[a.Key] = attrValue(a.Value)
		}
		r.Attrs(func(a slog.Attr) bool {
			data[a.Key] = attrValue(a.Value)
			return true
		})
		event["data"] = data
	}

	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(append(b, '\n'))
	return err
}

func (h *CloudRunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &newH
}

// WithGroup is a no-op; the output format has no groups.
func (h *CloudRunHandler) WithGroup(_ string) slog.Handler {
	return h
}

// ---- Helpers ----

func mapSeverity(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARNING"
	case slog.LevelError:
		return "ERROR"
	default:
		return "DEFAULT"
	}
}

// attrValue keeps errors readable; json.Marshal renders most error values as {}.
func attrValue(v slog.Value) any {
	v = v.Resolve()
	if err, ok := v.Any().(error); ok {
		return err.Error()
	}
	return v.Any()
}
