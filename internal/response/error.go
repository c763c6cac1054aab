package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/notionflow-backend/internal/errs"
	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

const (
	MessageInvalidRequest = "Invalid request"
	MessageInternalError  = "Internal server error"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: message}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, e.Message)

	case *errs.InvalidModeError:
		log.Warn("invalid mode", "mode", e.Mode)
		h.WriteError(w, r, http.StatusBadRequest, MessageInvalidRequest)

	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, MessageInvalidRequest)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, MessageInternalError)
	}
}
