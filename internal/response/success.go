package response

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/notionflow-backend/pkg/logger"
)

// WriteSuccess writes data as the bare JSON response body.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are already sent; log and move on
		logger.FromContext(r.Context()).Error("failed to encode success response", "error", err)
	}
}
