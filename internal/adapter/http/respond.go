package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campaign-roi/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// the status line is already sent, nothing left to report to the client
	_ = json.NewEncoder(w).Encode(v)
}

// fail logs err and writes it as a JSON error. Unknown groupings are
// reported as 404, everything else as 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUnknownDimension) {
		status = http.StatusNotFound
	}
	h.logger.Error(msg,
		slog.String("request_id", requestIDFrom(r.Context())),
		slog.Int("status", status),
		slog.Any("error", err),
	)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
