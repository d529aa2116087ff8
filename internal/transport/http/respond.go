package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"orgadmin/internal/domain"
	"orgadmin/internal/observability/middleware"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeError maps a pipeline failure to its transport outcome. Client
// faults keep their message (it names the offending field or reason);
// server faults get a generic body with the detail logged only.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, entity string, err error) {
	switch {
	case domain.IsClientFault(err):
		log.Warn("submission rejected",
			"entity", entity,
			"reason", err.Error(),
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrRecordNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	default:
		log.Error("request failed",
			"entity", entity,
			"error", err,
			"request_id", middleware.RequestIDFromContext(r.Context()),
		)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
