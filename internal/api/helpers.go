package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/go-chi/chi/v5"
)

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Warn("failed to encode response: %v", err)
	}
}

func userIDParam(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "userID"))
	if id == "" {
		return "", errors.NewValidationError("user_id", "must not be empty")
	}
	return id, nil
}

// dateParam reads ?date=YYYY-MM-DD, falling back to def when absent.
func dateParam(r *http.Request, def time.Time) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return def, nil
	}
	d, err := time.Parse(models.DateFormat, raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError("date", "expected YYYY-MM-DD")
	}
	return d, nil
}
