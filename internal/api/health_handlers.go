package api

import (
	"context"
	"net/http"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
)

// handleLiveness always returns 200 while the process is running.
func (s *Server) handleLiveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReadiness returns 503 when the database cannot be reached.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if s.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.DB.PingContext(ctx); err != nil {
			log.Warn("readiness check failed - database: %v", err)
			handleError(w, r, errors.NewUnavailableError("database unavailable", err))
			return
		}
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
