package api

import (
	"net/http"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
)

// handleWeeklyReview serves the review for the week ending on the last Sunday
// on or before ?date=. ?refresh=true bypasses the stored copy.
func (s *Server) handleWeeklyReview(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	ref, err := dateParam(r, s.now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	get := s.WeeklyService.Get
	if r.URL.Query().Get("refresh") == "true" {
		get = s.WeeklyService.Compute
	}
	review, err := get(r.Context(), userID, ref)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, review)
}

func (s *Server) handleQueueWeeklyReview(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.JobQueue.EnqueueWeeklyReview(userID); err != nil {
		handleError(w, r, errors.NewUnavailableError("weekly review queue unavailable, retry later", err))
		return
	}
	logger.FromContext(r.Context()).Info("queued weekly review for user_id=%s", userID)
	writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "queued"})
}
