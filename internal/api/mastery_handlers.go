package api

import (
	"net/http"
	"strings"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/go-chi/chi/v5"
)

type computeResponse struct {
	UserID string               `json:"user_id"`
	Date   string               `json:"date"`
	Topics []models.TopicHealth `json:"topics"`
}

func (s *Server) handleComputeHealth(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	date, err := dateParam(r, s.now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	results, err := s.HealthService.ComputeForUser(r.Context(), userID, date)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, computeResponse{
		UserID: userID,
		Date:   date.Format(models.DateFormat),
		Topics: results,
	})
}

func (s *Server) handleQueueRecompute(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.JobQueue.EnqueueHealthRecompute(userID); err != nil {
		handleError(w, r, errors.NewUnavailableError("recompute queue unavailable, retry later", err))
		return
	}
	logger.FromContext(r.Context()).Info("queued health recompute for user_id=%s", userID)
	writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	overview, err := s.HealthService.Overview(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, overview)
}

func (s *Server) handleTopicDetail(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	topicID := strings.TrimSpace(chi.URLParam(r, "topicID"))
	ref, err := dateParam(r, s.now())
	if err != nil {
		handleError(w, r, err)
		return
	}

	detail, err := s.HealthService.TopicDetail(r.Context(), userID, topicID, ref)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, detail)
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
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

	report, err := s.HealthService.Insights(r.Context(), userID, ref)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}
