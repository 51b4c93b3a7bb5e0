package api

import (
	"net/http"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(loggingMiddleware)
	r.Use(recoveryMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/healthz", s.handleLiveness)
	r.Get("/readyz", s.handleReadiness)
	if s.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/users/{userID}", func(r chi.Router) {
		r.Post("/health/compute", s.handleComputeHealth)
		r.Post("/health/recompute", s.handleQueueRecompute)
		r.Get("/health/overview", s.handleOverview)
		r.Get("/health/topics/{topicID}", s.handleTopicDetail)
		r.Get("/insights", s.handleInsights)
		r.Get("/weekly-review", s.handleWeeklyReview)
		r.Post("/weekly-review/recompute", s.handleQueueWeeklyReview)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	return r
}
