package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"

	sourceCache    = "cache"
	sourceComputed = "computed"
)

var (
	// healthRecomputeTotal counts per-user health recomputes by result
	healthRecomputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_recompute_total",
		Help: "Total per-user health recomputes by result",
	}, []string{"result"})

	// healthRecomputeTopics tracks how many topics each recompute scored
	healthRecomputeTopics = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "health_recompute_topics",
		Help:    "Number of topics scored per recompute",
		Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500},
	})

	// weeklyReviewTotal counts weekly review requests by where the answer came from
	weeklyReviewTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "weekly_review_total",
		Help: "Total weekly review requests by source",
	}, []string{"source"})

	weeklyReviewDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "weekly_review_duration_seconds",
		Help:    "Weekly review computation duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
	})
)
