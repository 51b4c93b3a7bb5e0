package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeFailed   = "failed"
	outcomePanicked = "panicked"
	outcomeRejected = "rejected"
)

var (
	jobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_jobs_total",
		Help: "Background jobs by pool, job name and outcome.",
	}, []string{"pool", "job", "outcome"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "worker_job_duration_seconds",
		Help:    "Time spent running background jobs.",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"pool", "job"})

	queueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "worker_queue_depth",
		Help: "Jobs waiting in each pool's queue.",
	}, []string{"pool"})
)
