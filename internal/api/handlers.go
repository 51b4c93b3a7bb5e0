package api

import (
	"context"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/jobs"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/services"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	HealthService  services.HealthService
	WeeklyService  services.WeeklyReviewService
	JobQueue       jobs.JobQueue
	DB             Pinger
	MetricsEnabled bool
	// Now is the default reference date for requests without ?date=.
	Now func() time.Time
}

func (s *Server) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
