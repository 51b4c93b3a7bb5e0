package worker

import (
	"context"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
)

// HealthComputer scores and stores a user's topics. It mirrors the services
// method so this package does not import services.
type HealthComputer interface {
	ComputeForUser(ctx context.Context, userID string, date time.Time) ([]models.TopicHealth, error)
}

// WeeklyReviewer builds and stores a weekly review.
type WeeklyReviewer interface {
	Compute(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error)
}

// RecomputeHealthJob writes today's snapshots for one user.
type RecomputeHealthJob struct {
	Health HealthComputer
	UserID string
	Now    func() time.Time
}

func (j *RecomputeHealthJob) Name() string { return "recompute_health" }

func (j *RecomputeHealthJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("user_id", j.UserID)
	results, err := j.Health.ComputeForUser(logger.NewContext(ctx, log), j.UserID, now(j.Now))
	if err != nil {
		return err
	}
	log.Info("recomputed %d topics", len(results))
	return nil
}

// WeeklyReviewJob refreshes the review for the week containing now.
type WeeklyReviewJob struct {
	Reviews WeeklyReviewer
	UserID  string
	Now     func() time.Time
}

func (j *WeeklyReviewJob) Name() string { return "weekly_review" }

func (j *WeeklyReviewJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("user_id", j.UserID)
	resp, err := j.Reviews.Compute(logger.NewContext(ctx, log), j.UserID, now(j.Now))
	if err != nil {
		return err
	}
	log.Info("weekly review stored for week_end=%s", resp.WeekEnd)
	return nil
}

func now(f func() time.Time) time.Time {
	if f == nil {
		return time.Now()
	}
	return f()
}
