package jobs

import (
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/worker"
)

// WorkerQueue implements JobQueue using worker pools
type WorkerQueue struct {
	healthPool *worker.Pool
	weeklyPool *worker.Pool
	health     worker.HealthComputer
	reviews    worker.WeeklyReviewer
	now        func() time.Time
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(
	healthPool *worker.Pool,
	weeklyPool *worker.Pool,
	health worker.HealthComputer,
	reviews worker.WeeklyReviewer,
	now func() time.Time,
) JobQueue {
	return &WorkerQueue{
		healthPool: healthPool,
		weeklyPool: weeklyPool,
		health:     health,
		reviews:    reviews,
		now:        now,
	}
}

func (q *WorkerQueue) EnqueueHealthRecompute(userID string) error {
	return q.healthPool.Submit(&worker.RecomputeHealthJob{
		Health: q.health,
		UserID: userID,
		Now:    q.now,
	})
}

func (q *WorkerQueue) EnqueueWeeklyReview(userID string) error {
	return q.weeklyPool.Submit(&worker.WeeklyReviewJob{
		Reviews: q.reviews,
		UserID:  userID,
		Now:     q.now,
	})
}
