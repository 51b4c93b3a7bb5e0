package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueHealthRecompute(userID string) error
	EnqueueWeeklyReview(userID string) error
}
