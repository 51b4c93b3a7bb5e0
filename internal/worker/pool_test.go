package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcJob struct {
	name string
	run  func(context.Context) error
}

func (j funcJob) Name() string { return j.name }
func (j funcJob) Run(ctx context.Context) error { return j.run(ctx) }

func TestPool_RunsSubmittedJobs(t *testing.T) {
	p := NewPool("test", 3, 10)
	p.Start(context.Background())

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(funcJob{name: "count", run: func(context.Context) error {
			defer wg.Done()
			ran.Add(1)
			return nil
		}}))
	}
	wg.Wait()
	p.Stop()

	assert.Equal(t, int32(5), ran.Load())
}

func TestPool_SurvivesFailingAndPanickingJobs(t *testing.T) {
	p := NewPool("test", 1, 4)
	p.Start(context.Background())

	done := make(chan struct{})
	require.NoError(t, p.Submit(funcJob{name: "fail", run: func(context.Context) error { return errors.New("boom") }}))
	require.NoError(t, p.Submit(funcJob{name: "panic", run: func(context.Context) error { panic("bad") }}))
	require.NoError(t, p.Submit(funcJob{name: "ok", run: func(context.Context) error { close(done); return nil }}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not recover")
	}
	p.Stop()
}

func TestPool_RejectsWhenFullOrStopped(t *testing.T) {
	p := NewPool("test", 1, 1)

	block := funcJob{name: "noop", run: func(context.Context) error { return nil }}
	require.NoError(t, p.Submit(block))
	assert.ErrorIs(t, p.Submit(block), ErrQueueFull)
	assert.Equal(t, 1, p.QueueSize())

	p.Start(context.Background())
	p.Stop()
	p.Stop()
	assert.ErrorIs(t, p.Submit(block), ErrPoolStopped)
}

func TestPool_RecordsJobOutcomes(t *testing.T) {
	p := NewPool("metrics-test", 1, 4)
	p.Start(context.Background())

	require.NoError(t, p.Submit(funcJob{name: "m", run: func(context.Context) error { return errors.New("boom") }}))
	require.NoError(t, p.Submit(funcJob{name: "m", run: func(context.Context) error { panic("bad") }}))
	require.NoError(t, p.Submit(funcJob{name: "m", run: func(context.Context) error { return nil }}))
	p.Stop()

	assert.Equal(t, 1.0, testutil.ToFloat64(jobsTotal.WithLabelValues("metrics-test", "m", outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(jobsTotal.WithLabelValues("metrics-test", "m", outcomeFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(jobsTotal.WithLabelValues("metrics-test", "m", outcomePanicked)))
}

type stubHealth struct {
	userID string
	date   time.Time
}

func (s *stubHealth) ComputeForUser(_ context.Context, userID string, date time.Time) ([]models.TopicHealth, error) {
	s.userID, s.date = userID, date
	return []models.TopicHealth{{HealthScore: 10}}, nil
}

type stubReviews struct{ err error }

func (s stubReviews) Compute(_ context.Context, _ string, ref time.Time) (*models.WeeklyReviewResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.WeeklyReviewResponse{WeeklyReview: models.WeeklyReview{WeekEnd: ref.Format(models.DateFormat)}}, nil
}

func TestJobs(t *testing.T) {
	at := time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return at }

	health := &stubHealth{}
	job := &RecomputeHealthJob{Health: health, UserID: "u1", Now: clock}
	assert.Equal(t, "recompute_health", job.Name())
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, "u1", health.userID)
	assert.True(t, at.Equal(health.date))

	review := &WeeklyReviewJob{Reviews: stubReviews{}, UserID: "u1", Now: clock}
	assert.Equal(t, "weekly_review", review.Name())
	require.NoError(t, review.Run(context.Background()))

	failing := &WeeklyReviewJob{Reviews: stubReviews{err: errors.New("down")}, UserID: "u1", Now: clock}
	assert.Error(t, failing.Run(context.Background()))
}
