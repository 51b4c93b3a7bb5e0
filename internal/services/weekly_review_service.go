package services

import (
	"context"
	"strings"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/weekly"
	"golang.org/x/sync/errgroup"
)

// WeeklyReviewService builds and caches the review for the week ending on the
// most recent Sunday on or before the reference date.
type WeeklyReviewService interface {
	// Get returns the stored review for closed weeks and recomputes the current one.
	Get(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error)
	Compute(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error)
}

type weeklyReviewService struct {
	topicRepo     repository.TopicRepository
	progressRepo  repository.ProgressRepository
	snapshotRepo  repository.SnapshotRepository
	reviewRepo    repository.WeeklyReviewRepository
	telemetryRepo repository.TelemetryRepository
	tuning        scoring.Tuning
	now           func() time.Time
}

// NewWeeklyReviewService creates a new WeeklyReviewService; now defaults to time.Now.
func NewWeeklyReviewService(
	topicRepo repository.TopicRepository,
	progressRepo repository.ProgressRepository,
	snapshotRepo repository.SnapshotRepository,
	reviewRepo repository.WeeklyReviewRepository,
	telemetryRepo repository.TelemetryRepository,
	tuning scoring.Tuning,
	now func() time.Time,
) WeeklyReviewService {
	if now == nil {
		now = time.Now
	}
	return &weeklyReviewService{
		topicRepo:     topicRepo,
		progressRepo:  progressRepo,
		snapshotRepo:  snapshotRepo,
		reviewRepo:    reviewRepo,
		telemetryRepo: telemetryRepo,
		tuning:        tuning,
		now:           now,
	}
}

func (s *weeklyReviewService) Get(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error) {
	log := logger.FromContext(ctx)
	_, end := weekly.WeekBounds(ref)
	log.Debug("getting weekly review: user_id=%s, week_end=%s", userID, weekly.FormatDay(end))

	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewValidationError("user_id", "must not be empty")
	}

	if weekly.IsPastWeek(end, s.now()) {
		cached, err := s.reviewRepo.Get(ctx, userID, weekly.FormatDay(end))
		if err != nil {
			log.Error("failed to load cached review: %v", err)
			weeklyReviewTotal.WithLabelValues(resultError).Inc()
			return nil, errors.NewInternalError(err)
		}
		if cached != nil {
			weeklyReviewTotal.WithLabelValues(sourceCache).Inc()
			return &models.WeeklyReviewResponse{
				WeeklyReview: *cached,
				Deltas:       weekly.Deltas(cached.Metrics),
				Cached:       true,
			}, nil
		}
		log.Debug("no cached review, computing")
	}

	return s.Compute(ctx, userID, ref)
}

func (s *weeklyReviewService) Compute(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewValidationError("user_id", "must not be empty")
	}

	weekStart, weekEnd := weekly.WeekBounds(ref)
	from, to := weekly.FormatDay(weekStart), weekly.FormatDay(weekEnd)
	log.Debug("computing weekly review: user_id=%s, from=%s, to=%s", userID, from, to)

	in, err := s.gather(ctx, userID, weekStart, weekEnd)
	if err != nil {
		log.Error("failed to gather weekly inputs: %v", err)
		weeklyReviewTotal.WithLabelValues(resultError).Inc()
		return nil, errors.NewInternalError(err)
	}

	metrics := weekly.Derive(*in, s.tuning)
	review := models.WeeklyReview{
		UserID:          userID,
		WeekStart:       from,
		WeekEnd:         to,
		Metrics:         metrics,
		Wins:            weekly.BuildWins(metrics, s.tuning),
		AreasToImprove:  weekly.BuildAreas(metrics, s.tuning),
		Recommendations: weekly.BuildRecommendations(metrics, s.tuning),
		Highlights:      weekly.TopHighlights(weekly.Candidates(metrics), s.tuning.HighlightCount),
		GeneratedAt:     s.now().UTC(),
	}

	if err := s.reviewRepo.Upsert(ctx, review); err != nil {
		log.Error("failed to store weekly review: %v", err)
		weeklyReviewTotal.WithLabelValues(resultError).Inc()
		return nil, errors.NewInternalError(err)
	}

	weeklyReviewTotal.WithLabelValues(sourceComputed).Inc()
	weeklyReviewDuration.Observe(time.Since(start).Seconds())
	log.Info("weekly review computed for user_id=%s week_end=%s in %v", userID, to, time.Since(start))

	return &models.WeeklyReviewResponse{
		WeeklyReview: review,
		Deltas:       weekly.Deltas(metrics),
	}, nil
}

// gather runs every read for the week concurrently. Any failure fails the whole run.
func (s *weeklyReviewService) gather(ctx context.Context, userID string, weekStart, weekEnd time.Time) (*weekly.Inputs, error) {
	from, to := weekly.FormatDay(weekStart), weekly.FormatDay(weekEnd)
	in := &weekly.Inputs{UserID: userID, WeekStart: weekStart, WeekEnd: weekEnd}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.DailyLogs, err = s.telemetryRepo.DailyLogs(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.Velocity, err = s.telemetryRepo.VelocitySnapshots(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.Burnout, err = s.telemetryRepo.BurnoutSnapshots(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.PlanItems, err = s.telemetryRepo.PlanItems(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.ZonesStart, err = s.snapshotRepo.ZoneCounts(gctx, userID, from)
		return err
	})
	g.Go(func() (err error) {
		in.ZonesEnd, err = s.snapshotRepo.ZoneCounts(gctx, userID, to)
		return err
	})
	g.Go(func() (err error) {
		in.BufferEntries, err = s.telemetryRepo.BufferEntries(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.ConfidenceStatus, err = s.progressRepo.ConfidenceDistribution(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		in.Streaks, err = s.telemetryRepo.Streaks(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		in.XPEntries, in.XPTotal, err = s.telemetryRepo.XPLedger(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.Badges, err = s.telemetryRepo.BadgeUnlocks(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		in.Targets, err = s.telemetryRepo.Targets(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		in.Subjects, err = s.topicRepo.ListSubjects(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.SubjectConfidence, err = s.telemetryRepo.SubjectConfidence(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		in.PlanTouches, err = s.telemetryRepo.PlanSubjectTouches(gctx, userID, to)
		return err
	})
	g.Go(func() (err error) {
		in.ProgressTouches, err = s.progressRepo.SubjectTouches(gctx, userID, to)
		return err
	})
	g.Go(func() (err error) {
		in.BenchmarkStart, err = s.telemetryRepo.BenchmarkOn(gctx, userID, from)
		return err
	})
	g.Go(func() (err error) {
		in.BenchmarkEnd, err = s.telemetryRepo.BenchmarkOn(gctx, userID, to)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}
