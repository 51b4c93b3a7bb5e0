package services

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/insights"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/logger"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/repository"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/weekly"
	"golang.org/x/sync/errgroup"
)

// HealthService scores topics, persists daily snapshots and serves the
// read models built on top of them.
type HealthService interface {
	ComputeForUser(ctx context.Context, userID string, date time.Time) ([]models.TopicHealth, error)
	Overview(ctx context.Context, userID string) (*models.HealthOverview, error)
	TopicDetail(ctx context.Context, userID, topicID string, ref time.Time) (*models.TopicHealthDetail, error)
	Insights(ctx context.Context, userID string, ref time.Time) (*models.InsightReport, error)
	RecomputeAll(ctx context.Context, date time.Time) (int, error)
}

type healthService struct {
	topicRepo    repository.TopicRepository
	progressRepo repository.ProgressRepository
	mockRepo     repository.MockAccuracyRepository
	snapshotRepo repository.SnapshotRepository
	scope        repository.ScopeProvider
	scorer       *scoring.Scorer
	detector     *insights.Detector
	concurrency  int
	now          func() time.Time
}

// NewHealthService creates a new HealthService. concurrency bounds how many
// users RecomputeAll scores at once; now defaults to time.Now.
func NewHealthService(
	topicRepo repository.TopicRepository,
	progressRepo repository.ProgressRepository,
	mockRepo repository.MockAccuracyRepository,
	snapshotRepo repository.SnapshotRepository,
	scope repository.ScopeProvider,
	tuning scoring.Tuning,
	concurrency int,
	now func() time.Time,
) HealthService {
	if concurrency <= 0 {
		concurrency = 1
	}
	if now == nil {
		now = time.Now
	}
	return &healthService{
		topicRepo:    topicRepo,
		progressRepo: progressRepo,
		mockRepo:     mockRepo,
		snapshotRepo: snapshotRepo,
		scope:        scope,
		scorer:       scoring.NewScorer(tuning),
		detector:     insights.NewDetector(tuning),
		concurrency:  concurrency,
		now:          now,
	}
}

// scored is the live state of every topic for one user.
type scored struct {
	topics   []models.TopicRef
	progress map[string]models.ProgressRecord
	results  []models.TopicHealth
}

func (s *healthService) scoreUser(ctx context.Context, userID string, ref time.Time) (*scored, error) {
	log := logger.FromContext(ctx)

	topics, err := s.topicRepo.ListTopics(ctx)
	if err != nil {
		log.Error("failed to list topics: %v", err)
		return nil, errors.NewInternalError(err)
	}
	records, err := s.progressRepo.ListForUser(ctx, userID)
	if err != nil {
		log.Error("failed to list progress: %v", err)
		return nil, errors.NewInternalError(err)
	}
	mocks, err := s.mockRepo.ListForUser(ctx, userID)
	if err != nil {
		log.Error("failed to list mock accuracy: %v", err)
		return nil, errors.NewInternalError(err)
	}

	progress := make(map[string]models.ProgressRecord, len(records))
	for _, p := range records {
		progress[p.TopicID] = p
	}
	mockByTopic := make(map[string]models.MockAccuracy, len(mocks))
	for _, m := range mocks {
		mockByTopic[m.TopicID] = m
	}

	out := &scored{topics: topics, progress: progress, results: make([]models.TopicHealth, 0, len(topics))}
	for _, t := range topics {
		var p *models.ProgressRecord
		if rec, ok := progress[t.ID]; ok {
			p = &rec
		}
		var m *models.MockAccuracy
		if acc, ok := mockByTopic[t.ID]; ok {
			m = &acc
		}

		sig := scoring.SignalsFor(t.Topic, p, m, ref)
		res := s.scorer.Score(sig)
		out.results = append(out.results, models.TopicHealth{
			Topic:          t,
			Status:         sig.Status,
			RevisionCount:  sig.RevisionCount,
			HealthScore:    res.Health,
			Category:       res.Category.String(),
			ZoneLabel:      res.Category.Label(),
			Components:     res.Components,
			Recommendation: scoring.RecommendFor(res),
		})
	}
	return out, nil
}

func (s *healthService) ComputeForUser(ctx context.Context, userID string, date time.Time) ([]models.TopicHealth, error) {
	log := logger.FromContext(ctx)
	log.Debug("computing health: user_id=%s, date=%s", userID, weekly.FormatDay(date))

	if strings.TrimSpace(userID) == "" {
		return nil, errors.NewValidationError("user_id", "must not be empty")
	}

	sc, err := s.scoreUser(ctx, userID, date)
	if err != nil {
		healthRecomputeTotal.WithLabelValues(resultError).Inc()
		return nil, err
	}

	day := weekly.FormatDay(date)
	snapshots := make([]models.HealthSnapshot, 0, len(sc.results))
	for _, r := range sc.results {
		snapshots = append(snapshots, models.HealthSnapshot{
			UserID:       userID,
			TopicID:      r.Topic.ID,
			SnapshotDate: day,
			HealthScore:  r.HealthScore,
			Category:     r.Category,
			Components:   r.Components,
		})
	}
	if err := s.snapshotRepo.UpsertBatch(ctx, snapshots); err != nil {
		log.Error("failed to store snapshots: %v", err)
		healthRecomputeTotal.WithLabelValues(resultError).Inc()
		return nil, errors.NewInternalError(err)
	}

	healthRecomputeTotal.WithLabelValues(resultOK).Inc()
	healthRecomputeTopics.Observe(float64(len(snapshots)))
	log.Info("scored %d topics for user_id=%s", len(snapshots), userID)
	return sc.results, nil
}

func (s *healthService) Overview(ctx context.Context, userID string) (*models.HealthOverview, error) {
	log := logger.FromContext(ctx)
	log.Debug("building overview: user_id=%s", userID)

	latest, err := s.snapshotRepo.LatestPerTopic(ctx, userID, weekly.FormatDay(s.now()))
	if err != nil {
		log.Error("failed to load latest snapshots: %v", err)
		return nil, errors.NewInternalError(err)
	}

	tuning := s.scorer.Tuning()
	overview := &models.HealthOverview{
		UserID:        userID,
		TopicCount:    len(latest),
		Distribution:  make([]models.ZoneCount, 0, len(scoring.Categories)),
		WeakestTopics: []models.WeakTopic{},
		Subjects:      []models.SubjectHealth{},
	}

	counts := make(map[scoring.Category]int, len(scoring.Categories))
	bySubject := map[string]*models.SubjectHealth{}
	var total int
	for _, snap := range latest {
		total += snap.HealthScore
		cat := scoring.ParseCategory(snap.Category)
		counts[cat]++

		wt := weakTopic(snap, cat)
		if cat <= scoring.CategoryWeak {
			overview.WeakestTopics = append(overview.WeakestTopics, wt)
		}

		sub, ok := bySubject[snap.Topic.SubjectID]
		if !ok {
			sub = &models.SubjectHealth{
				SubjectID:   snap.Topic.SubjectID,
				SubjectName: snap.Topic.SubjectName,
				Topics:      []models.WeakTopic{},
			}
			bySubject[snap.Topic.SubjectID] = sub
		}
		sub.TopicCount++
		sub.AverageHealth += float64(snap.HealthScore)
		switch cat {
		case scoring.CategoryCritical:
			sub.CriticalCount++
		case scoring.CategoryWeak:
			sub.WeakCount++
		}
		sub.Topics = append(sub.Topics, wt)
	}

	if n := len(latest); n > 0 {
		overview.AverageHealth = round1(float64(total) / float64(n))
	}
	for _, cat := range scoring.Categories {
		zc := models.ZoneCount{Category: cat.String(), Label: cat.Label(), Count: counts[cat]}
		if n := len(latest); n > 0 {
			zc.Percentage = round1(float64(counts[cat]) * 100 / float64(n))
		}
		overview.Distribution = append(overview.Distribution, zc)
	}

	sortWeakest(overview.WeakestTopics)
	for _, sub := range bySubject {
		avg := sub.AverageHealth / float64(sub.TopicCount)
		sub.AverageHealth = round1(avg)
		cat := tuning.ClassifyFloat(avg)
		sub.Category = cat.String()
		sub.ZoneLabel = cat.Label()
		sortWeakest(sub.Topics)
		overview.Subjects = append(overview.Subjects, *sub)
	}
	sort.Slice(overview.Subjects, func(i, j int) bool {
		a, b := overview.Subjects[i], overview.Subjects[j]
		if a.SubjectName != b.SubjectName {
			return a.SubjectName < b.SubjectName
		}
		return a.SubjectID < b.SubjectID
	})

	return overview, nil
}

func weakTopic(snap models.SnapshotWithTopic, cat scoring.Category) models.WeakTopic {
	return models.WeakTopic{
		TopicID:        snap.TopicID,
		TopicName:      snap.Topic.Name,
		ChapterName:    snap.Topic.ChapterName,
		SubjectName:    snap.Topic.SubjectName,
		HealthScore:    snap.HealthScore,
		Category:       cat.String(),
		Recommendation: scoring.Recommend(cat, scoring.WeakestComponent(snap.Components)),
	}
}

// sortWeakest orders ascending by score, then by name and id.
func sortWeakest(topics []models.WeakTopic) {
	sort.Slice(topics, func(i, j int) bool {
		a, b := topics[i], topics[j]
		if a.HealthScore != b.HealthScore {
			return a.HealthScore < b.HealthScore
		}
		if a.TopicName != b.TopicName {
			return a.TopicName < b.TopicName
		}
		return a.TopicID < b.TopicID
	})
}

func (s *healthService) TopicDetail(ctx context.Context, userID, topicID string, ref time.Time) (*models.TopicHealthDetail, error) {
	log := logger.FromContext(ctx)
	log.Debug("getting topic detail: user_id=%s, topic_id=%s", userID, topicID)

	if strings.TrimSpace(topicID) == "" {
		return nil, errors.NewValidationError("topic_id", "must not be empty")
	}

	to := weekly.FormatDay(ref)
	snap, err := s.snapshotRepo.LatestForTopic(ctx, userID, topicID, to)
	if err != nil {
		log.Error("failed to load latest snapshot: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if snap == nil {
		log.Debug("no snapshots for topic_id=%s", topicID)
		return &models.TopicHealthDetail{
			TopicID:        topicID,
			Category:       scoring.CategoryCritical.String(),
			ZoneLabel:      scoring.CategoryCritical.Label(),
			Recommendation: scoring.NoDataRecommendation,
			Trend:          []models.TrendPoint{},
		}, nil
	}

	from := weekly.FormatDay(weekly.Day(ref).AddDate(0, 0, -s.scorer.Tuning().TrendDays))
	trend, err := s.snapshotRepo.Trend(ctx, userID, topicID, from, to)
	if err != nil {
		log.Error("failed to load trend: %v", err)
		return nil, errors.NewInternalError(err)
	}

	cat := scoring.ParseCategory(snap.Category)
	return &models.TopicHealthDetail{
		TopicID:        topicID,
		HealthScore:    snap.HealthScore,
		Category:       cat.String(),
		ZoneLabel:      cat.Label(),
		Components:     snap.Components,
		SnapshotDate:   snap.SnapshotDate,
		Recommendation: scoring.Recommend(cat, scoring.WeakestComponent(snap.Components)),
		Trend:          trend,
	}, nil
}

func (s *healthService) Insights(ctx context.Context, userID string, ref time.Time) (*models.InsightReport, error) {
	log := logger.FromContext(ctx)
	log.Debug("detecting insights: user_id=%s", userID)

	scope, err := s.scope.SubjectScope(ctx, userID)
	if err != nil {
		log.Error("failed to load subject scope: %v", err)
		return nil, errors.NewInternalError(err)
	}

	sc, err := s.scoreUser(ctx, userID, ref)
	if err != nil {
		return nil, err
	}

	health := make(map[string]int, len(sc.results))
	for _, r := range sc.results {
		health[r.Topic.ID] = r.HealthScore
	}

	report := s.detector.Detect(insights.Input{
		Topics:   sc.topics,
		Progress: sc.progress,
		Health:   health,
		Scope:    scope,
	})
	return &report, nil
}

func (s *healthService) RecomputeAll(ctx context.Context, date time.Time) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("recomputing health for all users: date=%s", weekly.FormatDay(date))

	users, err := s.progressRepo.ListUserIDs(ctx)
	if err != nil {
		log.Error("failed to list users: %v", err)
		return 0, errors.NewInternalError(err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, userID := range users {
		userID := userID
		g.Go(func() error {
			userCtx := logger.NewContext(gctx, log.WithField("user_id", userID))
			_, err := s.ComputeForUser(userCtx, userID, date)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("batch recompute failed: %v", err)
		return 0, err
	}

	log.Info("recomputed health for %d users", len(users))
	return len(users), nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
