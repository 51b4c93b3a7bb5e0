package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/amitkandari219/exampilot-v2-sub000/internal/errors"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/services"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/testutil/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 19, 15, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func topicRef(id, name, subjectID, subjectName string, importance int, pyq float64) models.TopicRef {
	return models.TopicRef{
		Topic:       models.Topic{ID: id, Name: name, Importance: importance, PYQWeight: pyq},
		ChapterName: "Chapter " + name,
		SubjectID:   subjectID,
		SubjectName: subjectName,
	}
}

var (
	revolt   = topicRef("t-revolt", "Revolt of 1857", "history", "History", 5, 2)
	congress = topicRef("t-congress", "Congress Sessions", "history", "History", 3, 1)
	monsoon  = topicRef("t-monsoon", "Monsoon", "geography", "Geography", 4, 1.5)
)

type healthDeps struct {
	topics    *mocks.MockTopicRepository
	progress  *mocks.MockProgressRepository
	mocks     *mocks.MockMockAccuracyRepository
	snapshots *mocks.MockSnapshotRepository
	scope     *mocks.MockScopeProvider
}

func newHealthService() (services.HealthService, healthDeps) {
	d := healthDeps{
		topics:    new(mocks.MockTopicRepository),
		progress:  new(mocks.MockProgressRepository),
		mocks:     new(mocks.MockMockAccuracyRepository),
		snapshots: new(mocks.MockSnapshotRepository),
		scope:     new(mocks.MockScopeProvider),
	}
	svc := services.NewHealthService(d.topics, d.progress, d.mocks, d.snapshots, d.scope, scoring.DefaultTuning(), 2, clock)
	return svc, d
}

func (d healthDeps) assertExpectations(t *testing.T) {
	d.topics.AssertExpectations(t)
	d.progress.AssertExpectations(t)
	d.mocks.AssertExpectations(t)
	d.snapshots.AssertExpectations(t)
	d.scope.AssertExpectations(t)
}

func TestComputeForUser_ScoresAndStoresEveryTopic(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()
	touched := fixedNow.AddDate(0, 0, -10)

	d.topics.On("ListTopics", ctx).Return([]models.TopicRef{congress, monsoon}, nil)
	d.progress.On("ListForUser", ctx, "u1").Return([]models.ProgressRecord{
		{UserID: "u1", TopicID: congress.ID, Status: models.StatusRevised, RevisionCount: 2, LastTouched: &touched},
	}, nil)
	d.mocks.On("ListForUser", ctx, "u1").Return([]models.MockAccuracy{}, nil)

	var stored []models.HealthSnapshot
	d.snapshots.On("UpsertBatch", ctx, mock.Anything).
		Run(func(args mock.Arguments) { stored = args.Get(1).([]models.HealthSnapshot) }).
		Return(nil)

	results, err := svc.ComputeForUser(ctx, "u1", fixedNow)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, 65, results[0].HealthScore)
	assert.Equal(t, "good", results[0].Category)
	assert.Equal(t, models.Components{Completion: 65, Revision: 67, Accuracy: 50, Recency: 80}, results[0].Components)

	assert.Equal(t, models.StatusUntouched, results[1].Status, "missing progress is untouched")
	assert.Equal(t, 15, results[1].HealthScore)
	assert.Equal(t, "critical", results[1].Category)

	require.Len(t, stored, 2)
	for _, s := range stored {
		assert.Equal(t, "u1", s.UserID)
		assert.Equal(t, "2025-03-19", s.SnapshotDate)
	}
	d.assertExpectations(t)
}

func TestComputeForUser_StoreErrorPropagates(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()
	boom := errors.New("disk full")

	d.topics.On("ListTopics", ctx).Return([]models.TopicRef{revolt}, nil)
	d.progress.On("ListForUser", ctx, "u1").Return(nil, nil)
	d.mocks.On("ListForUser", ctx, "u1").Return(nil, nil)
	d.snapshots.On("UpsertBatch", ctx, mock.Anything).Return(boom)

	_, err := svc.ComputeForUser(ctx, "u1", fixedNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInternal, appErr.Code)
}

func TestComputeForUser_RejectsEmptyUser(t *testing.T) {
	svc, _ := newHealthService()
	_, err := svc.ComputeForUser(context.Background(), " ", fixedNow)
	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func snapshotWithTopic(ref models.TopicRef, score int, category string, c models.Components) models.SnapshotWithTopic {
	return models.SnapshotWithTopic{
		HealthSnapshot: models.HealthSnapshot{
			UserID: "u1", TopicID: ref.ID, SnapshotDate: "2025-03-18",
			HealthScore: score, Category: category, Components: c,
		},
		Topic: ref,
	}
}

func TestOverview(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()

	d.snapshots.On("LatestPerTopic", ctx, "u1", "2025-03-19").Return([]models.SnapshotWithTopic{
		snapshotWithTopic(monsoon, 85, "excellent", models.Components{Completion: 85, Revision: 100, Accuracy: 70, Recency: 100}),
		snapshotWithTopic(congress, 35, "weak", models.Components{Completion: 40, Revision: 0, Accuracy: 50, Recency: 60}),
		snapshotWithTopic(revolt, 15, "critical", models.Components{Completion: 0, Revision: 0, Accuracy: 50, Recency: 0}),
	}, nil)

	ov, err := svc.Overview(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, 3, ov.TopicCount)
	assert.Equal(t, 45.0, ov.AverageHealth)

	require.Len(t, ov.Distribution, 5)
	assert.Equal(t, models.ZoneCount{Category: "critical", Label: "Danger Zone", Count: 1, Percentage: 33.3}, ov.Distribution[0])
	assert.Equal(t, models.ZoneCount{Category: "moderate", Label: "Developing", Count: 0, Percentage: 0}, ov.Distribution[2])
	assert.Equal(t, 1, ov.Distribution[4].Count)

	require.Len(t, ov.WeakestTopics, 2)
	assert.Equal(t, revolt.ID, ov.WeakestTopics[0].TopicID)
	assert.Contains(t, ov.WeakestTopics[0].Recommendation, "Urgent")
	assert.Equal(t, congress.ID, ov.WeakestTopics[1].TopicID)
	assert.Contains(t, ov.WeakestTopics[1].Recommendation, "revision")

	require.Len(t, ov.Subjects, 2)
	geo, hist := ov.Subjects[0], ov.Subjects[1]
	assert.Equal(t, "Geography", geo.SubjectName)
	assert.Equal(t, 85.0, geo.AverageHealth)
	assert.Equal(t, "excellent", geo.Category)
	assert.Equal(t, "History", hist.SubjectName)
	assert.Equal(t, 25.0, hist.AverageHealth)
	assert.Equal(t, "weak", hist.Category)
	assert.Equal(t, "At Risk", hist.ZoneLabel)
	assert.Equal(t, 1, hist.CriticalCount)
	assert.Equal(t, 1, hist.WeakCount)
	assert.Equal(t, 2, hist.TopicCount)
}

func TestOverview_NoSnapshots(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()
	d.snapshots.On("LatestPerTopic", ctx, "u1", "2025-03-19").Return([]models.SnapshotWithTopic{}, nil)

	ov, err := svc.Overview(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, ov.AverageHealth)
	assert.Len(t, ov.Distribution, 5)
	for _, z := range ov.Distribution {
		assert.Zero(t, z.Percentage)
	}
	assert.Empty(t, ov.WeakestTopics)
	assert.Empty(t, ov.Subjects)
}

func TestTopicDetail_SentinelWithoutSnapshots(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()
	ref := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	d.snapshots.On("LatestForTopic", ctx, "u1", revolt.ID, "2025-03-16").Return(nil, nil)

	detail, err := svc.TopicDetail(ctx, "u1", revolt.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, 0, detail.HealthScore)
	assert.Equal(t, "critical", detail.Category)
	assert.Equal(t, scoring.NoDataRecommendation, detail.Recommendation)
	assert.Equal(t, []models.TrendPoint{}, detail.Trend)
	d.snapshots.AssertNotCalled(t, "Trend", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTopicDetail_LatestWithTrend(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()
	ref := time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC)
	d.snapshots.On("LatestForTopic", ctx, "u1", revolt.ID, "2025-03-16").Return(&models.HealthSnapshot{
		TopicID: revolt.ID, SnapshotDate: "2025-03-15", HealthScore: 72, Category: "good",
		Components: models.Components{Completion: 65, Revision: 75, Accuracy: 70, Recency: 80},
	}, nil)
	trend := []models.TrendPoint{{Date: "2025-03-01", Score: 55}, {Date: "2025-03-15", Score: 72}}
	d.snapshots.On("Trend", ctx, "u1", revolt.ID, "2025-02-14", "2025-03-16").Return(trend, nil)

	detail, err := svc.TopicDetail(ctx, "u1", revolt.ID, ref)
	require.NoError(t, err)
	assert.Equal(t, 72, detail.HealthScore)
	assert.Equal(t, "Solid", detail.ZoneLabel)
	assert.Equal(t, "2025-03-15", detail.SnapshotDate)
	assert.Equal(t, trend, detail.Trend)
	assert.Equal(t, scoring.Recommend(scoring.CategoryGood, scoring.ComponentCompletion), detail.Recommendation)
}

func TestInsights_AppliesScope(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()

	d.scope.On("SubjectScope", ctx, "u1").Return(map[string]bool{"history": true}, nil)
	d.topics.On("ListTopics", ctx).Return([]models.TopicRef{revolt, congress, monsoon}, nil)
	d.progress.On("ListForUser", ctx, "u1").Return([]models.ProgressRecord{
		{UserID: "u1", TopicID: revolt.ID, Status: models.StatusFirstPass},
		{UserID: "u1", TopicID: congress.ID, Status: models.StatusUntouched},
	}, nil)
	d.mocks.On("ListForUser", ctx, "u1").Return(nil, nil)

	report, err := svc.Insights(ctx, "u1", fixedNow)
	require.NoError(t, err)
	require.Len(t, report.FalseSecurity, 1)
	assert.Equal(t, revolt.ID, report.FalseSecurity[0].TopicID)
	assert.Equal(t, 25, report.FalseSecurity[0].HealthScore)
	assert.Empty(t, report.BlindSpots, "monsoon is out of scope")
	assert.Empty(t, report.OverRevised)
	d.assertExpectations(t)
}

func TestInsights_ScopeErrorPropagates(t *testing.T) {
	svc, d := newHealthService()
	ctx := context.Background()
	d.scope.On("SubjectScope", ctx, "u1").Return(nil, errors.New("timeout"))

	_, err := svc.Insights(ctx, "u1", fixedNow)
	require.Error(t, err)
	d.topics.AssertNotCalled(t, "ListTopics", mock.Anything)
}

func TestRecomputeAll(t *testing.T) {
	svc, d := newHealthService()

	d.progress.On("ListUserIDs", mock.Anything).Return([]string{"u1", "u2", "u3"}, nil)
	d.topics.On("ListTopics", mock.Anything).Return([]models.TopicRef{revolt}, nil)
	d.progress.On("ListForUser", mock.Anything, mock.Anything).Return([]models.ProgressRecord{}, nil)
	d.mocks.On("ListForUser", mock.Anything, mock.Anything).Return([]models.MockAccuracy{}, nil)
	d.snapshots.On("UpsertBatch", mock.Anything, mock.Anything).Return(nil)

	n, err := svc.RecomputeAll(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	d.snapshots.AssertNumberOfCalls(t, "UpsertBatch", 3)
}

func TestRecomputeAll_FailsOnAnyUser(t *testing.T) {
	svc, d := newHealthService()

	d.progress.On("ListUserIDs", mock.Anything).Return([]string{"u1"}, nil)
	d.topics.On("ListTopics", mock.Anything).Return(nil, errors.New("locked"))

	_, err := svc.RecomputeAll(context.Background(), fixedNow)
	require.Error(t, err)
}
