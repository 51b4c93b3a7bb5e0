package mocks

import (
	"context"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockSnapshotRepository is a mock implementation of repository.SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) UpsertBatch(ctx context.Context, snapshots []models.HealthSnapshot) error {
	args := m.Called(ctx, snapshots)
	return args.Error(0)
}

func (m *MockSnapshotRepository) LatestPerTopic(ctx context.Context, userID, onOrBefore string) ([]models.SnapshotWithTopic, error) {
	args := m.Called(ctx, userID, onOrBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SnapshotWithTopic), args.Error(1)
}

func (m *MockSnapshotRepository) LatestForTopic(ctx context.Context, userID, topicID, onOrBefore string) (*models.HealthSnapshot, error) {
	args := m.Called(ctx, userID, topicID, onOrBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthSnapshot), args.Error(1)
}

func (m *MockSnapshotRepository) Trend(ctx context.Context, userID, topicID, from, to string) ([]models.TrendPoint, error) {
	args := m.Called(ctx, userID, topicID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TrendPoint), args.Error(1)
}

func (m *MockSnapshotRepository) ZoneCounts(ctx context.Context, userID, date string) (models.ZoneCounts, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(models.ZoneCounts), args.Error(1)
}

// MockWeeklyReviewRepository is a mock implementation of repository.WeeklyReviewRepository
type MockWeeklyReviewRepository struct {
	mock.Mock
}

func (m *MockWeeklyReviewRepository) Get(ctx context.Context, userID, weekEnd string) (*models.WeeklyReview, error) {
	args := m.Called(ctx, userID, weekEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyReview), args.Error(1)
}

func (m *MockWeeklyReviewRepository) Upsert(ctx context.Context, review models.WeeklyReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
