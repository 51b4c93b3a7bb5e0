package mocks

import (
	"context"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockHealthService is a mock implementation of services.HealthService
type MockHealthService struct {
	mock.Mock
}

func (m *MockHealthService) ComputeForUser(ctx context.Context, userID string, date time.Time) ([]models.TopicHealth, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TopicHealth), args.Error(1)
}

func (m *MockHealthService) Overview(ctx context.Context, userID string) (*models.HealthOverview, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthOverview), args.Error(1)
}

func (m *MockHealthService) TopicDetail(ctx context.Context, userID, topicID string, ref time.Time) (*models.TopicHealthDetail, error) {
	args := m.Called(ctx, userID, topicID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TopicHealthDetail), args.Error(1)
}

func (m *MockHealthService) Insights(ctx context.Context, userID string, ref time.Time) (*models.InsightReport, error) {
	args := m.Called(ctx, userID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InsightReport), args.Error(1)
}

func (m *MockHealthService) RecomputeAll(ctx context.Context, date time.Time) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

// MockWeeklyReviewService is a mock implementation of services.WeeklyReviewService
type MockWeeklyReviewService struct {
	mock.Mock
}

func (m *MockWeeklyReviewService) Get(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error) {
	args := m.Called(ctx, userID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyReviewResponse), args.Error(1)
}

func (m *MockWeeklyReviewService) Compute(ctx context.Context, userID string, ref time.Time) (*models.WeeklyReviewResponse, error) {
	args := m.Called(ctx, userID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeeklyReviewResponse), args.Error(1)
}
