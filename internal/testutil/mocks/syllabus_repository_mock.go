package mocks

import (
	"context"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockTopicRepository is a mock implementation of repository.TopicRepository
type MockTopicRepository struct {
	mock.Mock
}

func (m *MockTopicRepository) ListTopics(ctx context.Context) ([]models.TopicRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TopicRef), args.Error(1)
}

func (m *MockTopicRepository) ListSubjects(ctx context.Context) ([]models.Subject, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subject), args.Error(1)
}

// MockProgressRepository is a mock implementation of repository.ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) ListForUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProgressRecord), args.Error(1)
}

func (m *MockProgressRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProgressRepository) ConfidenceDistribution(ctx context.Context, userID string) (map[string]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockProgressRepository) SubjectTouches(ctx context.Context, userID, onOrBefore string) ([]models.SubjectTouch, error) {
	args := m.Called(ctx, userID, onOrBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubjectTouch), args.Error(1)
}

// MockMockAccuracyRepository is a mock implementation of repository.MockAccuracyRepository
type MockMockAccuracyRepository struct {
	mock.Mock
}

func (m *MockMockAccuracyRepository) ListForUser(ctx context.Context, userID string) ([]models.MockAccuracy, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MockAccuracy), args.Error(1)
}

// MockScopeProvider is a mock implementation of repository.ScopeProvider
type MockScopeProvider struct {
	mock.Mock
}

func (m *MockScopeProvider) SubjectScope(ctx context.Context, userID string) (map[string]bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}
