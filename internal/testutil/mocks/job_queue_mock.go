package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueHealthRecompute(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockJobQueue) EnqueueWeeklyReview(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}
