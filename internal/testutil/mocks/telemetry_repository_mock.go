package mocks

import (
	"context"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockTelemetryRepository is a mock implementation of repository.TelemetryRepository
type MockTelemetryRepository struct {
	mock.Mock
}

func (m *MockTelemetryRepository) DailyLogs(ctx context.Context, userID, from, to string) ([]models.DailyLog, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DailyLog), args.Error(1)
}

func (m *MockTelemetryRepository) VelocitySnapshots(ctx context.Context, userID, from, to string) ([]models.VelocitySnapshot, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.VelocitySnapshot), args.Error(1)
}

func (m *MockTelemetryRepository) BurnoutSnapshots(ctx context.Context, userID, from, to string) ([]models.BurnoutSnapshot, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BurnoutSnapshot), args.Error(1)
}

func (m *MockTelemetryRepository) PlanItems(ctx context.Context, userID, from, to string) ([]models.PlanItem, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlanItem), args.Error(1)
}

func (m *MockTelemetryRepository) BufferEntries(ctx context.Context, userID, from, to string) ([]models.BufferEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BufferEntry), args.Error(1)
}

func (m *MockTelemetryRepository) Streaks(ctx context.Context, userID string) ([]models.StreakCounter, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StreakCounter), args.Error(1)
}

func (m *MockTelemetryRepository) XPLedger(ctx context.Context, userID, from, to string) ([]models.XPEntry, int, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.XPEntry), args.Int(1), args.Error(2)
}

func (m *MockTelemetryRepository) BadgeUnlocks(ctx context.Context, userID, from, to string) ([]models.BadgeUnlock, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BadgeUnlock), args.Error(1)
}

func (m *MockTelemetryRepository) Targets(ctx context.Context, userID string) (*models.UserTargets, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserTargets), args.Error(1)
}

func (m *MockTelemetryRepository) SubjectConfidence(ctx context.Context, userID string) ([]models.SubjectConfidence, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubjectConfidence), args.Error(1)
}

func (m *MockTelemetryRepository) PlanSubjectTouches(ctx context.Context, userID, onOrBefore string) ([]models.SubjectTouch, error) {
	args := m.Called(ctx, userID, onOrBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SubjectTouch), args.Error(1)
}

func (m *MockTelemetryRepository) BenchmarkOn(ctx context.Context, userID, date string) (*models.BenchmarkSnapshot, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BenchmarkSnapshot), args.Error(1)
}
