package repository

import (
	"context"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
)

// Dates are passed and returned as models.DateFormat strings. Ranges are
// inclusive on both ends.

// TopicRepository reads the shared syllabus.
type TopicRepository interface {
	ListTopics(ctx context.Context) ([]models.TopicRef, error)
	ListSubjects(ctx context.Context) ([]models.Subject, error)
}

// ProgressRepository reads per-user topic state.
type ProgressRepository interface {
	ListForUser(ctx context.Context, userID string) ([]models.ProgressRecord, error)
	ListUserIDs(ctx context.Context) ([]string, error)
	ConfidenceDistribution(ctx context.Context, userID string) (map[string]int, error)
	// SubjectTouches returns the latest last_touched date per subject, up to and including onOrBefore.
	SubjectTouches(ctx context.Context, userID, onOrBefore string) ([]models.SubjectTouch, error)
}

type MockAccuracyRepository interface {
	ListForUser(ctx context.Context, userID string) ([]models.MockAccuracy, error)
}

// ScopeProvider returns the subjects a user has in scope. A nil map means
// the user has no scope restriction.
type ScopeProvider interface {
	SubjectScope(ctx context.Context, userID string) (map[string]bool, error)
}

// SnapshotRepository stores one health snapshot per (user, topic, date).
type SnapshotRepository interface {
	UpsertBatch(ctx context.Context, snapshots []models.HealthSnapshot) error
	// LatestPerTopic returns each topic's most recent snapshot on or before onOrBefore.
	LatestPerTopic(ctx context.Context, userID, onOrBefore string) ([]models.SnapshotWithTopic, error)
	LatestForTopic(ctx context.Context, userID, topicID, onOrBefore string) (*models.HealthSnapshot, error)
	Trend(ctx context.Context, userID, topicID, from, to string) ([]models.TrendPoint, error)
	// ZoneCounts tallies categories over each topic's latest snapshot on or before date.
	ZoneCounts(ctx context.Context, userID, date string) (models.ZoneCounts, error)
}

// WeeklyReviewRepository stores one review per (user, week end).
type WeeklyReviewRepository interface {
	// Get returns nil, nil when no review exists.
	Get(ctx context.Context, userID, weekEnd string) (*models.WeeklyReview, error)
	Upsert(ctx context.Context, review models.WeeklyReview) error
}

// TelemetryRepository reads the activity streams aggregated into weekly reviews.
type TelemetryRepository interface {
	DailyLogs(ctx context.Context, userID, from, to string) ([]models.DailyLog, error)
	VelocitySnapshots(ctx context.Context, userID, from, to string) ([]models.VelocitySnapshot, error)
	BurnoutSnapshots(ctx context.Context, userID, from, to string) ([]models.BurnoutSnapshot, error)
	PlanItems(ctx context.Context, userID, from, to string) ([]models.PlanItem, error)
	BufferEntries(ctx context.Context, userID, from, to string) ([]models.BufferEntry, error)
	Streaks(ctx context.Context, userID string) ([]models.StreakCounter, error)
	// XPLedger returns the entries earned in the window and the lifetime total up to to.
	XPLedger(ctx context.Context, userID, from, to string) ([]models.XPEntry, int, error)
	BadgeUnlocks(ctx context.Context, userID, from, to string) ([]models.BadgeUnlock, error)
	// Targets returns nil, nil when the user has not configured targets.
	Targets(ctx context.Context, userID string) (*models.UserTargets, error)
	SubjectConfidence(ctx context.Context, userID string) ([]models.SubjectConfidence, error)
	// PlanSubjectTouches returns the latest plan date per subject, up to and including onOrBefore.
	PlanSubjectTouches(ctx context.Context, userID, onOrBefore string) ([]models.SubjectTouch, error)
	// BenchmarkOn returns the latest benchmark on or before date, or nil.
	BenchmarkOn(ctx context.Context, userID, date string) (*models.BenchmarkSnapshot, error)
}
