package models

import "time"

type DailyLog struct {
	LogDate          string  `json:"log_date"`
	HoursStudied     float64 `json:"hours_studied"`
	TopicsCompleted  int     `json:"topics_completed"`
	GravityCompleted float64 `json:"gravity_completed"`
}

type VelocitySnapshot struct {
	SnapshotDate  string  `json:"snapshot_date"`
	VelocityRatio float64 `json:"velocity_ratio"`
	CompletionPct float64 `json:"completion_pct"`
}

type BurnoutSnapshot struct {
	SnapshotDate string  `json:"snapshot_date"`
	BRI          float64 `json:"bri"`
}

type PlanItemType string

const (
	PlanItemNew      PlanItemType = "new"
	PlanItemRevision PlanItemType = "revision"
)

type PlanItemStatus string

const (
	PlanItemPending   PlanItemStatus = "pending"
	PlanItemCompleted PlanItemStatus = "completed"
	PlanItemSkipped   PlanItemStatus = "skipped"
)

type PlanItem struct {
	ID        string         `json:"id"`
	PlanDate  string         `json:"plan_date"`
	TopicID   string         `json:"topic_id"`
	ItemType  PlanItemType   `json:"item_type"`
	Status    PlanItemStatus `json:"status"`
	SubjectID string         `json:"subject_id"`
}

type BufferEntry struct {
	EntryDate string  `json:"entry_date"`
	DeltaDays float64 `json:"delta_days"`
	Reason    string  `json:"reason"`
}

type StreakCounter struct {
	StreakType    string `json:"streak_type"`
	CurrentCount  int    `json:"current_count"`
	BestCount     int    `json:"best_count"`
	LastActiveDay string `json:"last_active_day"`
}

type XPEntry struct {
	Amount   int       `json:"amount"`
	Source   string    `json:"source"`
	EarnedAt time.Time `json:"earned_at"`
}

type BadgeUnlock struct {
	BadgeSlug  string    `json:"badge_slug"`
	BadgeName  string    `json:"badge_name"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

type UserTargets struct {
	DailyHours   float64 `json:"daily_hours"`
	DailyTopics  int     `json:"daily_topics"`
	StrategyMode string  `json:"strategy_mode"`
}

type SubjectConfidence struct {
	SubjectID     string  `json:"subject_id"`
	AvgConfidence float64 `json:"avg_confidence"`
	TopicCount    int     `json:"topic_count"`
}

type BenchmarkSnapshot struct {
	SnapshotDate string `json:"snapshot_date"`
	Score        int    `json:"score"`
	Status       string `json:"status"`
}

// SubjectTouch is the most recent contact with a subject from one source.
type SubjectTouch struct {
	SubjectID   string `json:"subject_id"`
	LastTouched string `json:"last_touched"`
}

// ZoneCounts tallies topics per health category on a given date.
type ZoneCounts struct {
	Critical  int `json:"critical"`
	Weak      int `json:"weak"`
	Moderate  int `json:"moderate"`
	Good      int `json:"good"`
	Excellent int `json:"excellent"`
}

type SubjectLabel struct {
	SubjectID   string  `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	Value       float64 `json:"value,omitempty"`
}

type WeeklyMetrics struct {
	TotalHours           float64        `json:"total_hours"`
	AvgHoursPerDay       float64        `json:"avg_hours_per_day"`
	TopicsCompleted      int            `json:"topics_completed"`
	GravityCompleted     float64        `json:"gravity_completed"`
	StudyDays            int            `json:"study_days"`
	ZeroStudyDays        int            `json:"zero_study_days"`
	HoursTarget          float64        `json:"hours_target"`
	TopicsTarget         int            `json:"topics_target"`
	StrategyMode         string         `json:"strategy_mode"`
	VelocityAvg          float64        `json:"velocity_avg"`
	VelocityLatest       float64        `json:"velocity_latest"`
	VelocityTrend        string         `json:"velocity_trend"`
	CompletionPctDelta   float64        `json:"completion_pct_delta"`
	BurnoutAvg           float64        `json:"burnout_avg"`
	BurnoutPeak          float64        `json:"burnout_peak"`
	FatigueTrend         string         `json:"fatigue_trend"`
	PlanItemsTotal       int            `json:"plan_items_total"`
	PlanItemsCompleted   int            `json:"plan_items_completed"`
	PlanAdherencePct     float64        `json:"plan_adherence_pct"`
	NewItems             int            `json:"new_items"`
	RevisionItems        int            `json:"revision_items"`
	OverdueRevisions     int            `json:"overdue_revisions"`
	ZonesStart           ZoneCounts     `json:"zones_start"`
	ZonesEnd             ZoneCounts     `json:"zones_end"`
	CriticalDelta        int            `json:"critical_delta"`
	WeakDelta            int            `json:"weak_delta"`
	BufferDelta          float64        `json:"buffer_delta"`
	ConfidenceStatus     map[string]int `json:"confidence_status"`
	SubjectsTouched      []SubjectLabel `json:"subjects_touched"`
	SubjectsUntouched    []SubjectLabel `json:"subjects_untouched"`
	SubjectsStale        []SubjectLabel `json:"subjects_stale"`
	LowConfidence        []SubjectLabel `json:"low_confidence"`
	CurrentStreak        int            `json:"current_streak"`
	BestStreak           int            `json:"best_streak"`
	XPEarned             int            `json:"xp_earned"`
	XPTotal              int            `json:"xp_total"`
	LevelStart           int            `json:"level_start"`
	LevelEnd             int            `json:"level_end"`
	BadgesUnlocked       []string       `json:"badges_unlocked"`
	BenchmarkStart       int            `json:"benchmark_start"`
	BenchmarkEnd         int            `json:"benchmark_end"`
	BenchmarkStatusStart string         `json:"benchmark_status_start"`
	BenchmarkStatusEnd   string         `json:"benchmark_status_end"`
	BenchmarkTrend       string         `json:"benchmark_trend"`
}

type WeeklyReview struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	WeekStart       string        `json:"week_start"`
	WeekEnd         string        `json:"week_end"`
	Metrics         WeeklyMetrics `json:"metrics"`
	Wins            []string      `json:"wins"`
	AreasToImprove  []string      `json:"areas_to_improve"`
	Recommendations []string      `json:"recommendations"`
	Highlights      []string      `json:"highlights"`
	GeneratedAt     time.Time     `json:"generated_at"`
}

// WeeklyDeltas are convenience values derived from persisted metrics; never stored.
type WeeklyDeltas struct {
	HoursVsTarget  float64 `json:"hours_vs_target"`
	TopicsVsTarget int     `json:"topics_vs_target"`
	LevelsGained   int     `json:"levels_gained"`
	BenchmarkDelta int     `json:"benchmark_delta"`
	CriticalDelta  int     `json:"critical_delta"`
	WeakDelta      int     `json:"weak_delta"`
}

type WeeklyReviewResponse struct {
	WeeklyReview
	Deltas WeeklyDeltas `json:"deltas"`
	Cached bool         `json:"cached"`
}
