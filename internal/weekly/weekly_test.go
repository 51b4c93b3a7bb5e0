package weekly_test

import (
	"testing"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/weekly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekBounds_EndIsAlwaysSunday(t *testing.T) {
	ref := date("2025-01-01")
	for i := 0; i < 60; i++ {
		day := ref.AddDate(0, 0, i).Add(17 * time.Hour)
		start, end := weekly.WeekBounds(day)

		require.Equal(t, time.Sunday, end.Weekday(), "ref=%s", day)
		require.False(t, end.After(weekly.Day(day)))
		require.True(t, weekly.Day(day).Sub(end) < 7*24*time.Hour)
		require.Equal(t, end.AddDate(0, 0, -6), start)
		require.Equal(t, time.Monday, start.Weekday())
	}
}

func TestWeekBounds_Examples(t *testing.T) {
	tests := []struct {
		ref, start, end string
	}{
		{"2025-03-16", "2025-03-10", "2025-03-16"}, // Sunday
		{"2025-03-17", "2025-03-10", "2025-03-16"}, // Monday
		{"2025-03-22", "2025-03-10", "2025-03-16"}, // Saturday
		{"2025-03-12", "2025-03-03", "2025-03-09"}, // Wednesday: previous completed week
	}
	for _, tt := range tests {
		start, end := weekly.WeekBounds(date(tt.ref))
		assert.Equal(t, tt.start, weekly.FormatDay(start), tt.ref)
		assert.Equal(t, tt.end, weekly.FormatDay(end), tt.ref)
	}
}

func TestIsPastWeek(t *testing.T) {
	now := date("2025-03-19")
	assert.False(t, weekly.IsPastWeek(date("2025-03-16"), now))
	assert.True(t, weekly.IsPastWeek(date("2025-03-09"), now))
}

func TestLevelForXP(t *testing.T) {
	tests := []struct{ xp, level int }{
		{0, 1}, {99, 1}, {100, 2}, {299, 2}, {300, 3}, {600, 4}, {1000, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, weekly.LevelForXP(tt.xp), "xp=%d", tt.xp)
	}
}

func sampleInputs() weekly.Inputs {
	start, end := weekly.WeekBounds(date("2025-03-16"))
	return weekly.Inputs{
		UserID:    "u1",
		WeekStart: start,
		WeekEnd:   end,
		DailyLogs: []models.DailyLog{
			{LogDate: "2025-03-10", HoursStudied: 3, TopicsCompleted: 2, GravityCompleted: 4.5},
			{LogDate: "2025-03-11", HoursStudied: 2.5, TopicsCompleted: 1, GravityCompleted: 2},
			{LogDate: "2025-03-12", HoursStudied: 0},
			{LogDate: "2025-03-15", HoursStudied: 4, TopicsCompleted: 3, GravityCompleted: 6},
		},
		Velocity: []models.VelocitySnapshot{
			{SnapshotDate: "2025-03-10", VelocityRatio: 0.8, CompletionPct: 40},
			{SnapshotDate: "2025-03-16", VelocityRatio: 1.0, CompletionPct: 43.5},
		},
		Burnout: []models.BurnoutSnapshot{
			{SnapshotDate: "2025-03-10", BRI: 40},
			{SnapshotDate: "2025-03-13", BRI: 60},
			{SnapshotDate: "2025-03-16", BRI: 50},
		},
		PlanItems: []models.PlanItem{
			{ItemType: models.PlanItemNew, Status: models.PlanItemCompleted},
			{ItemType: models.PlanItemNew, Status: models.PlanItemCompleted},
			{ItemType: models.PlanItemRevision, Status: models.PlanItemCompleted},
			{ItemType: models.PlanItemRevision, Status: models.PlanItemPending},
			{ItemType: models.PlanItemRevision, Status: models.PlanItemSkipped},
		},
		ZonesStart:       models.ZoneCounts{Critical: 5, Weak: 4},
		ZonesEnd:         models.ZoneCounts{Critical: 3, Weak: 6},
		BufferEntries:    []models.BufferEntry{{DeltaDays: 1.5}, {DeltaDays: -0.5}},
		ConfidenceStatus: map[string]int{"fresh": 10, "fading": 3},
		Streaks: []models.StreakCounter{
			{StreakType: "login", CurrentCount: 20, BestCount: 30},
			{StreakType: "study", CurrentCount: 8, BestCount: 12},
		},
		XPEntries: []models.XPEntry{{Amount: 80}, {Amount: 40}},
		XPTotal:   320,
		Badges:    []models.BadgeUnlock{{BadgeSlug: "first-week", BadgeName: "First Week"}},
		Targets:   &models.UserTargets{DailyHours: 2, DailyTopics: 1, StrategyMode: "balanced"},
		Subjects: []models.Subject{
			{ID: "hist", Name: "History"},
			{ID: "geo", Name: "Geography"},
			{ID: "eco", Name: "Economy"},
			{ID: "pol", Name: "Polity"},
		},
		SubjectConfidence: []models.SubjectConfidence{
			{SubjectID: "hist", AvgConfidence: 70, TopicCount: 10},
			{SubjectID: "geo", AvgConfidence: 45, TopicCount: 8},
			{SubjectID: "eco", AvgConfidence: 30, TopicCount: 6},
			{SubjectID: "pol", AvgConfidence: 0, TopicCount: 0},
		},
		PlanTouches: []models.SubjectTouch{
			{SubjectID: "hist", LastTouched: "2025-03-12"},
			{SubjectID: "geo", LastTouched: "2025-03-05"},
		},
		ProgressTouches: []models.SubjectTouch{
			{SubjectID: "geo", LastTouched: "2025-03-01"},
			{SubjectID: "eco", LastTouched: "2025-02-20"},
		},
		BenchmarkStart: &models.BenchmarkSnapshot{Score: 60, Status: "on_track"},
		BenchmarkEnd:   &models.BenchmarkSnapshot{Score: 65, Status: "on_track"},
	}
}

func TestDerive(t *testing.T) {
	m := weekly.Derive(sampleInputs(), scoring.DefaultTuning())

	assert.Equal(t, 9.5, m.TotalHours)
	assert.Equal(t, 1.4, m.AvgHoursPerDay)
	assert.Equal(t, 6, m.TopicsCompleted)
	assert.Equal(t, 12.5, m.GravityCompleted)
	assert.Equal(t, 3, m.StudyDays)
	assert.Equal(t, 4, m.ZeroStudyDays)

	assert.Equal(t, 14.0, m.HoursTarget)
	assert.Equal(t, 7, m.TopicsTarget)
	assert.Equal(t, "balanced", m.StrategyMode)

	assert.Equal(t, 0.9, m.VelocityAvg)
	assert.Equal(t, 1.0, m.VelocityLatest)
	assert.Equal(t, weekly.TrendImproving, m.VelocityTrend)
	assert.Equal(t, 3.5, m.CompletionPctDelta)

	assert.Equal(t, 50.0, m.BurnoutAvg)
	assert.Equal(t, 60.0, m.BurnoutPeak)
	assert.Equal(t, weekly.TrendWorsening, m.FatigueTrend)

	assert.Equal(t, 5, m.PlanItemsTotal)
	assert.Equal(t, 3, m.PlanItemsCompleted)
	assert.Equal(t, 60.0, m.PlanAdherencePct)
	assert.Equal(t, 2, m.NewItems)
	assert.Equal(t, 3, m.RevisionItems)
	assert.Equal(t, 2, m.OverdueRevisions)

	assert.Equal(t, -2, m.CriticalDelta)
	assert.Equal(t, 2, m.WeakDelta)
	assert.Equal(t, 1.0, m.BufferDelta)

	assert.Equal(t, []models.SubjectLabel{{SubjectID: "hist", SubjectName: "History"}}, m.SubjectsTouched)
	assert.Len(t, m.SubjectsUntouched, 3)
	stale := make([]string, 0, len(m.SubjectsStale))
	for _, s := range m.SubjectsStale {
		stale = append(stale, s.SubjectID)
	}
	assert.Equal(t, []string{"eco", "pol"}, stale, "geo was touched within 14 days by the plan")

	require.Len(t, m.LowConfidence, 2)
	assert.Equal(t, "Economy", m.LowConfidence[0].SubjectName, "lowest confidence first")
	assert.Equal(t, "Geography", m.LowConfidence[1].SubjectName)

	assert.Equal(t, 8, m.CurrentStreak)
	assert.Equal(t, 12, m.BestStreak)
	assert.Equal(t, 120, m.XPEarned)
	assert.Equal(t, 2, m.LevelStart)
	assert.Equal(t, 3, m.LevelEnd)
	assert.Equal(t, []string{"First Week"}, m.BadgesUnlocked)

	assert.Equal(t, weekly.TrendImproving, m.BenchmarkTrend)
}

func TestDerive_EmptyInputs(t *testing.T) {
	start, end := weekly.WeekBounds(date("2025-03-16"))
	m := weekly.Derive(weekly.Inputs{WeekStart: start, WeekEnd: end}, scoring.DefaultTuning())

	assert.Zero(t, m.TotalHours)
	assert.Equal(t, 7, m.ZeroStudyDays)
	assert.Zero(t, m.HoursTarget, "missing targets leave targets at zero")
	assert.Equal(t, weekly.TrendStable, m.VelocityTrend)
	assert.Equal(t, weekly.TrendStable, m.FatigueTrend)
	assert.Equal(t, weekly.TrendUnknown, m.BenchmarkTrend)
	assert.Equal(t, 1, m.LevelStart)
	assert.NotNil(t, m.ConfidenceStatus)
	assert.NotNil(t, m.LowConfidence)
	assert.NotNil(t, m.BadgesUnlocked)
}

func TestDerive_IgnoresLogsOutsideWindow(t *testing.T) {
	in := sampleInputs()
	in.DailyLogs = append(in.DailyLogs,
		models.DailyLog{LogDate: "2025-03-09", HoursStudied: 10, TopicsCompleted: 10},
		models.DailyLog{LogDate: "2025-03-17", HoursStudied: 10, TopicsCompleted: 10},
	)
	m := weekly.Derive(in, scoring.DefaultTuning())
	assert.Equal(t, 9.5, m.TotalHours)
	assert.Equal(t, 6, m.TopicsCompleted)
}

func TestDerive_FatigueImproving(t *testing.T) {
	in := sampleInputs()
	in.Burnout = []models.BurnoutSnapshot{{BRI: 70}, {BRI: 52}}
	m := weekly.Derive(in, scoring.DefaultTuning())
	assert.Equal(t, weekly.TrendImproving, m.FatigueTrend)

	in.Burnout = []models.BurnoutSnapshot{{BRI: 50}, {BRI: 53}}
	m = weekly.Derive(in, scoring.DefaultTuning())
	assert.Equal(t, weekly.TrendStable, m.FatigueTrend)
}

func TestDeltas(t *testing.T) {
	m := weekly.Derive(sampleInputs(), scoring.DefaultTuning())
	d := weekly.Deltas(m)

	assert.Equal(t, -4.5, d.HoursVsTarget)
	assert.Equal(t, -1, d.TopicsVsTarget)
	assert.Equal(t, 1, d.LevelsGained)
	assert.Equal(t, 5, d.BenchmarkDelta)
	assert.Equal(t, -2, d.CriticalDelta)
	assert.Equal(t, 2, d.WeakDelta)
}

func TestBuildWins(t *testing.T) {
	tuning := scoring.DefaultTuning()
	m := weekly.Derive(sampleInputs(), tuning)

	wins := weekly.BuildWins(m, tuning)
	require.Len(t, wins, 5)
	assert.Contains(t, wins[0], "Completed 6 topics")
	assert.Contains(t, wins[1], "12.5 weighted units")
	assert.Contains(t, wins[2], "buffer")
	assert.Contains(t, wins[3], "velocity")
	assert.Contains(t, wins[4], "8-day")

	tuning.MaxWins = 2
	assert.Len(t, weekly.BuildWins(m, tuning), 2)

	assert.Empty(t, weekly.BuildWins(models.WeeklyMetrics{}, scoring.DefaultTuning()))
}

func TestBuildAreas(t *testing.T) {
	tuning := scoring.DefaultTuning()
	m := weekly.Derive(sampleInputs(), tuning)

	areas := weekly.BuildAreas(m, tuning)
	require.Len(t, areas, 4)
	assert.Contains(t, areas[0], "Economy")
	assert.Contains(t, areas[1], "Geography")
	assert.Contains(t, areas[2], "2 revisions")
	assert.Contains(t, areas[3], "4 days")

	m.LowConfidence = []models.SubjectLabel{
		{SubjectName: "A"}, {SubjectName: "B"}, {SubjectName: "C"}, {SubjectName: "D"},
	}
	m.OverdueRevisions = 0
	m.ZeroStudyDays = 2
	areas = weekly.BuildAreas(m, tuning)
	assert.Len(t, areas, 3, "low-confidence entries are capped and two zero days is not a warning")
}

func TestBuildRecommendations(t *testing.T) {
	tuning := scoring.DefaultTuning()
	m := weekly.Derive(sampleInputs(), tuning)

	recs := weekly.BuildRecommendations(m, tuning)
	require.Len(t, recs, 5)
	assert.Contains(t, recs[0], "Economy")
	assert.Contains(t, recs[1], "Polity")
	assert.Contains(t, recs[2], "Geography", "stale Economy is not repeated as low confidence")
	assert.Contains(t, recs[3], "7 topics")
	assert.Contains(t, recs[4], "2 pending revisions")

	tuning.MaxRecommendations = 3
	assert.Len(t, weekly.BuildRecommendations(m, tuning), 3)
}

func TestTopHighlights_StableByRank(t *testing.T) {
	pool := []weekly.Highlight{
		{Rank: 3, Text: "c1"},
		{Rank: 1, Text: "a1"},
		{Rank: 2, Text: "b1"},
		{Rank: 1, Text: "a2"},
		{Rank: 3, Text: "c2"},
	}
	assert.Equal(t, []string{"a1", "a2", "b1"}, weekly.TopHighlights(pool, 3))
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2"}, weekly.TopHighlights(pool, 10))
	assert.Empty(t, weekly.TopHighlights(nil, 3))
	assert.Equal(t, "c1", pool[0].Text, "input is not reordered")
}

func TestCandidates_Triggers(t *testing.T) {
	assert.Empty(t, weekly.Candidates(models.WeeklyMetrics{}))

	m := weekly.Derive(sampleInputs(), scoring.DefaultTuning())
	top := weekly.TopHighlights(weekly.Candidates(m), 3)
	assert.Equal(t, []string{"6 topics completed", "Levelled up to 3", "Velocity at 1.00x of plan"}, top)

	m.VelocityLatest = 0
	for _, h := range weekly.Candidates(m) {
		assert.NotContains(t, h.Text, "Velocity")
	}
}

func TestCandidates_SingularCounts(t *testing.T) {
	pool := weekly.Candidates(models.WeeklyMetrics{TopicsCompleted: 1, CriticalDelta: -1, BadgesUnlocked: []string{"first_step"}})
	texts := make([]string, 0, len(pool))
	for _, h := range pool {
		texts = append(texts, h.Text)
	}
	assert.Equal(t, []string{"1 topic completed", "1 fewer topic in the danger zone", "Unlocked 1 new badge"}, texts)
}
