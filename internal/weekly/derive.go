package weekly

import (
	"math"
	"sort"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
)

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendWorsening = "worsening"
	TrendStable    = "stable"
	TrendUnknown   = "unknown"
)

const (
	daysPerWeek     = 7
	studyStreakType = "study"
)

// Inputs are the joined results of every source read for one user and week.
// Time series are expected in ascending date order.
type Inputs struct {
	UserID    string
	WeekStart time.Time
	WeekEnd   time.Time

	DailyLogs         []models.DailyLog
	Velocity          []models.VelocitySnapshot
	Burnout           []models.BurnoutSnapshot
	PlanItems         []models.PlanItem
	ZonesStart        models.ZoneCounts
	ZonesEnd          models.ZoneCounts
	BufferEntries     []models.BufferEntry
	ConfidenceStatus  map[string]int
	Streaks           []models.StreakCounter
	XPEntries         []models.XPEntry
	XPTotal           int
	Badges            []models.BadgeUnlock
	Targets           *models.UserTargets
	Subjects          []models.Subject
	SubjectConfidence []models.SubjectConfidence
	PlanTouches       []models.SubjectTouch
	ProgressTouches   []models.SubjectTouch
	BenchmarkStart    *models.BenchmarkSnapshot
	BenchmarkEnd      *models.BenchmarkSnapshot
}

// Derive computes every weekly metric from the raw inputs.
func Derive(in Inputs, t scoring.Tuning) models.WeeklyMetrics {
	var m models.WeeklyMetrics

	deriveStudy(&m, in)
	deriveTargets(&m, in.Targets)
	deriveVelocity(&m, in.Velocity, t.VelocityDeltaThreshold)
	deriveBurnout(&m, in.Burnout, t.FatigueDeltaThreshold)
	derivePlan(&m, in.PlanItems)

	m.ZonesStart = in.ZonesStart
	m.ZonesEnd = in.ZonesEnd
	m.CriticalDelta = in.ZonesEnd.Critical - in.ZonesStart.Critical
	m.WeakDelta = in.ZonesEnd.Weak - in.ZonesStart.Weak

	for _, e := range in.BufferEntries {
		m.BufferDelta += e.DeltaDays
	}
	m.BufferDelta = round1(m.BufferDelta)

	m.ConfidenceStatus = in.ConfidenceStatus
	if m.ConfidenceStatus == nil {
		m.ConfidenceStatus = map[string]int{}
	}

	deriveCoverage(&m, in, t.UntouchedDays)
	m.LowConfidence = lowConfidence(in.Subjects, in.SubjectConfidence, t.LowConfidenceThreshold)
	deriveGamification(&m, in)
	deriveBenchmark(&m, in.BenchmarkStart, in.BenchmarkEnd, t.BenchmarkDeltaPoints)

	return m
}

func deriveStudy(m *models.WeeklyMetrics, in Inputs) {
	start, end := FormatDay(in.WeekStart), FormatDay(in.WeekEnd)
	studied := map[string]bool{}
	for _, l := range in.DailyLogs {
		if l.LogDate < start || l.LogDate > end {
			continue
		}
		m.TotalHours += l.HoursStudied
		m.TopicsCompleted += l.TopicsCompleted
		m.GravityCompleted += l.GravityCompleted
		if l.HoursStudied > 0 {
			studied[l.LogDate] = true
		}
	}
	m.TotalHours = round1(m.TotalHours)
	m.GravityCompleted = round1(m.GravityCompleted)
	m.AvgHoursPerDay = round1(m.TotalHours / daysPerWeek)
	m.StudyDays = len(studied)
	m.ZeroStudyDays = daysPerWeek - m.StudyDays
}

func deriveTargets(m *models.WeeklyMetrics, targets *models.UserTargets) {
	if targets == nil {
		return
	}
	m.HoursTarget = round1(targets.DailyHours * daysPerWeek)
	m.TopicsTarget = targets.DailyTopics * daysPerWeek
	m.StrategyMode = targets.StrategyMode
}

func deriveVelocity(m *models.WeeklyMetrics, snaps []models.VelocitySnapshot, threshold float64) {
	m.VelocityTrend = TrendStable
	if len(snaps) == 0 {
		return
	}
	var sum float64
	for _, s := range snaps {
		sum += s.VelocityRatio
	}
	first, last := snaps[0], snaps[len(snaps)-1]
	m.VelocityAvg = round2(sum / float64(len(snaps)))
	m.VelocityLatest = round2(last.VelocityRatio)
	m.CompletionPctDelta = round1(last.CompletionPct - first.CompletionPct)
	m.VelocityTrend = classifyDelta(last.VelocityRatio-first.VelocityRatio, threshold, TrendImproving, TrendDeclining)
}

func deriveBurnout(m *models.WeeklyMetrics, snaps []models.BurnoutSnapshot, threshold float64) {
	m.FatigueTrend = TrendStable
	if len(snaps) == 0 {
		return
	}
	var sum float64
	for _, s := range snaps {
		sum += s.BRI
		m.BurnoutPeak = math.Max(m.BurnoutPeak, s.BRI)
	}
	m.BurnoutAvg = round1(sum / float64(len(snaps)))
	m.BurnoutPeak = round1(m.BurnoutPeak)
	// A rising BRI means fatigue is getting worse.
	delta := snaps[len(snaps)-1].BRI - snaps[0].BRI
	m.FatigueTrend = classifyDelta(delta, threshold, TrendWorsening, TrendImproving)
}

func derivePlan(m *models.WeeklyMetrics, items []models.PlanItem) {
	for _, it := range items {
		m.PlanItemsTotal++
		completed := it.Status == models.PlanItemCompleted
		if completed {
			m.PlanItemsCompleted++
		}
		switch it.ItemType {
		case models.PlanItemNew:
			m.NewItems++
		case models.PlanItemRevision:
			m.RevisionItems++
			if !completed {
				m.OverdueRevisions++
			}
		}
	}
	if m.PlanItemsTotal > 0 {
		m.PlanAdherencePct = round1(float64(m.PlanItemsCompleted) / float64(m.PlanItemsTotal) * 100)
	}
}

func deriveCoverage(m *models.WeeklyMetrics, in Inputs, untouchedDays int) {
	start, end := FormatDay(in.WeekStart), FormatDay(in.WeekEnd)
	staleBefore := FormatDay(in.WeekEnd.AddDate(0, 0, -untouchedDays))

	latest := map[string]string{}
	for _, touches := range [][]models.SubjectTouch{in.PlanTouches, in.ProgressTouches} {
		for _, tc := range touches {
			if tc.LastTouched > end {
				continue
			}
			if tc.LastTouched > latest[tc.SubjectID] {
				latest[tc.SubjectID] = tc.LastTouched
			}
		}
	}

	m.SubjectsTouched = []models.SubjectLabel{}
	m.SubjectsUntouched = []models.SubjectLabel{}
	m.SubjectsStale = []models.SubjectLabel{}
	for _, s := range in.Subjects {
		label := models.SubjectLabel{SubjectID: s.ID, SubjectName: s.Name}
		last, ok := latest[s.ID]
		if ok && last >= start {
			m.SubjectsTouched = append(m.SubjectsTouched, label)
			continue
		}
		m.SubjectsUntouched = append(m.SubjectsUntouched, label)
		if !ok || last <= staleBefore {
			m.SubjectsStale = append(m.SubjectsStale, label)
		}
	}
}

func lowConfidence(subjects []models.Subject, conf []models.SubjectConfidence, threshold float64) []models.SubjectLabel {
	names := make(map[string]string, len(subjects))
	for _, s := range subjects {
		names[s.ID] = s.Name
	}
	out := []models.SubjectLabel{}
	for _, c := range conf {
		if c.TopicCount <= 0 || c.AvgConfidence >= threshold {
			continue
		}
		name := names[c.SubjectID]
		if name == "" {
			name = c.SubjectID
		}
		out = append(out, models.SubjectLabel{SubjectID: c.SubjectID, SubjectName: name, Value: round1(c.AvgConfidence)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].SubjectName < out[j].SubjectName
	})
	return out
}

func deriveGamification(m *models.WeeklyMetrics, in Inputs) {
	for _, s := range in.Streaks {
		if s.StreakType == studyStreakType || (m.CurrentStreak == 0 && m.BestStreak == 0) {
			m.CurrentStreak = s.CurrentCount
			m.BestStreak = s.BestCount
		}
	}

	for _, e := range in.XPEntries {
		m.XPEarned += e.Amount
	}
	m.XPTotal = in.XPTotal
	m.LevelEnd = LevelForXP(in.XPTotal)
	before := in.XPTotal - m.XPEarned
	if before < 0 {
		before = 0
	}
	m.LevelStart = LevelForXP(before)

	m.BadgesUnlocked = make([]string, 0, len(in.Badges))
	for _, b := range in.Badges {
		m.BadgesUnlocked = append(m.BadgesUnlocked, b.BadgeName)
	}
}

func deriveBenchmark(m *models.WeeklyMetrics, start, end *models.BenchmarkSnapshot, points int) {
	m.BenchmarkTrend = TrendUnknown
	if start != nil {
		m.BenchmarkStart = start.Score
		m.BenchmarkStatusStart = start.Status
	}
	if end != nil {
		m.BenchmarkEnd = end.Score
		m.BenchmarkStatusEnd = end.Status
	}
	if start == nil || end == nil {
		return
	}
	switch delta := end.Score - start.Score; {
	case delta >= points:
		m.BenchmarkTrend = TrendImproving
	case delta <= -points:
		m.BenchmarkTrend = TrendDeclining
	default:
		m.BenchmarkTrend = TrendStable
	}
}

// classifyDelta labels a change as up, down or stable around a symmetric threshold.
func classifyDelta(delta, threshold float64, up, down string) string {
	switch {
	case delta > threshold:
		return up
	case delta < -threshold:
		return down
	default:
		return TrendStable
	}
}

// Deltas derives the non-persisted convenience values for a stored review.
func Deltas(m models.WeeklyMetrics) models.WeeklyDeltas {
	return models.WeeklyDeltas{
		HoursVsTarget:  round1(m.TotalHours - m.HoursTarget),
		TopicsVsTarget: m.TopicsCompleted - m.TopicsTarget,
		LevelsGained:   m.LevelEnd - m.LevelStart,
		BenchmarkDelta: m.BenchmarkEnd - m.BenchmarkStart,
		CriticalDelta:  m.CriticalDelta,
		WeakDelta:      m.WeakDelta,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
