package weekly

import (
	"fmt"
	"sort"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
)

// Highlight is a candidate narrative line. Lower Rank sorts first.
type Highlight struct {
	Rank int
	Text string
}

// Candidates builds the highlight pool from the weekly metrics. Each entry is
// included only when its trigger holds.
func Candidates(m models.WeeklyMetrics) []Highlight {
	var pool []Highlight
	add := func(rank int, format string, args ...any) {
		pool = append(pool, Highlight{Rank: rank, Text: fmt.Sprintf(format, args...)})
	}

	if m.TopicsCompleted > 0 {
		add(1, "%d %s completed", m.TopicsCompleted, plural(m.TopicsCompleted, "topic", "topics"))
	}
	if m.LevelEnd > m.LevelStart {
		add(1, "Levelled up to %d", m.LevelEnd)
	}
	if m.VelocityLatest > 0 {
		add(2, "Velocity at %.2fx of plan", m.VelocityLatest)
	}
	if m.CriticalDelta < 0 {
		add(2, "%d fewer %s in the danger zone", -m.CriticalDelta, plural(-m.CriticalDelta, "topic", "topics"))
	}
	if len(m.BadgesUnlocked) > 0 {
		add(3, "Unlocked %d new %s", len(m.BadgesUnlocked), plural(len(m.BadgesUnlocked), "badge", "badges"))
	}
	if m.CurrentStreak > 0 {
		add(3, "%d-day streak", m.CurrentStreak)
	}
	if m.TotalHours > 0 {
		add(4, "%.1f hours studied", m.TotalHours)
	}
	if m.BenchmarkEnd > 0 {
		add(4, "Readiness score %d", m.BenchmarkEnd)
	}
	if m.BufferDelta > 0 {
		add(5, "+%.1f buffer days", m.BufferDelta)
	}
	return pool
}

// TopHighlights orders the pool by rank, keeping generation order for ties,
// and returns the first k texts.
func TopHighlights(pool []Highlight, k int) []string {
	sorted := make([]Highlight, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rank < sorted[j].Rank
	})
	if k >= 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	out := make([]string, 0, len(sorted))
	for _, h := range sorted {
		out = append(out, h.Text)
	}
	return out
}
