package weekly

import (
	"fmt"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
)

// BuildWins lists the week's achievements in priority order.
func BuildWins(m models.WeeklyMetrics, t scoring.Tuning) []string {
	wins := []string{}
	if m.TopicsCompleted > 0 {
		wins = append(wins, fmt.Sprintf("Completed %d %s this week", m.TopicsCompleted, plural(m.TopicsCompleted, "topic", "topics")))
	}
	if m.TopicsTarget > 0 && m.GravityCompleted > float64(m.TopicsTarget) {
		wins = append(wins, fmt.Sprintf("Covered %.1f weighted units against a target of %d", m.GravityCompleted, m.TopicsTarget))
	}
	if m.BufferDelta > 0 {
		wins = append(wins, fmt.Sprintf("Grew your schedule buffer by %.1f days", m.BufferDelta))
	}
	if m.VelocityTrend == TrendImproving {
		wins = append(wins, fmt.Sprintf("Study velocity is improving (now %.2fx)", m.VelocityLatest))
	}
	if m.PlanItemsTotal > 0 && m.PlanAdherencePct >= t.StrongAdherencePct {
		wins = append(wins, fmt.Sprintf("Stuck to the plan: %.0f%% of planned items done", m.PlanAdherencePct))
	}
	if t.StreakMilestone > 0 && m.CurrentStreak >= t.StreakMilestone {
		wins = append(wins, fmt.Sprintf("Kept a %d-day study streak going", m.CurrentStreak))
	}
	return truncate(wins, t.MaxWins)
}

// BuildAreas lists what slipped this week in priority order.
func BuildAreas(m models.WeeklyMetrics, t scoring.Tuning) []string {
	areas := []string{}
	for _, s := range truncateLabels(m.LowConfidence, t.MaxLowConfidenceAreas) {
		areas = append(areas, fmt.Sprintf("Low confidence in %s (%.0f%%)", s.SubjectName, s.Value))
	}
	if m.OverdueRevisions > 0 {
		areas = append(areas, fmt.Sprintf("%d %s left undone", m.OverdueRevisions, plural(m.OverdueRevisions, "revision", "revisions")))
	}
	if m.ZeroStudyDays > t.ZeroStudyWarningDays {
		areas = append(areas, fmt.Sprintf("%d days with no study logged", m.ZeroStudyDays))
	}
	return truncate(areas, t.MaxAreas)
}

// BuildRecommendations suggests next-week focus. Subjects appear at most once.
func BuildRecommendations(m models.WeeklyMetrics, t scoring.Tuning) []string {
	recs := []string{}
	listed := map[string]bool{}
	for _, s := range m.SubjectsStale {
		recs = append(recs, fmt.Sprintf("Pick %s back up: untouched for %d+ days", s.SubjectName, t.UntouchedDays))
		listed[s.SubjectID] = true
	}
	for _, s := range m.LowConfidence {
		if listed[s.SubjectID] {
			continue
		}
		recs = append(recs, fmt.Sprintf("Spend a session strengthening %s", s.SubjectName))
		listed[s.SubjectID] = true
	}
	if m.TopicsTarget > 0 {
		recs = append(recs, fmt.Sprintf("Aim for %d topics next week", m.TopicsTarget))
	}
	if m.OverdueRevisions > 0 {
		recs = append(recs, fmt.Sprintf("Carry over %d pending %s first", m.OverdueRevisions, plural(m.OverdueRevisions, "revision", "revisions")))
	}
	return truncate(recs, t.MaxRecommendations)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func truncate(s []string, n int) []string {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func truncateLabels(s []models.SubjectLabel, n int) []models.SubjectLabel {
	if n >= 0 && len(s) > n {
		return s[:n]
	}
	return s
}
