package scoring

import (
	"math"
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
)

// NeverTouchedDays is the recency sentinel for topics with no contact.
const NeverTouchedDays = 999

const neutralAccuracy = 50

// CompletionScore maps a progress status onto 0–100.
func CompletionScore(status models.ProgressStatus) int {
	switch status {
	case models.StatusInProgress:
		return 20
	case models.StatusFirstPass:
		return 40
	case models.StatusRevised:
		return 65
	case models.StatusExamReady:
		return 85
	default:
		return 0
	}
}

// ExpectedRevisions is the revision count that earns a full revision score.
func ExpectedRevisions(importance int) int {
	if importance >= 4 {
		return 4
	}
	return 3
}

// RevisionScore scores revision count against the importance-based expectation.
func RevisionScore(count, importance int) int {
	if count <= 0 {
		return 0
	}
	score := float64(count) / float64(ExpectedRevisions(importance)) * 100
	return clamp(roundInt(math.Min(100, score)))
}

// AccuracyScore prefers mock-test accuracy, then confidence, then a neutral 50.
func AccuracyScore(mock *models.MockAccuracy, confidence float64) int {
	if mock != nil && mock.TotalQuestionsAttempted > 0 {
		return clamp(roundInt(mock.Accuracy * 100))
	}
	if confidence > 0 {
		return clamp(roundInt(confidence))
	}
	return neutralAccuracy
}

// RecencyScore is a step function over days since last contact.
func RecencyScore(days int) int {
	switch {
	case days <= 7:
		return 100
	case days <= 14:
		return 80
	case days <= 30:
		return 60
	case days <= 45:
		return 35
	case days <= 60:
		return 15
	default:
		return 0
	}
}

// DaysSince counts whole UTC calendar days between last and ref.
func DaysSince(last *time.Time, ref time.Time) int {
	if last == nil || last.IsZero() {
		return NeverTouchedDays
	}
	from := truncateDay(*last)
	to := truncateDay(ref)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
