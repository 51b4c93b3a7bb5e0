package scoring

import (
	"time"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
)

// Signals are the raw inputs for one (user, topic) pair.
type Signals struct {
	Status         models.ProgressStatus
	RevisionCount  int
	Importance     int
	Mock           *models.MockAccuracy
	Confidence     float64
	DaysSinceTouch int
}

// SignalsFor assembles signals from stored rows. A nil progress record means untouched.
func SignalsFor(topic models.Topic, progress *models.ProgressRecord, mock *models.MockAccuracy, ref time.Time) Signals {
	s := Signals{
		Status:         models.StatusUntouched,
		Importance:     topic.Importance,
		Mock:           mock,
		DaysSinceTouch: NeverTouchedDays,
	}
	if progress == nil {
		return s
	}
	s.Status = progress.Status
	s.RevisionCount = progress.RevisionCount
	s.Confidence = progress.ConfidenceScore
	if progress.Status != models.StatusUntouched {
		s.DaysSinceTouch = DaysSince(progress.LastTouched, ref)
	}
	return s
}

type Result struct {
	Components models.Components
	Health     int
	Category   Category
}

// Scorer combines normalized sub-scores using one Tuning.
type Scorer struct {
	tuning Tuning
}

func NewScorer(t Tuning) *Scorer {
	return &Scorer{tuning: t}
}

func (s *Scorer) Tuning() Tuning {
	return s.tuning
}

// Normalize converts raw signals into the four sub-scores.
func Normalize(sig Signals) models.Components {
	return models.Components{
		Completion: CompletionScore(sig.Status),
		Revision:   RevisionScore(sig.RevisionCount, sig.Importance),
		Accuracy:   AccuracyScore(sig.Mock, sig.Confidence),
		Recency:    RecencyScore(sig.DaysSinceTouch),
	}
}

// Composite weights the sub-scores into a 0–100 health score.
func (s *Scorer) Composite(c models.Components) int {
	w := s.tuning.Weights
	raw := float64(c.Completion)*w.Completion +
		float64(c.Revision)*w.Revision +
		float64(c.Accuracy)*w.Accuracy +
		float64(c.Recency)*w.Recency
	return clamp(roundInt(raw))
}

func (s *Scorer) Score(sig Signals) Result {
	comps := Normalize(sig)
	health := s.Composite(comps)
	return Result{
		Components: comps,
		Health:     health,
		Category:   s.tuning.Classify(health),
	}
}
