package scoring

import "github.com/amitkandari219/exampilot-v2-sub000/internal/models"

const (
	ComponentCompletion = "completion"
	ComponentRevision   = "revision"
	ComponentAccuracy   = "accuracy"
	ComponentRecency    = "recency"
)

// NoDataRecommendation is shown for topics that have never been scored.
const NoDataRecommendation = "No health data yet. Start studying this topic to build its health score."

// WeakestComponent returns the lowest sub-score; ties go to the earlier key in
// completion, revision, accuracy, recency order.
func WeakestComponent(c models.Components) string {
	name, lowest := ComponentCompletion, c.Completion
	if c.Revision < lowest {
		name, lowest = ComponentRevision, c.Revision
	}
	if c.Accuracy < lowest {
		name, lowest = ComponentAccuracy, c.Accuracy
	}
	if c.Recency < lowest {
		name = ComponentRecency
	}
	return name
}

var weakByComponent = map[string]string{
	ComponentCompletion: "Finish your first full pass of this topic before moving on.",
	ComponentRevision:   "Schedule a focused revision session; this topic needs more repetitions.",
	ComponentAccuracy:   "Practice questions on this topic to lift your accuracy.",
	ComponentRecency:    "You have not touched this topic in a while. Revisit it this week.",
}

// Recommend returns guidance text for a band and its weakest component.
func Recommend(category Category, weakest string) string {
	switch category {
	case CategoryCritical:
		return "Urgent: this topic is in the danger zone. Prioritize it in your next study session."
	case CategoryWeak:
		if msg, ok := weakByComponent[weakest]; ok {
			return msg
		}
		return weakByComponent[ComponentCompletion]
	case CategoryModerate:
		return "Developing well. A revision and a round of practice questions will solidify it."
	case CategoryGood:
		return "Solid progress. Keep it fresh with periodic revision."
	default:
		return "Mastered. Maintain with light revision before the exam."
	}
}

// RecommendFor is Recommend applied to a full result.
func RecommendFor(r Result) string {
	return Recommend(r.Category, WeakestComponent(r.Components))
}
