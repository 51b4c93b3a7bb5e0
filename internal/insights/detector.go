// Package insights finds self-assessment miscalibration patterns across a
// user's syllabus: topics marked done that score poorly, high-stakes topics
// never started, and low-stakes topics revised far past their payoff.
package insights

import (
	"sort"

	"github.com/amitkandari219/exampilot-v2-sub000/internal/models"
	"github.com/amitkandari219/exampilot-v2-sub000/internal/scoring"
)

const (
	falseSecurityMaxHealth = 40
	blindSpotMinImportance = 4
	overRevisedMinCount    = 4
	overRevisedMinHealth   = 80
	overRevisedMaxImport   = 3
)

// Input is everything the detectors look at for one user.
// Scope, when non-nil, restricts results to topics in those subjects.
type Input struct {
	Topics   []models.TopicRef
	Progress map[string]models.ProgressRecord
	Health   map[string]int
	Scope    map[string]bool
}

type Detector struct {
	falseSecurityCap int
	blindSpotCap     int
}

func NewDetector(t scoring.Tuning) *Detector {
	return &Detector{
		falseSecurityCap: t.FalseSecurityCap,
		blindSpotCap:     t.BlindSpotCap,
	}
}

// candidate pairs an item with the topic it came from so sorting can use stakes.
type candidate struct {
	topic models.TopicRef
	item  models.InsightItem
}

func (d *Detector) Detect(in Input) models.InsightReport {
	var falseSecurity, blindSpots, overRevised []candidate

	for _, t := range in.Topics {
		if in.Scope != nil && !in.Scope[t.SubjectID] {
			continue
		}
		health := in.Health[t.ID]
		p, hasProgress := in.Progress[t.ID]

		if !hasProgress {
			if t.Importance >= blindSpotMinImportance {
				blindSpots = append(blindSpots, newCandidate(t, models.UntouchedProgress("", t.ID), health, models.InsightBlindSpot))
			}
			continue
		}

		switch {
		case (p.Status == models.StatusFirstPass || p.Status == models.StatusRevised) && health < falseSecurityMaxHealth:
			falseSecurity = append(falseSecurity, newCandidate(t, p, health, models.InsightFalseSecurity))
		case p.Status == models.StatusUntouched && t.Importance >= blindSpotMinImportance:
			blindSpots = append(blindSpots, newCandidate(t, p, health, models.InsightBlindSpot))
		}

		if p.RevisionCount >= overRevisedMinCount && health >= overRevisedMinHealth && t.Importance <= overRevisedMaxImport {
			overRevised = append(overRevised, newCandidate(t, p, health, models.InsightOverRevised))
		}
	}

	sortByStakes(falseSecurity)
	sortByStakes(blindSpots)
	sort.SliceStable(overRevised, func(i, j int) bool {
		if overRevised[i].item.RevisionCount != overRevised[j].item.RevisionCount {
			return overRevised[i].item.RevisionCount > overRevised[j].item.RevisionCount
		}
		return lessByName(overRevised[i].topic, overRevised[j].topic)
	})

	return models.InsightReport{
		FalseSecurity: items(capped(falseSecurity, d.falseSecurityCap)),
		BlindSpots:    items(capped(blindSpots, d.blindSpotCap)),
		OverRevised:   items(overRevised),
	}
}

func newCandidate(t models.TopicRef, p models.ProgressRecord, health int, kind models.InsightKind) candidate {
	return candidate{
		topic: t,
		item: models.InsightItem{
			TopicID:       t.ID,
			TopicName:     t.Name,
			ChapterName:   t.ChapterName,
			SubjectName:   t.SubjectName,
			HealthScore:   health,
			Status:        p.Status,
			RevisionCount: p.RevisionCount,
			Kind:          kind,
		},
	}
}

func sortByStakes(c []candidate) {
	sort.SliceStable(c, func(i, j int) bool {
		si, sj := c[i].topic.Stakes(), c[j].topic.Stakes()
		if si != sj {
			return si > sj
		}
		return lessByName(c[i].topic, c[j].topic)
	})
}

func lessByName(a, b models.TopicRef) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.ID < b.ID
}

func capped(c []candidate, n int) []candidate {
	if n > 0 && len(c) > n {
		return c[:n]
	}
	return c
}

func items(c []candidate) []models.InsightItem {
	out := make([]models.InsightItem, 0, len(c))
	for _, x := range c {
		out = append(out, x.item)
	}
	return out
}
