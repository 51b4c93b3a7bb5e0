package scoring

import (
	"fmt"
	"math"
)

// Weights are the composite weights of the four sub-scores. They must sum to 1.
type Weights struct {
	Completion float64 `yaml:"completion" validate:"gte=0,lte=1"`
	Revision   float64 `yaml:"revision" validate:"gte=0,lte=1"`
	Accuracy   float64 `yaml:"accuracy" validate:"gte=0,lte=1"`
	Recency    float64 `yaml:"recency" validate:"gte=0,lte=1"`
}

func (w Weights) Sum() float64 {
	return w.Completion + w.Revision + w.Accuracy + w.Recency
}

// Cutpoints are the minimum scores of the four upper zones, highest first.
type Cutpoints struct {
	Excellent int `yaml:"excellent" validate:"gte=0,lte=100"`
	Good      int `yaml:"good" validate:"gte=0,lte=100"`
	Moderate  int `yaml:"moderate" validate:"gte=0,lte=100"`
	Weak      int `yaml:"weak" validate:"gte=0,lte=100"`
}

// Tuning carries every model weight and threshold used by the engine.
// Treat a Tuning as immutable once handed to a Scorer or service.
type Tuning struct {
	Weights   Weights   `yaml:"weights"`
	Cutpoints Cutpoints `yaml:"cutpoints"`

	FalseSecurityCap int `yaml:"false_security_cap" validate:"gte=1"`
	BlindSpotCap     int `yaml:"blind_spot_cap" validate:"gte=1"`
	TrendDays        int `yaml:"trend_days" validate:"gte=1,lte=365"`

	LowConfidenceThreshold float64 `yaml:"low_confidence_threshold" validate:"gte=0,lte=100"`
	StreakMilestone        int     `yaml:"streak_milestone" validate:"gte=1"`
	HighlightCount         int     `yaml:"highlight_count" validate:"gte=1"`
	MaxWins                int     `yaml:"max_wins" validate:"gte=1"`
	MaxAreas               int     `yaml:"max_areas" validate:"gte=1"`
	MaxLowConfidenceAreas  int     `yaml:"max_low_confidence_areas" validate:"gte=0"`
	MaxRecommendations     int     `yaml:"max_recommendations" validate:"gte=1"`
	FatigueDeltaThreshold  float64 `yaml:"fatigue_delta_threshold" validate:"gte=0"`
	VelocityDeltaThreshold float64 `yaml:"velocity_delta_threshold" validate:"gte=0"`
	BenchmarkDeltaPoints   int     `yaml:"benchmark_delta_points" validate:"gte=1"`
	UntouchedDays          int     `yaml:"untouched_days" validate:"gte=1"`
	ZeroStudyWarningDays   int     `yaml:"zero_study_warning_days" validate:"gte=0,lte=7"`
	StrongAdherencePct     float64 `yaml:"strong_adherence_pct" validate:"gte=0,lte=100"`
}

// DefaultTuning returns the production weights and thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		Weights: Weights{
			Completion: 0.25,
			Revision:   0.20,
			Accuracy:   0.30,
			Recency:    0.25,
		},
		Cutpoints: Cutpoints{
			Excellent: 80,
			Good:      60,
			Moderate:  40,
			Weak:      20,
		},
		FalseSecurityCap:       15,
		BlindSpotCap:           10,
		TrendDays:              30,
		LowConfidenceThreshold: 50,
		StreakMilestone:        7,
		HighlightCount:         3,
		MaxWins:                5,
		MaxAreas:               5,
		MaxLowConfidenceAreas:  3,
		MaxRecommendations:     5,
		FatigueDeltaThreshold:  5,
		VelocityDeltaThreshold: 0.05,
		BenchmarkDeltaPoints:   2,
		UntouchedDays:          14,
		ZeroStudyWarningDays:   2,
		StrongAdherencePct:     80,
	}
}

// CheckInvariants verifies the cross-field rules that struct tags cannot express.
func (t Tuning) CheckInvariants() error {
	if math.Abs(t.Weights.Sum()-1.0) > 1e-6 {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", t.Weights.Sum())
	}
	c := t.Cutpoints
	if !(c.Excellent > c.Good && c.Good > c.Moderate && c.Moderate > c.Weak) {
		return fmt.Errorf("cutpoints must be strictly descending, got %d/%d/%d/%d", c.Excellent, c.Good, c.Moderate, c.Weak)
	}
	return nil
}
