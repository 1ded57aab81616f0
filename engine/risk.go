package engine

import (
	"math"
	"sort"

	"soberpath/recovery-api/types"
)

// factorWeight pairs a factor with its fixed contribution to the overall
// risk score. Weights sum to 1.0, so the theoretical maximum is 100.
type factorDef struct {
	key    string
	label  string
	weight float64
}

var factorDefs = []factorDef{
	{key: "mood_decline", label: "Mood changes", weight: 0.30},
	{key: "trigger_exposure", label: "Trigger exposure", weight: 0.25},
	{key: "isolation", label: "Social isolation", weight: 0.15},
	{key: "stress", label: "Elevated stress", weight: 0.15},
	{key: "sleep_disruption", label: "Sleep disruption", weight: 0.10},
	{key: "missed_check_ins", label: "Missed check-ins", weight: 0.05},
}

// primaryFactorThreshold is the raw score above which a factor is named
// in the prediction result.
const primaryFactorThreshold = 0.5

func (f RiskFactors) value(key string) float64 {
	switch key {
	case "mood_decline":
		return f.MoodDecline
	case "trigger_exposure":
		return f.TriggerExposure
	case "isolation":
		return f.Isolation
	case "stress":
		return f.Stress
	case "sleep_disruption":
		return f.SleepDisruption
	case "missed_check_ins":
		return f.MissedCheckIns
	}
	return 0
}

// RiskScore collapses the six factors into a single 0-100 score.
func RiskScore(factors RiskFactors) int {
	total := 0.0
	for _, def := range factorDefs {
		total += factors.value(def.key) * def.weight * 100
	}
	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// RiskLevelForScore maps a 0-100 score onto the discrete risk levels.
func RiskLevelForScore(score int) string {
	switch {
	case score < 30:
		return types.RiskLevelLow
	case score < 50:
		return types.RiskLevelModerate
	case score < 70:
		return types.RiskLevelHigh
	default:
		return types.RiskLevelCritical
	}
}

// PrimaryFactors returns the human-readable labels of every factor above
// the significance threshold, in fixed weight order. Never empty: when
// nothing stands out on its own the sentinel label is returned instead.
func PrimaryFactors(factors RiskFactors) []string {
	var labels []string
	for _, def := range factorDefs {
		if factors.value(def.key) > primaryFactorThreshold {
			labels = append(labels, def.label)
		}
	}
	if len(labels) == 0 {
		return []string{"Multiple subtle factors"}
	}
	return labels
}

// rankedFactor is a factor with its raw score, used when ordering
// factors by severity for intervention selection.
type rankedFactor struct {
	key   string
	label string
	score float64
}

func rankedFactors(factors RiskFactors) []rankedFactor {
	ranked := make([]rankedFactor, 0, len(factorDefs))
	for _, def := range factorDefs {
		ranked = append(ranked, rankedFactor{key: def.key, label: def.label, score: factors.value(def.key)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}
