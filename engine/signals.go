package engine

import (
	"sort"
	"strings"
	"time"

	"soberpath/recovery-api/types"
)

// RiskFactors holds the six independently computed signals, each in [0,1]
// with higher meaning more risk-indicative.
type RiskFactors struct {
	MoodDecline     float64 `json:"mood_decline"`
	TriggerExposure float64 `json:"trigger_exposure"`
	Isolation       float64 `json:"isolation"`
	Stress          float64 `json:"stress"`
	SleepDisruption float64 `json:"sleep_disruption"`
	MissedCheckIns  float64 `json:"missed_check_ins"`
}

// insufficientDataScore is the default for signals that need history we
// don't have. Moderate rather than zero: absence of evidence is not
// evidence of safety.
const insufficientDataScore = 0.3

var moodValues = map[types.Mood]float64{
	types.MoodTerrible: 0.0,
	types.MoodBad:      0.25,
	types.MoodOkay:     0.5,
	types.MoodGood:     0.75,
	types.MoodGreat:    1.0,
}

// moodValue maps a mood onto a linear 0-1 scale. Unrecognized values fall
// back to the midpoint instead of propagating garbage.
func moodValue(m types.Mood) float64 {
	if v, ok := moodValues[m]; ok {
		return v
	}
	return 0.5
}

// sortedByDateDesc returns a copy of checkIns ordered most recent first.
// Extractors never assume caller-side ordering.
func sortedByDateDesc(checkIns []types.CheckIn) []types.CheckIn {
	sorted := make([]types.CheckIn, len(checkIns))
	copy(sorted, checkIns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// MoodDeclineScore looks at the 5 most recent check-ins and combines how
// low the average mood is with how many day-over-day declines occurred.
func MoodDeclineScore(checkIns []types.CheckIn) float64 {
	sorted := sortedByDateDesc(checkIns)
	if len(sorted) < 3 {
		return 0
	}
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	scores := make([]float64, len(sorted))
	sum := 0.0
	for i, ci := range sorted {
		scores[i] = moodValue(ci.Mood)
		sum += scores[i]
	}
	avgMood := sum / float64(len(scores))

	// sorted is most-recent-first, so scores[i] < scores[i+1] means the
	// newer day is lower than the older one: a decline step.
	declines := 0
	for i := 0; i < len(scores)-1; i++ {
		if scores[i] < scores[i+1] {
			declines++
		}
	}
	declineFactor := float64(declines) / float64(len(scores)-1)

	return clamp01((1-avgMood)*0.7 + declineFactor*0.3)
}

// TriggerExposureScore is the fraction of the 7 most recent check-ins
// that recorded at least one trigger.
func TriggerExposureScore(checkIns []types.CheckIn) float64 {
	sorted := sortedByDateDesc(checkIns)
	if len(sorted) < 2 {
		return 0
	}
	if len(sorted) > 7 {
		sorted = sorted[:7]
	}

	withTriggers := 0
	for _, ci := range sorted {
		if len(ci.Triggers) > 0 {
			withTriggers++
		}
	}
	return clamp01(float64(withTriggers) / float64(len(sorted)))
}

// notesKeywordScore counts keyword hits in the notes of the 5 most recent
// check-ins and normalizes against twice the number of entries scanned.
func notesKeywordScore(checkIns []types.CheckIn, keywords []string) float64 {
	sorted := sortedByDateDesc(checkIns)
	if len(sorted) < 3 {
		return insufficientDataScore
	}
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}

	hits := 0
	for _, ci := range sorted {
		notes := strings.ToLower(ci.Notes)
		if notes == "" {
			continue
		}
		for _, kw := range keywords {
			if strings.Contains(notes, kw) {
				hits++
			}
		}
	}
	return clamp01(float64(hits) / float64(len(sorted)*2))
}

func IsolationScore(checkIns []types.CheckIn) float64 {
	return notesKeywordScore(checkIns, isolationKeywords)
}

func StressScore(checkIns []types.CheckIn) float64 {
	return notesKeywordScore(checkIns, stressKeywords)
}

func SleepDisruptionScore(checkIns []types.CheckIn) float64 {
	return notesKeywordScore(checkIns, sleepKeywords)
}

// MissedCheckInScore measures how many calendar days in the trailing
// 7-day window (inclusive of today) had no check-in at all.
func MissedCheckInScore(checkIns []types.CheckIn, now time.Time) float64 {
	if len(checkIns) < 3 {
		return insufficientDataScore
	}

	daysWithCheckIn := make(map[string]struct{})
	for _, ci := range checkIns {
		age := now.Sub(ci.Date)
		if age < 0 || age >= 7*24*time.Hour {
			continue
		}
		daysWithCheckIn[ci.Date.Format("2006-01-02")] = struct{}{}
	}
	return clamp01(1 - float64(len(daysWithCheckIn))/7)
}

// ExtractRiskFactors runs every extractor over the same history.
func ExtractRiskFactors(checkIns []types.CheckIn, now time.Time) RiskFactors {
	return RiskFactors{
		MoodDecline:     MoodDeclineScore(checkIns),
		TriggerExposure: TriggerExposureScore(checkIns),
		Isolation:       IsolationScore(checkIns),
		Stress:          StressScore(checkIns),
		SleepDisruption: SleepDisruptionScore(checkIns),
		MissedCheckIns:  MissedCheckInScore(checkIns, now),
	}
}
