package engine

import (
	"fmt"
	"time"

	"soberpath/recovery-api/types"
)

var lowMoodTags = []string{"coping", "mental-health", "self-care", "meditation"}
var improvingMoodTags = []string{"motivation", "growth", "progress", "success-stories"}

// AnalyzeMoodPatterns scans the trailing two weeks of check-ins (at most
// 10) for two independent patterns: a majority of low moods, and a
// steady improvement trend. Zero, one or two recommendations can result.
func AnalyzeMoodPatterns(checkIns []types.CheckIn, resources []types.Resource, now time.Time) []types.Recommendation {
	sorted := sortedByDateDesc(checkIns)
	recent := windowByAge(sorted, now, 14*24*time.Hour)
	if len(recent) > 10 {
		recent = recent[:10]
	}
	if len(recent) < 3 {
		return nil
	}

	var recs []types.Recommendation

	low := 0
	for _, ci := range recent {
		if ci.Mood == types.MoodBad || ci.Mood == types.MoodTerrible {
			low++
		}
	}
	if float64(low)/float64(len(recent)) > 0.5 {
		matched := matchResources(resources, lowMoodTags, 3)
		recs = append(recs, types.Recommendation{
			ID:          "mood-low",
			Type:        types.RecommendationTypeMood,
			ResourceIDs: resourceIDs(matched),
			Reason:      fmt.Sprintf("You've logged lower moods on %d of your last %d check-ins. These may help you through a rough patch.", low, len(recent)),
			Priority:    9,
			CreatedAt:   now,
		})
	}

	if len(recent) >= 6 && moodImproving(recent) {
		matched := matchResources(resources, improvingMoodTags, 2)
		if len(matched) > 0 {
			recs = append(recs, types.Recommendation{
				ID:          "mood-improving",
				Type:        types.RecommendationTypeMood,
				ResourceIDs: resourceIDs(matched),
				Reason:      "Your mood has been steadily improving. Keep the momentum going with these.",
				Priority:    7,
				CreatedAt:   now,
			})
		}
	}

	return recs
}

// moodImproving reports whether every successive 3-point moving average
// is strictly greater than the previous one, reading the window in
// chronological order. A single flat or declining step fails the whole
// trend.
func moodImproving(recentDesc []types.CheckIn) bool {
	n := len(recentDesc)
	if n < 6 {
		return false
	}

	// chronological order
	scores := make([]float64, n)
	for i, ci := range recentDesc {
		scores[n-1-i] = moodValue(ci.Mood)
	}

	prev := -1.0
	for i := 0; i+3 <= n; i++ {
		avg := (scores[i] + scores[i+1] + scores[i+2]) / 3
		if prev >= 0 && avg <= prev {
			return false
		}
		prev = avg
	}
	return true
}

// windowByAge keeps the check-ins no older than maxAge relative to now.
// Input must already be sorted most recent first.
func windowByAge(sortedDesc []types.CheckIn, now time.Time, maxAge time.Duration) []types.CheckIn {
	var kept []types.CheckIn
	for _, ci := range sortedDesc {
		age := now.Sub(ci.Date)
		if age < 0 || age > maxAge {
			continue
		}
		kept = append(kept, ci)
	}
	return kept
}
