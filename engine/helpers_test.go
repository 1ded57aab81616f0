package engine_test

import (
	"time"

	"soberpath/recovery-api/types"
)

var testNow = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func checkInDaysAgo(days int, mood types.Mood) types.CheckIn {
	return types.CheckIn{
		ID:     "ci-" + string(rune('a'+days)),
		UserID: "user-1",
		Date:   testNow.AddDate(0, 0, -days),
		Mood:   mood,
	}
}

// checkInsWithMoods builds one check-in per mood, most recent first:
// moods[0] is today, moods[1] yesterday, and so on.
func checkInsWithMoods(moods ...types.Mood) []types.CheckIn {
	checkIns := make([]types.CheckIn, len(moods))
	for i, m := range moods {
		checkIns[i] = checkInDaysAgo(i, m)
	}
	return checkIns
}

func resource(id string, tags ...string) types.Resource {
	return types.Resource{
		ID:    id,
		Title: "Resource " + id,
		Type:  types.ResourceTypeArticle,
		URL:   "https://example.com/" + id,
		Tags:  tags,
	}
}

func findRecommendation(recs []types.Recommendation, recType string) (types.Recommendation, bool) {
	for _, rec := range recs {
		if rec.Type == recType {
			return rec, true
		}
	}
	return types.Recommendation{}, false
}
