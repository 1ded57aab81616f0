package engine

import (
	"fmt"
	"math"
	"time"

	"soberpath/recovery-api/types"
)

// interventionThreshold is the minimum raw factor score that warrants an
// intervention. Below it we stay quiet to avoid over-alerting on
// marginal signals.
const interventionThreshold = 0.4

var interventionTags = map[string][]string{
	"mood_decline":     {"coping", "mindfulness", "therapy"},
	"trigger_exposure": {"triggers", "coping", "planning"},
	"isolation":        {"connection", "community", "support"},
	"stress":           {"stress", "relaxation", "breathing"},
	"sleep_disruption": {"sleep", "rest", "routine"},
	"missed_check_ins": {"habits", "routine", "motivation"},
}

var interventionReasons = map[string]string{
	"mood_decline":     "Your recent check-ins show a %s dip in mood",
	"trigger_exposure": "You've been facing a %s amount of trigger exposure lately",
	"isolation":        "Your notes suggest a %s amount of time spent alone",
	"stress":           "Your notes point to %s stress levels",
	"sleep_disruption": "Your notes point to %s sleep disruption",
	"missed_check_ins": "You've missed a %s number of daily check-ins",
}

var interventionActions = map[string]string{
	"mood_decline":     "Try a short mindfulness exercise, or talk to someone you trust about how you're feeling",
	"trigger_exposure": "Review your trigger list and plan how to avoid or handle the most common ones this week",
	"isolation":        "Reach out to one person today, even just a text message",
	"stress":           "Set aside ten minutes for slow breathing or a walk outside",
	"sleep_disruption": "Wind down screens an hour before bed and keep a consistent bedtime this week",
	"missed_check_ins": "Set a daily reminder so checking in becomes automatic",
}

// Interventions maps the two strongest risk factors onto concrete
// suggestions. Each qualifying factor yields up to two resource-backed
// recommendations, or exactly one action-only fallback when nothing in
// the catalog matches its tags.
func Interventions(factors RiskFactors, resources []types.Resource, now time.Time) []types.Recommendation {
	var recs []types.Recommendation

	ranked := rankedFactors(factors)
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}

	for _, rf := range ranked {
		if rf.score < interventionThreshold {
			continue
		}

		intensity := "moderate"
		if rf.score > 0.7 {
			intensity = "significant"
		}
		reason := fmt.Sprintf(interventionReasons[rf.key]+". These may help.", intensity)
		priority := int(math.Round(rf.score * 10))

		matched := matchResources(resources, interventionTags[rf.key], 2)
		if len(matched) == 0 {
			recs = append(recs, types.Recommendation{
				ID:        "relapse-prevention-" + rf.key,
				Type:      types.RecommendationTypeRelapsePrevention,
				Reason:    reason,
				Action:    interventionActions[rf.key],
				Priority:  priority,
				CreatedAt: now,
			})
			continue
		}

		for _, res := range matched {
			recs = append(recs, types.Recommendation{
				ID:          "relapse-prevention-" + rf.key + "-" + res.ID,
				Type:        types.RecommendationTypeRelapsePrevention,
				ResourceIDs: []string{res.ID},
				Reason:      reason,
				Priority:    priority,
				CreatedAt:   now,
			})
		}
	}

	return recs
}
