package engine

import (
	"time"

	"soberpath/recovery-api/types"
)

var generalBuckets = []stageBucket{
	{
		id:     "general-first-week",
		maxDay: 7,
		tags:   []string{"beginner", "early-recovery", "first-week", "support"},
		reason: "The first week is the hardest. These are made for exactly where you are right now.",
	},
	{
		id:     "general-habits",
		maxDay: 90,
		tags:   []string{"habits", "routine", "structure"},
		reason: "Building daily structure is what carries recovery past the early weeks.",
	},
	{
		id:     "general-growth",
		tags:   []string{"growth", "purpose", "meaning"},
		reason: "With ninety days behind you, it's a good time to think about what comes next.",
	},
}

var generalBucketPriority = map[string]int{
	"general-first-week": 10,
	"general-habits":     7,
	"general-growth":     6,
}

var selfCareTags = []string{"self-care", "wellness"}

// GeneralRecommendations is the stage-based fallback used when the
// analyzers have little to say. The self-care recommendation at the end
// is unconditional and independent of every other rule.
func GeneralRecommendations(progress types.UserProgress, resources []types.Resource, now time.Time) []types.Recommendation {
	var recs []types.Recommendation

	daysSober := progress.DaysSober(now)
	for _, bucket := range generalBuckets {
		if bucket.maxDay != 0 && daysSober > bucket.maxDay {
			continue
		}
		matched := matchResources(resources, bucket.tags, 2)
		if len(matched) > 0 {
			recs = append(recs, types.Recommendation{
				ID:          bucket.id,
				Type:        types.RecommendationTypeGeneral,
				ResourceIDs: resourceIDs(matched),
				Reason:      bucket.reason,
				Priority:    generalBucketPriority[bucket.id],
				CreatedAt:   now,
			})
		}
		break
	}

	selfCare := types.Recommendation{
		ID:        "general-self-care",
		Type:      types.RecommendationTypeGeneral,
		Reason:    "Taking care of yourself matters every single day of recovery.",
		Priority:  4,
		CreatedAt: now,
	}
	matched := matchResources(resources, selfCareTags, 2)
	if len(matched) > 0 {
		selfCare.ResourceIDs = resourceIDs(matched)
	} else {
		selfCare.Action = "Take ten minutes today for something that relaxes you"
	}
	recs = append(recs, selfCare)

	return recs
}
