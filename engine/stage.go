package engine

import (
	"time"

	"soberpath/recovery-api/types"
)

// stageBucket describes one mutually exclusive days-sober range and the
// educational content that fits it.
type stageBucket struct {
	id     string
	maxDay int // inclusive; 0 means open-ended
	tags   []string
	reason string
}

var educationBuckets = []stageBucket{
	{
		id:     "education-early",
		maxDay: 30,
		tags:   []string{"beginner", "basics", "early-recovery", "withdrawal"},
		reason: "The first month is about building a foundation. This can help you understand what your body and mind are going through.",
	},
	{
		id:     "education-building",
		maxDay: 90,
		tags:   []string{"habits", "relapse-prevention", "coping"},
		reason: "Months two and three are when new routines take hold. This can help you build on your start.",
	},
	{
		id:     "education-maintenance",
		tags:   []string{"growth", "long-term", "purpose"},
		reason: "Past ninety days, recovery becomes about the life you're building. This can help with the longer view.",
	},
}

var generalEducationTags = []string{"science", "education"}

// StageRecommendations picks educational content for the user's current
// recovery stage, computed from the sobriety start date rather than
// check-in count. A second, stage-independent recommendation appears for
// users who have logged fewer than 5 check-ins.
func StageRecommendations(progress types.UserProgress, resources []types.Resource, now time.Time) []types.Recommendation {
	var recs []types.Recommendation

	daysSober := progress.DaysSober(now)
	for _, bucket := range educationBuckets {
		if bucket.maxDay != 0 && daysSober > bucket.maxDay {
			continue
		}
		matched := matchResources(resources, bucket.tags, 1)
		if len(matched) > 0 {
			recs = append(recs, types.Recommendation{
				ID:          bucket.id,
				Type:        types.RecommendationTypeEducation,
				ResourceIDs: resourceIDs(matched),
				Reason:      bucket.reason,
				Priority:    6,
				CreatedAt:   now,
			})
		}
		break // buckets are mutually exclusive
	}

	if len(progress.CheckIns) < 5 {
		matched := matchResources(resources, generalEducationTags, 2)
		if len(matched) > 0 {
			recs = append(recs, types.Recommendation{
				ID:          "education-general",
				Type:        types.RecommendationTypeEducation,
				ResourceIDs: resourceIDs(matched),
				Reason:      "Understanding how recovery works makes it easier to stick with. Worth a read.",
				Priority:    5,
				CreatedAt:   now,
			})
		}
	}

	return recs
}
