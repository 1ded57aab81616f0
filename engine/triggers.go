package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"soberpath/recovery-api/types"
)

// AnalyzeFrequentTriggers finds the single most frequent trigger across
// the trailing 30 days and, when it shows up at least twice, points the
// user at resources that address it.
func AnalyzeFrequentTriggers(checkIns []types.CheckIn, triggers []types.Trigger, resources []types.Resource, now time.Time) []types.Recommendation {
	sorted := sortedByDateDesc(checkIns)
	recent := windowByAge(sorted, now, 30*24*time.Hour)
	if len(recent) < 2 {
		return nil
	}

	counts := make(map[string]int)
	for _, ci := range recent {
		for _, id := range ci.Triggers {
			counts[id]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	// deterministic winner: highest count, ties broken by ID
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if counts[ids[i]] != counts[ids[j]] {
			return counts[ids[i]] > counts[ids[j]]
		}
		return ids[i] < ids[j]
	})

	topID := ids[0]
	if counts[topID] < 2 {
		return nil
	}

	trigger, ok := lookupTrigger(triggers, topID)
	if !ok {
		// unknown ID in a check-in is a skip, not a crash
		return nil
	}

	tags := []string{trigger.Category, strings.ToLower(trigger.Name), "coping", "triggers"}
	matched := matchResources(resources, tags, 3)

	return []types.Recommendation{{
		ID:          "trigger-frequent-" + trigger.ID,
		Type:        types.RecommendationTypeTriggers,
		ResourceIDs: resourceIDs(matched),
		Reason:      fmt.Sprintf("%s has come up %d times in the last month. These focus on handling it.", trigger.Name, counts[topID]),
		Priority:    8,
		CreatedAt:   now,
	}}
}

func lookupTrigger(triggers []types.Trigger, id string) (types.Trigger, bool) {
	for _, t := range triggers {
		if t.ID == id {
			return t, true
		}
	}
	return types.Trigger{}, false
}
