package engine

import (
	"fmt"
	"strings"
	"time"

	"soberpath/recovery-api/types"
)

// SuggestUnusedStrategy looks over the full history for catalog
// strategies the user has never tried and proposes one of them,
// picked arbitrarily via the injected Picker. Emits nothing unless at
// least one matching resource exists.
func SuggestUnusedStrategy(checkIns []types.CheckIn, strategies []types.CopingStrategy, resources []types.Resource, picker Picker, now time.Time) []types.Recommendation {
	if len(checkIns) == 0 || len(strategies) == 0 {
		return nil
	}
	if picker == nil {
		picker = defaultPicker()
	}

	used := make(map[string]struct{})
	for _, ci := range checkIns {
		for _, id := range ci.Strategies {
			used[id] = struct{}{}
		}
	}

	var unused []types.CopingStrategy
	for _, s := range strategies {
		if _, ok := used[s.ID]; !ok {
			unused = append(unused, s)
		}
	}
	if len(unused) == 0 {
		return nil
	}

	chosen := unused[picker.Pick(len(unused))]

	tags := []string{"coping", "strategies", firstWord(chosen.Name)}
	matched := matchResources(resources, tags, 2)
	if len(matched) == 0 {
		return nil
	}

	return []types.Recommendation{{
		ID:          "strategy-unused-" + chosen.ID,
		Type:        types.RecommendationTypeStrategy,
		ResourceIDs: resourceIDs(matched),
		Reason:      fmt.Sprintf("You haven't tried %s yet. It might be worth adding to your toolkit.", chosen.Name),
		Priority:    6,
		CreatedAt:   now,
	}}
}

func firstWord(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
