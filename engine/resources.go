package engine

import (
	"strings"

	"soberpath/recovery-api/types"
)

// matchResources returns up to limit resources whose tags intersect the
// wanted set, case-insensitively. Catalog order is preserved.
func matchResources(resources []types.Resource, wanted []string, limit int) []types.Resource {
	if limit <= 0 || len(wanted) == 0 {
		return nil
	}

	wantedSet := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		wantedSet[strings.ToLower(w)] = struct{}{}
	}

	var matched []types.Resource
	for _, res := range resources {
		for _, tag := range res.Tags {
			if _, ok := wantedSet[strings.ToLower(tag)]; ok {
				matched = append(matched, res)
				break
			}
		}
		if len(matched) == limit {
			break
		}
	}
	return matched
}

func resourceIDs(resources []types.Resource) []string {
	if len(resources) == 0 {
		return nil
	}
	ids := make([]string, len(resources))
	for i, res := range resources {
		ids[i] = res.ID
	}
	return ids
}

// ResourcesByIDs resolves recommendation resource IDs back to full
// Resource objects for display. Unknown IDs are skipped.
func ResourcesByIDs(ids []string, all []types.Resource) []types.Resource {
	byID := make(map[string]types.Resource, len(all))
	for _, res := range all {
		byID[res.ID] = res
	}

	var resolved []types.Resource
	for _, id := range ids {
		if res, ok := byID[id]; ok {
			resolved = append(resolved, res)
		}
	}
	return resolved
}
