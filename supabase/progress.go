package supabase

import (
	"encoding/json"
	"fmt"
	"soberpath/recovery-api/types"
	"time"

	"github.com/supabase-community/supabase-go"
)

// GetUserProgress fetches the user's progress row. Users without one yet
// get a fresh record anchored at now, matching the onboarding default.
func GetUserProgress(client *supabase.Client, userID string) (types.UserProgress, error) {
	resp, _, err := client.From("user_progress").
		Select("*", "", false).
		Eq("user_id", userID).
		Execute()

	if err != nil {
		return types.UserProgress{}, fmt.Errorf("failed to fetch user progress: %w", err)
	}

	var rows []types.UserProgress
	if err := json.Unmarshal(resp, &rows); err != nil {
		return types.UserProgress{}, fmt.Errorf("failed to unmarshal user progress: %w", err)
	}

	if len(rows) > 0 {
		return rows[0], nil
	}

	return types.UserProgress{UserID: userID, StartDate: time.Now()}, nil
}

// GetUserProgressWithHistory returns the progress row with the full
// check-in history attached and the derived day counts recomputed. This
// is the loading path the scoring engine runs on.
func GetUserProgressWithHistory(client *supabase.Client, userID string) (types.UserProgress, error) {
	progress, err := GetUserProgress(client, userID)
	if err != nil {
		return types.UserProgress{}, err
	}

	checkIns, err := GetAllCheckIns(client, userID)
	if err != nil {
		return types.UserProgress{}, err
	}

	progress.CheckIns = checkIns
	progress.Recalculate(time.Now())
	return progress, nil
}
