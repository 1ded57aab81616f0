package supabase

import (
	"encoding/json"
	"fmt"
	"soberpath/recovery-api/types"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// GetCheckIns returns a page of the user's check-in history, most recent
// first, plus the total row count for pagination.
func GetCheckIns(client *supabase.Client, userID string, limit, offset int) ([]types.CheckIn, int64, error) {
	if userID == "" {
		return nil, 0, fmt.Errorf("missing user ID")
	}

	query := client.From("check_ins").
		Select("*", "exact", false).
		Eq("user_id", userID).
		Order("date", &postgrest.OrderOpts{Ascending: false})

	if limit > 0 {
		query = query.Range(offset, offset+limit-1, "")
	}

	resp, count, err := query.Execute()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch check-ins: %w", err)
	}

	var checkIns []types.CheckIn
	if err := json.Unmarshal(resp, &checkIns); err != nil {
		return nil, 0, fmt.Errorf("failed to unmarshal check-ins: %w", err)
	}

	return checkIns, count, nil
}

// GetAllCheckIns returns the user's full history for the scoring engine.
func GetAllCheckIns(client *supabase.Client, userID string) ([]types.CheckIn, error) {
	checkIns, _, err := GetCheckIns(client, userID, 0, 0)
	return checkIns, err
}

// GetRecentCheckIns returns check-ins dated on or after since.
func GetRecentCheckIns(client *supabase.Client, userID string, since time.Time) ([]types.CheckIn, error) {
	resp, _, err := client.From("check_ins").
		Select("*", "", false).
		Eq("user_id", userID).
		Gte("date", since.Format(time.RFC3339)).
		Order("date", &postgrest.OrderOpts{Ascending: false}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent check-ins: %w", err)
	}

	var checkIns []types.CheckIn
	if err := json.Unmarshal(resp, &checkIns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check-ins: %w", err)
	}

	return checkIns, nil
}

// InsertCheckIn saves a new check-in and returns the stored row.
func InsertCheckIn(client *supabase.Client, checkIn types.CheckIn) (types.CheckIn, error) {
	if checkIn.CreatedAt.IsZero() {
		checkIn.CreatedAt = time.Now()
	}

	resp, _, err := client.From("check_ins").
		Insert([]types.CheckIn{checkIn}, false, "", "representation", "").
		Execute()

	if err != nil {
		return types.CheckIn{}, fmt.Errorf("failed to insert check-in: %w", err)
	}

	var inserted []types.CheckIn
	if err := json.Unmarshal(resp, &inserted); err != nil {
		return types.CheckIn{}, fmt.Errorf("failed to parse insert result: %w", err)
	}
	if len(inserted) == 0 {
		return types.CheckIn{}, fmt.Errorf("no check-in inserted")
	}

	return inserted[0], nil
}
