package supabase

import (
	"encoding/json"
	"fmt"
	"soberpath/recovery-api/types"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

// Static reference catalogs. Both tables are global (no user filter);
// callers fall back to config.DefaultTriggers / DefaultStrategies when a
// table is empty.

func GetTriggers(client *supabase.Client) ([]types.Trigger, error) {
	resp, _, err := client.From("triggers").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch triggers: %w", err)
	}

	var triggers []types.Trigger
	if err := json.Unmarshal(resp, &triggers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal triggers: %w", err)
	}

	return triggers, nil
}

func GetStrategies(client *supabase.Client) ([]types.CopingStrategy, error) {
	resp, _, err := client.From("coping_strategies").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to fetch coping strategies: %w", err)
	}

	var strategies []types.CopingStrategy
	if err := json.Unmarshal(resp, &strategies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal coping strategies: %w", err)
	}

	return strategies, nil
}
