package supabase

import (
	"encoding/json"
	"fmt"
	"soberpath/recovery-api/types"

	"github.com/supabase-community/supabase-go"
)

// GetResources returns the content catalog, optionally filtered by
// resource type (article, video, audio, exercise).
func GetResources(client *supabase.Client, resourceType string) ([]types.Resource, error) {
	query := client.From("resources").Select("*", "", false)
	if resourceType != "" {
		query = query.Eq("type", resourceType)
	}

	resp, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch resources: %w", err)
	}

	var resources []types.Resource
	if err := json.Unmarshal(resp, &resources); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resources: %w", err)
	}

	return resources, nil
}
