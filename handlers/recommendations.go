package handlers

import (
	"net/http"
	"soberpath/recovery-api/config"
	"soberpath/recovery-api/engine"
	"soberpath/recovery-api/supabase"
	"soberpath/recovery-api/types"
)

// GetRecommendationsHandler loads the caller's history and the catalogs,
// runs the recommendation pipeline, and returns the priority-sorted list.
func GetRecommendationsHandler(w http.ResponseWriter, r *http.Request) {
	supabaseClient, userID, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	progress, err := supabase.GetUserProgressWithHistory(supabaseClient, userID)
	if err != nil {
		config.Logger.Error("Failed to load user progress:", err)
		writeError(w, "Failed to load user progress", http.StatusInternalServerError)
		return
	}

	triggers, err := supabase.GetTriggers(supabaseClient)
	if err != nil {
		config.Logger.Error("Failed to fetch triggers:", err)
		writeError(w, "Failed to fetch triggers", http.StatusInternalServerError)
		return
	}
	if len(triggers) == 0 {
		triggers = config.DefaultTriggers()
	}

	strategies, err := supabase.GetStrategies(supabaseClient)
	if err != nil {
		config.Logger.Error("Failed to fetch coping strategies:", err)
		writeError(w, "Failed to fetch coping strategies", http.StatusInternalServerError)
		return
	}
	if len(strategies) == 0 {
		strategies = config.DefaultStrategies()
	}

	resources, err := supabase.GetResources(supabaseClient, "")
	if err != nil {
		config.Logger.Error("Failed to fetch resources:", err)
		writeError(w, "Failed to fetch resources", http.StatusInternalServerError)
		return
	}

	recommendations := engine.New().GenerateRecommendations(progress, triggers, strategies, resources)

	writeJSON(w, http.StatusOK, types.GetRecommendationsResponse{
		Success:         true,
		Recommendations: recommendations,
		Total:           len(recommendations),
	})
}
