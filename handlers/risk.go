package handlers

import (
	"net/http"
	"soberpath/recovery-api/config"
	"soberpath/recovery-api/engine"
	"soberpath/recovery-api/supabase"
	"soberpath/recovery-api/types"
)

// GetRiskHandler returns the standalone relapse-risk assessment.
func GetRiskHandler(w http.ResponseWriter, r *http.Request) {
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

	resources, err := supabase.GetResources(supabaseClient, "")
	if err != nil {
		config.Logger.Error("Failed to fetch resources:", err)
		writeError(w, "Failed to fetch resources", http.StatusInternalServerError)
		return
	}

	prediction := engine.New().PredictRelapseRisk(progress, resources)

	writeJSON(w, http.StatusOK, types.PredictionResponse{
		Success:    true,
		Prediction: prediction,
	})
}
