package handlers

import (
	"net/http"
	"soberpath/recovery-api/config"
	"soberpath/recovery-api/supabase"
	"soberpath/recovery-api/types"
)

// GetProgressHandler returns the user's progress row with streak and day
// counts recomputed from the sobriety start date.
func GetProgressHandler(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, types.ProgressResponse{
		Success:  true,
		Progress: progress,
	})
}
