package handlers

import (
	"encoding/json"
	"net/http"
	"soberpath/recovery-api/config"
	"soberpath/recovery-api/supabase"
	"soberpath/recovery-api/types"
	"strconv"
	"time"

	"github.com/google/uuid"
)

func CreateCheckInHandler(w http.ResponseWriter, r *http.Request) {

	var checkIn types.CheckIn

	if err := json.NewDecoder(r.Body).Decode(&checkIn); err != nil {
		config.Logger.Error("Failed to decode check-in JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	// Mood is the one required field
	if !checkIn.Mood.Valid() {
		writeError(w, "Missing or invalid mood", http.StatusBadRequest)
		return
	}

	supabaseClient, userID, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	checkIn.ID = uuid.NewString()
	checkIn.UserID = userID
	if checkIn.Date.IsZero() {
		checkIn.Date = time.Now()
	}

	saved, err := supabase.InsertCheckIn(supabaseClient, checkIn)
	if err != nil {
		config.Logger.Error("Failed to save check-in:", err)
		writeError(w, "Failed to create check-in", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, types.CheckInResponse{
		Success: true,
		CheckIn: saved,
	})
}

func GetCheckInsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limitStr := q.Get("limit")
	offsetStr := q.Get("offset")

	limit := 30 // default
	offset := 0
	var err error

	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			config.Logger.Error("Invalid limit value:", err)
			writeError(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
	}

	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			config.Logger.Error("Invalid offset value:", err)
			writeError(w, "Invalid offset value", http.StatusBadRequest)
			return
		}
	}

	supabaseClient, userID, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	checkIns, total, err := supabase.GetCheckIns(supabaseClient, userID, limit, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch check-ins:", err)
		writeError(w, "Failed to fetch check-ins", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, types.GetCheckInsResponse{
		Success:  true,
		CheckIns: checkIns,
		Limit:    limit,
		Offset:   offset,
		Total:    int(total),
	})
}
