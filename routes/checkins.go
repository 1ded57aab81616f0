package routes

import (
	"net/http"
	"soberpath/recovery-api/handlers"
)

// RegisterCheckInRoutes registers check-in and progress routes
func RegisterCheckInRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /checkins", handlers.CreateCheckInHandler)
	mux.HandleFunc("GET /checkins", handlers.GetCheckInsHandler)
	mux.HandleFunc("GET /progress", handlers.GetProgressHandler)
}
