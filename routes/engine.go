package routes

import (
	"net/http"
	"soberpath/recovery-api/handlers"
)

// RegisterEngineRoutes registers the recommendation and risk endpoints
func RegisterEngineRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /recommendations", handlers.GetRecommendationsHandler)
	mux.HandleFunc("GET /risk", handlers.GetRiskHandler)
	mux.HandleFunc("GET /resources", handlers.GetResourcesHandler)
}
