package handlers

import (
	"net/http"
	"soberpath/recovery-api/config"
	"soberpath/recovery-api/engine"
	"soberpath/recovery-api/supabase"
	"soberpath/recovery-api/types"
	"strings"
)

// GetResourcesHandler lists the content catalog. Accepts an optional
// ?type= filter and an optional ?ids= comma-separated list for resolving
// a recommendation's resource IDs back to full objects.
func GetResourcesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	resourceType := q.Get("type")
	idsParam := q.Get("ids")

	supabaseClient, _, err := supabase.SupabaseClientFromRequest(r)
	if err != nil {
		config.Logger.Error("Failed to create Supabase client:", err)
		writeError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	resources, err := supabase.GetResources(supabaseClient, resourceType)
	if err != nil {
		config.Logger.Error("Failed to fetch resources:", err)
		writeError(w, "Failed to fetch resources", http.StatusInternalServerError)
		return
	}

	if idsParam != "" {
		var ids []string
		for _, id := range strings.Split(idsParam, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		resources = engine.ResourcesByIDs(ids, resources)
	}

	writeJSON(w, http.StatusOK, types.GetResourcesResponse{
		Success:   true,
		Resources: resources,
		Total:     len(resources),
	})
}
