package rest

import (
	"net/http"
)

type healthResponse struct {
	Status        string          `json:"status"`
	Collaborators map[string]bool `json:"collaborators"`
}

// Health handles GET /healthz. The service is "ok" even with every external
// collaborator down: the pipeline degrades to the local store and then the
// mock list, so collaborator state is informational.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	collaborators := map[string]bool{
		"spotify": h.source != nil && h.source.Available(),
		"genius":  h.lyrics.Available(),
		"store":   h.store != nil,
	}

	status := "ok"
	if !collaborators["spotify"] && !collaborators["store"] {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: status, Collaborators: collaborators})
}
