package rest

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/treble-labs/emorec/internal/core/domain"
)

// CreatePlaylist handles POST /api/v1/playlist
func (h *Handler) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req domain.PlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.generator.GeneratePlaylist(r.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("playlist generation failed")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
