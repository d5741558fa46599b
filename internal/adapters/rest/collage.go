package rest

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/treble-labs/emorec/internal/core/visual"
	"github.com/treble-labs/emorec/internal/vector"
)

type collageRequest struct {
	Emotion   string    `json:"emotion"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// CollageParams handles POST /api/v1/collage/params. The caller supplies an
// emotion and optionally the embedding to derive the parameters from; with
// no embedding the emotion's own resolved embedding is used.
func (h *Handler) CollageParams(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req collageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Emotion = strings.TrimSpace(req.Emotion)
	if req.Emotion == "" && len(req.Embedding) == 0 {
		writeError(w, http.StatusBadRequest, "emotion or embedding is required")
		return
	}

	emb := vector.Vector(req.Embedding)
	if len(emb) == 0 {
		resolved, _, err := h.emotions.Resolve(r.Context(), []string{req.Emotion})
		if err != nil {
			h.log.Error().Err(err).Str("emotion", req.Emotion).Msg("emotion resolve failed")
			writeDomainError(w, err)
			return
		}
		emb = resolved
	}

	params, err := visual.FromEmbedding(emb, req.Emotion)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, params)
}
