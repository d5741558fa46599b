package rest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/treble-labs/emorec/internal/core/emotion"
)

const defaultRelatedCount = 5

type emotionsResponse struct {
	Emotions []string `json:"emotions"`
}

// ListEmotions handles GET /api/v1/emotions
func (h *Handler) ListEmotions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, emotionsResponse{Emotions: emotion.Emotions})
}

type relatedResponse struct {
	Emotion string           `json:"emotion"`
	Related []emotion.Scored `json:"related"`
}

// RelatedEmotions handles GET /api/v1/emotions/{name}/related
func (h *Handler) RelatedEmotions(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	topK := defaultRelatedCount
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "top_k must be a positive integer")
			return
		}
		topK = parsed
	}

	related, err := h.emotions.FindRelated(r.Context(), name, topK)
	if err != nil {
		h.log.Error().Err(err).Str("emotion", name).Msg("related lookup failed")
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, relatedResponse{Emotion: name, Related: related})
}

type analyzeRequest struct {
	Emotions []string `json:"emotions"`
}

// AnalyzeEmotions handles POST /api/v1/emotions/analyze
func (h *Handler) AnalyzeEmotions(w http.ResponseWriter, r *http.Request) {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	analysis, err := h.emotions.AnalyzeMulti(r.Context(), req.Emotions)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}
