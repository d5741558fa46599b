package rest

import (
	"bytes"
	"context"
	"errors"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/emotion"
	"github.com/treble-labs/emorec/internal/core/query"
	"github.com/treble-labs/emorec/internal/core/services"
	"github.com/treble-labs/emorec/internal/vector"
)

type stubEmbedder struct {
	dim   int
	fixed map[string]vector.Vector
}

func newStubEmbedder(dim int) *stubEmbedder {
	return &stubEmbedder{dim: dim, fixed: make(map[string]vector.Vector)}
}

func (s *stubEmbedder) register(keyword string, v vector.Vector) {
	s.fixed[strings.ToLower(keyword)] = v
}

func (s *stubEmbedder) Encode(_ context.Context, text string) (vector.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("stub: empty text")
	}
	lower := strings.ToLower(text)
	for keyword, v := range s.fixed {
		if strings.Contains(lower, keyword) {
			return v.Clone(), nil
		}
	}
	h := fnv.New64a()
	h.Write([]byte(lower))
	seed := h.Sum64()
	out := make(vector.Vector, s.dim)
	for i := range out {
		seed = seed*6364136223846793005 + 1442695040888963407
		out[i] = float64(int64(seed>>33))/float64(1<<30) - 1
	}
	return out, nil
}

func (s *stubEmbedder) EncodeBatch(ctx context.Context, texts []string) ([]vector.Vector, error) {
	out := make([]vector.Vector, len(texts))
	for i, t := range texts {
		v, err := s.Encode(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *stubEmbedder) Dimension() int { return s.dim }

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ctx := context.Background()
	emb := newStubEmbedder(8)

	engine, err := emotion.NewEngine(ctx, emb, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	synth, err := query.NewSynthesizer(ctx, emb, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	gen := services.NewGenerator(emb, engine, synth, nil, nil, nil, zerolog.Nop())

	return NewHandler(gen, engine, nil, nil, nil, zerolog.Nop())
}

func doRequest(t *testing.T, h *Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestCreatePlaylist(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/playlist", map[string]any{
		"emotion":     []string{"happy"},
		"num_results": 5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type: got %q", got)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}

	var resp struct {
		Playlist []struct {
			Title  string  `json:"song_name"`
			Artist string  `json:"artist"`
			Score  float64 `json:"similarity_score"`
		} `json:"playlist"`
		CombinedEmbedding []float64 `json:"combined_embedding"`
	}
	decodeBody(t, rec, &resp)
	if len(resp.Playlist) != 5 {
		t.Fatalf("playlist: got %d tracks, want 5", len(resp.Playlist))
	}
	if len(resp.CombinedEmbedding) == 0 {
		t.Fatal("missing debug embedding")
	}
}

func TestCreatePlaylistValidation(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name string
		body any
	}{
		{name: "empty request", body: map[string]any{}},
		{name: "blank emotion", body: map[string]any{"emotion": []string{"  "}}},
		{name: "out of range count", body: map[string]any{"emotion": []string{"happy"}, "num_results": 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/api/v1/playlist", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d, want 400", rec.Code)
			}
			var resp errorResponse
			decodeBody(t, rec, &resp)
			if resp.Error == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestCreatePlaylistBadBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/playlist", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestCreatePlaylistWrongContentType(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/playlist", strings.NewReader("emotion=happy"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status: got %d, want 415", rec.Code)
	}
}

func TestListEmotions(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/emotions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp emotionsResponse
	decodeBody(t, rec, &resp)
	if len(resp.Emotions) != len(emotion.Emotions) {
		t.Fatalf("emotions: got %d, want %d", len(resp.Emotions), len(emotion.Emotions))
	}
	if resp.Emotions[0] != "happy" {
		t.Fatalf("first emotion: got %q", resp.Emotions[0])
	}
}

func TestRelatedEmotions(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/emotions/happy/related?top_k=3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp relatedResponse
	decodeBody(t, rec, &resp)
	if resp.Emotion != "happy" {
		t.Fatalf("emotion: got %q", resp.Emotion)
	}
	if len(resp.Related) != 3 {
		t.Fatalf("related: got %d, want 3", len(resp.Related))
	}
	for _, s := range resp.Related {
		if s.Name == "happy" {
			t.Fatal("exact match must be excluded")
		}
	}
	for i := 1; i < len(resp.Related); i++ {
		if resp.Related[i].Score > resp.Related[i-1].Score {
			t.Fatal("related emotions not sorted by score")
		}
	}
}

func TestRelatedEmotionsBadTopK(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/api/v1/emotions/happy/related?top_k=zero", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestAnalyzeEmotions(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/emotions/analyze", map[string]any{
		"emotions": []string{"happy"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp emotion.Analysis
	decodeBody(t, rec, &resp)
	if !resp.IsCoherent {
		t.Fatal("single emotion must be coherent")
	}
	if resp.BlendedEmotion == "" {
		t.Fatal("missing blended emotion")
	}
}

func TestAnalyzeEmotionsEmpty(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/emotions/analyze", map[string]any{"emotions": []string{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestCollageParams(t *testing.T) {
	h := newTestHandler(t)

	embedding := make([]float64, 40)
	for i := range embedding {
		embedding[i] = float64(i) / 40
	}
	rec := doRequest(t, h, http.MethodPost, "/api/v1/collage/params", map[string]any{
		"emotion":   "calm",
		"embedding": embedding,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		PrimaryHue float64 `json:"primary_hue"`
		NumShapes  int     `json:"num_shapes"`
		Emotion    string  `json:"emotion"`
	}
	decodeBody(t, rec, &resp)
	if resp.Emotion != "calm" {
		t.Fatalf("emotion: got %q", resp.Emotion)
	}
	if resp.NumShapes < 10 {
		t.Fatalf("num shapes: got %d", resp.NumShapes)
	}
}

func TestCollageParamsResolvesEmotionEmbedding(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/collage/params", map[string]any{
		"emotion": "melancholic",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestCollageParamsRequiresInput(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodPost, "/api/v1/collage/params", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var resp healthResponse
	decodeBody(t, rec, &resp)
	// no provider and no store configured
	if resp.Status != "degraded" {
		t.Fatalf("status: got %q, want degraded", resp.Status)
	}
	for _, name := range []string{"spotify", "genius", "store"} {
		if v, ok := resp.Collaborators[name]; !ok || v {
			t.Fatalf("collaborator %s: got %v, %v", name, v, ok)
		}
	}
}
