package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/emotion"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/core/query"
	"github.com/treble-labs/emorec/internal/vector"
)

type fakeSource struct {
	available    bool
	searchResult []domain.Track
	searchErr    error
	artistTracks []domain.Track
	artistErr    error
	seeds        []string

	mu              sync.Mutex
	searchedQueries []string
	expandedArtists []string
}

func (f *fakeSource) Available() bool { return f.available }

func (f *fakeSource) SearchTracks(_ context.Context, query string, _ int) ([]domain.Track, error) {
	f.mu.Lock()
	f.searchedQueries = append(f.searchedQueries, query)
	f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResult, nil
}

func (f *fakeSource) TrackByID(context.Context, string) (domain.Track, error) {
	return domain.Track{}, domain.ErrNotFound
}

func (f *fakeSource) ArtistTracks(_ context.Context, name, _ string, _ int) ([]domain.Track, error) {
	f.expandedArtists = append(f.expandedArtists, name)
	return f.artistTracks, f.artistErr
}

func (f *fakeSource) GenreSeeds(context.Context) ([]string, error) {
	return f.seeds, nil
}

type fakeStore struct {
	tracks []ports.StoredTrack
	err    error
}

func (f *fakeStore) AllTracks(context.Context) ([]ports.StoredTrack, error) {
	return f.tracks, f.err
}

func (f *fakeStore) Close() error { return nil }

// registerHappy pins every context sentence of the predefined "happy"
// emotion to one direction so the resolved embedding is exactly v.
func registerHappy(emb *stubEmbedder, v vector.Vector) {
	emb.register("happy", v)
	emb.register("upbeat energetic joyful", v)
	emb.register("feel-good party", v)
	emb.register("radiates joy", v)
}

func newTestGenerator(t *testing.T, emb *stubEmbedder, source ports.TrackSource, store ports.TrackStore) *Generator {
	t.Helper()
	ctx := context.Background()
	engine, err := emotion.NewEngine(ctx, emb, 0, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	synth, err := query.NewSynthesizer(ctx, emb, source, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	return NewGenerator(emb, engine, synth, source, store, nil, zerolog.Nop())
}

func TestGeneratePlaylist_Validation(t *testing.T) {
	g := newTestGenerator(t, newStubEmbedder(8), nil, nil)

	_, err := g.GeneratePlaylist(context.Background(), domain.PlaylistRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGeneratePlaylist_MockFallback(t *testing.T) {
	g := newTestGenerator(t, newStubEmbedder(8), nil, nil)

	resp, err := g.GeneratePlaylist(context.Background(), domain.PlaylistRequest{
		Emotions:   []string{"happy"},
		NumResults: 5,
	})
	if err != nil {
		t.Fatalf("GeneratePlaylist: %v", err)
	}
	if len(resp.Playlist) != 5 {
		t.Fatalf("expected 5 tracks, got %d", len(resp.Playlist))
	}
	if resp.Playlist[0].Title != "Bohemian Rhapsody" {
		t.Fatalf("expected deterministic mock order, got %q", resp.Playlist[0].Title)
	}
	if resp.Playlist[0].SimilarityScore != 0.9 {
		t.Fatalf("expected mock score 0.9, got %v", resp.Playlist[0].SimilarityScore)
	}
	if resp.Playlist[4].SimilarityScore != 0.7 {
		t.Fatalf("expected mock score 0.7 at index 4, got %v", resp.Playlist[4].SimilarityScore)
	}
	if resp.EmotionFeatures == nil {
		t.Fatal("expected emotion feature ranges in response")
	}
	if len(resp.CombinedEmbedding) == 0 || len(resp.CombinedEmbedding) > 10 {
		t.Fatalf("expected debug embedding of at most 10 dims, got %d", len(resp.CombinedEmbedding))
	}
}

func TestGeneratePlaylist_StoreFallback(t *testing.T) {
	emb := newStubEmbedder(4)
	happy := vector.Vector{1, 0, 0, 0}
	registerHappy(emb, happy)

	store := &fakeStore{tracks: []ports.StoredTrack{
		{Track: domain.Track{Title: "Far", Artist: "B"}, Embedding: vector.Vector{-1, 0, 0, 0}},
		{Track: domain.Track{Title: "Near", Artist: "A"}, Embedding: vector.Vector{0.99, 0.01, 0, 0}},
	}}
	g := newTestGenerator(t, emb, nil, store)

	resp, err := g.GeneratePlaylist(context.Background(), domain.PlaylistRequest{
		Emotions:   []string{"happy"},
		NumResults: 2,
	})
	if err != nil {
		t.Fatalf("GeneratePlaylist: %v", err)
	}
	if len(resp.Playlist) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(resp.Playlist))
	}
	if resp.Playlist[0].Title != "Near" {
		t.Fatalf("expected store candidates ranked by similarity, got %q first", resp.Playlist[0].Title)
	}
}

func TestGeneratePlaylist_ProviderPath(t *testing.T) {
	emb := newStubEmbedder(4)
	happy := vector.Vector{1, 0, 0, 0}
	registerHappy(emb, happy)
	// make at least one genre rank above the query threshold
	emb.register("popular mainstream catchy", vector.Vector{0.9, 0.1, 0, 0})
	emb.register("golden hour", vector.Vector{0.98, 0.02, 0, 0})
	emb.register("static noise", vector.Vector{-1, 0, 0, 0})
	emb.register("middle ground", vector.Vector{0, 1, 0, 0})

	source := &fakeSource{
		available: true,
		searchResult: []domain.Track{
			{Title: "Static Noise", Artist: "B", SpotifyID: "id-b"},
			{Title: "Golden Hour", Artist: "A", SpotifyID: "id-a"},
			{Title: "Golden Hour", Artist: "A", SpotifyID: "id-a"}, // duplicate
			{Title: "Middle Ground", Artist: "C", SpotifyID: "id-c"},
		},
	}
	g := newTestGenerator(t, emb, source, nil)

	resp, err := g.GeneratePlaylist(context.Background(), domain.PlaylistRequest{
		Emotions:   []string{"happy"},
		NumResults: 10,
	})
	if err != nil {
		t.Fatalf("GeneratePlaylist: %v", err)
	}
	if len(source.searchedQueries) == 0 {
		t.Fatal("expected provider queries to be issued")
	}
	if len(resp.Playlist) != 3 {
		t.Fatalf("expected 3 deduplicated tracks, got %d", len(resp.Playlist))
	}
	if resp.Playlist[0].SpotifyID != "id-a" {
		t.Fatalf("expected semantically closest track first, got %q", resp.Playlist[0].Title)
	}
	if resp.Playlist[2].SpotifyID != "id-b" {
		t.Fatalf("expected farthest track last, got %q", resp.Playlist[2].Title)
	}
}

func TestGeneratePlaylist_ProviderErrorFallsBack(t *testing.T) {
	source := &fakeSource{available: true, searchErr: errors.New("upstream down")}
	g := newTestGenerator(t, newStubEmbedder(8), source, nil)

	resp, err := g.GeneratePlaylist(context.Background(), domain.PlaylistRequest{
		Emotions:   []string{"happy"},
		NumResults: 3,
	})
	if err != nil {
		t.Fatalf("expected graceful fallback, got %v", err)
	}
	if len(resp.Playlist) != 3 {
		t.Fatalf("expected 3 mock tracks, got %d", len(resp.Playlist))
	}
	if resp.Playlist[0].Title != "Bohemian Rhapsody" {
		t.Fatalf("expected mock list, got %q", resp.Playlist[0].Title)
	}
}

func TestExpandSeeds_ArtistExpansion(t *testing.T) {
	source := &fakeSource{
		available: true,
		artistTracks: []domain.Track{
			{Title: "Track One", Artist: "The Band", SpotifyID: "t1"},
			{Title: "Track Two", Artist: "The Band", SpotifyID: "t2"},
		},
	}
	g := newTestGenerator(t, newStubEmbedder(8), source, nil)

	seeds := g.expandSeeds(context.Background(), domain.PlaylistRequest{
		Songs:   []domain.SongSeed{{Name: "Existing", Artist: "Someone"}},
		Artists: []domain.ArtistSeed{{Name: "The Band"}},
	})

	if len(seeds) != 3 {
		t.Fatalf("expected 3 seeds, got %d", len(seeds))
	}
	if seeds[1].Name != "Track One" || seeds[2].Name != "Track Two" {
		t.Fatalf("artist tracks not folded in: %v", seeds)
	}
	if len(source.expandedArtists) != 1 || source.expandedArtists[0] != "The Band" {
		t.Fatalf("expected one expansion call, got %v", source.expandedArtists)
	}
}

func TestExpandSeeds_ExpansionFailureDegrades(t *testing.T) {
	source := &fakeSource{available: true, artistErr: errors.New("nope")}
	g := newTestGenerator(t, newStubEmbedder(8), source, nil)

	seeds := g.expandSeeds(context.Background(), domain.PlaylistRequest{
		Artists: []domain.ArtistSeed{{Name: "Ghost Band"}},
	})
	if len(seeds) != 1 || seeds[0].Artist != "Ghost Band" {
		t.Fatalf("expected name-only seed, got %v", seeds)
	}
}
