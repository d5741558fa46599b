package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
)

func newTestClient(ts *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:     ts.URL,
		HTTPClient:  ts.Client(),
		MaxRetries:  1,
		BaseBackoff: time.Millisecond,
	}, zerolog.Nop())
}

const searchBody = `{
	"tracks": {
		"items": [
			{
				"id": "track-1",
				"name": "Blinding Lights",
				"artists": [{"id": "a1", "name": "The Weeknd"}],
				"album": {"name": "After Hours", "images": [{"url": "https://img/cover.jpg"}]},
				"duration_ms": 200040,
				"popularity": 92,
				"preview_url": "https://p.scdn.co/preview",
				"external_urls": {"spotify": "https://open.spotify.com/track/track-1"}
			}
		]
	}
}`

func TestClientSearchTracks(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/search" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "track" {
			t.Fatalf("type param: got %q, want track", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	tracks, err := client.SearchTracks(context.Background(), "Blinding Lights", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("tracks: got %d, want 1", len(tracks))
	}

	got := tracks[0]
	if got.Title != "Blinding Lights" {
		t.Errorf("title: got %q", got.Title)
	}
	if got.Artist != "The Weeknd" {
		t.Errorf("artist: got %q", got.Artist)
	}
	if got.SpotifyID != "track-1" {
		t.Errorf("spotify id: got %q", got.SpotifyID)
	}
	if got.Album != "After Hours" {
		t.Errorf("album: got %q", got.Album)
	}
	if got.AlbumImage != "https://img/cover.jpg" {
		t.Errorf("album image: got %q", got.AlbumImage)
	}
	if got.Popularity != 92 {
		t.Errorf("popularity: got %d", got.Popularity)
	}
	if hits != 1 {
		t.Fatalf("server hits: got %d, want 1", hits)
	}
}

func TestClientSearchTracksServesCache(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	if _, err := client.SearchTracks(context.Background(), "Blinding Lights (Remastered)", 10); err != nil {
		t.Fatalf("first search: %v", err)
	}
	// normalized form shares the cache entry with the first query
	tracks, err := client.SearchTracks(context.Background(), "blinding lights", 10)
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("tracks: got %d, want 1", len(tracks))
	}
	if hits != 1 {
		t.Fatalf("server hits: got %d, want 1 (cache miss)", hits)
	}

	// a different limit is a different entry
	if _, err := client.SearchTracks(context.Background(), "blinding lights", 5); err != nil {
		t.Fatalf("third search: %v", err)
	}
	if hits != 2 {
		t.Fatalf("server hits: got %d, want 2", hits)
	}
}

func TestClientUnavailableWithoutCredentials(t *testing.T) {
	client := NewClient(Config{}, zerolog.Nop())
	if client.Available() {
		t.Fatal("expected client without credentials to be unavailable")
	}

	if _, err := client.SearchTracks(context.Background(), "anything", 5); !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("SearchTracks: got %v, want ErrProviderUnavailable", err)
	}
	if _, err := client.TrackByID(context.Background(), "id"); !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("TrackByID: got %v, want ErrProviderUnavailable", err)
	}
	if _, err := client.GenreSeeds(context.Background()); !errors.Is(err, ports.ErrProviderUnavailable) {
		t.Fatalf("GenreSeeds: got %v, want ErrProviderUnavailable", err)
	}
}

func TestClientTrackByID(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tracks/track-1":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "track-1",
				"name": "Clair de Lune",
				"artists": [{"id": "a1", "name": "Claude Debussy"}],
				"album": {"name": "Suite bergamasque"},
				"popularity": 70
			}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := newTestClient(ts)

	track, err := client.TrackByID(context.Background(), "track-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if track.Title != "Clair de Lune" || track.Artist != "Claude Debussy" {
		t.Fatalf("unexpected track: %+v", track)
	}

	if _, err := client.TrackByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing track: got %v, want ErrNotFound", err)
	}
}

func TestClientArtistTracksMergesTopAndCollaborations(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/artists/artist-9/top-tracks":
			_, _ = w.Write([]byte(`{"tracks": [
				{"id": "t1", "name": "Solo Hit", "artists": [{"id": "artist-9", "name": "Nova"}], "album": {"name": "Alpha"}},
				{"id": "t2", "name": "Second Hit", "artists": [{"id": "artist-9", "name": "Nova"}], "album": {"name": "Alpha"}}
			]}`))
		case "/search":
			if got := r.URL.Query().Get("q"); got != "artist:Nova" {
				t.Fatalf("search query: got %q", got)
			}
			_, _ = w.Write([]byte(`{"tracks": {"items": [
				{"id": "t1", "name": "Solo Hit", "artists": [{"id": "artist-9", "name": "Nova"}], "album": {"name": "Alpha"}},
				{"id": "t3", "name": "Duet", "artists": [{"id": "artist-9", "name": "Nova"}, {"id": "a2", "name": "Luna"}], "album": {"name": "Beta"}}
			]}}`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := newTestClient(ts)
	tracks, err := client.ArtistTracks(context.Background(), "Nova", "artist-9", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tracks) != 3 {
		t.Fatalf("tracks: got %d, want 3 (duplicate collapsed)", len(tracks))
	}
	if tracks[2].Artist != "Nova, Luna" {
		t.Fatalf("collaboration artist: got %q", tracks[2].Artist)
	}
}

func TestClientArtistTracksResolvesArtistByName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/search" && r.URL.Query().Get("type") == "artist":
			_, _ = w.Write([]byte(`{"artists": {"items": [{"id": "artist-9", "name": "Nova"}]}}`))
		case r.URL.Path == "/artists/artist-9/top-tracks":
			_, _ = w.Write([]byte(`{"tracks": [
				{"id": "t1", "name": "Solo Hit", "artists": [{"id": "artist-9", "name": "Nova"}], "album": {"name": "Alpha"}}
			]}`))
		case r.URL.Path == "/search":
			_, _ = w.Write([]byte(`{"tracks": {"items": []}}`))
		default:
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := newTestClient(ts)
	tracks, err := client.ArtistTracks(context.Background(), "Nova", "", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracks) != 1 || tracks[0].SpotifyID != "t1" {
		t.Fatalf("unexpected tracks: %+v", tracks)
	}
}

func TestClientArtistTracksUnknownArtist(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"artists": {"items": []}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	if _, err := client.ArtistTracks(context.Background(), "Nobody", "", 5); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestClientGenreSeeds(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommendations/available-genre-seeds" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"genres": ["acoustic", "ambient", "pop"]}`))
	}))
	defer ts.Close()

	client := newTestClient(ts)
	genres, err := client.GenreSeeds(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(genres) != 3 || genres[0] != "acoustic" {
		t.Fatalf("unexpected genres: %v", genres)
	}
}
