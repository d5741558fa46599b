package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/vector"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := NewAdapter(filepath.Join(t.TempDir(), "tracks.db"))
	if err != nil {
		t.Fatalf("open adapter: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func TestAdapter_SaveAndAllTracks(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	seed := []ports.StoredTrack{
		{
			Track: domain.Track{
				Title:      "Weightless",
				Artist:     "Marconi Union",
				SpotifyID:  "sp-1",
				Album:      "Weightless",
				PreviewURL: "https://p.test/1",
			},
			Embedding: vector.Vector{0.1, -0.2, 0.3},
		},
		{
			Track:     domain.Track{Title: "Breathe", Artist: "Telepopmusik", SpotifyID: "sp-2"},
			Embedding: vector.Vector{0.5, 0.5, 0},
		},
	}
	if err := a.SaveTracks(ctx, seed); err != nil {
		t.Fatalf("save tracks: %v", err)
	}

	got, err := a.AllTracks(ctx)
	if err != nil {
		t.Fatalf("load tracks: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("tracks: got %d, want 2", len(got))
	}

	// ordered by song_name
	if got[0].Track.Title != "Breathe" || got[1].Track.Title != "Weightless" {
		t.Fatalf("unexpected order: %q, %q", got[0].Track.Title, got[1].Track.Title)
	}
	w := got[1]
	if w.Track.SpotifyID != "sp-1" || w.Track.Album != "Weightless" || w.Track.PreviewURL != "https://p.test/1" {
		t.Fatalf("unexpected track: %+v", w.Track)
	}
	if len(w.Embedding) != 3 || w.Embedding[1] != -0.2 {
		t.Fatalf("unexpected embedding: %v", w.Embedding)
	}
}

func TestAdapter_SaveTracksUpserts(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	first := []ports.StoredTrack{{
		Track:     domain.Track{Title: "Song", Artist: "Artist", SpotifyID: "old"},
		Embedding: vector.Vector{1, 0},
	}}
	if err := a.SaveTracks(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := []ports.StoredTrack{{
		Track:     domain.Track{Title: "Song", Artist: "Artist", SpotifyID: "new"},
		Embedding: vector.Vector{0, 1},
	}}
	if err := a.SaveTracks(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := a.AllTracks(ctx)
	if err != nil {
		t.Fatalf("load tracks: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("tracks: got %d, want 1", len(got))
	}
	if got[0].Track.SpotifyID != "new" || got[0].Embedding[1] != 1 {
		t.Fatalf("upsert did not replace: %+v", got[0])
	}
}

func TestAdapter_AllTracksSkipsUndecodableRows(t *testing.T) {
	a := newTestAdapter(t)
	ctx := context.Background()

	if err := a.SaveTracks(ctx, []ports.StoredTrack{{
		Track:     domain.Track{Title: "Good", Artist: "A"},
		Embedding: vector.Vector{0.5},
	}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := a.db.ExecContext(ctx, `
		INSERT INTO tracks (song_name, artist, spotify_id, embedding)
		VALUES ('Bad', 'B', '', '[0.1, 0.2]')
	`); err != nil {
		t.Fatalf("insert raw row: %v", err)
	}

	got, err := a.AllTracks(ctx)
	if err != nil {
		t.Fatalf("load tracks: %v", err)
	}
	if len(got) != 1 || got[0].Track.Title != "Good" {
		t.Fatalf("expected only decodable row, got %+v", got)
	}
}

func TestDecodeEmbedding(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    vector.Vector
		wantErr bool
	}{
		{name: "round trip", input: encodeEmbedding(vector.Vector{0.25, -1, 3e-5}), want: vector.Vector{0.25, -1, 3e-5}},
		{name: "wrong version", input: "v9:1,2", wantErr: true},
		{name: "no version", input: "1,2,3", wantErr: true},
		{name: "empty payload", input: "v1:", wantErr: true},
		{name: "garbage component", input: "v1:1,x,3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeEmbedding(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err: got %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len: got %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("component %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
