package services

import (
	"context"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/metrics"
	"github.com/treble-labs/emorec/internal/vector"
)

// mockSongs is the deterministic last-resort candidate list, scored
// 0.9 - 0.05i in order.
var mockSongs = []domain.Track{
	{Title: "Bohemian Rhapsody", Artist: "Queen"},
	{Title: "Imagine", Artist: "John Lennon"},
	{Title: "Hotel California", Artist: "Eagles"},
	{Title: "Stairway to Heaven", Artist: "Led Zeppelin"},
	{Title: "Hey Jude", Artist: "The Beatles"},
	{Title: "Smells Like Teen Spirit", Artist: "Nirvana"},
	{Title: "Billie Jean", Artist: "Michael Jackson"},
	{Title: "Sweet Child O' Mine", Artist: "Guns N' Roses"},
	{Title: "Come Together", Artist: "The Beatles"},
	{Title: "Purple Haze", Artist: "Jimi Hendrix"},
}

// fallbackCandidates serves a candidate set without the live provider: the
// local store when configured, else the fixed mock list. It never fails.
func (g *Generator) fallbackCandidates(ctx context.Context, combined vector.Vector) []domain.Track {
	if g.store != nil {
		stored, err := g.store.AllTracks(ctx)
		if err == nil && len(stored) > 0 {
			metrics.PlaylistFallbacks.WithLabelValues("store").Inc()
			g.log.Info().Int("tracks", len(stored)).Msg("serving candidates from local store")
			return storeCandidates(stored, combined)
		}
		if err != nil {
			g.log.Warn().Err(err).Msg("local store unavailable")
		}
	}

	metrics.PlaylistFallbacks.WithLabelValues("mock").Inc()
	g.log.Warn().Msg("no candidate source available, serving mock results")
	return mockCandidates()
}

// storeCandidates scores stored tracks against the combined embedding using
// their precomputed vectors.
func storeCandidates(stored []ports.StoredTrack, combined vector.Vector) []domain.Track {
	out := make([]domain.Track, len(stored))
	for i, s := range stored {
		t := s.Track
		t.SimilarityScore = vector.Similarity(combined, s.Embedding)
		out[i] = t
	}
	return out
}

func mockCandidates() []domain.Track {
	out := make([]domain.Track, len(mockSongs))
	for i, t := range mockSongs {
		t.SimilarityScore = 0.9 - float64(i)*0.05
		out[i] = t
	}
	return out
}
