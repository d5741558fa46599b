package ports

import (
	"context"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/vector"
)

// StoredTrack pairs a track's metadata with its precomputed embedding as read
// from the local fallback table.
type StoredTrack struct {
	Track     domain.Track
	Embedding vector.Vector
}

// TrackStore is the optional flat lookup table used for the no-external-API
// mode.
type TrackStore interface {
	AllTracks(ctx context.Context) ([]StoredTrack, error)
	Close() error
}
