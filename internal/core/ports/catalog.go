package ports

import (
	"context"
	"errors"

	"github.com/treble-labs/emorec/internal/core/domain"
)

// ErrProviderUnavailable indicates a collaborator lacks credentials or is
// unreachable. It is never fatal: every consumer has a defined degraded
// behavior.
var ErrProviderUnavailable = errors.New("provider unavailable")

// TrackSource is the external retrieval collaborator (Spotify in
// production). All results arrive already normalized to domain.Track.
type TrackSource interface {
	// Available reports whether the provider is configured and usable.
	Available() bool

	// SearchTracks runs one provider search query (free text plus
	// genre:/year: filters) and returns up to limit tracks.
	SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error)

	// TrackByID resolves a provider track ID. Returns domain.ErrNotFound
	// for unknown IDs.
	TrackByID(ctx context.Context, id string) (domain.Track, error)

	// ArtistTracks returns an artist's tracks including collaborations,
	// resolved by name (or provider ID when given).
	ArtistTracks(ctx context.Context, artistName, artistID string, limit int) ([]domain.Track, error)

	// GenreSeeds lists the provider's available genre seed vocabulary.
	GenreSeeds(ctx context.Context) ([]string, error)
}
