package ports

import "context"

// SongLyrics is the lyrics provider's answer for one track.
type SongLyrics struct {
	Text      string
	URL       string
	SongID    int64
	WordCount int
}

// LyricsSource is the external lyrics collaborator (Genius in production).
// Absence of an access credential degrades the whole component to a no-op:
// Available() reports false and FetchLyrics returns ErrProviderUnavailable.
type LyricsSource interface {
	Available() bool
	FetchLyrics(ctx context.Context, title, artist string) (SongLyrics, error)
}
