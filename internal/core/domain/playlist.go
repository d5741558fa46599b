package domain

import "errors"

// ErrDuplicateTrack indicates a track with an identity key already present in
// the playlist.
var ErrDuplicateTrack = errors.New("domain: duplicate track")

// Playlist is an ordered, deduplicated sequence of ranked tracks. It is
// produced fresh per request and never persisted.
type Playlist struct {
	Tracks []Track
	keys   map[string]struct{}
}

// NewPlaylist returns an empty playlist with capacity hint n.
func NewPlaylist(n int) *Playlist {
	if n < 0 {
		n = 0
	}
	return &Playlist{
		Tracks: make([]Track, 0, n),
		keys:   make(map[string]struct{}, n),
	}
}

// AddTrack appends a track while preserving the unique-identity invariant.
// A second track with the same Key returns ErrDuplicateTrack.
func (p *Playlist) AddTrack(t Track) error {
	key := t.Key()
	if _, seen := p.keys[key]; seen {
		return ErrDuplicateTrack
	}
	p.keys[key] = struct{}{}
	p.Tracks = append(p.Tracks, t)
	return nil
}

// Contains reports whether a track with the same identity key was added.
func (p *Playlist) Contains(t Track) bool {
	_, seen := p.keys[t.Key()]
	return seen
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.Tracks)
}

// ArtistCounts returns the number of tracks per primary artist.
func (p *Playlist) ArtistCounts() map[string]int {
	counts := make(map[string]int, len(p.Tracks))
	for _, t := range p.Tracks {
		counts[t.PrimaryArtist()]++
	}
	return counts
}
