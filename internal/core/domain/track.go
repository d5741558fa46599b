package domain

import "strings"

// Track is a candidate track normalized from the retrieval provider. The
// base metadata is treated as read-only after construction; only the scoring
// fields are attached during ranking.
type Track struct {
	Title       string `json:"song_name"`
	Artist      string `json:"artist"`
	SpotifyID   string `json:"spotify_id,omitempty"`
	Album       string `json:"album,omitempty"`
	PreviewURL  string `json:"preview_url,omitempty"`
	ExternalURL string `json:"external_url,omitempty"`
	DurationMs  int    `json:"duration_ms,omitempty"`
	Popularity  int    `json:"popularity,omitempty"`
	AlbumImage  string `json:"album_image,omitempty"`

	// Scoring fields, populated by the ranking engine.
	SimilarityScore float64  `json:"similarity_score"`
	LyricsEmotion   string   `json:"lyrics_emotion,omitempty"`
	LyricsScore     *float64 `json:"lyrics_score,omitempty"`
	GeniusURL       string   `json:"genius_url,omitempty"`
}

// Key returns the track's identity for deduplication: the Spotify ID when
// present, else the case-folded (title, artist) pair.
func (t Track) Key() string {
	if t.SpotifyID != "" {
		return t.SpotifyID
	}
	return strings.ToLower(strings.TrimSpace(t.Title)) + "|" + strings.ToLower(strings.TrimSpace(t.Artist))
}

// PrimaryArtist returns the first listed artist, used for diversity capping
// so a collaboration counts against its lead artist.
func (t Track) PrimaryArtist() string {
	name := t.Artist
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	return strings.ToLower(strings.TrimSpace(name))
}
