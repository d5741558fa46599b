package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Result count bounds accepted by the playlist pipeline.
const (
	MinResults = 1
	MaxResults = 50
)

// ValidationError is returned for caller mistakes and maps to a 4xx at the
// HTTP boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "domain: " + e.Reason
}

// ErrValidation lets callers detect validation failures with errors.Is.
var ErrValidation = errors.New("domain: invalid request")

// Is makes any ValidationError match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// SongSeed is a caller-supplied (song, artist) pair.
type SongSeed struct {
	Name      string `json:"song_name"`
	Artist    string `json:"artist"`
	SpotifyID string `json:"spotify_id,omitempty"`
}

// ArtistSeed is a caller-supplied artist.
type ArtistSeed struct {
	Name      string `json:"artist_name"`
	SpotifyID string `json:"spotify_id,omitempty"`
}

// PlaylistRequest carries everything the ranking engine needs for one run.
type PlaylistRequest struct {
	Songs            []SongSeed   `json:"songs,omitempty"`
	Artists          []ArtistSeed `json:"artists,omitempty"`
	Emotions         []string     `json:"emotion,omitempty"`
	NumResults       int          `json:"num_results"`
	EnrichWithLyrics bool         `json:"enrich_with_lyrics"`
}

// Validate enforces the request contract: at least one of songs, artists or
// emotions must be present, emotion phrases must be non-blank, and the result
// count must fall within [MinResults, MaxResults]. A zero NumResults is
// defaulted to 10 rather than rejected.
func (r *PlaylistRequest) Validate() error {
	if len(r.Songs) == 0 && len(r.Artists) == 0 && len(r.Emotions) == 0 {
		return &ValidationError{Reason: "must provide songs, artists, or emotion"}
	}
	for _, e := range r.Emotions {
		if strings.TrimSpace(e) == "" {
			return &ValidationError{Reason: "emotion phrases must not be blank"}
		}
	}
	for _, s := range r.Songs {
		if strings.TrimSpace(s.Name) == "" {
			return &ValidationError{Reason: "song seeds require a song_name"}
		}
	}
	for _, a := range r.Artists {
		if strings.TrimSpace(a.Name) == "" {
			return &ValidationError{Reason: "artist seeds require an artist_name"}
		}
	}
	if r.NumResults == 0 {
		r.NumResults = 10
	}
	if r.NumResults < MinResults || r.NumResults > MaxResults {
		return &ValidationError{Reason: fmt.Sprintf("num_results must be between %d and %d", MinResults, MaxResults)}
	}
	return nil
}

// PlaylistResponse is the ranked output plus the debug extras the original
// response shape carried.
type PlaylistResponse struct {
	Playlist          []Track        `json:"playlist"`
	EmotionFeatures   FeatureRanges  `json:"emotion_features,omitempty"`
	CombinedEmbedding []float64      `json:"combined_embedding,omitempty"`
}
