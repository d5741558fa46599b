package spotify

import (
	"strings"

	"github.com/treble-labs/emorec/internal/core/domain"
)

// mapTrackToDomain converts a raw Spotify track to a clean domain track.
func mapTrackToDomain(st spotifyTrack) domain.Track {
	var artistNames []string
	for _, a := range st.Artists {
		artistNames = append(artistNames, a.Name)
	}

	coverURL := ""
	if len(st.Album.Images) > 0 {
		coverURL = st.Album.Images[0].URL
	}

	return domain.Track{
		Title:       st.Name,
		Artist:      strings.Join(artistNames, ", "),
		SpotifyID:   st.ID,
		Album:       st.Album.Name,
		PreviewURL:  st.PreviewURL,
		ExternalURL: st.ExternalURLs.Spotify,
		DurationMs:  st.DurationMs,
		Popularity:  st.Popularity,
		AlbumImage:  coverURL,
	}
}

func mapTracksToDomain(items []spotifyTrack) []domain.Track {
	out := make([]domain.Track, 0, len(items))
	for _, st := range items {
		out = append(out, mapTrackToDomain(st))
	}
	return out
}
