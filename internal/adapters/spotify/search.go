package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/metrics"
)

const maxSearchLimit = 50

// SearchTracks runs a track search and maps the results. Identical queries
// within the cache TTL are served from memory.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]domain.Track, error) {
	if !c.Available() {
		return nil, ports.ErrProviderUnavailable
	}
	if limit <= 0 || limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	cacheKey := normalizeSearchInput(query) + "|" + strconv.Itoa(limit)
	if tracks, ok := c.cache.Get(cacheKey); ok {
		metrics.ProviderCalls.WithLabelValues("spotify", "cache").Inc()
		return tracks, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	var body trackSearchResponse
	if err := c.getJSON(ctx, "/search", params, &body); err != nil {
		return nil, err
	}

	tracks := mapTracksToDomain(body.Tracks.Items)
	c.cache.Add(cacheKey, tracks)
	c.log.Debug().Str("query", query).Int("results", len(tracks)).Msg("track search")
	return tracks, nil
}

// TrackByID fetches a single track.
func (c *Client) TrackByID(ctx context.Context, id string) (domain.Track, error) {
	if !c.Available() {
		return domain.Track{}, ports.ErrProviderUnavailable
	}

	var body spotifyTrack
	err := c.getJSON(ctx, "/tracks/"+url.PathEscape(id), nil, &body)
	if err != nil {
		return domain.Track{}, err
	}
	if body.ID == "" {
		return domain.Track{}, domain.ErrNotFound
	}
	return mapTrackToDomain(body), nil
}

// ArtistTracks returns an artist's top tracks plus collaborations surfaced
// by an artist-scoped track search. When no artist ID is supplied the artist
// is resolved by name first.
func (c *Client) ArtistTracks(ctx context.Context, artistName, artistID string, limit int) ([]domain.Track, error) {
	if !c.Available() {
		return nil, ports.ErrProviderUnavailable
	}
	if limit <= 0 {
		limit = 10
	}

	if artistID == "" {
		id, err := c.resolveArtistID(ctx, artistName)
		if err != nil {
			return nil, err
		}
		artistID = id
	}

	var top topTracksResponse
	if err := c.getJSON(ctx, "/artists/"+url.PathEscape(artistID)+"/top-tracks", nil, &top); err != nil {
		return nil, err
	}

	merged := domain.NewPlaylist(limit * 2)
	for _, st := range top.Tracks {
		_ = merged.AddTrack(mapTrackToDomain(st))
	}

	// collaborations show up under the artist filter but not in top tracks
	params := url.Values{}
	params.Set("q", fmt.Sprintf("artist:%s", artistName))
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))
	var search trackSearchResponse
	if err := c.getJSON(ctx, "/search", params, &search); err == nil {
		for _, st := range search.Tracks.Items {
			_ = merged.AddTrack(mapTrackToDomain(st))
		}
	} else {
		c.log.Warn().Err(err).Str("artist", artistName).Msg("collaboration search failed")
	}

	tracks := merged.Tracks
	if len(tracks) > limit {
		tracks = tracks[:limit]
	}
	if len(tracks) == 0 {
		return nil, domain.ErrNotFound
	}
	return tracks, nil
}

// GenreSeeds lists the provider's recommendation genre seeds.
func (c *Client) GenreSeeds(ctx context.Context) ([]string, error) {
	if !c.Available() {
		return nil, ports.ErrProviderUnavailable
	}

	var body genreSeedsResponse
	if err := c.getJSON(ctx, "/recommendations/available-genre-seeds", nil, &body); err != nil {
		return nil, err
	}
	return body.Genres, nil
}

func (c *Client) resolveArtistID(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("type", "artist")
	params.Set("limit", "1")

	var body artistSearchResponse
	if err := c.getJSON(ctx, "/search", params, &body); err != nil {
		return "", err
	}
	if len(body.Artists.Items) == 0 {
		return "", fmt.Errorf("spotify adapter: artist %q: %w", name, domain.ErrNotFound)
	}
	return body.Artists.Items[0].ID, nil
}

// getJSON performs a GET with retry and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: build request: %w", err)
	}

	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		metrics.ProviderCalls.WithLabelValues("spotify", "error").Inc()
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.ProviderCalls.WithLabelValues("spotify", "not_found").Inc()
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		metrics.ProviderCalls.WithLabelValues("spotify", "error").Inc()
		return fmt.Errorf("spotify adapter: status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ProviderCalls.WithLabelValues("spotify", "error").Inc()
		return fmt.Errorf("spotify adapter: decode response: %w", err)
	}
	metrics.ProviderCalls.WithLabelValues("spotify", "ok").Inc()
	return nil
}
