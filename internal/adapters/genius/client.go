// Package genius implements the lyrics collaborator against the Genius API.
// Song metadata comes from the search endpoint; lyric text is extracted from
// the public song page. A missing access token degrades the adapter to
// unavailable instead of failing construction.
package genius

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/metrics"
)

const (
	defaultBaseURL = "https://api.genius.com"
	defaultTimeout = 3 * time.Second

	lyricsCacheSize = 512
	lyricsCacheTTL  = 30 * time.Minute
)

// Config carries the adapter's credential and overrides.
type Config struct {
	AccessToken string
	BaseURL     string
	Timeout     time.Duration

	// HTTPClient overrides the underlying transport, for tests.
	HTTPClient *http.Client
}

// Client resolves song lyrics through Genius and implements
// ports.LyricsSource.
type Client struct {
	http      *resty.Client
	available bool
	cache     *expirable.LRU[string, ports.SongLyrics]
	log       zerolog.Logger
}

var _ ports.LyricsSource = (*Client)(nil)

// NewClient constructs the adapter.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	var rc *resty.Client
	if cfg.HTTPClient != nil {
		rc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.AccessToken).
		SetRetryCount(1)

	return &Client{
		http:      rc,
		available: cfg.AccessToken != "" || cfg.HTTPClient != nil,
		cache:     expirable.NewLRU[string, ports.SongLyrics](lyricsCacheSize, nil, lyricsCacheTTL),
		log:       log.With().Str("component", "genius").Logger(),
	}
}

// Available reports whether an access token (or a test client) is configured.
func (c *Client) Available() bool {
	return c != nil && c.available
}

type geniusSong struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	PrimaryArtist struct {
		Name string `json:"name"`
	} `json:"primary_artist"`
}

type searchResponse struct {
	Response struct {
		Hits []struct {
			Result geniusSong `json:"result"`
		} `json:"hits"`
	} `json:"response"`
}

// FetchLyrics finds the song on Genius and extracts its lyric text. A song
// with no extractable lyrics still resolves, with empty Text, so callers can
// distinguish "no lyrics" from "not on Genius".
func (c *Client) FetchLyrics(ctx context.Context, title, artist string) (ports.SongLyrics, error) {
	if !c.Available() {
		return ports.SongLyrics{}, ports.ErrProviderUnavailable
	}

	cacheKey := strings.ToLower(title) + "|" + strings.ToLower(artist)
	if cached, ok := c.cache.Get(cacheKey); ok {
		metrics.ProviderCalls.WithLabelValues("genius", "cache").Inc()
		return cached, nil
	}

	song, err := c.searchSong(ctx, title, artist)
	if err != nil {
		return ports.SongLyrics{}, err
	}

	text, err := c.fetchLyricsPage(ctx, song.URL)
	if err != nil {
		c.log.Debug().Err(err).Str("url", song.URL).Msg("lyrics page fetch failed")
		text = ""
	}

	result := ports.SongLyrics{
		Text:      text,
		URL:       song.URL,
		SongID:    song.ID,
		WordCount: len(strings.Fields(text)),
	}
	c.cache.Add(cacheKey, result)
	return result, nil
}

// searchSong queries the search endpoint and picks the hit whose primary
// artist matches; with no artist match the first hit wins, mirroring how
// Genius itself ranks results.
func (c *Client) searchSong(ctx context.Context, title, artist string) (geniusSong, error) {
	var body searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", strings.TrimSpace(title+" "+artist)).
		SetResult(&body).
		Get("/search")
	if err != nil {
		metrics.ProviderCalls.WithLabelValues("genius", "error").Inc()
		return geniusSong{}, fmt.Errorf("genius adapter: search: %w", err)
	}
	if resp.IsError() {
		metrics.ProviderCalls.WithLabelValues("genius", "error").Inc()
		return geniusSong{}, fmt.Errorf("genius adapter: search status %d", resp.StatusCode())
	}

	hits := body.Response.Hits
	if len(hits) == 0 {
		metrics.ProviderCalls.WithLabelValues("genius", "not_found").Inc()
		return geniusSong{}, fmt.Errorf("genius adapter: %q by %q: %w", title, artist, domain.ErrNotFound)
	}
	metrics.ProviderCalls.WithLabelValues("genius", "ok").Inc()

	wantArtist := strings.ToLower(primaryName(artist))
	for _, hit := range hits {
		got := strings.ToLower(hit.Result.PrimaryArtist.Name)
		if wantArtist != "" && (strings.Contains(got, wantArtist) || strings.Contains(wantArtist, got)) {
			return hit.Result, nil
		}
	}
	return hits[0].Result, nil
}

// primaryName keeps the first artist of a comma-joined credit line.
func primaryName(artist string) string {
	if i := strings.Index(artist, ","); i >= 0 {
		artist = artist[:i]
	}
	return strings.TrimSpace(artist)
}

func (c *Client) fetchLyricsPage(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", fmt.Errorf("genius adapter: song has no page URL")
	}

	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("genius adapter: fetch page: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("genius adapter: page status %d", resp.StatusCode())
	}

	return extractLyrics(string(resp.Body())), nil
}
