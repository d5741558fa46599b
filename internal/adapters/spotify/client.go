// Package spotify implements the track retrieval collaborator against the
// Spotify Web API using the client-credentials flow. All lookups go through
// a retrying HTTP client and search results are served from a bounded
// in-memory cache.
package spotify

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
)

const (
	defaultBaseURL  = "https://api.spotify.com/v1"
	defaultTokenURL = "https://accounts.spotify.com/api/token" // #nosec G101 -- public endpoint, not a credential

	searchCacheSize = 256
	searchCacheTTL  = 10 * time.Minute
)

// Config carries the adapter's credentials and overrides. Empty credentials
// leave the adapter unavailable rather than failing construction.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string

	MaxRetries  int
	BaseBackoff time.Duration

	// HTTPClient overrides the token-managed client, for tests.
	HTTPClient *http.Client
}

// Client talks to the Spotify Web API and implements ports.TrackSource.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	available   bool
	maxRetries  int
	baseBackoff time.Duration
	cache       *expirable.LRU[string, []domain.Track]
	log         zerolog.Logger
}

var _ ports.TrackSource = (*Client)(nil)

// NewClient constructs the adapter. The OAuth token source is lazy: no
// network traffic happens until the first request.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	available := cfg.ClientID != "" && cfg.ClientSecret != ""

	httpClient := cfg.HTTPClient
	if httpClient == nil && available {
		creds := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
		}
		httpClient = creds.Client(context.Background())
		httpClient.Timeout = 10 * time.Second
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		available:   available || cfg.HTTPClient != nil,
		maxRetries:  cfg.MaxRetries,
		baseBackoff: cfg.BaseBackoff,
		cache:       expirable.NewLRU[string, []domain.Track](searchCacheSize, nil, searchCacheTTL),
		log:         log.With().Str("component", "spotify").Logger(),
	}
}

// Available reports whether credentials (or a test client) are configured.
func (c *Client) Available() bool {
	return c != nil && c.available && c.httpClient != nil
}
