// Package ollama implements the embedding provider against a local Ollama
// instance. Text is sent to the embeddings endpoint and the returned vector
// is used as-is; the model decides the dimension.
package ollama

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"

	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/vector"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "nomic-embed-text"
)

type Client struct {
	baseURL    string
	model      string
	dimension  atomic.Int64
	httpClient *http.Client
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float64 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

// NewClient builds an embeddings client. Empty baseURL or model select the
// local defaults.
func NewClient(baseURL, model string) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Encode embeds one text. Empty input is rejected with an EncodingError
// before any network call.
func (c *Client) Encode(ctx context.Context, text string) (vector.Vector, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, &ports.EncodingError{Text: text}
	}

	payload := embedRequest{Model: c.model, Prompt: trimmed}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ollama: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ollama: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ports.EncodingError{Text: trimmed, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ports.EncodingError{Text: trimmed, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var parsed embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("ollama: decode response: %w", err)
	}
	if parsed.Error != "" {
		return nil, &ports.EncodingError{Text: trimmed, Err: fmt.Errorf("%s", parsed.Error)}
	}
	if len(parsed.Embedding) == 0 {
		return nil, &ports.EncodingError{Text: trimmed, Err: fmt.Errorf("empty embedding")}
	}

	c.dimension.CompareAndSwap(0, int64(len(parsed.Embedding)))
	return vector.Vector(parsed.Embedding), nil
}

// EncodeBatch embeds texts sequentially; the embeddings endpoint takes one
// prompt per call. Any failure aborts the batch.
func (c *Client) EncodeBatch(ctx context.Context, texts []string) ([]vector.Vector, error) {
	out := make([]vector.Vector, len(texts))
	for i, t := range texts {
		v, err := c.Encode(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Dimension reports the model's vector width, or 0 before the first
// successful Encode.
func (c *Client) Dimension() int {
	return int(c.dimension.Load())
}
