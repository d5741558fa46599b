package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/treble-labs/emorec/internal/vector"
)

// ErrEncoding indicates the embedding backend could not encode text. There is
// no meaningful fallback embedding, so this propagates as an internal error.
var ErrEncoding = errors.New("encoding failed")

// EncodingError carries the offending text fragment for diagnostics.
type EncodingError struct {
	Text string
	Err  error
}

func (e *EncodingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("encoding failed for %q", e.Text)
	}
	return fmt.Sprintf("encoding failed for %q: %v", e.Text, e.Err)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Embedder turns text into fixed-length vectors. Implementations must be
// deterministic for identical trimmed input and reject empty text with an
// EncodingError.
type Embedder interface {
	Encode(ctx context.Context, text string) (vector.Vector, error)
	EncodeBatch(ctx context.Context, texts []string) ([]vector.Vector, error)
	Dimension() int
}

// SongText renders the templated phrase used to embed a track, so artist
// identity is represented alongside the title.
func SongText(name, artist string) string {
	if artist == "" {
		return name
	}
	return name + " by " + artist
}

// EncodeSong encodes the templated (name, artist) phrase.
func EncodeSong(ctx context.Context, e Embedder, name, artist string) (vector.Vector, error) {
	return e.Encode(ctx, SongText(name, artist))
}
