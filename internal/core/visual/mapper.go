// Package visual maps embedding vectors to rendering parameters for the
// mood collage collaborator. Rendering itself happens elsewhere; this package
// only derives the parameter record.
package visual

import (
	"math"
	"strings"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/vector"
)

// FromEmbedding derives visual parameters from an embedding. The vector is
// min-max normalized, then contiguous slices of the first 40 dimensions feed
// hue, saturation, value and blur. An optional emotion phrase shifts the
// palette toward that emotion's character.
func FromEmbedding(emb vector.Vector, emotion string) (domain.VisualParams, error) {
	if len(emb) == 0 {
		return domain.VisualParams{}, vector.ErrEmpty
	}

	norm := vector.MinMaxNormalize(emb)
	complexity := vector.StdDev(norm)

	deviation := 0.0
	for _, x := range norm {
		deviation += math.Abs(x - 0.5)
	}
	deviation /= float64(len(norm))

	params := domain.VisualParams{
		PrimaryHue: vector.SliceMean(norm, 0, 10) * 360,
		Saturation: vector.SliceMean(norm, 10, 20)*0.7 + 0.3,
		Value:      vector.SliceMean(norm, 20, 30)*0.5 + 0.5,
		Complexity: complexity,
		Symmetry:   1 - deviation,
		BlurAmount: vector.SliceMean(norm, 30, 40) * 5,
		NumShapes:  int(10 + complexity*40),
		Emotion:    emotion,
	}
	if emotion != "" {
		params = adjustForEmotion(params, emotion)
	}
	return params, nil
}

// adjustForEmotion nudges the parameters toward a recognizable look for
// broad emotion categories, matched by substring.
func adjustForEmotion(p domain.VisualParams, emotion string) domain.VisualParams {
	lower := strings.ToLower(emotion)

	switch {
	case strings.Contains(lower, "happy") || strings.Contains(lower, "joy"):
		p.Saturation = math.Max(p.Saturation, 0.7)
		p.Value = math.Max(p.Value, 0.8)
		p.PrimaryHue = math.Mod(p.PrimaryHue+45, 360)

	case strings.Contains(lower, "sad") || strings.Contains(lower, "melanchol"):
		p.Saturation = math.Min(p.Saturation, 0.5)
		p.Value = math.Min(p.Value, 0.6)
		p.PrimaryHue = 210

	case strings.Contains(lower, "energetic") || strings.Contains(lower, "hyper"):
		p.Complexity = math.Max(p.Complexity, 0.7)
		if p.NumShapes < 40 {
			p.NumShapes = 40
		}
		p.Saturation = math.Max(p.Saturation, 0.8)

	case strings.Contains(lower, "calm") || strings.Contains(lower, "peaceful"):
		p.Complexity = math.Min(p.Complexity, 0.4)
		p.Saturation = math.Min(p.Saturation, 0.6)
		p.BlurAmount = math.Max(p.BlurAmount, 3)

	case strings.Contains(lower, "angry") || strings.Contains(lower, "rage"):
		p.PrimaryHue = 0
		p.Saturation = math.Max(p.Saturation, 0.8)
		p.Complexity = math.Max(p.Complexity, 0.6)
	}
	return p
}
