// Package vector implements the fixed-length embedding vector math used by
// the recommendation pipeline: weighted combination, cosine similarity
// normalized to [0,1], and the statistics the visual mapper needs.
package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmpty indicates an operation was attempted over zero vectors.
var ErrEmpty = errors.New("vector: empty input")

// ErrDimensionMismatch indicates vectors of different lengths were mixed.
var ErrDimensionMismatch = errors.New("vector: dimension mismatch")

// Vector is an immutable fixed-length embedding. Operations return new
// vectors; callers must never mutate a Vector in place.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// IsZero reports whether every component is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// Norm returns the Euclidean norm of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Combine computes the weighted elementwise average of the given vectors.
// A nil weights slice means uniform weighting. Weights are normalized to sum
// to 1 before use; their sum must be positive.
func Combine(vectors []Vector, weights []float64) (Vector, error) {
	if len(vectors) == 0 {
		return nil, ErrEmpty
	}

	dim := len(vectors[0])
	for _, v := range vectors[1:] {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, dim, len(v))
		}
	}

	if weights == nil {
		weights = make([]float64, len(vectors))
		for i := range weights {
			weights[i] = 1
		}
	}
	if len(weights) != len(vectors) {
		return nil, fmt.Errorf("vector: %d weights for %d vectors", len(weights), len(vectors))
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return nil, errors.New("vector: weights must sum to a positive value")
	}

	out := make(Vector, dim)
	for i, v := range vectors {
		w := weights[i] / total
		for j, x := range v {
			out[j] += w * x
		}
	}
	return out, nil
}

// Mean averages the given vectors with uniform weights.
func Mean(vectors []Vector) (Vector, error) {
	return Combine(vectors, nil)
}

// Cosine returns the raw cosine similarity in [-1,1]. Zero vectors yield 0.0
// rather than an error: a degenerate embedding is a legitimate input, not a
// fault.
func Cosine(a, b Vector) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Similarity rescales cosine similarity to [0,1] via (s+1)/2. Zero vectors
// yield 0.0, not 0.5, matching the degenerate-input contract of Cosine.
func Similarity(a, b Vector) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return (Cosine(a, b) + 1) / 2
}

// BatchSimilarity computes Similarity of query against every row of matrix.
func BatchSimilarity(query Vector, matrix []Vector) []float64 {
	out := make([]float64, len(matrix))
	for i, row := range matrix {
		out[i] = Similarity(query, row)
	}
	return out
}

// MinMaxNormalize rescales v into [0,1]. A small epsilon guards the constant
// vector case where max == min.
func MinMaxNormalize(v Vector) Vector {
	if len(v) == 0 {
		return Vector{}
	}
	lo, hi := v[0], v[0]
	for _, x := range v[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	const eps = 1e-8
	span := hi - lo + eps
	out := make(Vector, len(v))
	for i, x := range v {
		out[i] = (x - lo) / span
	}
	return out
}

// SliceMean averages v[from:to), clamping the bounds to the vector length.
// An empty window yields 0.
func SliceMean(v Vector, from, to int) float64 {
	if from < 0 {
		from = 0
	}
	if to > len(v) {
		to = len(v)
	}
	if from >= to {
		return 0
	}
	var sum float64
	for _, x := range v[from:to] {
		sum += x
	}
	return sum / float64(to-from)
}

// MeanScalar returns the arithmetic mean of all components.
func MeanScalar(v Vector) float64 {
	return SliceMean(v, 0, len(v))
}

// StdDev returns the population standard deviation of the components.
func StdDev(v Vector) float64 {
	if len(v) == 0 {
		return 0
	}
	mean := MeanScalar(v)
	var sum float64
	for _, x := range v {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(v)))
}
