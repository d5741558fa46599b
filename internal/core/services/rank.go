package services

import (
	"context"
	"sort"
	"strings"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/vector"
)

const (
	literalTitlePenalty = 0.35
	popularityFloor     = 5
	popularityGain      = 0.15

	baseBlend    = 0.4
	emotionBlend = 0.6

	artistCap        = 2
	relaxedArtistCap = 3
)

// score attaches a similarity score to every candidate. The base score is
// embedding similarity against the combined query vector; titles that
// literally contain a requested emotion word are penalized, as are very
// popular tracks. When an emotion embedding is present the final score blends
// base and emotion similarity 0.4/0.6.
func (g *Generator) score(ctx context.Context, candidates []domain.Track, combined, emotionEmb vector.Vector, emotions []string) []domain.Track {
	if len(candidates) == 0 {
		return nil
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = ports.SongText(c.Title, c.Artist)
	}
	embeddings, err := g.embedder.EncodeBatch(ctx, texts)
	if err != nil {
		g.log.Error().Err(err).Msg("candidate encoding failed, keeping retrieval order")
		for i := range candidates {
			candidates[i].SimilarityScore = 0
		}
		return candidates
	}

	penaltyWords := literalTitleWords(emotions)

	scored := make([]domain.Track, len(candidates))
	for i, c := range candidates {
		base := vector.Similarity(combined, embeddings[i])

		penalty := 0.0
		if titleContainsAny(c.Title, penaltyWords) {
			penalty += literalTitlePenalty
		}
		if c.Popularity > popularityFloor {
			penalty += float64(c.Popularity-popularityFloor) / 100 * popularityGain
		}

		final := base
		if len(emotionEmb) > 0 {
			final = baseBlend*base + emotionBlend*vector.Similarity(emotionEmb, embeddings[i])
		}
		c.SimilarityScore = final - penalty
		scored[i] = c
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})
	return scored
}

func titleContainsAny(title string, words []string) bool {
	if len(words) == 0 {
		return false
	}
	lower := strings.ToLower(title)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// applyDiversity greedily selects from score-ordered tracks with a per-artist
// cap of 2, then relaxes the cap to 3 to fill remaining slots. Score order is
// preserved within each pass.
func applyDiversity(ranked []domain.Track, want int) []domain.Track {
	if want <= 0 || len(ranked) <= want {
		want = len(ranked)
	}

	out := make([]domain.Track, 0, want)
	counts := make(map[string]int)
	taken := make(map[string]struct{})

	for _, limit := range []int{artistCap, relaxedArtistCap} {
		for _, t := range ranked {
			if len(out) >= want {
				return out
			}
			key := t.Key()
			if _, dup := taken[key]; dup {
				continue
			}
			artist := t.PrimaryArtist()
			if counts[artist] >= limit {
				continue
			}
			counts[artist]++
			taken[key] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
