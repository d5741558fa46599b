// Package services hosts the playlist generation pipeline: seed expansion,
// embedding combination, candidate retrieval, scoring and diversity.
package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/emotion"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/core/query"
	"github.com/treble-labs/emorec/internal/vector"
	"github.com/treble-labs/emorec/internal/worker"
)

const (
	songWeight    = 0.7
	emotionWeight = 0.3

	// queries issued per request and candidates fetched per query
	maxQueries     = 8
	perQueryLimit  = 20
	tracksPerSeed  = 5
	debugEmbedDims = 10
)

// Generator is the ranking and diversity engine. source, store and lyrics
// are optional; the pipeline degrades through store and mock fallbacks when
// the retrieval provider is missing or failing.
type Generator struct {
	embedder ports.Embedder
	emotions *emotion.Engine
	queries  *query.Synthesizer
	source   ports.TrackSource
	store    ports.TrackStore
	lyrics   *Enricher
	fanout   worker.Options
	log      zerolog.Logger
}

// NewGenerator wires the pipeline. Pass nil for source, store or lyrics when
// that collaborator is not configured.
func NewGenerator(
	embedder ports.Embedder,
	emotions *emotion.Engine,
	queries *query.Synthesizer,
	source ports.TrackSource,
	store ports.TrackStore,
	lyrics *Enricher,
	log zerolog.Logger,
) *Generator {
	return &Generator{
		embedder: embedder,
		emotions: emotions,
		queries:  queries,
		source:   source,
		store:    store,
		lyrics:   lyrics,
		log:      log.With().Str("component", "generator").Logger(),
	}
}

// SetFanout overrides the retrieval fan-out tuning. Zero fields keep the
// worker defaults.
func (g *Generator) SetFanout(opts worker.Options) {
	g.fanout = opts
}

// GeneratePlaylist runs the full pipeline for one request. It returns a
// non-empty playlist whenever the request validates: provider failures fall
// back to the local store and finally to a deterministic mock list.
func (g *Generator) GeneratePlaylist(ctx context.Context, req domain.PlaylistRequest) (domain.PlaylistResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.PlaylistResponse{}, err
	}

	seeds := g.expandSeeds(ctx, req)

	combined, emotionEmb, ranges, err := g.combinedEmbedding(ctx, seeds, req.Emotions)
	if err != nil {
		return domain.PlaylistResponse{}, err
	}

	candidates, preScored := g.retrieve(ctx, seeds, req.Emotions, combined)

	scored := candidates
	if preScored {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].SimilarityScore > scored[j].SimilarityScore
		})
	} else {
		scored = g.score(ctx, candidates, combined, emotionEmb, req.Emotions)
	}
	ranked := applyDiversity(scored, req.NumResults*rerankPoolFactor)

	if req.EnrichWithLyrics && g.lyrics != nil && g.lyrics.Available() && len(req.Emotions) > 0 {
		ranked = g.lyrics.Rerank(ctx, ranked, req.Emotions[0], req.NumResults)
	}
	if len(ranked) > req.NumResults {
		ranked = ranked[:req.NumResults]
	}

	g.log.Info().
		Int("seeds", len(seeds)).
		Int("candidates", len(candidates)).
		Int("results", len(ranked)).
		Strs("emotions", req.Emotions).
		Msg("playlist generated")

	return domain.PlaylistResponse{
		Playlist:          ranked,
		EmotionFeatures:   ranges,
		CombinedEmbedding: debugEmbedding(combined),
	}, nil
}

// expandSeeds folds artist seeds into song seeds using the provider's artist
// catalog, collaborations included. Expansion failures degrade the artist to
// a name-only seed rather than failing the request.
func (g *Generator) expandSeeds(ctx context.Context, req domain.PlaylistRequest) []domain.SongSeed {
	seeds := make([]domain.SongSeed, 0, len(req.Songs)+len(req.Artists)*tracksPerSeed)
	seeds = append(seeds, req.Songs...)

	for _, artist := range req.Artists {
		if g.source == nil || !g.source.Available() {
			seeds = append(seeds, domain.SongSeed{Name: artist.Name, Artist: artist.Name})
			continue
		}
		tracks, err := g.source.ArtistTracks(ctx, artist.Name, artist.SpotifyID, tracksPerSeed)
		if err != nil || len(tracks) == 0 {
			g.log.Warn().Err(err).Str("artist", artist.Name).Msg("artist expansion failed, using name seed")
			seeds = append(seeds, domain.SongSeed{Name: artist.Name, Artist: artist.Name})
			continue
		}
		for _, t := range tracks {
			seeds = append(seeds, domain.SongSeed{Name: t.Title, Artist: t.Artist, SpotifyID: t.SpotifyID})
		}
	}
	return seeds
}

// combinedEmbedding blends seed-song embeddings with the resolved emotion
// embedding at 0.7/0.3, or gives full weight to whichever side is present.
func (g *Generator) combinedEmbedding(ctx context.Context, seeds []domain.SongSeed, emotions []string) (combined, emotionEmb vector.Vector, ranges domain.FeatureRanges, err error) {
	var vectors []vector.Vector
	var weights []float64

	if len(seeds) > 0 {
		texts := make([]string, len(seeds))
		for i, s := range seeds {
			texts[i] = ports.SongText(s.Name, s.Artist)
		}
		songVecs, err := g.embedder.EncodeBatch(ctx, texts)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("services: encode seeds: %w", err)
		}
		w := 1.0
		if len(emotions) > 0 {
			w = songWeight
		}
		for _, v := range songVecs {
			vectors = append(vectors, v)
			weights = append(weights, w/float64(len(songVecs)))
		}
	}

	if len(emotions) > 0 {
		var resolveErr error
		emotionEmb, ranges, resolveErr = g.emotions.Resolve(ctx, emotions)
		if resolveErr != nil {
			return nil, nil, nil, resolveErr
		}
		w := 1.0
		if len(seeds) > 0 {
			w = emotionWeight
		}
		vectors = append(vectors, emotionEmb)
		weights = append(weights, w)
	}

	combined, err = vector.Combine(vectors, weights)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("services: combine embeddings: %w", err)
	}
	return combined, emotionEmb, ranges, nil
}

// retrieve synthesizes provider queries and fans them out with bounded
// concurrency, merging results in query order with first-seen dedup. Any
// total provider failure falls back to the store, then to the mock list;
// fallback candidates come back already scored.
func (g *Generator) retrieve(ctx context.Context, seeds []domain.SongSeed, emotions []string, combined vector.Vector) (tracks []domain.Track, preScored bool) {
	if g.source == nil || !g.source.Available() {
		return g.fallbackCandidates(ctx, combined), true
	}

	searches := g.buildQueries(ctx, seeds, emotions)
	if len(searches) == 0 {
		return g.fallbackCandidates(ctx, combined), true
	}

	results := worker.Collect(ctx, searches, g.fanout, func(ctx context.Context, q string) ([]domain.Track, error) {
		return g.source.SearchTracks(ctx, q, perQueryLimit)
	})

	merged := domain.NewPlaylist(len(searches) * perQueryLimit)
	for _, q := range searches {
		res := results[q]
		if res.Err != nil {
			g.log.Warn().Err(res.Err).Str("query", q).Msg("search query failed")
			continue
		}
		for _, t := range res.Value {
			if err := merged.AddTrack(t); err != nil && !errors.Is(err, domain.ErrDuplicateTrack) {
				g.log.Warn().Err(err).Str("track", t.Title).Msg("dropping candidate")
			}
		}
	}

	if merged.Len() == 0 {
		return g.fallbackCandidates(ctx, combined), true
	}
	return merged.Tracks, false
}

func (g *Generator) buildQueries(ctx context.Context, seeds []domain.SongSeed, emotions []string) []string {
	var searches []string
	seen := make(map[string]struct{})
	add := func(qs []string) {
		for _, q := range qs {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			searches = append(searches, q)
		}
	}

	for _, e := range emotions {
		qs, err := g.queries.ForEmotion(ctx, e, maxQueries-len(searches), true)
		if err != nil {
			g.log.Warn().Err(err).Str("emotion", e).Msg("emotion query synthesis failed")
			continue
		}
		add(qs)
		if len(searches) >= maxQueries {
			break
		}
	}
	if len(seeds) > 0 && len(searches) < maxQueries {
		qs, err := g.queries.ForSeeds(ctx, seeds, maxQueries-len(searches))
		if err != nil {
			g.log.Warn().Err(err).Msg("seed query synthesis failed")
		} else {
			add(qs)
		}
	}
	if len(searches) > maxQueries {
		searches = searches[:maxQueries]
	}
	return searches
}

// literalTitleWords extracts the emotion words that trigger the literal-title
// penalty: any whitespace-separated token longer than 3 characters.
func literalTitleWords(emotions []string) []string {
	var words []string
	for _, phrase := range emotions {
		for _, w := range strings.Fields(strings.ToLower(phrase)) {
			if len(w) > 3 {
				words = append(words, w)
			}
		}
	}
	return words
}

func debugEmbedding(v vector.Vector) []float64 {
	n := debugEmbedDims
	if len(v) < n {
		n = len(v)
	}
	out := make([]float64, n)
	copy(out, v[:n])
	return out
}
