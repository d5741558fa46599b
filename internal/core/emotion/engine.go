// Package emotion resolves free-text emotion phrases to semantic embeddings
// and audio-feature range tables. Unknown phrases are learned on the fly by
// encoding context sentences and cached in a bounded LRU.
package emotion

import (
	"context"
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/vector"
)

// DefaultCacheSize bounds the learned-emotion cache. Phrase cardinality is
// low in practice, but a long-running service must not grow without bound.
const DefaultCacheSize = 512

// Engine is the emotion semantics engine. It is safe for concurrent use:
// the predefined vocabulary is read-only after construction and the learned
// cache is idempotent per key, so racing writers are harmless.
type Engine struct {
	embedder ports.Embedder

	// predefined context embeddings, keyed by core emotion name, plus the
	// declaration order used for tie-breaking.
	predefined map[string]vector.Vector
	order      []string

	learned *lru.Cache[string, vector.Vector]
	log     zerolog.Logger
}

// NewEngine pre-encodes the core emotion vocabulary. cacheSize <= 0 selects
// DefaultCacheSize.
func NewEngine(ctx context.Context, embedder ports.Embedder, cacheSize int, log zerolog.Logger) (*Engine, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, vector.Vector](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("emotion: create cache: %w", err)
	}

	e := &Engine{
		embedder:   embedder,
		predefined: make(map[string]vector.Vector, len(coreEmotions)),
		order:      coreEmotions,
		learned:    cache,
		log:        log.With().Str("component", "emotion").Logger(),
	}

	for _, name := range coreEmotions {
		contexts := emotionContexts[name]
		vecs, err := embedder.EncodeBatch(ctx, contexts)
		if err != nil {
			return nil, fmt.Errorf("emotion: encode vocabulary for %q: %w", name, err)
		}
		mean, err := vector.Mean(vecs)
		if err != nil {
			return nil, fmt.Errorf("emotion: blend vocabulary for %q: %w", name, err)
		}
		e.predefined[name] = mean
	}

	e.log.Info().Int("emotions", len(e.predefined)).Msg("emotion vocabulary encoded")
	return e, nil
}

// Known reports whether name is one of the enumerated emotions.
func Known(name string) bool {
	_, ok := rangeTables[normalize(name)]
	return ok
}

func normalize(phrase string) string {
	return strings.ToLower(strings.TrimSpace(phrase))
}

// Embedding returns the semantic embedding for an emotion phrase, learning
// and caching unseen phrases. The second return reports whether the phrase
// was newly learned (not predefined and not already cached).
func (e *Engine) Embedding(ctx context.Context, phrase string) (vector.Vector, bool, error) {
	key := normalize(phrase)
	if key == "" {
		return nil, false, &ports.EncodingError{Text: phrase}
	}

	if emb, ok := e.predefined[key]; ok {
		return emb, false, nil
	}
	if emb, ok := e.learned.Get(key); ok {
		return emb, false, nil
	}

	contexts := []string{
		"music that feels " + key,
		"songs with " + key + " mood and atmosphere",
		key + " emotional vibes and energy",
		"the feeling of being " + key,
		"music that captures " + key + " emotions",
	}
	vecs, err := e.embedder.EncodeBatch(ctx, contexts)
	if err != nil {
		return nil, false, fmt.Errorf("emotion: learn %q: %w", phrase, err)
	}
	emb, err := vector.Mean(vecs)
	if err != nil {
		return nil, false, fmt.Errorf("emotion: learn %q: %w", phrase, err)
	}

	e.learned.Add(key, emb)
	e.log.Debug().Str("emotion", key).Msg("learned new emotion")
	return emb, true, nil
}

// FeatureRanges resolves the static range table for a phrase without
// touching the embedder: enumerated table, else keyword-composite, else the
// neutral default. It never fails.
func (e *Engine) FeatureRanges(phrase string) domain.FeatureRanges {
	key := normalize(phrase)
	if table, ok := rangeTables[key]; ok {
		return table
	}
	if composite := compositeRanges(key); composite != nil {
		return composite
	}
	return domain.NeutralRanges()
}

// compositeRanges matches known keywords as substrings of the phrase and
// blends the matched emotions' tables. Returns nil when nothing matches.
func compositeRanges(phrase string) domain.FeatureRanges {
	var matched []domain.FeatureRanges
	for keyword, name := range keywordEmotions {
		if strings.Contains(phrase, keyword) {
			matched = append(matched, rangeTables[name])
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return domain.BlendRanges(matched)
}

// Resolve maps one or more phrases to a blended embedding and a blended
// feature range table. It fails only for an empty phrase list or an embedder
// fault; unknown phrases always resolve through the fallback chain.
func (e *Engine) Resolve(ctx context.Context, phrases []string) (vector.Vector, domain.FeatureRanges, error) {
	if len(phrases) == 0 {
		return nil, nil, &domain.ValidationError{Reason: "no emotions provided"}
	}

	embeddings := make([]vector.Vector, 0, len(phrases))
	tables := make([]domain.FeatureRanges, 0, len(phrases))
	for _, phrase := range phrases {
		emb, _, err := e.Embedding(ctx, phrase)
		if err != nil {
			return nil, nil, err
		}
		embeddings = append(embeddings, emb)
		tables = append(tables, e.FeatureRanges(phrase))
	}

	blended, err := vector.Mean(embeddings)
	if err != nil {
		return nil, nil, fmt.Errorf("emotion: blend embeddings: %w", err)
	}
	return blended, domain.BlendRanges(tables), nil
}

// Scored is an (emotion, similarity) pair.
type Scored struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// FindRelated ranks the predefined emotions (excluding an exact name match)
// by raw cosine similarity to the query phrase, descending. Ties keep the
// vocabulary declaration order.
func (e *Engine) FindRelated(ctx context.Context, phrase string, topK int) ([]Scored, error) {
	query, _, err := e.Embedding(ctx, phrase)
	if err != nil {
		return nil, err
	}

	key := normalize(phrase)
	scored := make([]Scored, 0, len(e.order))
	for _, name := range e.order {
		if name == key {
			continue
		}
		scored = append(scored, Scored{Name: name, Score: vector.Cosine(query, e.predefined[name])})
	}
	// stable sort so declaration order breaks ties
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if topK > 0 && len(scored) > topK {
		scored = scored[:topK]
	}
	return scored, nil
}
