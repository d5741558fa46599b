// Package query turns emotions and seed songs into diversified retrieval
// provider search queries by semantically matching against a genre and mood
// vocabulary, optionally narrowed to the provider's own genre corpus.
package query

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/vector"
)

// Defaults for genre relevance filtering.
const (
	DefaultMinSimilarity = 0.15
	DefaultMaxGenres     = 8

	// yearFilterScore gates the recency filter: only genres this relevant
	// get narrowed to recent years.
	yearFilterScore = 0.25

	recentYears = "year:2015-2024"
	broadYears  = "year:2010-2024"
)

type vocabEntry struct {
	name      string
	embedding vector.Vector
}

// Scored is a (name, relevance) pair.
type Scored struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Synthesizer builds provider search queries. The fixed vocabulary is
// encoded once at construction; a runtime genre corpus from the retrieval
// provider can replace it when available.
type Synthesizer struct {
	embedder ports.Embedder
	source   ports.TrackSource
	genres   []vocabEntry
	moods    []vocabEntry
	log      zerolog.Logger

	mu     sync.RWMutex
	corpus []vocabEntry // runtime genre corpus, nil until loaded
}

// NewSynthesizer pre-encodes the genre and mood vocabularies. source may be
// nil when no retrieval provider is configured.
func NewSynthesizer(ctx context.Context, embedder ports.Embedder, source ports.TrackSource, log zerolog.Logger) (*Synthesizer, error) {
	s := &Synthesizer{
		embedder: embedder,
		source:   source,
		log:      log.With().Str("component", "query").Logger(),
	}

	var err error
	if s.genres, err = encodeVocabulary(ctx, embedder, genreNames, genreDescriptions); err != nil {
		return nil, fmt.Errorf("query: encode genre vocabulary: %w", err)
	}
	if s.moods, err = encodeVocabulary(ctx, embedder, moodNames, moodDescriptions); err != nil {
		return nil, fmt.Errorf("query: encode mood vocabulary: %w", err)
	}

	s.log.Info().Int("genres", len(s.genres)).Int("moods", len(s.moods)).Msg("search vocabulary encoded")
	return s, nil
}

func encodeVocabulary(ctx context.Context, embedder ports.Embedder, names []string, descriptions map[string]string) ([]vocabEntry, error) {
	entries := make([]vocabEntry, 0, len(names))
	for _, name := range names {
		emb, err := embedder.Encode(ctx, descriptions[name])
		if err != nil {
			return nil, err
		}
		entries = append(entries, vocabEntry{name: name, embedding: emb})
	}
	return entries, nil
}

// LoadGenreCorpus fetches the provider's genre seeds and encodes them for
// semantic matching. Returns false (without error) when the provider is
// unavailable or has no seeds; the fixed vocabulary stays in effect.
func (s *Synthesizer) LoadGenreCorpus(ctx context.Context) bool {
	if s.source == nil || !s.source.Available() {
		return false
	}

	seeds, err := s.source.GenreSeeds(ctx)
	if err != nil || len(seeds) == 0 {
		s.log.Warn().Err(err).Msg("genre corpus unavailable, using fixed vocabulary")
		return false
	}

	corpus := make([]vocabEntry, 0, len(seeds))
	for _, genre := range seeds {
		desc, ok := genreDescriptions[genre]
		if !ok {
			desc = genre + " music genre with characteristic sound and style"
		}
		emb, err := s.embedder.Encode(ctx, desc)
		if err != nil {
			s.log.Warn().Err(err).Str("genre", genre).Msg("skipping genre seed")
			continue
		}
		corpus = append(corpus, vocabEntry{name: genre, embedding: emb})
	}
	if len(corpus) == 0 {
		return false
	}

	s.mu.Lock()
	s.corpus = corpus
	s.mu.Unlock()
	s.log.Info().Int("genres", len(corpus)).Msg("runtime genre corpus loaded")
	return true
}

func (s *Synthesizer) genreCorpus() []vocabEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.corpus != nil {
		return s.corpus
	}
	return s.genres
}

// RelevantGenres ranks the genre corpus against an emotion phrase,
// discarding genres below minSimilarity and truncating to maxCount.
func (s *Synthesizer) RelevantGenres(ctx context.Context, emotion string, minSimilarity float64, maxCount int) ([]Scored, error) {
	if maxCount <= 0 {
		maxCount = DefaultMaxGenres
	}
	emb, err := s.embedder.Encode(ctx, emotionQueryText(emotion))
	if err != nil {
		return nil, fmt.Errorf("query: encode emotion %q: %w", emotion, err)
	}
	return rankVocabulary(emb, s.genreCorpus(), minSimilarity, maxCount), nil
}

func emotionQueryText(emotion string) string {
	return fmt.Sprintf("music that feels %s, songs with %s mood and emotional vibe", emotion, emotion)
}

func rankVocabulary(query vector.Vector, entries []vocabEntry, minSimilarity float64, maxCount int) []Scored {
	scored := make([]Scored, 0, len(entries))
	for _, e := range entries {
		sim := vector.Cosine(query, e.embedding)
		if sim >= minSimilarity {
			scored = append(scored, Scored{Name: e.name, Score: sim})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if maxCount > 0 && len(scored) > maxCount {
		scored = scored[:maxCount]
	}
	return scored
}

// ForEmotion builds up to count provider queries for an emotion: one per
// relevant genre with a recency filter for strongly relevant genres, plus a
// broader-year variant of the top genre.
func (s *Synthesizer) ForEmotion(ctx context.Context, emotion string, count int, includeYear bool) ([]string, error) {
	genres, err := s.RelevantGenres(ctx, emotion, DefaultMinSimilarity, DefaultMaxGenres)
	if err != nil {
		return nil, err
	}

	queries := make([]string, 0, len(genres)+1)
	for _, g := range genres {
		if len(queries) >= 6 {
			break
		}
		if includeYear && g.Score > yearFilterScore {
			queries = append(queries, fmt.Sprintf("genre:%s %s", g.Name, recentYears))
		} else {
			queries = append(queries, "genre:"+g.Name)
		}
	}
	if includeYear && len(genres) > 0 {
		queries = append(queries, fmt.Sprintf("genre:%s %s", genres[0].Name, broadYears))
	}

	if count > 0 && len(queries) > count {
		queries = queries[:count]
	}
	s.log.Debug().Str("emotion", emotion).Strs("queries", queries).Msg("synthesized emotion queries")
	return queries, nil
}

// ForSeeds builds queries from seed songs: the seed embeddings are averaged,
// ranked against genres and moods, and expanded into genre queries, genre+
// mood combinations, and one year-filtered query for the top genre.
func (s *Synthesizer) ForSeeds(ctx context.Context, seeds []domain.SongSeed, count int) ([]string, error) {
	avg, err := s.seedEmbedding(ctx, seeds)
	if err != nil {
		return nil, err
	}

	topGenres := rankVocabulary(avg, s.genres, -1, 5)
	topMoods := rankVocabulary(avg, s.moods, -1, 3)

	queries := make([]string, 0, count)
	for i := 0; i < len(topGenres) && i < 3; i++ {
		queries = append(queries, "genre:"+topGenres[i].Name)
	}
	if len(topMoods) > 0 {
		mood := topMoods[0].Name
		for i := 0; i < len(topGenres) && i < 2; i++ {
			queries = append(queries, fmt.Sprintf("genre:%s %s", topGenres[i].Name, mood))
			if count > 0 && len(queries) >= count {
				break
			}
		}
	}
	if len(topGenres) > 0 {
		queries = append(queries, fmt.Sprintf("genre:%s %s", topGenres[0].Name, broadYears))
	}

	if count > 0 && len(queries) > count {
		queries = queries[:count]
	}
	return queries, nil
}

// InferEmotionFromSeeds ranks the mood vocabulary against the averaged seed
// embedding, descending.
func (s *Synthesizer) InferEmotionFromSeeds(ctx context.Context, seeds []domain.SongSeed, topK int) ([]Scored, error) {
	avg, err := s.seedEmbedding(ctx, seeds)
	if err != nil {
		return nil, err
	}
	return rankVocabulary(avg, s.moods, -1, topK), nil
}

func (s *Synthesizer) seedEmbedding(ctx context.Context, seeds []domain.SongSeed) (vector.Vector, error) {
	if len(seeds) == 0 {
		return nil, &domain.ValidationError{Reason: "no seed songs provided"}
	}
	vecs := make([]vector.Vector, 0, len(seeds))
	for _, seed := range seeds {
		emb, err := ports.EncodeSong(ctx, s.embedder, seed.Name, seed.Artist)
		if err != nil {
			return nil, fmt.Errorf("query: encode seed %q: %w", seed.Name, err)
		}
		vecs = append(vecs, emb)
	}
	return vector.Mean(vecs)
}
