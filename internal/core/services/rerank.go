package services

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/core/lyrics"
	"github.com/treble-labs/emorec/internal/core/ports"
	"github.com/treble-labs/emorec/internal/metrics"
	"github.com/treble-labs/emorec/internal/worker"
)

const (
	// re-rank operates on up to 3x the requested count before truncation
	rerankPoolFactor = 3

	lyricsBlend    = 0.85
	embeddingBlend = 0.15
	dominantBonus  = 0.1

	// missing emotional keywords is evidence against the mood, not proof
	zeroLyricsPenalty = 0.5

	// DefaultFilterThreshold drops candidates whose re-ranked score falls
	// below it.
	DefaultFilterThreshold = 0.05
)

// Enricher re-ranks a scored playlist using lyrics sentiment fetched from the
// lyrics collaborator.
type Enricher struct {
	source    ports.LyricsSource
	threshold float64
	fanout    worker.Options
	log       zerolog.Logger
}

// NewEnricher builds an Enricher. threshold <= 0 selects the default filter
// threshold; source may be nil when no lyrics provider is configured.
func NewEnricher(source ports.LyricsSource, threshold float64, log zerolog.Logger) *Enricher {
	if threshold <= 0 {
		threshold = DefaultFilterThreshold
	}
	return &Enricher{
		source:    source,
		threshold: threshold,
		log:       log.With().Str("component", "lyrics-rerank").Logger(),
	}
}

// SetFanout overrides the lyrics fetch fan-out tuning. Zero fields keep the
// worker defaults.
func (e *Enricher) SetFanout(opts worker.Options) {
	e.fanout = opts
}

// Available reports whether lyrics re-ranking can run at all.
func (e *Enricher) Available() bool {
	return e != nil && e.source != nil && e.source.Available()
}

type lyricsKey struct {
	title  string
	artist string
}

// Rerank fetches lyrics for up to want*3 of the top candidates concurrently
// and blends lyric sentiment into each score: 0.85 lyrics, 0.15 embedding,
// plus a 0.1 bonus when the lyrics' dominant emotion equals the target.
// Tracks without any emotional lyric signal keep half their blended score;
// tracks below the filter threshold are dropped. Fetch failures degrade to
// "no lyrics" for that track only.
func (e *Enricher) Rerank(ctx context.Context, ranked []domain.Track, target string, want int) []domain.Track {
	if !e.Available() || len(ranked) == 0 {
		return ranked
	}
	pool := len(ranked)
	if want > 0 && want*rerankPoolFactor < pool {
		pool = want * rerankPoolFactor
	}
	pooled := ranked[:pool]

	keys := make([]lyricsKey, len(pooled))
	for i, t := range pooled {
		keys[i] = lyricsKey{title: t.Title, artist: t.Artist}
	}
	results := worker.Collect(ctx, keys, e.fanout, func(ctx context.Context, k lyricsKey) (ports.SongLyrics, error) {
		return e.source.FetchLyrics(ctx, k.title, k.artist)
	})

	target = strings.ToLower(strings.TrimSpace(target))
	out := make([]domain.Track, 0, len(pooled))
	for i, t := range pooled {
		res := results[keys[i]]
		score := e.blend(&t, res, target)
		if score < e.threshold {
			continue
		}
		t.SimilarityScore = score
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SimilarityScore > out[j].SimilarityScore
	})
	return out
}

// blend computes one track's re-ranked score and attaches the lyrics fields.
func (e *Enricher) blend(t *domain.Track, res worker.Result[ports.SongLyrics], target string) float64 {
	lyricScore := 0.0
	switch {
	case res.Err != nil:
		metrics.LyricsEnrichment.WithLabelValues("error").Inc()
		e.log.Debug().Err(res.Err).Str("track", t.Title).Msg("lyrics fetch failed")
	case res.Value.Text == "":
		metrics.LyricsEnrichment.WithLabelValues("miss").Inc()
	default:
		metrics.LyricsEnrichment.WithLabelValues("hit").Inc()
		counts := lyrics.KeywordCounts(res.Value.Text)
		lyricScore = lyrics.MatchScore(counts, target)
		t.LyricsEmotion = lyrics.DominantEmotion(counts)
		t.GeniusURL = res.Value.URL
	}
	t.LyricsScore = &lyricScore

	score := lyricsBlend*lyricScore + embeddingBlend*t.SimilarityScore
	if t.LyricsEmotion != "" && t.LyricsEmotion == target {
		score += dominantBonus
	}
	if lyricScore == 0 {
		score *= zeroLyricsPenalty
	}
	return score
}
