package emotion

import (
	"context"

	"github.com/treble-labs/emorec/internal/core/domain"
	"github.com/treble-labs/emorec/internal/vector"
)

// Pairwise similarity thresholds: below conflictThreshold two emotions pull
// the query in opposing directions; above harmonyThreshold they reinforce
// each other. Raw cosine, not the [0,1] rescaling.
const (
	conflictThreshold = 0.3
	harmonyThreshold  = 0.7
)

// Pair records the relationship between two query emotions.
type Pair struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Similarity float64 `json:"similarity"`
}

// Analysis describes how a multi-emotion query hangs together.
type Analysis struct {
	Emotions        []string `json:"emotions"`
	BlendedEmotion  string   `json:"blended_emotion"`
	BlendConfidence float64  `json:"blend_confidence"`
	Conflicts       []Pair   `json:"conflicts"`
	Harmonies       []Pair   `json:"harmonies"`
	IsCoherent      bool     `json:"is_coherent"`
	Learned         []string `json:"learned_emotions"`
}

// AnalyzeMulti classifies every emotion pair as conflicting, harmonious or
// neutral, and names the single predefined emotion closest to the blend of
// all inputs. Unknown phrases are learned as a side effect.
func (e *Engine) AnalyzeMulti(ctx context.Context, phrases []string) (Analysis, error) {
	if len(phrases) == 0 {
		return Analysis{}, &domain.ValidationError{Reason: "no emotions provided"}
	}

	embeddings := make([]vector.Vector, 0, len(phrases))
	var learned []string
	for _, phrase := range phrases {
		emb, isNew, err := e.Embedding(ctx, phrase)
		if err != nil {
			return Analysis{}, err
		}
		embeddings = append(embeddings, emb)
		if isNew {
			learned = append(learned, phrase)
		}
	}

	analysis := Analysis{Emotions: phrases, Learned: learned}
	for i := range phrases {
		for j := i + 1; j < len(phrases); j++ {
			sim := vector.Cosine(embeddings[i], embeddings[j])
			pair := Pair{A: phrases[i], B: phrases[j], Similarity: sim}
			switch {
			case sim < conflictThreshold:
				analysis.Conflicts = append(analysis.Conflicts, pair)
			case sim > harmonyThreshold:
				analysis.Harmonies = append(analysis.Harmonies, pair)
			}
		}
	}
	analysis.IsCoherent = len(analysis.Conflicts) == 0

	blend, err := vector.Mean(embeddings)
	if err != nil {
		return Analysis{}, err
	}
	best, bestScore := "", -1.0
	for _, name := range e.order {
		if sim := vector.Cosine(blend, e.predefined[name]); sim > bestScore {
			best, bestScore = name, sim
		}
	}
	analysis.BlendedEmotion = best
	analysis.BlendConfidence = bestScore

	if len(analysis.Conflicts) > 0 {
		e.log.Warn().Int("conflicts", len(analysis.Conflicts)).Strs("emotions", phrases).Msg("conflicting emotions in query")
	}
	return analysis, nil
}
