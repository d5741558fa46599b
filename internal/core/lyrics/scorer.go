// Package lyrics scores song lyrics against a target emotion using keyword
// vocabularies and a weighted relation graph between emotions.
package lyrics

import "strings"

const (
	directBoost  = 2.0
	relatedBoost = 1.5
	relatedCap   = 0.8
	reverseCap   = 0.7

	// assumed ceiling for mentions of a single emotion, used to normalize
	// relational scores
	maxMentions = 5
)

// Emotions returns the emotion names the scorer recognizes, in vocabulary
// order.
func Emotions() []string {
	out := make([]string, len(emotionOrder))
	copy(out, emotionOrder)
	return out
}

// KeywordCounts tallies occurrences of each emotion's keywords in the given
// lyrics. Matching is case-insensitive substring counting; emotions with no
// hits are omitted.
func KeywordCounts(text string) map[string]int {
	if text == "" {
		return map[string]int{}
	}
	lower := strings.ToLower(text)
	counts := make(map[string]int)
	for _, emotion := range emotionOrder {
		n := 0
		for _, kw := range emotionKeywords[emotion] {
			n += strings.Count(lower, kw)
		}
		if n > 0 {
			counts[emotion] = n
		}
	}
	return counts
}

// MatchScore rates how well keyword counts match a target emotion, in [0, 1].
// A direct hit on the target dominates; otherwise the relation graph is
// consulted in both directions with progressively lower caps.
func MatchScore(counts map[string]int, target string) float64 {
	if len(counts) == 0 {
		return 0.0
	}
	target = strings.ToLower(strings.TrimSpace(target))

	total := 0
	for _, n := range counts {
		total += n
	}
	if total < 1 {
		total = 1
	}

	if direct, ok := counts[target]; ok {
		score := float64(direct) / float64(total) * directBoost
		return min(1.0, score)
	}

	if related, ok := relatedEmotions[target]; ok {
		var score, maxPossible float64
		for emotion, weight := range related {
			if n, ok := counts[emotion]; ok {
				score += float64(n) * weight
			}
			maxPossible += weight * maxMentions
		}
		if maxPossible > 0 {
			return min(relatedCap, score/maxPossible*relatedBoost)
		}
	}

	// Reverse lookup: a detected emotion may list the target as a neighbor.
	for _, detected := range emotionOrder {
		n, ok := counts[detected]
		if !ok {
			continue
		}
		if weight, ok := relatedEmotions[detected][target]; ok {
			normalized := float64(n) / float64(total) * weight
			return min(reverseCap, normalized*relatedBoost)
		}
	}
	return 0.0
}

// DominantEmotion returns the emotion with the highest keyword count, or ""
// when nothing matched. Ties resolve in vocabulary order.
func DominantEmotion(counts map[string]int) string {
	best, bestCount := "", 0
	for _, emotion := range emotionOrder {
		if n := counts[emotion]; n > bestCount {
			best, bestCount = emotion, n
		}
	}
	return best
}
