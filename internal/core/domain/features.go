package domain

// FeatureRange is an inclusive (min, max) bound for a named audio-style
// feature. Blending always pairs mins with mins and maxs with maxs, so
// Min <= Max holds whenever it held for the inputs.
type FeatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FeatureRanges maps feature names (valence, energy, danceability, tempo,
// acousticness, instrumentalness, loudness) to their target ranges. The map
// is descriptive output only; it is not used as a retrieval filter.
type FeatureRanges map[string]FeatureRange

// NeutralRanges is the fallback used when an emotion cannot be resolved to
// any known range table.
func NeutralRanges() FeatureRanges {
	return FeatureRanges{
		"valence":      {Min: 0.3, Max: 0.7},
		"energy":       {Min: 0.3, Max: 0.7},
		"danceability": {Min: 0.3, Max: 0.7},
		"tempo":        {Min: 80, Max: 140},
	}
}

// BlendRanges merges several range tables by per-feature arithmetic mean of
// bounds. Features absent from some tables are averaged only over the tables
// that contain them. Blending a single table is the identity.
func BlendRanges(tables []FeatureRanges) FeatureRanges {
	if len(tables) == 0 {
		return nil
	}

	sums := make(map[string]*rangeAccumulator)
	for _, table := range tables {
		for feature, r := range table {
			acc, ok := sums[feature]
			if !ok {
				acc = &rangeAccumulator{}
				sums[feature] = acc
			}
			acc.minSum += r.Min
			acc.maxSum += r.Max
			acc.n++
		}
	}

	blended := make(FeatureRanges, len(sums))
	for feature, acc := range sums {
		blended[feature] = FeatureRange{
			Min: acc.minSum / float64(acc.n),
			Max: acc.maxSum / float64(acc.n),
		}
	}
	return blended
}

type rangeAccumulator struct {
	minSum float64
	maxSum float64
	n      int
}
