package memory

import "github.com/CindyHusky/LeaningSpacePOC/pkg/histogram"

// importanceScores computes the importance of each signature: its average
// L1 distance to every other signature, self excluded.
//
// Low importance means the entry is redundant with the rest of the store.
// The O(n^2) pairwise scan is recomputed every cycle at capacity; it is
// isolated here so incremental updates could replace it without touching
// the admission policy. At the default capacity (~100) the full scan is
// cheap relative to the pixel work elsewhere in a cycle.
//
// A single-entry population gets importance 0 (no peers to differ from).
func importanceScores(sigs []histogram.Signature) []float64 {
	n := len(sigs)
	scores := make([]float64, n)
	if n < 2 {
		return scores
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := histogram.Distance(sigs[i], sigs[j])
			scores[i] += d
			scores[j] += d
		}
	}
	for i := range scores {
		scores[i] /= float64(n - 1)
	}
	return scores
}
