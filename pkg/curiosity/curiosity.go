// Package curiosity estimates how novel a frame is relative to the stored
// memory population and converts that into a step-gated reward signal.
package curiosity

import (
	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/histogram"
)

// Estimator computes novelty and curiosity reward.
//
// Reward is a step-gated linear function of novelty: below the prediction
// threshold it is exactly zero, not merely small.
type Estimator struct {
	// predictionThreshold gates the reward (PREDICTION_THRESHOLD).
	predictionThreshold float64

	// curiosityFactor scales novelty into reward (CURIOSITY_FACTOR).
	curiosityFactor float64
}

// NewEstimator creates an estimator with the given gate and scale.
func NewEstimator(predictionThreshold, curiosityFactor float64) *Estimator {
	return &Estimator{
		predictionThreshold: predictionThreshold,
		curiosityFactor:     curiosityFactor,
	}
}

// Novelty returns the mean signature distance from the frame to every
// memory frame.
//
// An empty population yields 0 by definition, not an error.
func (e *Estimator) Novelty(f *frame.Frame, memories []*frame.Frame) float64 {
	if len(memories) == 0 {
		return 0
	}
	sig := histogram.Compute(f)
	var sum float64
	for _, m := range memories {
		sum += histogram.Distance(sig, histogram.Compute(m))
	}
	return sum / float64(len(memories))
}

// Reward returns the curiosity reward and the raw novelty behind it.
//
// When novelty exceeds the prediction threshold the reward is
// novelty*curiosityFactor; otherwise it is exactly 0. The raw novelty is
// returned either way.
func (e *Estimator) Reward(f *frame.Frame, memories []*frame.Frame) (float64, float64) {
	novelty := e.Novelty(f, memories)
	if novelty > e.predictionThreshold {
		return novelty * e.curiosityFactor, novelty
	}
	return 0, novelty
}
