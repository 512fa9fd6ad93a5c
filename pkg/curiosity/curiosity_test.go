package curiosity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/curiosity"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
)

func TestNoveltyEmptyPopulation(t *testing.T) {
	e := curiosity.NewEstimator(0.5, 0.05)
	f := frame.Uniform(4, 4, 128)

	assert.Zero(t, e.Novelty(f, nil), "empty population is defined as 0, not an error")

	reward, novelty := e.Reward(f, nil)
	assert.Zero(t, reward)
	assert.Zero(t, novelty)
}

func TestNoveltyMeanDistance(t *testing.T) {
	e := curiosity.NewEstimator(0.5, 0.05)
	f := frame.Uniform(4, 4, 128)
	memories := []*frame.Frame{
		frame.Uniform(4, 4, 128), // distance 0
		frame.Uniform(4, 4, 10),  // distance 2 (disjoint distributions)
	}
	assert.InDelta(t, 1.0, e.Novelty(f, memories), 1e-12)
}

func TestRewardGatedAtThreshold(t *testing.T) {
	f := frame.Uniform(4, 4, 128)
	// Disjoint intensities score novelty 2, identical ones score 0.
	far := []*frame.Frame{frame.Uniform(4, 4, 10)}
	near := []*frame.Frame{frame.Uniform(4, 4, 128)}

	e := curiosity.NewEstimator(0.5, 0.05)

	reward, novelty := e.Reward(f, far)
	assert.InDelta(t, 2.0, novelty, 1e-12)
	assert.InDelta(t, novelty*0.05, reward, 1e-12)

	reward, novelty = e.Reward(f, near)
	assert.Zero(t, reward, "reward is exactly 0 at or below the gate")
	assert.Zero(t, novelty)

	// At the gate exactly: still zero, the gate is strict.
	gate := curiosity.NewEstimator(2.0, 0.05)
	reward, novelty = gate.Reward(f, far)
	assert.Zero(t, reward)
	assert.InDelta(t, 2.0, novelty, 1e-12)
}
