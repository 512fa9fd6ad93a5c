package histogram_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/histogram"
)

func randomFrame(w, h int, rng *rand.Rand) *frame.Frame {
	f := frame.New(w, h)
	for i := range f.Pix {
		f.Pix[i] = rng.Float64() * 255
	}
	return f
}

func TestSignatureSumsToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		sig := histogram.Compute(randomFrame(16, 16, rng))
		var sum float64
		for _, w := range sig {
			assert.GreaterOrEqual(t, w, 0.0)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestSignatureBucketing(t *testing.T) {
	f := frame.New(2, 2)
	f.Pix = []float64{0, 0, 128, 255}
	sig := histogram.Compute(f)
	assert.InDelta(t, 0.5, sig[0], 1e-12)
	assert.InDelta(t, 0.25, sig[128], 1e-12)
	assert.InDelta(t, 0.25, sig[255], 1e-12)
}

func TestSignatureClampsOutOfRange(t *testing.T) {
	// Unclamped learning-space values still land in the boundary bins.
	f := frame.New(2, 1)
	f.Pix = []float64{-12, 300}
	sig := histogram.Compute(f)
	assert.InDelta(t, 0.5, sig[0], 1e-12)
	assert.InDelta(t, 0.5, sig[255], 1e-12)
}

func TestDistanceToSelfIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 5; i++ {
		sig := histogram.Compute(randomFrame(8, 8, rng))
		assert.Zero(t, histogram.Distance(sig, sig))
	}
}

func TestDistanceSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5; i++ {
		a := histogram.Compute(randomFrame(8, 8, rng))
		b := histogram.Compute(randomFrame(8, 8, rng))
		assert.Equal(t, histogram.Distance(a, b), histogram.Distance(b, a))
	}
}

func TestDistanceDisjointDistributions(t *testing.T) {
	a := histogram.Compute(frame.Uniform(4, 4, 10))
	b := histogram.Compute(frame.Uniform(4, 4, 200))
	// Two disjoint sum-1 distributions are at the metric's maximum.
	assert.InDelta(t, 2.0, histogram.Distance(a, b), 1e-12)
}

func TestDistanceIgnoresSpatialStructure(t *testing.T) {
	a := frame.New(2, 2)
	a.Pix = []float64{0, 255, 0, 255}
	b := frame.New(2, 2)
	b.Pix = []float64{255, 0, 255, 0}
	assert.Zero(t, histogram.Distance(histogram.Compute(a), histogram.Compute(b)),
		"identical distributions in different arrangements are indistinguishable")
}
