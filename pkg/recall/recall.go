// Package recall reconstructs a composite recollection of the current
// frame from the stored memory population.
//
// Recall is reconstructive, not verbatim: the composite is a
// similarity-weighted blend of the retained memories with an extra
// smoothing pass, so a recollection is deliberately blurrier than raw
// perception.
package recall

import (
	"math"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/histogram"
)

// Engine blends stored memories into a composite recollection.
type Engine struct {
	// similarityThreshold is the maximum signature distance for a memory
	// to participate in the composite (SIMILARITY_THRESHOLD).
	similarityThreshold float64

	// similarityScale converts distances to blend weights via
	// exp(-d/scale) (SIMILARITY_SCALE).
	similarityScale float64
}

// NewEngine creates a recall engine with the given threshold and scale.
func NewEngine(similarityThreshold, similarityScale float64) *Engine {
	return &Engine{
		similarityThreshold: similarityThreshold,
		similarityScale:     similarityScale,
	}
}

// Recall builds the composite recollection for the frame.
//
// For each memory within the similarity threshold the weight is
// exp(-distance/scale); comparing the distance against the threshold
// directly is equivalent to comparing the weight against
// exp(-threshold/scale) and keeps the relationship explicit. Weights are
// renormalized to sum to 1, the retained frames are blended pixelwise,
// and the result gets a 5x5 Gaussian smoothing pass.
//
// Returns (nil, false) when no memory qualifies — a defined "nothing
// recalled" result, not an error. An empty population always returns
// absent.
func (e *Engine) Recall(f *frame.Frame, memories []*frame.Frame) (*frame.Frame, bool) {
	if len(memories) == 0 {
		return nil, false
	}
	sig := histogram.Compute(f)

	type weighted struct {
		weight float64
		frame  *frame.Frame
	}
	var retained []weighted
	var totalWeight float64
	for _, m := range memories {
		d := histogram.Distance(sig, histogram.Compute(m))
		if d < e.similarityThreshold {
			w := math.Exp(-d / e.similarityScale)
			retained = append(retained, weighted{weight: w, frame: m})
			totalWeight += w
		}
	}
	if len(retained) == 0 {
		return nil, false
	}

	composite := frame.New(f.Width, f.Height)
	for _, wm := range retained {
		w := wm.weight / totalWeight
		for i, v := range wm.frame.Pix {
			composite.Pix[i] += v * w
		}
	}
	return frame.Blur(composite, frame.Gaussian5), true
}
