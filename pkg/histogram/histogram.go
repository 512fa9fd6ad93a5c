// Package histogram computes normalized intensity-distribution signatures
// and distances between them.
//
// A Signature is the 256-bin intensity histogram of a frame, normalized so
// the bins sum to 1. Signatures are transient: they are recomputed on
// demand and never cached, so callers always score against a frame's
// current (possibly decayed) content.
package histogram

import "github.com/CindyHusky/LeaningSpacePOC/pkg/frame"

// Bins is the number of equal-width intensity buckets in a signature.
const Bins = 256

// Signature is a normalized intensity histogram.
//
// All weights are non-negative and sum to 1 for any non-empty frame.
type Signature [Bins]float64

// Compute buckets the frame's intensities into 256 equal-width bins and
// normalizes the result.
//
// Samples are clamped into the nominal 0-255 range before bucketing, so
// unclamped learning-space values still land in the boundary bins rather
// than out of range. Deterministic and pure.
func Compute(f *frame.Frame) Signature {
	var sig Signature
	if len(f.Pix) == 0 {
		return sig
	}
	for _, v := range f.Pix {
		i := int(v)
		if i < 0 {
			i = 0
		} else if i > Bins-1 {
			i = Bins - 1
		}
		sig[i]++
	}
	n := float64(len(f.Pix))
	for i := range sig {
		sig[i] /= n
	}
	return sig
}

// Distance returns the L1 distance between two signatures: the sum of
// absolute per-bin differences.
//
// It is symmetric, zero iff the signatures are identical, and grows
// monotonically with distributional divergence. For sum-1 signatures the
// range is [0, 2]. Spatial structure is invisible to this metric: two
// frames with the same intensity distribution in different arrangements
// are indistinguishable.
func Distance(a, b Signature) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}
