// Package space implements the learning space: a decaying spatial trace
// that accumulates where recent visual change has occurred.
package space

import "github.com/CindyHusky/LeaningSpacePOC/pkg/frame"

// Updater applies the per-cycle learning-space update.
//
// Each cycle the current space is decayed, compared pixelwise against the
// incoming frame, and re-blended so that pixels flagged as novel receive
// extra weight from the new frame while static pixels mostly retain the
// decayed trace. The result is lightly smoothed to avoid hard block
// artifacts from the binary novelty mask.
//
// The update is a pure function of two same-shaped grids; Updater only
// holds the tuning constants.
//
// Example usage:
//
//	updater := space.NewUpdater(0.98, 0.90, 0.10, 30, true)
//	spc := frame.New(512, 512)
//	for f := range frames {
//	    spc = updater.Update(spc, f)
//	}
type Updater struct {
	// decay fades the space toward zero each cycle (DECAY_LEARNING).
	// Values in (0,1); the effective memory horizon is ~1/(1-decay) frames.
	decay float64

	// baseBlend is the base weight for the decayed space (BASE_BLEND).
	baseBlend float64

	// novelBlend is the extra new-frame weight for novel pixels (NOVEL_BLEND).
	novelBlend float64

	// diffThreshold is the per-pixel absolute difference above which a
	// pixel counts as novel (DIFF_THRESHOLD, 0-255 scale).
	diffThreshold float64

	// clampOutput limits blended values to [0,255] before smoothing.
	// The blend formula can otherwise push values outside the nominal
	// range; disabling reproduces that unclamped behaviour.
	clampOutput bool
}

// NewUpdater creates an updater with the given tuning constants.
//
// Parameters:
//   - decay: per-cycle fade factor for the space, in (0,1)
//   - baseBlend: base weight for the decayed space
//   - novelBlend: additional new-frame weight for novel pixels
//   - diffThreshold: per-pixel novelty threshold on the 0-255 scale
//   - clampOutput: whether to clamp blended values to [0,255]
func NewUpdater(decay, baseBlend, novelBlend, diffThreshold float64, clampOutput bool) *Updater {
	return &Updater{
		decay:         decay,
		baseBlend:     baseBlend,
		novelBlend:    novelBlend,
		diffThreshold: diffThreshold,
		clampOutput:   clampOutput,
	}
}

// Update returns the next learning space for the incoming frame.
//
// The steps, in order:
//  1. Decay: space * decay.
//  2. Pixelwise absolute difference between the frame and the decayed space.
//  3. Binary novelty mask: 1 where the difference exceeds diffThreshold.
//  4. Blend: decayed*baseBlend + frame*(1-baseBlend+mask*novelBlend),
//     clamped to [0,255] when configured.
//  5. 3x3 Gaussian smoothing.
//
// Both frames must share dimensions (checked by the pipeline before the
// core is entered). The inputs are not modified.
func (u *Updater) Update(current, newFrame *frame.Frame) *frame.Frame {
	return frame.Blur(u.Blend(current, newFrame), frame.Gaussian3)
}

// Blend performs steps 1-4 of Update without the final smoothing.
//
// Exposed separately so the pre-smoothing state can be observed and
// tested; Update is Blur(Blend(...), Gaussian3).
func (u *Updater) Blend(current, newFrame *frame.Frame) *frame.Frame {
	out := frame.New(current.Width, current.Height)
	for i := range current.Pix {
		decayed := current.Pix[i] * u.decay
		diff := newFrame.Pix[i] - decayed
		if diff < 0 {
			diff = -diff
		}
		w := 1 - u.baseBlend
		if diff > u.diffThreshold {
			w += u.novelBlend
		}
		out.Pix[i] = decayed*u.baseBlend + newFrame.Pix[i]*w
	}
	if u.clampOutput {
		out.Clamp(0, 255)
	}
	return out
}
