// Package source provides frame source implementations for the pipeline:
// a deterministic synthetic generator and a PGM directory replay.
//
// Sources sit outside the core: they are the collaborators that produce
// fixed-size single-channel frames, and they enforce the dimension
// precondition before frames reach the pipeline.
package source

import (
	"context"
	"math/rand"

	"github.com/CindyHusky/LeaningSpacePOC/pkg/core"
	"github.com/CindyHusky/LeaningSpacePOC/pkg/frame"
)

// Synthetic generates a deterministic scene: a bright square drifting
// diagonally over a dark field, with optional seeded noise. Useful for
// demos and tests where no capture device exists.
type Synthetic struct {
	width  int
	height int
	count  int
	noise  float64
	rng    *rand.Rand

	produced int
}

// NewSynthetic creates a generator producing count frames of the given
// dimensions. A count of 0 produces an immediately exhausted source.
func NewSynthetic(width, height, count int) *Synthetic {
	return &Synthetic{
		width:  width,
		height: height,
		count:  count,
	}
}

// WithNoise adds uniform noise of the given amplitude, seeded for
// reproducibility. Returns the same source for chaining.
func (s *Synthetic) WithNoise(amplitude float64, seed int64) *Synthetic {
	s.noise = amplitude
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Next produces the next frame, or ErrSourceExhausted after count frames.
func (s *Synthetic) Next(ctx context.Context) (*frame.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.produced >= s.count {
		return nil, core.ErrSourceExhausted
	}

	f := frame.Uniform(s.width, s.height, 16)

	// Square spans a quarter of the frame and wraps as it drifts.
	side := s.width / 4
	if side < 1 {
		side = 1
	}
	offset := s.produced * 2
	x0 := offset % s.width
	y0 := offset % s.height
	for dy := 0; dy < side; dy++ {
		y := (y0 + dy) % s.height
		for dx := 0; dx < side; dx++ {
			x := (x0 + dx) % s.width
			f.Set(x, y, 220)
		}
	}

	if s.rng != nil && s.noise > 0 {
		for i := range f.Pix {
			f.Pix[i] += (s.rng.Float64()*2 - 1) * s.noise
		}
		f.Clamp(0, 255)
	}

	s.produced++
	return f, nil
}
