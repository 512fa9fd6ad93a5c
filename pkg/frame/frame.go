// Package frame provides the fixed-dimension single-channel frame type and
// the pixel-level numeric operations the rest of the system is built on.
//
// A Frame carries intensity samples in the nominal 0-255 range as float64
// for arithmetic stability. Every frame in one pipeline shares the same
// dimensions; the pixelwise operations in this package require it.
package frame

import "fmt"

// Frame is a fixed-dimension 2-D grid of intensity samples.
//
// Pixels are stored row-major. Values are semantically unsigned 8-bit
// (0-255) but carried as float64 so decay and blending do not lose
// precision between cycles.
type Frame struct {
	// Width is the number of columns.
	Width int

	// Height is the number of rows.
	Height int

	// Pix holds Width*Height samples in row-major order.
	Pix []float64
}

// New creates an all-zero frame of the given dimensions.
func New(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// FromBytes creates a frame from raw 8-bit samples in row-major order.
//
// Returns an error if len(data) does not match width*height.
func FromBytes(width, height int, data []byte) (*Frame, error) {
	if len(data) != width*height {
		return nil, fmt.Errorf("frame: expected %d samples for %dx%d, got %d",
			width*height, width, height, len(data))
	}
	f := New(width, height)
	for i, b := range data {
		f.Pix[i] = float64(b)
	}
	return f, nil
}

// Uniform creates a frame with every pixel set to v.
func Uniform(width, height int, v float64) *Frame {
	f := New(width, height)
	for i := range f.Pix {
		f.Pix[i] = v
	}
	return f
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{
		Width:  f.Width,
		Height: f.Height,
		Pix:    make([]float64, len(f.Pix)),
	}
	copy(c.Pix, f.Pix)
	return c
}

// SameSize reports whether the two frames share dimensions.
func (f *Frame) SameSize(other *Frame) bool {
	return other != nil && f.Width == other.Width && f.Height == other.Height
}

// At returns the sample at column x, row y. No bounds checking beyond the
// slice's own.
func (f *Frame) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

// Set stores v at column x, row y.
func (f *Frame) Set(x, y int, v float64) {
	f.Pix[y*f.Width+x] = v
}

// Scaled returns a new frame with every sample multiplied by factor.
//
// This is the per-cycle decay primitive: factor in (0,1) fades the frame
// toward zero.
func (f *Frame) Scaled(factor float64) *Frame {
	out := New(f.Width, f.Height)
	for i, v := range f.Pix {
		out.Pix[i] = v * factor
	}
	return out
}

// ScaleInPlace multiplies every sample by factor without allocating.
func (f *Frame) ScaleInPlace(factor float64) {
	for i := range f.Pix {
		f.Pix[i] *= factor
	}
}

// AbsDiff returns the pixelwise absolute difference |a - b|.
//
// Both frames must share dimensions; this is a precondition, not a
// recoverable error.
func AbsDiff(a, b *Frame) *Frame {
	out := New(a.Width, a.Height)
	for i := range a.Pix {
		d := a.Pix[i] - b.Pix[i]
		if d < 0 {
			d = -d
		}
		out.Pix[i] = d
	}
	return out
}

// Clamp limits every sample to the [lo, hi] range in place.
func (f *Frame) Clamp(lo, hi float64) {
	for i, v := range f.Pix {
		if v < lo {
			f.Pix[i] = lo
		} else if v > hi {
			f.Pix[i] = hi
		}
	}
}

// ToBytes converts the frame to raw 8-bit samples, clamping to 0-255 and
// rounding half up. This is the display-side conversion; the float state
// is left untouched.
func (f *Frame) ToBytes() []byte {
	out := make([]byte, len(f.Pix))
	for i, v := range f.Pix {
		r := v + 0.5
		if r < 0 {
			r = 0
		} else if r > 255 {
			r = 255
		}
		out[i] = byte(r)
	}
	return out
}
