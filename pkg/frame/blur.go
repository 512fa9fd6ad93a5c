package frame

// Kernel is a square symmetric convolution kernel with normalized weights.
type Kernel struct {
	// Size is the kernel edge length (odd).
	Size int

	// Weights holds Size*Size coefficients in row-major order, summing to 1.
	Weights []float64
}

// Gaussian3 is the 3x3 binomial approximation of a Gaussian, used for the
// light smoothing of the learning space.
var Gaussian3 = Kernel{
	Size: 3,
	Weights: []float64{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	},
}

// Gaussian5 is the 5x5 binomial approximation of a Gaussian, used for the
// deliberately stronger smoothing of recall composites.
var Gaussian5 = Kernel{
	Size: 5,
	Weights: []float64{
		1.0 / 256, 4.0 / 256, 6.0 / 256, 4.0 / 256, 1.0 / 256,
		4.0 / 256, 16.0 / 256, 24.0 / 256, 16.0 / 256, 4.0 / 256,
		6.0 / 256, 24.0 / 256, 36.0 / 256, 24.0 / 256, 6.0 / 256,
		4.0 / 256, 16.0 / 256, 24.0 / 256, 16.0 / 256, 4.0 / 256,
		1.0 / 256, 4.0 / 256, 6.0 / 256, 4.0 / 256, 1.0 / 256,
	},
}

// Blur convolves the frame with the kernel and returns a new frame.
//
// Edges are handled by replication: samples outside the frame take the
// value of the nearest edge pixel. A uniform frame is therefore invariant
// under Blur.
func Blur(f *Frame, k Kernel) *Frame {
	out := New(f.Width, f.Height)
	half := k.Size / 2
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			var acc float64
			for ky := 0; ky < k.Size; ky++ {
				sy := clampIndex(y+ky-half, f.Height)
				for kx := 0; kx < k.Size; kx++ {
					sx := clampIndex(x+kx-half, f.Width)
					acc += f.Pix[sy*f.Width+sx] * k.Weights[ky*k.Size+kx]
				}
			}
			out.Pix[y*f.Width+x] = acc
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
