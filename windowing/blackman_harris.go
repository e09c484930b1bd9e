package windowing

import "math"

// BlackmanHarris represents a 4-term Blackman-Harris window function
type BlackmanHarris struct {
	size         int
	coefficients []float64
}

// NewBlackmanHarris creates a new Blackman-Harris window.  The size must
// be greater than 1.
func NewBlackmanHarris(size int) *BlackmanHarris {
	bh := &BlackmanHarris{size: size}
	bh.generate()
	return bh
}

// generate creates Blackman-Harris window coefficients
func (bh *BlackmanHarris) generate() {
	bh.coefficients = make([]float64, bh.size)

	denominator := float64(bh.size - 1)

	a0, a1, a2, a3 := 0.35875, 0.48829, 0.14128, 0.01168

	for i := 0; i < bh.size; i++ {
		arg := 2 * math.Pi * float64(i) / denominator
		bh.coefficients[i] = a0 - a1*math.Cos(arg) + a2*math.Cos(2*arg) - a3*math.Cos(3*arg)
	}
}

// Apply applies the window to a signal (creates new array)
func (bh *BlackmanHarris) Apply(signal []float64) []float64 {
	return applyCopy(bh.coefficients, signal)
}

// ApplyInPlace applies the window to a signal in-place
func (bh *BlackmanHarris) ApplyInPlace(signal []float64) error {
	return applyInPlace(bh.coefficients, signal)
}

// Coefficients returns a copy of the window coefficients
func (bh *BlackmanHarris) Coefficients() []float64 {
	return copyCoefficients(bh.coefficients)
}

// Size returns the window size
func (bh *BlackmanHarris) Size() int {
	return bh.size
}

// Name returns the window type
func (bh *BlackmanHarris) Name() string {
	return "blackman_harris"
}
