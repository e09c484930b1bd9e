package windowing

import "fmt"

// Window is a precomputed window function applied to fixed-length frames
// before the FFT.  Implementations precompute their coefficients once so
// the per-frame inner loop is a plain multiply.
type Window interface {
	// Apply applies the window to a signal (creates new array)
	Apply(signal []float64) []float64

	// ApplyInPlace applies the window to a signal in-place
	ApplyInPlace(signal []float64) error

	// Coefficients returns a copy of the window coefficients
	Coefficients() []float64

	// Size returns the window size
	Size() int

	// Name returns the window type name
	Name() string
}

// ByName creates a window of the given size from its configuration name.
// Recognised names are "rectangular", "hann" and "blackman_harris".
// Callers must supply size > 1; the option builder enforces a minimum
// frame length of 17 before this is reached.
func ByName(name string, size int) (Window, error) {
	if size <= 1 {
		return nil, fmt.Errorf("window size must be greater than 1, got %d", size)
	}

	switch name {
	case "rectangular":
		return NewRectangular(size), nil
	case "hann":
		return NewHann(size), nil
	case "blackman_harris":
		return NewBlackmanHarris(size), nil
	default:
		return nil, fmt.Errorf("unknown window function: %q", name)
	}
}

func applyCopy(coefficients, signal []float64) []float64 {
	if len(signal) != len(coefficients) {
		return nil
	}

	windowed := make([]float64, len(signal))
	for i := range signal {
		windowed[i] = signal[i] * coefficients[i]
	}

	return windowed
}

func applyInPlace(coefficients, signal []float64) error {
	if len(signal) != len(coefficients) {
		return fmt.Errorf("signal length (%d) doesn't match window size (%d)", len(signal), len(coefficients))
	}

	for i := range signal {
		signal[i] *= coefficients[i]
	}

	return nil
}

func copyCoefficients(coefficients []float64) []float64 {
	coeffs := make([]float64, len(coefficients))
	copy(coeffs, coefficients)
	return coeffs
}
