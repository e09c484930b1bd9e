package spectral

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFT wraps a reusable real-input forward transform plan together with
// its scratch buffers.  Building the plan is the expensive part, so one
// FFT is created per frame length and reused for every frame.
//
// An FFT is not safe for concurrent use; parallel frame workers each own
// their own instance.
type FFT struct {
	size   int
	plan   *fourier.FFT
	input  []float64
	coeffs []complex128
}

// NewFFT creates a reusable FFT plan for frames of the given length.
func NewFFT(size int) *FFT {
	return &FFT{
		size:   size,
		plan:   fourier.NewFFT(size),
		input:  make([]float64, size),
		coeffs: make([]complex128, size/2+1),
	}
}

// Size returns the frame length the plan was built for.
func (f *FFT) Size() int {
	return f.size
}

// WindowedMagnitudes multiplies frame by the window coefficients, runs
// the forward transform and writes the magnitudes of the first len(dst)
// bins into dst.  frame and window must have length Size; dst must not
// be longer than Size/2+1.  No allocation occurs once the plan is built.
func (f *FFT) WindowedMagnitudes(dst, frame, window []float64) {
	for i := range f.input {
		f.input[i] = frame[i] * window[i]
	}

	f.plan.Coefficients(f.coeffs, f.input)

	for i := range dst {
		dst[i] = cmplx.Abs(f.coeffs[i])
	}
}
