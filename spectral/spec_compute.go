package spectral

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/RyanBlaney/sonido-sonogram/logging"
	"github.com/RyanBlaney/sonido-sonogram/windowing"
)

// MinNumBins is the smallest usable FFT frame length.  Below this the
// frequency resolution is useless and the symmetric window denominators
// stop being meaningful.
const MinNumBins = 17

// Matrix is a dense magnitude (or, after ToDB, decibel) matrix of
// Width time columns by Height frequency rows, stored row-major.
// Row 0 is the lowest frequency bin (DC); the flip that puts low
// frequencies at the bottom of an image happens exactly once, during
// rendering.
type Matrix struct {
	Data   []float64
	Width  int
	Height int
}

// At returns the value for time column x and frequency row y.
func (m *Matrix) At(x, y int) float64 {
	return m.Data[y*m.Width+x]
}

// Row returns the frequency row y as a slice into the matrix.
func (m *Matrix) Row(y int) []float64 {
	return m.Data[y*m.Width : (y+1)*m.Width]
}

// SpecCompute slides a window of numBins samples across the signal at
// stride stepSize and produces one magnitude column per frame.  It is
// built once per signal and can compute multiple matrices.
type SpecCompute struct {
	numBins  int
	stepSize int
	window   windowing.Window
	parallel bool
	logger   logging.Logger
}

// Option configures a SpecCompute.
type Option func(*SpecCompute)

// WithParallel enables or disables computing frames across a worker
// pool.  Parallel is the default.
func WithParallel(parallel bool) Option {
	return func(s *SpecCompute) {
		s.parallel = parallel
	}
}

// WithLogger sets the logger used for computation diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(s *SpecCompute) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSpecCompute validates the frame parameters and returns a
// SpecCompute ready to process sample data.
func NewSpecCompute(numBins, stepSize int, window windowing.Window, opts ...Option) (*SpecCompute, error) {
	if numBins < MinNumBins {
		return nil, fmt.Errorf("num bins must be at least %d, got %d", MinNumBins, numBins)
	}
	if stepSize < 1 {
		return nil, fmt.Errorf("step size must be at least 1, got %d", stepSize)
	}
	if stepSize > numBins {
		return nil, fmt.Errorf("step size (%d) must not exceed num bins (%d)", stepSize, numBins)
	}
	if window == nil {
		return nil, fmt.Errorf("window function is required")
	}
	if window.Size() != numBins {
		return nil, fmt.Errorf("window size (%d) doesn't match num bins (%d)", window.Size(), numBins)
	}

	s := &SpecCompute{
		numBins:  numBins,
		stepSize: stepSize,
		window:   window,
		parallel: true,
		logger:   logging.GetGlobalLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NumBins returns the FFT frame length.
func (s *SpecCompute) NumBins() int {
	return s.numBins
}

// StepSize returns the frame stride.
func (s *SpecCompute) StepSize() int {
	return s.stepSize
}

// Compute runs the framing and transform stage over the sample data and
// returns the magnitude matrix.  The data slice is read-only to the
// computation and may be shared across calls.
func (s *SpecCompute) Compute(data []float64) (*Matrix, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty signal")
	}
	if len(data) < s.numBins {
		return nil, fmt.Errorf("signal too short: %d samples for a %d sample frame", len(data), s.numBins)
	}

	width := (len(data) - s.numBins) / s.stepSize
	height := s.numBins / 2

	if width == 0 {
		return nil, fmt.Errorf("signal too short: no complete frame fits at step size %d", s.stepSize)
	}

	m := &Matrix{
		Data:   make([]float64, width*height),
		Width:  width,
		Height: height,
	}

	s.logger.Debug("computing spectrogram", logging.Fields{
		"frames":    width,
		"freq_bins": height,
		"num_bins":  s.numBins,
		"step_size": s.stepSize,
		"window":    s.window.Name(),
	})

	coeffs := s.window.Coefficients()

	workers := s.workerCount(width)
	if !s.parallel || workers <= 1 {
		s.computeFrames(m, data, coeffs, 0, width)
		return m, nil
	}

	// Each worker owns its FFT plan and scratch column and writes a
	// disjoint range of time columns, so no synchronisation is needed
	// beyond the final wait.
	var wg sync.WaitGroup
	chunk := (width + workers - 1) / workers

	for start := 0; start < width; start += chunk {
		end := min(start+chunk, width)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s.computeFrames(m, data, coeffs, start, end)
		}(start, end)
	}

	wg.Wait()

	return m, nil
}

// computeFrames fills columns [start, end) of the matrix using a single
// FFT plan and a reused scratch column.
func (s *SpecCompute) computeFrames(m *Matrix, data, coeffs []float64, start, end int) {
	fft := NewFFT(s.numBins)
	column := make([]float64, m.Height)

	for w := start; w < end; w++ {
		p := w * s.stepSize
		fft.WindowedMagnitudes(column, data[p:p+s.numBins], coeffs)

		for h, val := range column {
			m.Data[h*m.Width+w] = val
		}
	}
}

// workerCount sizes the worker pool to the workload
func (s *SpecCompute) workerCount(numFrames int) int {
	numCPU := runtime.NumCPU()

	// Small workloads are not worth spreading out
	if numFrames < 8 {
		return 1
	}
	if numFrames < 100 {
		return min(numCPU/2, numFrames)
	}
	return numCPU
}
