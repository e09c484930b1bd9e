package sonogram

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-sonogram/logging"
	"github.com/RyanBlaney/sonido-sonogram/render"
	"github.com/RyanBlaney/sonido-sonogram/spectral"
	"github.com/RyanBlaney/sonido-sonogram/wave"
	"github.com/RyanBlaney/sonido-sonogram/windowing"
)

// SpecOptionsBuilder collects the pipeline options and the sample data,
// then Build validates everything and produces a Spectrograph.  Setters
// chain; the first error any of them hits is remembered and returned by
// Build, so a whole chain can be written without intermediate checks.
//
//	spectrograph, err := sonogram.NewSpecOptionsBuilder(2048).
//		Channel(1).
//		LoadDataFromFile("recording.wav").
//		SetWindowFn("blackman_harris").
//		Build()
type SpecOptionsBuilder struct {
	numBins    int
	stepSize   int
	sampleRate int
	channel    int
	data       []float64
	windowName string
	gradient   *render.Gradient
	parallel   bool
	logger     logging.Logger
	err        error
}

// NewSpecOptionsBuilder creates a builder for a pipeline with the given
// FFT frame length.  The step size defaults to numBins (no overlap),
// the window to rectangular and the gradient to the default theme.
func NewSpecOptionsBuilder(numBins int) *SpecOptionsBuilder {
	return &SpecOptionsBuilder{
		numBins:    numBins,
		stepSize:   numBins,
		sampleRate: 8000,
		channel:    1,
		windowName: "rectangular",
		gradient:   render.DefaultTheme(),
		parallel:   true,
		logger:     logging.GetGlobalLogger(),
	}
}

// SetStepSize sets the frame stride.  Values below numBins make the
// frames overlap, increasing time resolution and computational cost.
func (b *SpecOptionsBuilder) SetStepSize(stepSize int) *SpecOptionsBuilder {
	b.stepSize = stepSize
	return b
}

// SetWindowFn selects the window function by name: "rectangular",
// "hann" or "blackman_harris".
func (b *SpecOptionsBuilder) SetWindowFn(name string) *SpecOptionsBuilder {
	b.windowName = name
	return b
}

// SetGradient replaces the default colour gradient.
func (b *SpecOptionsBuilder) SetGradient(gradient *render.Gradient) *SpecOptionsBuilder {
	b.gradient = gradient
	return b
}

// SetLogger sets the logger observing the pipeline.
func (b *SpecOptionsBuilder) SetLogger(logger logging.Logger) *SpecOptionsBuilder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// SetParallel enables or disables the parallel frame workers.
func (b *SpecOptionsBuilder) SetParallel(parallel bool) *SpecOptionsBuilder {
	b.parallel = parallel
	return b
}

// Channel selects the 1-based audio channel extracted by
// LoadDataFromFile.  Call it before loading.
func (b *SpecOptionsBuilder) Channel(channel int) *SpecOptionsBuilder {
	if channel < 1 {
		b.fail(fmt.Errorf("%w: channel must be 1 or greater, got %d", wave.ErrInvalidChannel, channel))
		return b
	}
	b.channel = channel
	return b
}

// LoadDataFromFile reads a 16-bit PCM WAV file, extracting the channel
// previously selected with Channel.
func (b *SpecOptionsBuilder) LoadDataFromFile(path string) *SpecOptionsBuilder {
	file, err := wave.ReadFile(path, b.channel)
	if err != nil {
		b.fail(err)
		return b
	}

	b.data = file.Samples
	b.sampleRate = file.SampleRate

	b.logger.Debug("loaded wav file", logging.Fields{
		"path":        path,
		"sample_rate": file.SampleRate,
		"channels":    file.Channels,
		"samples":     len(file.Samples),
	})

	return b
}

// LoadDataFromMemory uses raw 16-bit samples, normalising them to
// [-1, 1].
func (b *SpecOptionsBuilder) LoadDataFromMemory(data []int16, sampleRate int) *SpecOptionsBuilder {
	b.data = make([]float64, len(data))
	for i, s := range data {
		b.data[i] = float64(s) / 32767.0
	}
	b.sampleRate = sampleRate
	return b
}

// LoadDataFromMemoryF64 uses samples already normalised to [-1, 1].
func (b *SpecOptionsBuilder) LoadDataFromMemoryF64(data []float64, sampleRate int) *SpecOptionsBuilder {
	b.data = data
	b.sampleRate = sampleRate
	return b
}

// Downsample reduces the sample data by the given divisor, averaging
// each group of divisor samples.  A cheap way of shrinking the FFT work
// for long signals.
func (b *SpecOptionsBuilder) Downsample(divisor int) *SpecOptionsBuilder {
	if divisor < 1 {
		b.fail(fmt.Errorf("%w: got %d", ErrInvalidDivisor, divisor))
		return b
	}
	if divisor == 1 {
		return b
	}
	if len(b.data) == 0 {
		b.fail(fmt.Errorf("%w: load data before calling Downsample", ErrIncompleteData))
		return b
	}

	n := len(b.data) / divisor
	for j := 0; j < n; j++ {
		var sum float64
		for _, v := range b.data[j*divisor : (j+1)*divisor] {
			sum += v
		}
		b.data[j] = sum / float64(divisor)
	}
	b.data = b.data[:n]
	b.sampleRate /= divisor

	return b
}

// Scale multiplies every sample by the given factor.
func (b *SpecOptionsBuilder) Scale(factor float64) *SpecOptionsBuilder {
	if len(b.data) == 0 {
		b.fail(fmt.Errorf("%w: load data before calling Scale", ErrIncompleteData))
		return b
	}
	if factor == 1.0 {
		return b
	}

	for i := range b.data {
		b.data[i] *= factor
	}
	return b
}

// Normalise rescales the samples so the peak amplitude is 1.  Silent
// signals are left untouched.
func (b *SpecOptionsBuilder) Normalise() *SpecOptionsBuilder {
	if len(b.data) == 0 {
		b.fail(fmt.Errorf("%w: load data before calling Normalise", ErrIncompleteData))
		return b
	}

	var peak float64
	for _, v := range b.data {
		peak = math.Max(peak, math.Abs(v))
	}
	if peak == 0 {
		b.logger.Warn("normalise skipped: signal is silent")
		return b
	}

	for i := range b.data {
		b.data[i] /= peak
	}
	return b
}

// Build validates the collected options and returns a Spectrograph
// ready to compute.  All validation happens here, before any
// computation begins; out-of-contract options are never silently
// replaced with defaults.
func (b *SpecOptionsBuilder) Build() (*Spectrograph, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.numBins <= 16 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNumBins, b.numBins)
	}
	if b.stepSize < 1 || b.stepSize > b.numBins {
		return nil, fmt.Errorf("%w: got %d with %d bins", ErrInvalidStepSize, b.stepSize, b.numBins)
	}
	if len(b.data) == 0 {
		return nil, fmt.Errorf("%w: no data loaded", ErrIncompleteData)
	}
	if len(b.data) < b.numBins+b.stepSize {
		return nil, fmt.Errorf("%w: %d samples cannot fill a %d sample frame at step %d",
			ErrIncompleteData, len(b.data), b.numBins, b.stepSize)
	}
	if err := b.gradient.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGradient, err)
	}

	window, err := windowing.ByName(b.windowName, b.numBins)
	if err != nil {
		return nil, err
	}

	compute, err := spectral.NewSpecCompute(b.numBins, b.stepSize, window,
		spectral.WithParallel(b.parallel),
		spectral.WithLogger(b.logger),
	)
	if err != nil {
		return nil, err
	}

	b.logger.Info("spectrogram pipeline ready", logging.Fields{
		"samples":     len(b.data),
		"sample_rate": b.sampleRate,
		"length_sec":  float64(len(b.data)) / float64(b.sampleRate),
		"num_bins":    b.numBins,
		"step_size":   b.stepSize,
		"window":      b.windowName,
	})

	return &Spectrograph{
		compute:    compute,
		data:       b.data,
		sampleRate: b.sampleRate,
		gradient:   b.gradient,
		logger:     b.logger,
	}, nil
}

// fail records the first error hit by a setter
func (b *SpecOptionsBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
