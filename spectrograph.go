// Package sonogram converts a time-domain audio signal into a
// time-frequency magnitude image: it frames the signal, applies a
// window function, runs a forward FFT per frame, converts to decibels,
// remaps the frequency axis, resamples to the target resolution and
// maps values to colour.
//
// A Spectrograph is assembled with SpecOptionsBuilder, computes once
// per signal and can render the result any number of times with
// different scales, gradients and resolutions.
package sonogram

import (
	"fmt"

	"github.com/RyanBlaney/sonido-sonogram/logging"
	"github.com/RyanBlaney/sonido-sonogram/render"
	"github.com/RyanBlaney/sonido-sonogram/spectral"
)

// Spectrograph holds the validated pipeline and the sample data.  It is
// created by SpecOptionsBuilder.Build.
type Spectrograph struct {
	compute    *spectral.SpecCompute
	data       []float64
	sampleRate int
	gradient   *render.Gradient
	logger     logging.Logger
}

// SampleRate returns the sample rate of the loaded data in Hz.
func (s *Spectrograph) SampleRate() int {
	return s.sampleRate
}

// SetData replaces the sample data with a new set.  None of the builder
// preprocessing (downsample, scale, normalise) is applied; the samples
// are used in their raw form.
func (s *Spectrograph) SetData(data []float64) {
	s.data = data
}

// Compute runs the framing and transform stage and returns the
// spectrogram, ready for rendering.
func (s *Spectrograph) Compute() (*Spectrogram, error) {
	matrix, err := s.compute.Compute(s.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteData, err)
	}

	s.logger.Debug("spectrogram computed", logging.Fields{
		"width":  matrix.Width,
		"height": matrix.Height,
	})

	return &Spectrogram{
		matrix:     matrix,
		sampleRate: s.sampleRate,
		gradient:   s.gradient,
		logger:     s.logger,
	}, nil
}
