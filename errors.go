package sonogram

import "errors"

var (
	// ErrIncompleteData means no sample data was loaded, or the signal
	// is too short to fill a single FFT frame.
	ErrIncompleteData = errors.New("sonogram: not enough sample data")

	// ErrInvalidDivisor means a downsample divisor below 1 was given.
	ErrInvalidDivisor = errors.New("sonogram: downsample divisor must be 1 or greater")

	// ErrInvalidNumBins means the FFT frame length is too small to be
	// useful.
	ErrInvalidNumBins = errors.New("sonogram: num bins must be greater than 16")

	// ErrInvalidStepSize means the frame stride is outside [1, numBins].
	ErrInvalidStepSize = errors.New("sonogram: step size must be between 1 and num bins")

	// ErrInvalidGradient means the colour gradient cannot map values:
	// fewer than two colours, or an inverted domain.
	ErrInvalidGradient = errors.New("sonogram: invalid colour gradient")
)
