// Package freqscale maps output row indices to ranges of source
// frequency bins.  A Scaler answers, for each output row y, which
// continuous span [f1, f2) of the source bins that row covers; the
// spans of consecutive rows are contiguous and together cover the
// whole source axis.
package freqscale

import "fmt"

// Scale selects the frequency axis mapping for the vertical axis.
type Scale int

const (
	Linear Scale = iota
	Log
)

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Log:
		return "log"
	default:
		return "unknown"
	}
}

// ByName resolves a configuration name to a Scale
func ByName(name string) (Scale, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "log":
		return Log, nil
	default:
		return Linear, fmt.Errorf("unknown frequency scale: %q", name)
	}
}

// Scaler maps an output row index to a source bin range.  Implementations
// are stateless after initialisation and safe for concurrent use.
type Scaler interface {
	// Scale returns the (f1, f2) source range covered by output row y,
	// with 0 <= f1 < f2 <= sourceHeight for all y in [0, targetHeight).
	Scale(y int) (float64, float64)
}

// NewScaler creates the Scaler for the given Scale.
//
// sourceHeight is the number of source frequency bins, i.e. half the FFT
// frame length.  targetHeight is the output grid height in cells/pixels.
func NewScaler(scale Scale, sourceHeight, targetHeight float64) (Scaler, error) {
	if sourceHeight <= 0 || targetHeight <= 0 {
		return nil, fmt.Errorf("scaler dimensions must be positive, got %gx%g", sourceHeight, targetHeight)
	}

	switch scale {
	case Linear:
		return NewLinearScaler(sourceHeight, targetHeight), nil
	case Log:
		return NewLogScaler(sourceHeight, targetHeight), nil
	default:
		return nil, fmt.Errorf("unknown frequency scale: %d", scale)
	}
}
