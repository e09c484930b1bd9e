package freqscale

import "math"

// LogScaler scales the frequency axis to a natural log scale.  Rows
// near 0 receive the narrowest source spans; callers wanting the fine
// spans at the low-frequency end compose it against the reversed axis.
type LogScaler struct {
	logCoef      float64
	sourceHeight float64
}

// NewLogScaler creates a log scaler from sourceHeight bins to
// targetHeight rows.
func NewLogScaler(sourceHeight, targetHeight float64) *LogScaler {
	return &LogScaler{
		logCoef:      sourceHeight / math.Log(targetHeight+1),
		sourceHeight: sourceHeight,
	}
}

// Scale returns the source range covered by output row y.  Row y ends
// where row y+1 begins, row 0 starts at 0 and the last row ends at
// sourceHeight, so the rows tile the whole source axis.
func (s *LogScaler) Scale(y int) (float64, float64) {
	f1 := s.logCoef * math.Log(float64(y)+1)
	f2 := s.logCoef * math.Log(float64(y)+2)

	// Guard against floating point overshoot at the top edge
	if f2 > s.sourceHeight {
		f2 = s.sourceHeight
	}

	return f1, f2
}
