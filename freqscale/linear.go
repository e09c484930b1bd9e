package freqscale

// LinearScaler scales the frequency axis linearly.
type LinearScaler struct {
	ratio float64
}

// NewLinearScaler creates a linear scaler from sourceHeight bins to
// targetHeight rows.
func NewLinearScaler(sourceHeight, targetHeight float64) *LinearScaler {
	return &LinearScaler{
		ratio: sourceHeight / targetHeight,
	}
}

// Scale returns the source range covered by output row y.
func (s *LinearScaler) Scale(y int) (float64, float64) {
	f1 := s.ratio * float64(y)
	f2 := s.ratio * float64(y+1)
	return f1, f2
}
