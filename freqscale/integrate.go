package freqscale

import "math"

// boundaryEpsilon keeps x2 values that land exactly on an integer
// boundary inside the previous bin.
const boundaryEpsilon = 1e-6

// Integrate computes the area of spec over the fractional index range
// [x1, x2), treating spec as a piecewise-constant step function.  It is
// the area, not the average, so remapping with contiguous ranges
// conserves total energy.
//
// Partial bins at either end contribute proportionally to the fraction
// of the bin covered.  Ranges that overrun the end of spec are clamped
// to the last bin.
func Integrate(x1, x2 float64, spec []float64) float64 {
	if len(spec) == 0 || x2 <= x1 {
		return 0.0
	}

	i1 := int(math.Floor(x1))
	i2 := int(math.Floor(x2 - boundaryEpsilon))

	if i1 >= len(spec) {
		i1 = len(spec) - 1
	}

	if i1 >= i2 {
		// The whole range lies within a single bin
		return spec[i1] * (x2 - x1)
	}

	// Partial first bin
	result := spec[i1] * (float64(i1+1) - x1)

	// Whole bins in between
	for i := i1 + 1; i < i2 && i < len(spec); i++ {
		result += spec[i]
	}

	// Partial last bin, clamped if the range overruns the array
	if i2 >= len(spec) {
		i2 = len(spec) - 1
	}
	result += spec[i2] * (x2 - float64(i2))

	return result
}
