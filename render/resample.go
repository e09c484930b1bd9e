package render

import (
	"fmt"
	"math"
)

// lanczosOrder is the filter order: the kernel spans ±3 source samples.
const lanczosOrder = 3.0

// Resample resizes a row-major single-channel buffer of srcW x srcH
// values to dstW x dstH using a separable Lanczos-3 filter.  It handles
// both up- and down-sampling; for downsampling the kernel is widened by
// the scale factor so the result is properly band limited.
//
// The operation is deterministic and does not modify src.
func Resample(src []float64, srcW, srcH, dstW, dstH int) ([]float64, error) {
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("source dimensions must be positive, got %dx%d", srcW, srcH)
	}
	if dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("target dimensions must be positive, got %dx%d", dstW, dstH)
	}
	if len(src) != srcW*srcH {
		return nil, fmt.Errorf("source buffer is %d values, want %d for %dx%d", len(src), srcW*srcH, srcW, srcH)
	}

	// Horizontal pass into an intermediate dstW x srcH buffer, then
	// vertical pass to dstW x dstH
	horizontal := resampleAxis(src, srcW, srcH, dstW, true)
	return resampleAxis(horizontal, srcH, dstW, dstH, false), nil
}

// resampleAxis resamples one axis of the buffer.  For the horizontal
// pass the buffer is srcLen x lines row-major; for the vertical pass it
// is lines x srcLen row-major and columns are walked instead of rows.
func resampleAxis(src []float64, srcLen, lines, dstLen int, horizontal bool) []float64 {
	weights := makeWeights(srcLen, dstLen)

	dst := make([]float64, dstLen*lines)
	for line := 0; line < lines; line++ {
		for d := 0; d < dstLen; d++ {
			w := &weights[d]

			var acc float64
			for k, weight := range w.values {
				s := w.start + k
				if horizontal {
					acc += src[line*srcLen+s] * weight
				} else {
					acc += src[s*lines+line] * weight
				}
			}

			if horizontal {
				dst[line*dstLen+d] = acc
			} else {
				dst[d*lines+line] = acc
			}
		}
	}

	return dst
}

// contribution holds the normalised filter weights of one output sample
// over the source range [start, start+len(values)).
type contribution struct {
	start  int
	values []float64
}

// makeWeights precomputes, for each output coordinate, which source
// samples contribute and with what weight.  Weights are normalised so a
// constant field survives resizing exactly.
func makeWeights(srcLen, dstLen int) []contribution {
	scale := float64(srcLen) / float64(dstLen)

	// Widen the kernel when minifying
	filterScale := math.Max(scale, 1.0)
	support := lanczosOrder * filterScale

	weights := make([]contribution, dstLen)
	for d := 0; d < dstLen; d++ {
		// Centre of this output sample in source coordinates
		centre := (float64(d)+0.5)*scale - 0.5

		start := int(math.Ceil(centre - support))
		end := int(math.Floor(centre + support))
		if start < 0 {
			start = 0
		}
		if end > srcLen-1 {
			end = srcLen - 1
		}

		values := make([]float64, end-start+1)
		var sum float64
		for s := start; s <= end; s++ {
			w := lanczosKernel((float64(s) - centre) / filterScale)
			values[s-start] = w
			sum += w
		}

		if sum != 0 {
			for i := range values {
				values[i] /= sum
			}
		}

		weights[d] = contribution{start: start, values: values}
	}

	return weights
}

// lanczosKernel computes the Lanczos windowed sinc
func lanczosKernel(x float64) float64 {
	x = math.Abs(x)
	if x < 1e-12 {
		return 1.0
	}
	if x >= lanczosOrder {
		return 0.0
	}

	px := math.Pi * x
	return (lanczosOrder * math.Sin(px) * math.Sin(px/lanczosOrder)) / (px * px)
}
