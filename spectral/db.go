package spectral

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

const (
	// dbFloorRange is the displayed dynamic range: every value ends up
	// within this many dB of the loudest value.  Empirical, not
	// physically derived.
	dbFloorRange = 80.0

	// ampEpsilon keeps log10 away from zero amplitudes
	ampEpsilon = 1e-10

	// parallelDBThreshold is the buffer length above which the dB
	// passes run chunked across goroutines
	parallelDBThreshold = 1 << 16

	dbChunkSize = 1 << 14
)

// ToDB converts linear magnitudes to a decibel scale relative to the
// loudest value, in place, then clamps everything to an 80 dB floor
// below the post-conversion maximum.
//
// This is a two-pass algorithm: the clamp uses the global maximum, so
// the first pass must complete over the whole buffer before the second
// starts.  Both passes may run chunked in parallel, with a barrier in
// between.
func ToDB(buf []float64) {
	if len(buf) == 0 {
		return
	}

	refDB := floats.Max(buf)
	ampRef := refDB * refDB
	offset := 10 * math.Log10(math.Max(ampEpsilon, ampRef))

	if len(buf) < parallelDBThreshold {
		logSpecMax := math.Inf(-1)
		for i, val := range buf {
			db := 10*math.Log10(math.Max(ampEpsilon, val*val)) - offset
			buf[i] = db
			logSpecMax = math.Max(logSpecMax, db)
		}

		floor := logSpecMax - dbFloorRange
		for i, val := range buf {
			buf[i] = math.Max(val, floor)
		}
		return
	}

	toDBParallel(buf, offset)
}

// toDBParallel runs the convert and clamp passes chunked across
// goroutines.  The chunk maxima are reduced between the passes; the
// clamp never uses a chunk-local maximum.
func toDBParallel(buf []float64, offset float64) {
	numChunks := (len(buf) + dbChunkSize - 1) / dbChunkSize
	chunkMax := make([]float64, numChunks)

	var wg sync.WaitGroup
	for c := 0; c < numChunks; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			chunk := chunkOf(buf, c)

			localMax := math.Inf(-1)
			for i, val := range chunk {
				db := 10*math.Log10(math.Max(ampEpsilon, val*val)) - offset
				chunk[i] = db
				localMax = math.Max(localMax, db)
			}
			chunkMax[c] = localMax
		}(c)
	}
	wg.Wait()

	floor := floats.Max(chunkMax) - dbFloorRange

	for c := 0; c < numChunks; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			chunk := chunkOf(buf, c)
			for i, val := range chunk {
				chunk[i] = math.Max(val, floor)
			}
		}(c)
	}
	wg.Wait()
}

func chunkOf(buf []float64, c int) []float64 {
	start := c * dbChunkSize
	end := min(start+dbChunkSize, len(buf))
	return buf[start:end]
}

// MinMax returns the minimum and maximum values of the buffer.
func MinMax(buf []float64) (float64, float64) {
	if len(buf) == 0 {
		return 0, 0
	}
	return floats.Min(buf), floats.Max(buf)
}
