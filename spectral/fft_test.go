package spectral

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

// TestWindowedMagnitudesAgainstReference checks the plan-based
// transform against an independent FFT implementation.
func TestWindowedMagnitudesAgainstReference(t *testing.T) {
	const size = 256

	signal := make([]float64, size)
	window := make([]float64, size)
	for i := range signal {
		tm := float64(i) / size
		signal[i] = math.Sin(2*math.Pi*8*tm) + 0.25*math.Sin(2*math.Pi*33*tm)
		window[i] = 1.0
	}

	f := NewFFT(size)
	got := make([]float64, size/2)
	f.WindowedMagnitudes(got, signal, window)

	ref := fft.FFTReal(signal)
	for i := range got {
		want := cmplx.Abs(ref[i])
		if math.Abs(got[i]-want) > 1e-6 {
			t.Errorf("bin %d: magnitude %g, reference %g", i, got[i], want)
		}
	}
}

func TestWindowedMagnitudesAppliesWindow(t *testing.T) {
	const size = 64

	signal := make([]float64, size)
	for i := range signal {
		signal[i] = 1.0
	}

	// An all-zero window must produce an all-zero spectrum
	window := make([]float64, size)

	f := NewFFT(size)
	got := make([]float64, size/2)
	f.WindowedMagnitudes(got, signal, window)

	for i, v := range got {
		if v != 0 {
			t.Errorf("bin %d = %g, want 0 under a zero window", i, v)
		}
	}
}

func TestWindowedMagnitudesNoAllocs(t *testing.T) {
	const size = 1024

	signal := make([]float64, size)
	window := make([]float64, size)
	for i := range signal {
		signal[i] = math.Sin(float64(i) * 0.05)
		window[i] = 1.0
	}

	f := NewFFT(size)
	dst := make([]float64, size/2)

	f.WindowedMagnitudes(dst, signal, window)
	allocs := testing.AllocsPerRun(100, func() {
		f.WindowedMagnitudes(dst, signal, window)
	})

	if allocs > 0 {
		t.Errorf("expected zero allocations per frame, got %.1f", allocs)
	}
}

func BenchmarkWindowedMagnitudes(b *testing.B) {
	const size = 2048

	signal := make([]float64, size)
	window := make([]float64, size)
	for i := range signal {
		signal[i] = math.Sin(float64(i) * 0.01)
		window[i] = 1.0
	}

	f := NewFFT(size)
	dst := make([]float64, size/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.WindowedMagnitudes(dst, signal, window)
	}
}
