package spectral

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-sonogram/windowing"
)

func sineSignal(length int, freqHz, sampleRate float64) []float64 {
	signal := make([]float64, length)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * freqHz * float64(i) / sampleRate)
	}
	return signal
}

func TestNewSpecComputeValidation(t *testing.T) {
	hann64 := windowing.NewHann(64)

	tests := []struct {
		name     string
		numBins  int
		stepSize int
		window   windowing.Window
	}{
		{"num bins too small", 16, 16, windowing.NewHann(16)},
		{"zero step size", 64, 0, hann64},
		{"step size above num bins", 64, 65, hann64},
		{"nil window", 64, 64, nil},
		{"window size mismatch", 128, 128, hann64},
	}

	for _, tt := range tests {
		if _, err := NewSpecCompute(tt.numBins, tt.stepSize, tt.window); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestComputeShapeInvariant(t *testing.T) {
	const (
		numBins  = 128
		stepSize = 32
		samples  = 10_000
	)

	sc, err := NewSpecCompute(numBins, stepSize, windowing.NewHann(numBins))
	if err != nil {
		t.Fatalf("NewSpecCompute: %v", err)
	}

	m, err := sc.Compute(sineSignal(samples, 440, 8000))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	wantWidth := (samples - numBins) / stepSize
	wantHeight := numBins / 2

	if m.Width != wantWidth {
		t.Errorf("Width = %d, want %d", m.Width, wantWidth)
	}
	if m.Height != wantHeight {
		t.Errorf("Height = %d, want %d", m.Height, wantHeight)
	}
	if len(m.Data) != wantWidth*wantHeight {
		t.Errorf("len(Data) = %d, want %d", len(m.Data), wantWidth*wantHeight)
	}
}

func TestComputeRejectsShortSignal(t *testing.T) {
	sc, err := NewSpecCompute(2048, 2048, windowing.NewHann(2048))
	if err != nil {
		t.Fatalf("NewSpecCompute: %v", err)
	}

	if _, err := sc.Compute(nil); err == nil {
		t.Error("expected error for empty signal")
	}
	if _, err := sc.Compute(make([]float64, 100)); err == nil {
		t.Error("expected error for signal shorter than one frame")
	}
	// Exactly one frame length still yields zero complete strides
	if _, err := sc.Compute(make([]float64, 2048)); err == nil {
		t.Error("expected error when no frame fits")
	}
}

func TestComputePeakBin(t *testing.T) {
	const (
		numBins    = 1024
		sampleRate = 8000.0
		freq       = 440.0
	)

	sc, err := NewSpecCompute(numBins, numBins, windowing.NewHann(numBins))
	if err != nil {
		t.Fatalf("NewSpecCompute: %v", err)
	}

	m, err := sc.Compute(sineSignal(8*numBins+1, freq, sampleRate))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// The energy peak must land on the bin closest to 440Hz
	wantBin := int(math.Round(freq / sampleRate * numBins))

	for x := 0; x < m.Width; x++ {
		peakBin, peakVal := 0, 0.0
		for y := 0; y < m.Height; y++ {
			if v := m.At(x, y); v > peakVal {
				peakBin, peakVal = y, v
			}
		}
		if d := peakBin - wantBin; d < -1 || d > 1 {
			t.Errorf("column %d: peak at bin %d, want %d±1", x, peakBin, wantBin)
		}
	}
}

func TestComputeParallelMatchesSequential(t *testing.T) {
	const (
		numBins  = 256
		stepSize = 64
	)

	signal := sineSignal(50_000, 1234, 44100)
	window := windowing.NewBlackmanHarris(numBins)

	seq, err := NewSpecCompute(numBins, stepSize, window, WithParallel(false))
	if err != nil {
		t.Fatalf("NewSpecCompute: %v", err)
	}
	par, err := NewSpecCompute(numBins, stepSize, window, WithParallel(true))
	if err != nil {
		t.Fatalf("NewSpecCompute: %v", err)
	}

	mSeq, err := seq.Compute(signal)
	if err != nil {
		t.Fatalf("sequential Compute: %v", err)
	}
	mPar, err := par.Compute(signal)
	if err != nil {
		t.Fatalf("parallel Compute: %v", err)
	}

	if mSeq.Width != mPar.Width || mSeq.Height != mPar.Height {
		t.Fatalf("shape mismatch: %dx%d vs %dx%d", mSeq.Width, mSeq.Height, mPar.Width, mPar.Height)
	}

	for i := range mSeq.Data {
		if math.Abs(mSeq.Data[i]-mPar.Data[i]) > 1e-9 {
			t.Fatalf("value mismatch at %d: %g vs %g", i, mSeq.Data[i], mPar.Data[i])
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	const numBins = 128

	signal := sineSignal(20_000, 700, 16000)

	sc, err := NewSpecCompute(numBins, numBins, windowing.NewHann(numBins))
	if err != nil {
		t.Fatalf("NewSpecCompute: %v", err)
	}

	m1, err := sc.Compute(signal)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	m2, err := sc.Compute(signal)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for i := range m1.Data {
		if m1.Data[i] != m2.Data[i] {
			t.Fatalf("value mismatch at %d: %g vs %g", i, m1.Data[i], m2.Data[i])
		}
	}
}

func BenchmarkCompute(b *testing.B) {
	const numBins = 2048

	signal := sineSignal(1 << 20, 440, 44100)
	sc, err := NewSpecCompute(numBins, numBins, windowing.NewHann(numBins))
	if err != nil {
		b.Fatalf("NewSpecCompute: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sc.Compute(signal); err != nil {
			b.Fatal(err)
		}
	}
}
