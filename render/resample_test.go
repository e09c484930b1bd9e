package render

import (
	"math"
	"math/rand"
	"testing"
)

func TestResampleIdentity(t *testing.T) {
	const w, h = 16, 12

	src := make([]float64, w*h)
	for i := range src {
		src[i] = float64(i%7) - 3.0
	}

	dst, err := Resample(src, w, h, w, h)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	for i := range src {
		if math.Abs(dst[i]-src[i]) > 1e-9 {
			t.Fatalf("identity resize changed value %d: %g -> %g", i, src[i], dst[i])
		}
	}
}

func TestResamplePreservesConstantField(t *testing.T) {
	const w, h = 20, 30

	src := make([]float64, w*h)
	for i := range src {
		src[i] = 42.5
	}

	tests := []struct{ dw, dh int }{
		{10, 15}, // downsample
		{40, 60}, // upsample
		{64, 7},  // mixed
	}

	for _, tt := range tests {
		dst, err := Resample(src, w, h, tt.dw, tt.dh)
		if err != nil {
			t.Fatalf("Resample to %dx%d: %v", tt.dw, tt.dh, err)
		}
		if len(dst) != tt.dw*tt.dh {
			t.Fatalf("result length %d, want %d", len(dst), tt.dw*tt.dh)
		}
		for i, v := range dst {
			if math.Abs(v-42.5) > 1e-9 {
				t.Fatalf("%dx%d: value %d = %g, want 42.5", tt.dw, tt.dh, i, v)
			}
		}
	}
}

func TestResampleDeterministic(t *testing.T) {
	const w, h = 33, 21

	rng := rand.New(rand.NewSource(3))
	src := make([]float64, w*h)
	for i := range src {
		src[i] = rng.NormFloat64()
	}

	a, err := Resample(src, w, h, 64, 64)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	b, err := Resample(src, w, h, 64, 64)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("non-deterministic result at %d: %g vs %g", i, a[i], b[i])
		}
	}
}

func TestResampleDownsampleAveragesRegions(t *testing.T) {
	// Left half 0, right half 1; halving the width must keep the step
	const w, h = 8, 4

	src := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			src[y*w+x] = 1.0
		}
	}

	dst, err := Resample(src, w, h, w/2, h)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	for y := 0; y < h; y++ {
		left := dst[y*(w/2)]
		right := dst[y*(w/2)+w/2-1]
		if left > 0.25 {
			t.Errorf("row %d: leftmost value %g, want near 0", y, left)
		}
		if right < 0.75 {
			t.Errorf("row %d: rightmost value %g, want near 1", y, right)
		}
	}
}

func TestResampleErrors(t *testing.T) {
	src := make([]float64, 4)

	if _, err := Resample(src, 2, 2, 0, 4); err == nil {
		t.Error("expected error for zero target width")
	}
	if _, err := Resample(src, 2, 2, 4, 0); err == nil {
		t.Error("expected error for zero target height")
	}
	if _, err := Resample(src, 0, 0, 4, 4); err == nil {
		t.Error("expected error for empty source")
	}
	if _, err := Resample(src, 3, 2, 4, 4); err == nil {
		t.Error("expected error for buffer/dimension mismatch")
	}
}
