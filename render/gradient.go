// Package render turns scalar spectrogram buffers into pixels: it
// resamples buffers to the requested resolution and maps values to
// colour through configurable gradients.
package render

import (
	"fmt"
	"math"
)

// RGBA is one colour with an alpha channel, one byte per channel as
// required for RGBA image buffers.
type RGBA struct {
	R, G, B, A uint8
}

// Bytes returns the colour as a 4-byte RGBA slice.
func (c RGBA) Bytes() []byte {
	return []byte{c.R, c.G, c.B, c.A}
}

// Gradient maps a scalar value in [min, max] to a colour by linear
// interpolation across an ordered list of control colours.  The zero
// value is unusable; build one with NewGradient or a theme constructor
// and at least two AddColour calls.
type Gradient struct {
	colours []RGBA
	min     float64
	max     float64
	locked  bool
}

// NewGradient creates an empty gradient over the domain [0, 1].
func NewGradient() *Gradient {
	return &Gradient{min: 0.0, max: 1.0}
}

// AddColour appends a control colour to the top end of the gradient.
func (g *Gradient) AddColour(colour RGBA) {
	g.colours = append(g.colours, colour)
}

// SetMin sets the bottom of the scalar domain.
func (g *Gradient) SetMin(min float64) {
	g.min = min
}

// SetMax sets the top of the scalar domain.
func (g *Gradient) SetMax(max float64) {
	g.max = max
}

// LockDomain fixes the scalar domain so renderers will not overwrite it
// with the computed dB range.
func (g *Gradient) LockDomain(min, max float64) {
	g.min = min
	g.max = max
	g.locked = true
}

// Locked reports whether the domain was fixed by the caller.
func (g *Gradient) Locked() bool {
	return g.locked
}

// Min returns the bottom of the scalar domain.
func (g *Gradient) Min() float64 {
	return g.min
}

// Max returns the top of the scalar domain.
func (g *Gradient) Max() float64 {
	return g.max
}

// Validate checks the gradient is usable for colour mapping.
func (g *Gradient) Validate() error {
	if len(g.colours) < 2 {
		return fmt.Errorf("gradient needs at least 2 colours, has %d", len(g.colours))
	}
	if g.max < g.min {
		return fmt.Errorf("gradient domain is inverted: max %g < min %g", g.max, g.min)
	}
	return nil
}

// GetColour maps a value to a colour.  Values outside [min, max] clamp
// to the endpoint colours, so the mapping is total over the real line.
// The gradient must hold at least two colours.
func (g *Gradient) GetColour(value float64) RGBA {
	if value >= g.max {
		return g.colours[len(g.colours)-1]
	}
	if value <= g.min {
		return g.colours[0]
	}

	// Scale into colour-band space and split into band index and the
	// position within the band
	scaled := (value - g.min) / (g.max - g.min) * float64(len(g.colours)-1)
	idx := int(math.Floor(scaled))
	ratio := scaled - float64(idx)

	first := g.colours[idx]
	second := g.colours[idx+1]

	return RGBA{
		R: interpolate(first.R, second.R, ratio),
		G: interpolate(first.G, second.G, ratio),
		B: interpolate(first.B, second.B, ratio),
		A: interpolate(first.A, second.A, ratio),
	}
}

// Legend samples the gradient at evenly spaced values across the domain
// and returns a strip of the given pixel length, low end first.
func (g *Gradient) Legend(length int) []RGBA {
	if length <= 0 {
		return nil
	}

	strip := make([]RGBA, length)
	if length == 1 {
		strip[0] = g.GetColour(g.min)
		return strip
	}

	step := (g.max - g.min) / float64(length-1)
	for i := range strip {
		strip[i] = g.GetColour(g.min + float64(i)*step)
	}
	return strip
}

func interpolate(start, finish uint8, ratio float64) uint8 {
	return uint8(math.Round((float64(finish)-float64(start))*ratio + float64(start)))
}
