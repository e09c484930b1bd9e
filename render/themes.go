package render

import "fmt"

// DefaultTheme is a black to green gradient through purple, blue and
// cyan.
func DefaultTheme() *Gradient {
	g := NewGradient()
	g.AddColour(RGBA{0, 0, 0, 255})     // Black
	g.AddColour(RGBA{55, 0, 110, 255})  // Purple
	g.AddColour(RGBA{0, 0, 180, 255})   // Blue
	g.AddColour(RGBA{0, 255, 255, 255}) // Cyan
	g.AddColour(RGBA{0, 255, 0, 255})   // Green
	return g
}

// AudacityTheme matches the default colouring of the audio application
// of the same name.
func AudacityTheme() *Gradient {
	g := NewGradient()
	g.AddColour(RGBA{215, 215, 215, 255}) // Grey
	g.AddColour(RGBA{114, 169, 242, 255}) // Blue
	g.AddColour(RGBA{227, 61, 215, 255})  // Pink
	g.AddColour(RGBA{246, 55, 55, 255})   // Red
	g.AddColour(RGBA{255, 255, 255, 255}) // White
	return g
}

// RainbowTheme runs black through the spectrum up to white.
func RainbowTheme() *Gradient {
	g := NewGradient()
	g.AddColour(RGBA{0, 0, 0, 255})       // Black
	g.AddColour(RGBA{148, 0, 211, 255})   // Violet
	g.AddColour(RGBA{75, 0, 130, 255})    // Indigo
	g.AddColour(RGBA{0, 0, 255, 255})     // Blue
	g.AddColour(RGBA{0, 255, 0, 255})     // Green
	g.AddColour(RGBA{255, 255, 0, 255})   // Yellow
	g.AddColour(RGBA{255, 127, 0, 255})   // Orange
	g.AddColour(RGBA{255, 0, 0, 255})     // Red
	g.AddColour(RGBA{255, 255, 255, 255}) // White
	return g
}

// BlackWhiteTheme is a monochrome black background to white foreground
// gradient.
func BlackWhiteTheme() *Gradient {
	g := NewGradient()
	g.AddColour(RGBA{0, 0, 0, 255})       // Black
	g.AddColour(RGBA{255, 255, 255, 255}) // White
	return g
}

// WhiteBlackTheme is the reversed monochrome gradient.
func WhiteBlackTheme() *Gradient {
	g := NewGradient()
	g.AddColour(RGBA{255, 255, 255, 255}) // White
	g.AddColour(RGBA{0, 0, 0, 255})       // Black
	return g
}

// ThemeByName resolves a configuration name to a gradient.
func ThemeByName(name string) (*Gradient, error) {
	switch name {
	case "default":
		return DefaultTheme(), nil
	case "audacity":
		return AudacityTheme(), nil
	case "rainbow":
		return RainbowTheme(), nil
	case "black-white":
		return BlackWhiteTheme(), nil
	case "white-black":
		return WhiteBlackTheme(), nil
	default:
		return nil, fmt.Errorf("unknown colour gradient: %q", name)
	}
}
