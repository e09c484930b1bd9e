package render

import "testing"

func TestGetColourTwoStop(t *testing.T) {
	g := NewGradient()
	g.AddColour(RGBA{0, 0, 0, 255})
	g.AddColour(RGBA{255, 255, 255, 255})
	g.SetMin(0.0)
	g.SetMax(1.0)

	if got := g.GetColour(0.0); got != (RGBA{0, 0, 0, 255}) {
		t.Errorf("GetColour(0.0) = %+v, want black", got)
	}
	if got := g.GetColour(1.0); got != (RGBA{255, 255, 255, 255}) {
		t.Errorf("GetColour(1.0) = %+v, want white", got)
	}
	if got := g.GetColour(0.5); got != (RGBA{128, 128, 128, 255}) {
		t.Errorf("GetColour(0.5) = %+v, want mid-grey", got)
	}
}

func TestGetColourClampsOutsideDomain(t *testing.T) {
	g := BlackWhiteTheme()
	g.SetMin(-10.0)
	g.SetMax(10.0)

	if got := g.GetColour(-100.0); got != (RGBA{0, 0, 0, 255}) {
		t.Errorf("below-domain value = %+v, want first colour", got)
	}
	if got := g.GetColour(100.0); got != (RGBA{255, 255, 255, 255}) {
		t.Errorf("above-domain value = %+v, want last colour", got)
	}
}

func TestGetColourShiftedDomain(t *testing.T) {
	// Interpolation has to be relative to min, not to zero
	g := NewGradient()
	g.AddColour(RGBA{0, 0, 0, 255})
	g.AddColour(RGBA{200, 100, 50, 255})
	g.SetMin(-80.0)
	g.SetMax(0.0)

	if got := g.GetColour(-40.0); got != (RGBA{100, 50, 25, 255}) {
		t.Errorf("GetColour(-40) = %+v, want half-way colour", got)
	}
}

func TestGetColourThreeStop(t *testing.T) {
	g := NewGradient()
	g.AddColour(RGBA{0, 0, 0, 255})
	g.AddColour(RGBA{255, 255, 255, 255})
	g.AddColour(RGBA{0, 0, 0, 255})
	g.SetMin(0.0)
	g.SetMax(1.0)

	if got := g.GetColour(0.5); got != (RGBA{255, 255, 255, 255}) {
		t.Errorf("GetColour(0.5) = %+v, want middle colour", got)
	}
	if got := g.GetColour(0.25); got != (RGBA{128, 128, 128, 255}) {
		t.Errorf("GetColour(0.25) = %+v, want mid-grey", got)
	}
	if got := g.GetColour(0.75); got != (RGBA{128, 128, 128, 255}) {
		t.Errorf("GetColour(0.75) = %+v, want mid-grey", got)
	}
}

func TestValidate(t *testing.T) {
	g := NewGradient()
	if err := g.Validate(); err == nil {
		t.Error("expected error for empty gradient")
	}

	g.AddColour(RGBA{0, 0, 0, 255})
	if err := g.Validate(); err == nil {
		t.Error("expected error for single-colour gradient")
	}

	g.AddColour(RGBA{255, 255, 255, 255})
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}

	g.SetMin(1.0)
	g.SetMax(0.0)
	if err := g.Validate(); err == nil {
		t.Error("expected error for inverted domain")
	}
}

func TestLockDomain(t *testing.T) {
	g := BlackWhiteTheme()
	if g.Locked() {
		t.Error("fresh gradient should not be locked")
	}

	g.LockDomain(-60.0, 0.0)
	if !g.Locked() {
		t.Error("gradient should be locked after LockDomain")
	}
	if g.Min() != -60.0 || g.Max() != 0.0 {
		t.Errorf("domain = [%g, %g], want [-60, 0]", g.Min(), g.Max())
	}
}

func TestLegend(t *testing.T) {
	g := BlackWhiteTheme()
	g.SetMin(0.0)
	g.SetMax(1.0)

	strip := g.Legend(11)
	if len(strip) != 11 {
		t.Fatalf("legend length = %d, want 11", len(strip))
	}

	if strip[0] != (RGBA{0, 0, 0, 255}) {
		t.Errorf("legend start = %+v, want black", strip[0])
	}
	if strip[10] != (RGBA{255, 255, 255, 255}) {
		t.Errorf("legend end = %+v, want white", strip[10])
	}
	if strip[5] != (RGBA{128, 128, 128, 255}) {
		t.Errorf("legend middle = %+v, want mid-grey", strip[5])
	}

	if got := g.Legend(0); got != nil {
		t.Errorf("Legend(0) = %v, want nil", got)
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"default", "audacity", "rainbow", "black-white", "white-black"} {
		g, err := ThemeByName(name)
		if err != nil {
			t.Errorf("ThemeByName(%q): %v", name, err)
			continue
		}
		if err := g.Validate(); err != nil {
			t.Errorf("ThemeByName(%q) gradient invalid: %v", name, err)
		}
	}

	if _, err := ThemeByName("viridis"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
