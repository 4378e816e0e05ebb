package nanoemoji

import (
	"errors"
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000000", Black},
		{"#ffffff", White},
		{"#ff0000", RGB(1, 0, 0)},
		{"00ff00", RGB(0, 1, 0)},
		{"#0000ff80", RGBA{B: 1, A: 128.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Hex(tt.in)
			if !colorsAlmostEqual(got, tt.want) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func colorsAlmostEqual(a, b RGBA) bool {
	const eps = 1e-6
	return abs(a.R-b.R) < eps && abs(a.G-b.G) < eps &&
		abs(a.B-b.B) < eps && abs(a.A-b.A) < eps
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestHexValue(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{RGB(0, 0, 1), "#0000ff"},
		{RGBA{R: 1, G: 0.5, B: 0, A: 0.5}, "#ff8000"},
		// Channels land on the nearest 8-bit level, never the floor.
		{RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}, "#808080"},
		{RGBA{R: 0.999, G: 0.001, B: 0.2, A: 1}, "#ff0033"},
	}
	for _, tt := range tests {
		if got := tt.c.hexValue(); got != tt.want {
			t.Errorf("hexValue(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestColorRoundsChannels(t *testing.T) {
	got := RGBA{R: 0.5, G: 1, B: 0, A: 0.5}.Color()
	want := color.NRGBA{R: 128, G: 255, B: 0, A: 128}
	if got != want {
		t.Errorf("Color() = %+v, want %+v", got, want)
	}
}

func TestWithAlphaMultiplies(t *testing.T) {
	c := RGBA{R: 1, A: 0.5}
	if got := c.WithAlpha(0.5); got.A != 0.25 {
		t.Errorf("WithAlpha(0.5).A = %v, want 0.25", got.A)
	}
	if got := c.WithAlpha(3); got.A != 0.5 {
		t.Errorf("WithAlpha(3).A = %v, want alpha clamped at 0.5", got.A)
	}
	if got := c.WithAlpha(-1); got.A != 0 {
		t.Errorf("WithAlpha(-1).A = %v, want 0", got.A)
	}
}

func TestPaletteColor(t *testing.T) {
	palette := []RGBA{RGB(1, 0, 0), {B: 1, A: 0.5}}
	fg := RGB(0, 1, 0)

	t.Run("index", func(t *testing.T) {
		got, err := paletteColor(palette, fg, 0, 1)
		if err != nil {
			t.Fatalf("paletteColor: %v", err)
		}
		if got != RGB(1, 0, 0) {
			t.Errorf("got %+v, want red", got)
		}
	})

	t.Run("alpha multiplies entry alpha", func(t *testing.T) {
		got, err := paletteColor(palette, fg, 1, 0.5)
		if err != nil {
			t.Fatalf("paletteColor: %v", err)
		}
		if got.A != 0.25 {
			t.Errorf("A = %v, want 0.25", got.A)
		}
	})

	t.Run("foreground sentinel", func(t *testing.T) {
		got, err := paletteColor(palette, fg, ForegroundPaletteIndex, 1)
		if err != nil {
			t.Fatalf("paletteColor: %v", err)
		}
		if got != fg {
			t.Errorf("got %+v, want foreground %+v", got, fg)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := paletteColor(palette, fg, 2, 1)
		if !errors.Is(err, ErrPaletteIndexOutOfRange) {
			t.Errorf("err = %v, want ErrPaletteIndexOutOfRange", err)
		}
	})

	t.Run("nil palette resolves only foreground", func(t *testing.T) {
		if _, err := paletteColor(nil, fg, 0, 1); !errors.Is(err, ErrPaletteIndexOutOfRange) {
			t.Errorf("err = %v, want ErrPaletteIndexOutOfRange", err)
		}
		got, err := paletteColor(nil, fg, ForegroundPaletteIndex, 1)
		if err != nil || got != fg {
			t.Errorf("foreground lookup = %+v, %v", got, err)
		}
	})
}

func TestIsOpaque(t *testing.T) {
	if !Black.IsOpaque() {
		t.Error("Black.IsOpaque() = false")
	}
	if (RGBA{R: 1, A: 0.999}).IsOpaque() {
		t.Error("translucent color reported opaque")
	}
}
