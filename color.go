package nanoemoji

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{R: 0, G: 0, B: 0, A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// ForegroundPaletteIndex is the reserved CPAL palette index meaning
// "use the caller-supplied foreground color".
const ForegroundPaletteIndex uint16 = 0xFFFF

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

// channel8 maps a [0, 1] channel to the nearest 8-bit level.
func channel8(v float64) uint8 {
	return uint8(math.Round(clamp255(v * 255)))
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// WithAlpha returns the color with its alpha multiplied by alpha.
// COLR alpha values stack multiplicatively with palette alpha.
func (c RGBA) WithAlpha(alpha float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A * clamp01(alpha)}
}

// IsOpaque reports whether the color is fully opaque.
func (c RGBA) IsOpaque() bool {
	return c.A >= 1
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		}
	}
}

// hexValue renders the color channels as a lowercase #rrggbb string.
// The alpha channel is carried separately in SVG (fill-opacity, stop-opacity).
func (c RGBA) hexValue() string {
	return fmt.Sprintf("#%02x%02x%02x",
		channel8(c.R), channel8(c.G), channel8(c.B))
}

// paletteColor resolves CPAL index and alpha against a palette, substituting
// foreground for the reserved index. The alpha multiplier applies on top of
// the palette entry's own alpha.
func paletteColor(palette []RGBA, foreground RGBA, index uint16, alpha float64) (RGBA, error) {
	if index == ForegroundPaletteIndex {
		return foreground.WithAlpha(alpha), nil
	}
	if int(index) >= len(palette) {
		return RGBA{}, fmt.Errorf("palette index %d with %d entries: %w",
			index, len(palette), ErrPaletteIndexOutOfRange)
	}
	return palette[index].WithAlpha(alpha), nil
}

// clamp255 clamps a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
