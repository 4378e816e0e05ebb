package nanoemoji

import "fmt"

// Font is the narrow surface the converter consumes from a font container.
// Implementations must be safe for concurrent reads so that distinct glyphs
// can be converted in parallel.
type Font interface {
	// GlyphOutline returns the named glyph's outline in font design units.
	// An outline with zero contours is returned as an empty, non-nil path.
	GlyphOutline(glyph string) (*Path, error)

	// GlyphMetrics returns the horizontal advance and left side bearing of
	// the named glyph, in font design units.
	GlyphMetrics(glyph string) (advance, bearing float64, err error)

	// PaletteColor resolves a CPAL palette index and alpha multiplier to a
	// concrete color. Index ForegroundPaletteIndex resolves to the
	// caller-supplied foreground color.
	PaletteColor(index uint16, alpha float64) (RGBA, error)

	// ColorGlyph returns the root paint of the named color glyph,
	// or false when the name is not in the font's color glyph set.
	ColorGlyph(name string) (Paint, bool)

	// UnitsPerEm returns the font's design units per em.
	UnitsPerEm() uint16
}

// StaticFont is an in-memory Font for programmatic font builds and tests.
// The zero value is usable; a nil Palette resolves only the foreground index.
//
// StaticFont is safe for concurrent use as long as its maps and slices are
// not mutated while conversions run.
type StaticFont struct {
	// Outlines maps glyph names to outlines in font design units.
	Outlines map[string]*Path

	// Advances maps glyph names to horizontal advances. Glyphs without an
	// entry default to Upem.
	Advances map[string]float64

	// Bearings maps glyph names to left side bearings, defaulting to 0.
	Bearings map[string]float64

	// Palette holds the CPAL colors addressed by paint palette indices.
	Palette []RGBA

	// Foreground substitutes for ForegroundPaletteIndex.
	// The zero value paints black.
	Foreground RGBA

	// ColorGlyphs maps color glyph names to their root paints.
	ColorGlyphs map[string]Paint

	// Upem is the design units per em; 0 defaults to 1000.
	Upem uint16
}

var _ Font = (*StaticFont)(nil)

// GlyphOutline implements Font.
func (f *StaticFont) GlyphOutline(glyph string) (*Path, error) {
	p, ok := f.Outlines[glyph]
	if !ok {
		return nil, fmt.Errorf("outline %q: %w", glyph, ErrUnknownGlyph)
	}
	return p, nil
}

// GlyphMetrics implements Font.
func (f *StaticFont) GlyphMetrics(glyph string) (advance, bearing float64, err error) {
	if _, ok := f.Outlines[glyph]; !ok {
		return 0, 0, fmt.Errorf("metrics %q: %w", glyph, ErrUnknownGlyph)
	}
	advance = float64(f.UnitsPerEm())
	if a, ok := f.Advances[glyph]; ok {
		advance = a
	}
	return advance, f.Bearings[glyph], nil
}

// PaletteColor implements Font.
func (f *StaticFont) PaletteColor(index uint16, alpha float64) (RGBA, error) {
	fg := f.Foreground
	if fg == (RGBA{}) {
		fg = Black
	}
	return paletteColor(f.Palette, fg, index, alpha)
}

// ColorGlyph implements Font.
func (f *StaticFont) ColorGlyph(name string) (Paint, bool) {
	p, ok := f.ColorGlyphs[name]
	return p, ok
}

// UnitsPerEm implements Font.
func (f *StaticFont) UnitsPerEm() uint16 {
	if f.Upem == 0 {
		return 1000
	}
	return f.Upem
}
