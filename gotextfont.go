package nanoemoji

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/CyberTailor/nanoemoji/internal/cache"
)

// GoTextFont adapts a go-text/typesetting face to the Font interface,
// resolving glyph outlines and metrics from real font binaries. Palette and
// color glyph data are supplied by the caller: the paint graph model of this
// package is the source of truth for COLR content.
//
// font.Face is not safe for concurrent use (it keeps internal glyph caches),
// so all face access is serialized behind a mutex; resolved outlines and
// metrics are memoized in sharded caches, keeping the lock off the hot path
// when many conversions share one font.
type GoTextFont struct {
	mu   sync.Mutex
	face *font.Face

	names       map[string]font.GID
	palette     []RGBA
	foreground  RGBA
	colorGlyphs map[string]Paint

	outlines *cache.Sharded[uint32, *Path]
	advances *cache.Sharded[uint32, fixed.Int26_6]
}

var _ Font = (*GoTextFont)(nil)

// NewGoTextFont parses TTF/OTF font data.
func NewGoTextFont(data []byte) (*GoTextFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &GoTextFont{
		face:        face,
		names:       make(map[string]font.GID),
		foreground:  Black,
		colorGlyphs: make(map[string]Paint),
		outlines:    cache.NewSharded[uint32, *Path](0, cache.Uint32Hasher),
		advances:    cache.NewSharded[uint32, fixed.Int26_6](0, cache.Uint32Hasher),
	}, nil
}

// NameGlyph registers a glyph name for a glyph ID. Paint graphs address
// glyphs by name; names not registered here resolve through the cmap when
// the name is a single rune.
func (f *GoTextFont) NameGlyph(name string, gid font.GID) {
	f.names[name] = gid
}

// SetPalette sets the palette colors addressed by paint palette indices.
func (f *GoTextFont) SetPalette(palette []RGBA) {
	f.palette = palette
}

// SetForeground sets the color substituted for ForegroundPaletteIndex.
func (f *GoTextFont) SetForeground(c RGBA) {
	f.foreground = c
}

// SetColorGlyph registers the root paint of a color glyph.
//
// All registration must finish before conversions start; like every Font
// implementation, GoTextFont is only read concurrently, never mutated.
func (f *GoTextFont) SetColorGlyph(name string, p Paint) {
	f.colorGlyphs[name] = p
}

// resolveGID maps a glyph name to a glyph ID: registered names first, then
// single-rune names through the cmap.
func (f *GoTextFont) resolveGID(name string) (font.GID, error) {
	if gid, ok := f.names[name]; ok {
		return gid, nil
	}
	runes := []rune(name)
	if len(runes) == 1 {
		f.mu.Lock()
		gid, ok := f.face.NominalGlyph(runes[0])
		f.mu.Unlock()
		if ok {
			return gid, nil
		}
	}
	return 0, fmt.Errorf("glyph %q: %w", name, ErrUnknownGlyph)
}

// GlyphOutline implements Font. Outlines are converted from the face's
// segment form into a Path in font design units and memoized per glyph ID.
func (f *GoTextFont) GlyphOutline(glyph string) (*Path, error) {
	gid, err := f.resolveGID(glyph)
	if err != nil {
		return nil, err
	}
	outline := f.outlines.GetOrCreate(uint32(gid), func() *Path {
		f.mu.Lock()
		defer f.mu.Unlock()
		data, ok := f.face.GlyphData(gid).(font.GlyphOutline)
		if !ok {
			return NewPath()
		}
		return segmentsToPath(data.Segments)
	})
	return outline, nil
}

// GlyphMetrics implements Font.
func (f *GoTextFont) GlyphMetrics(glyph string) (advance, bearing float64, err error) {
	gid, err := f.resolveGID(glyph)
	if err != nil {
		return 0, 0, err
	}
	adv := f.advances.GetOrCreate(uint32(gid), func() fixed.Int26_6 {
		f.mu.Lock()
		defer f.mu.Unlock()
		return floatToFixed(float64(f.face.HorizontalAdvance(gid)))
	})

	f.mu.Lock()
	extents, ok := f.face.GlyphExtents(gid)
	f.mu.Unlock()
	if ok {
		bearing = float64(extents.XBearing)
	}
	return fixedToFloat(adv), bearing, nil
}

// PaletteColor implements Font.
func (f *GoTextFont) PaletteColor(index uint16, alpha float64) (RGBA, error) {
	return paletteColor(f.palette, f.foreground, index, alpha)
}

// ColorGlyph implements Font.
func (f *GoTextFont) ColorGlyph(name string) (Paint, bool) {
	p, ok := f.colorGlyphs[name]
	return p, ok
}

// UnitsPerEm implements Font.
func (f *GoTextFont) UnitsPerEm() uint16 {
	return f.face.Upem()
}

// segmentsToPath converts typesetting outline segments into a Path.
// Segment coordinates are already in font design units, Y up. Contours are
// implicitly closed in the segment form; an explicit Close is emitted before
// each new contour and at the end.
func segmentsToPath(segments []opentype.Segment) *Path {
	p := NewPath()
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
			open = true
		case opentype.SegmentOpLineTo:
			p.LineTo(float64(seg.Args[0].X), float64(seg.Args[0].Y))
		case opentype.SegmentOpQuadTo:
			p.QuadraticTo(
				float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y))
		case opentype.SegmentOpCubeTo:
			p.CubicTo(
				float64(seg.Args[0].X), float64(seg.Args[0].Y),
				float64(seg.Args[1].X), float64(seg.Args[1].Y),
				float64(seg.Args[2].X), float64(seg.Args[2].Y))
		}
	}
	if open {
		p.Close()
	}
	return p
}

// floatToFixed converts a value in font units to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
