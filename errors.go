package nanoemoji

import "errors"

// Conversion errors. All are terminal for the single glyph being converted:
// the walker propagates the first error it encounters and the partially
// built document is discarded. Callers converting a batch of glyphs should
// handle errors per glyph and continue with the rest.
var (
	// ErrUnknownGlyph reports an outline or color-glyph lookup miss.
	ErrUnknownGlyph = errors.New("nanoemoji: unknown glyph")

	// ErrPaletteIndexOutOfRange reports a palette index beyond the palette.
	ErrPaletteIndexOutOfRange = errors.New("nanoemoji: palette index out of range")

	// ErrCyclicReference reports a color glyph that transitively references
	// itself through PaintColrGlyph indirection.
	ErrCyclicReference = errors.New("nanoemoji: cyclic color glyph reference")

	// ErrUnsupportedComposite reports a compositing mode with no SVG
	// equivalent. Unsupported modes fail loudly rather than approximate.
	ErrUnsupportedComposite = errors.New("nanoemoji: unsupported composite mode")

	// ErrMalformedPaint reports a structurally invalid paint node, such as a
	// gradient with a negative radius.
	ErrMalformedPaint = errors.New("nanoemoji: malformed paint")
)
