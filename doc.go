// Package nanoemoji converts OpenType COLR v1 color glyphs into SVG documents.
//
// # Overview
//
// A COLR v1 color glyph is described by a recursive paint graph: solid and
// gradient fills, glyph-shaped clips, affine transforms, layer stacks,
// composites, and references to other color glyphs. This package walks such a
// graph and emits an equivalent [svgtree.Document], deduplicating structurally
// identical output via a per-conversion reuse cache.
//
// # Quick Start
//
//	import "github.com/CyberTailor/nanoemoji"
//
//	font := &nanoemoji.StaticFont{ /* outlines, palette, color glyphs */ }
//	doc, err := nanoemoji.Convert(font, "smiley", nanoemoji.ViewBox{W: 128, H: 128})
//	if err != nil {
//		// conversion failed; no partial output is produced
//	}
//	svg := doc.String()
//
// # Font Access
//
// The font container is consumed through the narrow [Font] interface.
// [StaticFont] serves programmatic font builds and tests; [GoTextFont] adapts
// a go-text/typesetting face for outline and metric lookups.
//
// # Coordinate System
//
// Paint graphs are expressed in font design units with Y increasing upward.
// [Convert] maps the em square into the target viewBox, flipping Y into SVG's
// downward convention. Angles in paint nodes are degrees, counter-clockwise
// in font space, matching COLR.
//
// # Concurrency
//
// One conversion is a single synchronous traversal. Distinct glyphs may be
// converted concurrently as long as the shared [Font] is safe for concurrent
// reads; [StaticFont] (unmutated) and [GoTextFont] both are.
package nanoemoji
