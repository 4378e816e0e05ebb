package nanoemoji

import "math"

// Paint is one node of a COLR v1 paint graph.
// This is a sealed interface - only types in this package implement it; the
// walker matches every variant exhaustively.
//
// The format permits one node to be the child of multiple parents, so nodes
// are shared by pointer and never mutated during conversion.
type Paint interface {
	// paintMarker is an unexported method that seals this interface.
	paintMarker()
}

// PaintSolid fills the active clip with a single palette color.
// A bare solid with no enclosing PaintGlyph has no geometry and emits nothing.
type PaintSolid struct {
	PaletteIndex uint16
	Alpha        float64
}

func (*PaintSolid) paintMarker() {}

// PaintLinearGradient fills the active clip with a linear gradient.
// P0 and P1 span the color line; P2 sets the direction of the stop lines:
// the effective gradient vector is (P1-P0) projected onto the perpendicular
// of (P2-P0).
type PaintLinearGradient struct {
	ColorLine ColorLine
	P0, P1    Point
	P2        Point
}

func (*PaintLinearGradient) paintMarker() {}

// PaintRadialGradient fills the active clip with a gradient between two
// circles: (C0, R0) at offset 0 and (C1, R1) at offset 1.
type PaintRadialGradient struct {
	ColorLine ColorLine
	C0        Point
	R0        float64
	C1        Point
	R1        float64
}

func (*PaintRadialGradient) paintMarker() {}

// PaintSweepGradient fills the active clip with an angular gradient around
// Center, sweeping counter-clockwise from StartAngle to EndAngle (degrees).
type PaintSweepGradient struct {
	ColorLine  ColorLine
	Center     Point
	StartAngle float64
	EndAngle   float64
}

func (*PaintSweepGradient) paintMarker() {}

// PaintGlyph clips its child paint to the named glyph's outline.
type PaintGlyph struct {
	Paint Paint
	Glyph string
}

func (*PaintGlyph) paintMarker() {}

// PaintColrGlyph paints another top-level color glyph by name: an
// indirection into the font's color glyph set, not literal nesting.
// The current accumulated transform carries through the reference.
type PaintColrGlyph struct {
	Glyph string
}

func (*PaintColrGlyph) paintMarker() {}

// PaintTransform applies an arbitrary affine transform to its child paint.
type PaintTransform struct {
	Paint     Paint
	Transform Matrix
}

func (*PaintTransform) paintMarker() {}

// PaintTranslate translates its child paint.
type PaintTranslate struct {
	Paint  Paint
	Dx, Dy float64
}

func (*PaintTranslate) paintMarker() {}

// PaintScale scales its child paint about the origin.
type PaintScale struct {
	Paint          Paint
	ScaleX, ScaleY float64
}

func (*PaintScale) paintMarker() {}

// PaintScaleAroundCenter scales its child paint about Center.
type PaintScaleAroundCenter struct {
	Paint          Paint
	ScaleX, ScaleY float64
	Center         Point
}

func (*PaintScaleAroundCenter) paintMarker() {}

// PaintRotate rotates its child paint about the origin.
// Angle is in degrees, counter-clockwise in font space.
type PaintRotate struct {
	Paint Paint
	Angle float64
}

func (*PaintRotate) paintMarker() {}

// PaintRotateAroundCenter rotates its child paint about Center.
// Angle is in degrees, counter-clockwise in font space.
type PaintRotateAroundCenter struct {
	Paint  Paint
	Angle  float64
	Center Point
}

func (*PaintRotateAroundCenter) paintMarker() {}

// PaintSkew skews its child paint about the origin.
// Angles are in degrees; a positive XSkewAngle shifts points with positive Y
// toward negative X, matching COLR.
type PaintSkew struct {
	Paint      Paint
	XSkewAngle float64
	YSkewAngle float64
}

func (*PaintSkew) paintMarker() {}

// PaintSkewAroundCenter skews its child paint about Center.
type PaintSkewAroundCenter struct {
	Paint      Paint
	XSkewAngle float64
	YSkewAngle float64
	Center     Point
}

func (*PaintSkewAroundCenter) paintMarker() {}

// PaintComposite composites a source paint onto a backdrop paint under a
// compositing mode.
type PaintComposite struct {
	Source   Paint
	Mode     CompositeMode
	Backdrop Paint
}

func (*PaintComposite) paintMarker() {}

// PaintLayers paints its children back-to-front in slice order: later layers
// paint over earlier ones.
type PaintLayers struct {
	Layers []Paint
}

func (*PaintLayers) paintMarker() {}

// transformer is implemented by every paint variant that contributes an
// affine transform to the accumulated context.
type transformer interface {
	Paint
	transform() Matrix
	child() Paint
}

func (p *PaintTransform) transform() Matrix { return p.Transform }
func (p *PaintTransform) child() Paint      { return p.Paint }

func (p *PaintTranslate) transform() Matrix { return Translate(p.Dx, p.Dy) }
func (p *PaintTranslate) child() Paint      { return p.Paint }

func (p *PaintScale) transform() Matrix { return Scale(p.ScaleX, p.ScaleY) }
func (p *PaintScale) child() Paint      { return p.Paint }

func (p *PaintScaleAroundCenter) transform() Matrix {
	return ScaleAbout(p.ScaleX, p.ScaleY, p.Center.X, p.Center.Y)
}
func (p *PaintScaleAroundCenter) child() Paint { return p.Paint }

func (p *PaintRotate) transform() Matrix { return Rotate(radians(p.Angle)) }
func (p *PaintRotate) child() Paint      { return p.Paint }

func (p *PaintRotateAroundCenter) transform() Matrix {
	return RotateAbout(radians(p.Angle), p.Center.X, p.Center.Y)
}
func (p *PaintRotateAroundCenter) child() Paint { return p.Paint }

func (p *PaintSkew) transform() Matrix {
	return Skew(radians(p.XSkewAngle), radians(p.YSkewAngle))
}
func (p *PaintSkew) child() Paint { return p.Paint }

func (p *PaintSkewAroundCenter) transform() Matrix {
	return SkewAbout(radians(p.XSkewAngle), radians(p.YSkewAngle), p.Center.X, p.Center.Y)
}
func (p *PaintSkewAroundCenter) child() Paint { return p.Paint }

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
