package nanoemoji

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a glyph outline path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a glyph outline as a sequence of path elements.
// Coordinates are in whatever space the producer used; glyph outlines start
// in font design units and are mapped into document space via [Path.Transform].
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at a point.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements (an outline with zero
// contours).
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Transform returns a new path with all points transformed by the matrix.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]PathElement, len(p.elements))}
	for i, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			out.elements[i] = MoveTo{Point: m.TransformPoint(e.Point)}
		case LineTo:
			out.elements[i] = LineTo{Point: m.TransformPoint(e.Point)}
		case QuadTo:
			out.elements[i] = QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			}
		case CubicTo:
			out.elements[i] = CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			}
		case Close:
			out.elements[i] = Close{}
		}
	}
	return out
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	out := &Path{elements: make([]PathElement, len(p.elements))}
	copy(out.elements, p.elements)
	return out
}

// String renders the path in SVG path-data syntax:
//
//	M10,10 L90,10 L90,90 L10,90 Z
//
// Commands are absolute, coordinate pairs are comma-joined, and consecutive
// points of one command are space-separated.
func (p *Path) String() string {
	var b strings.Builder
	for i, e := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := e.(type) {
		case MoveTo:
			b.WriteByte('M')
			writePoint(&b, e.Point)
		case LineTo:
			b.WriteByte('L')
			writePoint(&b, e.Point)
		case QuadTo:
			b.WriteByte('Q')
			writePoint(&b, e.Control)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case CubicTo:
			b.WriteByte('C')
			writePoint(&b, e.Control1)
			b.WriteByte(' ')
			writePoint(&b, e.Control2)
			b.WriteByte(' ')
			writePoint(&b, e.Point)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(ntos(pt.X))
	b.WriteByte(',')
	b.WriteString(ntos(pt.Y))
}

// ntosPrecision is the number of decimal places kept when rendering numbers
// into SVG attributes. Four places keep output compact while staying well
// below one design unit of visual error at typical upem values.
const ntosPrecision = 4

// ntos renders a number the way it appears in SVG attributes: rounded to
// ntosPrecision decimals, then printed in the shortest exact form
// ("10" rather than "10.0000", "-0" collapses to "0").
func ntos(v float64) string {
	pow := math.Pow10(ntosPrecision)
	v = math.Round(v*pow) / pow
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
