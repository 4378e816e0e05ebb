package nanoemoji

// ViewBox describes the coordinate-space bounds of the output document,
// in SVG user units with Y increasing downward.
type ViewBox struct {
	MinX, MinY float64
	W, H       float64
}

// IsZero reports whether the view box is the zero value.
func (v ViewBox) IsZero() bool {
	return v == ViewBox{}
}

// attrValue renders the view box in SVG viewBox attribute syntax.
func (v ViewBox) attrValue() string {
	return ntos(v.MinX) + " " + ntos(v.MinY) + " " + ntos(v.W) + " " + ntos(v.H)
}

// viewBoxTransform maps the font's em square (design units, Y up, origin at
// the baseline/left sidebearing corner) onto the view box (SVG user units,
// Y down). X and Y are scaled uniformly by H/upem; the Y axis is flipped so
// that the top of the em square lands on the top edge of the view box.
func viewBoxTransform(upem uint16, v ViewBox) Matrix {
	s := v.H / float64(upem)
	return Translate(v.MinX, v.MinY+v.H).Multiply(Scale(s, -s))
}
