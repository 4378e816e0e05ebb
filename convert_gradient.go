package nanoemoji

import (
	"fmt"

	"github.com/CyberTailor/nanoemoji/svgtree"
)

// convertGradient fills the active clip outline with a gradient definition.
// Like solids, a gradient with no enclosing PaintGlyph has no geometry and
// emits nothing.
//
// Degenerate color line policy (documented, tested):
//   - zero stops paint nothing;
//   - a single stop behaves as a solid fill of that stop's color;
//   - stops collapsing to one offset behave as a solid of the last stop,
//     the color a padded color line shows almost everywhere.
func (c *converter) convertGradient(p Paint, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	var cl ColorLine
	switch p := p.(type) {
	case *PaintLinearGradient:
		cl = p.ColorLine
	case *PaintRadialGradient:
		if p.R0 < 0 || p.R1 < 0 {
			return nil, fmt.Errorf("radial gradient with negative radius: %w", ErrMalformedPaint)
		}
		cl = p.ColorLine
	case *PaintSweepGradient:
		cl = p.ColorLine
	}

	stops, err := resolveColorLine(c.font, cl)
	if err != nil {
		return nil, err
	}
	if ctx.clip == nil || ctx.clip.Empty() {
		Logger().Debug("gradient paint without clip emits nothing")
		return nil, nil
	}

	switch len(stops) {
	case 0:
		Logger().Warn("gradient with no color stops emits nothing")
		return nil, nil
	case 1:
		Logger().Warn("gradient with one color stop painted as solid")
		return c.fillClip(stops[0].Color, ctx, parent), nil
	}
	if stops[0].Offset == stops[len(stops)-1].Offset {
		Logger().Warn("gradient stops collapse to one offset, painted as solid")
		return c.fillClip(stops[len(stops)-1].Color, ctx, parent), nil
	}

	norm, first, last := normalizeStops(stops)

	var def *svgtree.Element
	switch p := p.(type) {
	case *PaintLinearGradient:
		def = linearGradientElement(p, first, last)
		if def == nil {
			Logger().Warn("degenerate linear gradient emits nothing")
			return nil, nil
		}
	case *PaintRadialGradient:
		def = radialGradientElement(p, first, last)
		if def == nil {
			Logger().Warn("degenerate radial gradient emits nothing")
			return nil, nil
		}
	case *PaintSweepGradient:
		def = sweepGradientElement(p, first, last)
	}

	if spread := cl.Extend.spreadMethod(); spread != "" {
		def.SetAttr("spreadMethod", spread)
	}
	if !ctx.transform.IsIdentity() {
		def.SetAttr("gradientTransform", ctx.transform.svgValue())
	}
	for _, s := range norm {
		stop := svgtree.NewElement("stop").SetAttr("offset", ntos(s.Offset))
		stop.SetAttr("stop-color", s.Color.hexValue())
		if !s.Color.IsOpaque() {
			stop.SetAttr("stop-opacity", ntos(s.Color.A))
		}
		def.AppendChild(stop)
	}
	id := c.doc.AddDef("grad", def)

	el := svgtree.NewElement("path").SetAttr("d", ctx.clipData)
	el.SetAttr("fill", "url(#"+id+")")
	parent.AppendChild(el)
	return el, nil
}

// fillClip emits the active clip outline filled with a solid color.
func (c *converter) fillClip(color RGBA, ctx renderContext, parent *svgtree.Element) *svgtree.Element {
	el := svgtree.NewElement("path").SetAttr("d", ctx.clipData)
	setFill(el, color)
	parent.AppendChild(el)
	return el
}

// linearGradientElement computes the effective gradient line and renders it
// as a <linearGradient>. COLR's third point P2 sets the direction of the
// stop lines: the effective vector is (P1-P0) with its component along
// (P2-P0) removed. Geometry coordinates stay in paint space; the accumulated
// transform is carried by gradientTransform.
//
// Returns nil when the gradient line collapses (P1 or P2 coincides with P0,
// or P1-P0 is parallel to P2-P0): COLR defines these as painting nothing.
func linearGradientElement(p *PaintLinearGradient, first, last float64) *svgtree.Element {
	v := p.P1.Sub(p.P0)
	r := p.P2.Sub(p.P0)
	if v.LengthSquared() == 0 || r.LengthSquared() == 0 {
		return nil
	}
	rn := r.Normalize()
	effective := v.Sub(rn.Mul(v.Dot(rn)))
	if effective.LengthSquared() == 0 {
		return nil
	}
	end := p.P0.Add(effective)
	start := p.P0.Lerp(end, first)
	end = p.P0.Lerp(end, last)

	def := svgtree.NewElement("linearGradient")
	def.SetAttr("gradientUnits", "userSpaceOnUse")
	def.SetAttr("x1", ntos(start.X)).SetAttr("y1", ntos(start.Y))
	def.SetAttr("x2", ntos(end.X)).SetAttr("y2", ntos(end.Y))
	return def
}

// radialGradientElement renders the two-circle gradient as a
// <radialGradient>: the outer circle maps to cx/cy/r, the inner circle to
// the SVG 2 focal attributes fx/fy/fr.
//
// Returns nil when both circles coincide, which paints nothing.
func radialGradientElement(p *PaintRadialGradient, first, last float64) *svgtree.Element {
	c0 := p.C0.Lerp(p.C1, first)
	r0 := lerpValue(p.R0, p.R1, first)
	c1 := p.C0.Lerp(p.C1, last)
	r1 := lerpValue(p.R0, p.R1, last)
	if c0 == c1 && r0 == r1 {
		return nil
	}

	def := svgtree.NewElement("radialGradient")
	def.SetAttr("gradientUnits", "userSpaceOnUse")
	def.SetAttr("cx", ntos(c1.X)).SetAttr("cy", ntos(c1.Y)).SetAttr("r", ntos(r1))
	def.SetAttr("fx", ntos(c0.X)).SetAttr("fy", ntos(c0.Y)).SetAttr("fr", ntos(r0))
	return def
}

// sweepGradientElement renders the angular gradient as a <sweepGradient>
// element. SVG 1.1/2 has no native conic gradient; this follows the element
// shape proposed for SVG 2 and understood by COLR tooling.
func sweepGradientElement(p *PaintSweepGradient, first, last float64) *svgtree.Element {
	start := lerpValue(p.StartAngle, p.EndAngle, first)
	end := lerpValue(p.StartAngle, p.EndAngle, last)

	def := svgtree.NewElement("sweepGradient")
	def.SetAttr("gradientUnits", "userSpaceOnUse")
	def.SetAttr("cx", ntos(p.Center.X)).SetAttr("cy", ntos(p.Center.Y))
	def.SetAttr("startAngle", ntos(start)).SetAttr("endAngle", ntos(end))
	return def
}
