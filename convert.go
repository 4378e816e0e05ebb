package nanoemoji

import (
	"fmt"

	"github.com/CyberTailor/nanoemoji/svgtree"
)

// renderContext is the transform and active clip at the current point of the
// recursion. Contexts are values: each child call derives a new context and
// never mutates its parent's.
type renderContext struct {
	// transform accumulates parent transforms; node transforms multiply on
	// the right (child applies after parent).
	transform Matrix

	// clip is the active clip outline in document space, nil when no
	// PaintGlyph ancestor is active. clipData is its serialized path data,
	// doubling as the clip's identity in reuse fingerprints.
	clip     *Path
	clipData string
}

func (ctx renderContext) withTransform(m Matrix) renderContext {
	ctx.transform = ctx.transform.Multiply(m)
	return ctx
}

func (ctx renderContext) withClip(p *Path) renderContext {
	ctx.clip = p
	ctx.clipData = p.String()
	return ctx
}

// fingerprint identifies an emitted paint subtree: the node's identity (paint
// nodes are shared by pointer and never copied during conversion) combined
// with the accumulated context it was emitted under. Two occurrences of the
// same node under the same context are guaranteed to produce identical
// output, so no deep structural hashing is needed; two occurrences under
// different contexts must not collide.
type fingerprint struct {
	node      Paint
	transform Matrix
	clip      string
}

// reuseCache maps fingerprints to the emitted fragment, or to nil for nodes
// that emitted nothing. Entries are append-only and scoped to one conversion.
type reuseCache struct {
	entries map[fingerprint]*svgtree.Element
}

func newReuseCache() *reuseCache {
	return &reuseCache{entries: make(map[fingerprint]*svgtree.Element)}
}

func (rc *reuseCache) lookup(fp fingerprint) (*svgtree.Element, bool) {
	el, ok := rc.entries[fp]
	return el, ok
}

func (rc *reuseCache) insert(fp fingerprint, el *svgtree.Element) {
	rc.entries[fp] = el
}

// converter walks one color glyph's paint graph. It owns its document and
// reuse cache; only the font is shared (read-only) with other conversions.
type converter struct {
	font  Font
	doc   *svgtree.Document
	cache *reuseCache

	// resolving tracks PaintColrGlyph names on the current recursion path to
	// reject cyclic references.
	resolving map[string]bool

	// clipIDs dedups promoted <clipPath> definitions by their path data.
	clipIDs map[string]string
}

// Convert converts the named color glyph into an SVG document.
//
// viewBox supplies the output coordinate bounds; the em square is scaled by
// viewBox.H/unitsPerEm and flipped into SVG's Y-down convention. A zero
// viewBox derives bounds from the glyph's advance width and the em height.
//
// On error no document is returned: a partially rendered color glyph is
// worse than an explicit failure. Errors converting one glyph do not affect
// conversions of other glyphs.
func Convert(f Font, name string, viewBox ViewBox) (*svgtree.Document, error) {
	paint, ok := f.ColorGlyph(name)
	if !ok {
		return nil, fmt.Errorf("color glyph %q: %w", name, ErrUnknownGlyph)
	}

	upem := f.UnitsPerEm()
	if viewBox.IsZero() {
		advance, _, err := f.GlyphMetrics(name)
		if err != nil || advance <= 0 {
			advance = float64(upem)
		}
		viewBox = ViewBox{W: advance, H: float64(upem)}
	}

	c := &converter{
		font:      f,
		doc:       svgtree.NewDocument(),
		cache:     newReuseCache(),
		resolving: map[string]bool{name: true},
		clipIDs:   make(map[string]string),
	}
	c.doc.SetViewBox(viewBox.attrValue())

	ctx := renderContext{transform: viewBoxTransform(upem, viewBox)}
	if _, err := c.convertPaint(paint, ctx, c.doc.Root()); err != nil {
		return nil, fmt.Errorf("converting %q: %w", name, err)
	}
	return c.doc, nil
}

// convertPaint interprets one paint node under ctx, appending output to
// parent. It returns the single element the node emitted (nil when the node
// emitted nothing).
//
// Every node except PaintSolid is fingerprinted first: a hit promotes the
// previously emitted fragment into the defs region and emits a reference
// instead of recursing again.
func (c *converter) convertPaint(p Paint, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	if p == nil {
		return nil, fmt.Errorf("nil paint node: %w", ErrMalformedPaint)
	}
	if _, isSolid := p.(*PaintSolid); isSolid {
		return c.convertSolid(p.(*PaintSolid), ctx, parent)
	}

	fp := fingerprint{node: p, transform: ctx.transform, clip: ctx.clipData}
	if frag, ok := c.cache.lookup(fp); ok {
		if frag == nil {
			return nil, nil
		}
		id := c.doc.Promote(frag, "reuse")
		Logger().Debug("reuse cache hit", "id", id, "paint", fmt.Sprintf("%T", p))
		use := svgtree.UseRef(id)
		parent.AppendChild(use)
		return use, nil
	}

	frag, err := c.convertUncached(p, ctx, parent)
	if err != nil {
		return nil, err
	}
	c.cache.insert(fp, frag)
	return frag, nil
}

func (c *converter) convertUncached(p Paint, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	switch p := p.(type) {
	case *PaintLinearGradient, *PaintRadialGradient, *PaintSweepGradient:
		return c.convertGradient(p, ctx, parent)

	case *PaintGlyph:
		return c.convertGlyph(p, ctx, parent)

	case *PaintColrGlyph:
		return c.convertColrGlyph(p, ctx, parent)

	case *PaintComposite:
		return c.convertComposite(p, ctx, parent)

	case *PaintLayers:
		return c.convertLayers(p, ctx, parent)

	default:
		t, ok := p.(transformer)
		if !ok {
			return nil, fmt.Errorf("paint %T: %w", p, ErrMalformedPaint)
		}
		return c.convertPaint(t.child(), ctx.withTransform(t.transform()), parent)
	}
}

// convertSolid fills the active clip outline with a palette color. A solid
// with no enclosing PaintGlyph has no geometry and emits nothing.
func (c *converter) convertSolid(p *PaintSolid, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	color, err := c.font.PaletteColor(p.PaletteIndex, p.Alpha)
	if err != nil {
		return nil, err
	}
	if ctx.clip == nil || ctx.clip.Empty() {
		Logger().Debug("solid paint without clip emits nothing")
		return nil, nil
	}
	el := svgtree.NewElement("path").SetAttr("d", ctx.clipData)
	setFill(el, color)
	parent.AppendChild(el)
	return el, nil
}

// setFill sets fill attributes. Opaque black is SVG's default fill and is
// omitted entirely.
func setFill(el *svgtree.Element, color RGBA) {
	if color == Black {
		return
	}
	el.SetAttr("fill", color.hexValue())
	if !color.IsOpaque() {
		el.SetAttr("fill-opacity", ntos(color.A))
	}
}

// convertGlyph resolves the glyph outline, pushes it as the active clip in
// document space, and recurses into the child paint. An outline with zero
// contours clips everything and emits nothing. When a clip is already
// active, the outer clip is promoted to a <clipPath> definition and the
// child output is wrapped in a clipping group, so both clips keep applying.
func (c *converter) convertGlyph(p *PaintGlyph, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	outline, err := c.font.GlyphOutline(p.Glyph)
	if err != nil {
		return nil, err
	}
	if outline.Empty() {
		Logger().Debug("empty outline clips everything", "glyph", p.Glyph)
		return nil, nil
	}
	transformed := outline.Transform(ctx.transform)

	if ctx.clip == nil {
		return c.convertPaint(p.Paint, ctx.withClip(transformed), parent)
	}

	// Nested clip: accumulate by wrapping in a clip-path group.
	group := svgtree.NewElement("g")
	child, err := c.convertPaint(p.Paint, ctx.withClip(transformed), group)
	if err != nil {
		return nil, err
	}
	if child == nil && len(group.Children()) == 0 {
		return nil, nil
	}
	group.SetAttr("clip-path", "url(#"+c.clipDef(ctx.clipData)+")")
	parent.AppendChild(group)
	return group, nil
}

// clipDef returns the id of the <clipPath> definition for the given path
// data, adding it to the defs region on first use.
func (c *converter) clipDef(clipData string) string {
	if id, ok := c.clipIDs[clipData]; ok {
		return id
	}
	clip := svgtree.NewElement("clipPath")
	clip.AppendChild(svgtree.NewElement("path").SetAttr("d", clipData))
	id := c.doc.AddDef("clip", clip)
	c.clipIDs[clipData] = id
	return id
}

// convertColrGlyph follows an indirection to another top-level color glyph.
// The reference carries the current accumulated context; it does not reset
// the transform. A name already being resolved on this recursion path is a
// cyclic reference and fails rather than recursing unboundedly.
func (c *converter) convertColrGlyph(p *PaintColrGlyph, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	if c.resolving[p.Glyph] {
		return nil, fmt.Errorf("color glyph %q: %w", p.Glyph, ErrCyclicReference)
	}
	target, ok := c.font.ColorGlyph(p.Glyph)
	if !ok {
		return nil, fmt.Errorf("color glyph %q: %w", p.Glyph, ErrUnknownGlyph)
	}
	c.resolving[p.Glyph] = true
	defer delete(c.resolving, p.Glyph)
	return c.convertPaint(target, ctx, parent)
}

// convertComposite converts the backdrop first, then the source, grouped
// under an element carrying the compositing mode. SrcOver needs no blend
// style: SVG composites siblings in painter's order. Blend modes map to
// mix-blend-mode inside an isolated group. Porter-Duff modes other than
// SrcOver have no SVG equivalent and fail loudly; silently approximating
// them would corrupt visual fidelity.
func (c *converter) convertComposite(p *PaintComposite, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	if p.Mode == CompositeSrcOver {
		group := svgtree.NewElement("g")
		if _, err := c.convertPaint(p.Backdrop, ctx, group); err != nil {
			return nil, err
		}
		if _, err := c.convertPaint(p.Source, ctx, group); err != nil {
			return nil, err
		}
		if len(group.Children()) == 0 {
			return nil, nil
		}
		parent.AppendChild(group)
		return group, nil
	}

	blend, ok := p.Mode.blendModeValue()
	if !ok {
		return nil, fmt.Errorf("composite mode %v: %w", p.Mode, ErrUnsupportedComposite)
	}

	group := svgtree.NewElement("g").SetAttr("style", "isolation:isolate")
	if _, err := c.convertPaint(p.Backdrop, ctx, group); err != nil {
		return nil, err
	}
	source := svgtree.NewElement("g").SetAttr("style", "mix-blend-mode:"+blend)
	if _, err := c.convertPaint(p.Source, ctx, source); err != nil {
		return nil, err
	}
	if len(source.Children()) > 0 {
		group.AppendChild(source)
	}
	if len(group.Children()) == 0 {
		return nil, nil
	}
	parent.AppendChild(group)
	return group, nil
}

// convertLayers paints children back-to-front in slice order. A single layer
// passes through ungrouped; multiple layers share a group so the node emits
// one fragment.
func (c *converter) convertLayers(p *PaintLayers, ctx renderContext, parent *svgtree.Element) (*svgtree.Element, error) {
	switch len(p.Layers) {
	case 0:
		return nil, nil
	case 1:
		return c.convertPaint(p.Layers[0], ctx, parent)
	}
	group := svgtree.NewElement("g")
	for _, layer := range p.Layers {
		if _, err := c.convertPaint(layer, ctx, group); err != nil {
			return nil, err
		}
	}
	if len(group.Children()) == 0 {
		return nil, nil
	}
	parent.AppendChild(group)
	return group, nil
}
