// Package svgtree builds and serializes SVG documents as element trees.
//
// The tree is deliberately small: elements with ordered attributes and
// children, a defs region for reusable fragments, and a body region that may
// reference into defs via <use>. Serialization is deterministic, so the same
// tree always yields the same bytes, and parsing a serialized document and
// serializing it again is byte-identical.
package svgtree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// xmlns is the SVG namespace, always emitted on the root element.
const xmlns = "http://www.w3.org/2000/svg"

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Key, Value string
}

// Element is one node of the document tree.
type Element struct {
	Tag      string
	attrs    []Attr
	children []*Element
	parent   *Element
}

// NewElement creates an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SetAttr sets an attribute, replacing an existing value in place so the
// attribute keeps its original position. Returns the element for chaining.
func (e *Element) SetAttr(key, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	return e
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in document order.
func (e *Element) Attrs() []Attr {
	return e.attrs
}

// AppendChild appends a child element. The child must not already have a
// parent.
func (e *Element) AppendChild(c *Element) *Element {
	c.parent = e
	e.children = append(e.children, c)
	return e
}

// Children returns the child elements in document order.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil for a detached or root element.
func (e *Element) Parent() *Element {
	return e.parent
}

// replaceWith substitutes repl for e in e's parent, detaching e.
func (e *Element) replaceWith(repl *Element) {
	p := e.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == e {
			repl.parent = p
			p.children[i] = repl
			break
		}
	}
	e.parent = nil
}

// Document is an SVG document: a root <svg> element whose first child is the
// defs region; all later children form the body region.
type Document struct {
	root *Element
	defs *Element

	idSeq   map[string]int
	usedIDs map[string]bool
}

// NewDocument creates an empty document with an empty defs region.
func NewDocument() *Document {
	root := NewElement("svg")
	root.SetAttr("xmlns", xmlns)
	defs := NewElement("defs")
	root.AppendChild(defs)
	return &Document{
		root:    root,
		defs:    defs,
		idSeq:   make(map[string]int),
		usedIDs: make(map[string]bool),
	}
}

// Root returns the root <svg> element.
func (d *Document) Root() *Element {
	return d.root
}

// Defs returns the defs region.
func (d *Document) Defs() *Element {
	return d.defs
}

// SetViewBox sets the root viewBox attribute.
func (d *Document) SetViewBox(value string) {
	d.root.SetAttr("viewBox", value)
}

// AppendToBody appends an element to the body region.
func (d *Document) AppendToBody(e *Element) {
	d.root.AppendChild(e)
}

// AddDef appends an element to the defs region under a fresh id with the
// given prefix, returning the id.
func (d *Document) AddDef(prefix string, e *Element) string {
	id := d.NextID(prefix)
	e.SetAttr("id", id)
	d.defs.AppendChild(e)
	return id
}

// NextID returns a fresh id of the form prefix+N, skipping ids already used
// anywhere in the document.
func (d *Document) NextID(prefix string) string {
	for {
		id := prefix + strconv.Itoa(d.idSeq[prefix])
		d.idSeq[prefix]++
		if !d.usedIDs[id] {
			d.usedIDs[id] = true
			return id
		}
	}
}

// UseRef creates a <use> element referencing the given id.
func UseRef(id string) *Element {
	return NewElement("use").SetAttr("href", "#"+id)
}

// Promote moves an already-emitted element into the defs region under a
// fresh id with the given prefix and substitutes a <use> reference at its
// original position, preserving rendering. If the element already lives in
// defs its existing id is returned unchanged.
func (d *Document) Promote(e *Element, prefix string) string {
	if e.parent == d.defs {
		id, _ := e.Attr("id")
		return id
	}
	id := d.NextID(prefix)
	e.replaceWith(UseRef(id))
	e.SetAttr("id", id)
	d.defs.AppendChild(e)
	return id
}

// String renders the document. The output is canonical: two-space
// indentation, attributes in insertion order, empty elements self-closed.
func (d *Document) String() string {
	var b strings.Builder
	writeElement(&b, d.root, 0)
	return b.String()
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

func writeElement(b *strings.Builder, e *Element, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteByte('"')
	}
	if len(e.children) == 0 {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
	for _, c := range e.children {
		writeElement(b, c, depth+1)
	}
	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")
}

// escapeAttr escapes the characters XML forbids in double-quoted attribute
// values.
func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}

// Parse decodes a serialized document back into a tree. Whitespace between
// elements and comments are discarded; character data is not expected and is
// rejected if non-blank.
func Parse(s string) (*Document, error) {
	dec := xml.NewDecoder(strings.NewReader(s))
	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgtree: parse: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			e := NewElement(tok.Name.Local)
			for _, a := range tok.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue // re-added canonically on the root
				}
				e.SetAttr(a.Name.Local, a.Value)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("svgtree: parse: multiple root elements")
				}
				root = e
			} else {
				stack[len(stack)-1].AppendChild(e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if strings.TrimSpace(string(tok)) != "" {
				return nil, fmt.Errorf("svgtree: parse: unexpected character data %q", string(tok))
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("svgtree: parse: no root element")
	}
	if root.Tag != "svg" {
		return nil, fmt.Errorf("svgtree: parse: root element is <%s>, want <svg>", root.Tag)
	}

	// Canonicalize: xmlns first on the root, defs as first child.
	attrs := root.attrs
	root.attrs = make([]Attr, 0, len(attrs)+1)
	root.SetAttr("xmlns", xmlns)
	root.attrs = append(root.attrs, attrs...)

	d := &Document{
		root:    root,
		idSeq:   make(map[string]int),
		usedIDs: make(map[string]bool),
	}
	if len(root.children) > 0 && root.children[0].Tag == "defs" {
		d.defs = root.children[0]
	} else {
		defs := NewElement("defs")
		defs.parent = root
		root.children = append([]*Element{defs}, root.children...)
		d.defs = defs
	}
	collectIDs(root, d.usedIDs)
	return d, nil
}

func collectIDs(e *Element, ids map[string]bool) {
	if id, ok := e.Attr("id"); ok {
		ids[id] = true
	}
	for _, c := range e.children {
		collectIDs(c, ids)
	}
}
