package svgtree

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmptyDocument(t *testing.T) {
	d := NewDocument()
	want := "<svg xmlns=\"http://www.w3.org/2000/svg\">\n  <defs/>\n</svg>\n"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAttrOrderPreserved(t *testing.T) {
	e := NewElement("path")
	e.SetAttr("d", "M0,0 Z")
	e.SetAttr("fill", "#ff0000")
	e.SetAttr("d", "M1,1 Z") // update keeps position

	want := []Attr{{"d", "M1,1 Z"}, {"fill", "#ff0000"}}
	if diff := cmp.Diff(want, e.Attrs()); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestAttrEscaping(t *testing.T) {
	d := NewDocument()
	e := NewElement("g")
	e.SetAttr("data", `a<b&"c"`)
	d.AppendToBody(e)

	out := d.String()
	if !strings.Contains(out, `data="a&lt;b&amp;&quot;c&quot;"`) {
		t.Errorf("attribute not escaped: %s", out)
	}
}

func TestNextIDSkipsUsed(t *testing.T) {
	d := NewDocument()
	if id := d.NextID("grad"); id != "grad0" {
		t.Fatalf("NextID = %q, want grad0", id)
	}
	if id := d.NextID("grad"); id != "grad1" {
		t.Fatalf("NextID = %q, want grad1", id)
	}
	if id := d.NextID("clip"); id != "clip0" {
		t.Fatalf("NextID = %q, want clip0", id)
	}
}

func TestAddDef(t *testing.T) {
	d := NewDocument()
	grad := NewElement("linearGradient")
	id := d.AddDef("grad", grad)

	if id != "grad0" {
		t.Errorf("AddDef id = %q, want grad0", id)
	}
	if grad.Parent() != d.Defs() {
		t.Error("def not attached to defs region")
	}
	if got, _ := grad.Attr("id"); got != id {
		t.Errorf("def id attr = %q, want %q", got, id)
	}
}

func TestPromote(t *testing.T) {
	d := NewDocument()
	p := NewElement("path").SetAttr("d", "M0,0 L1,1 Z")
	d.AppendToBody(p)

	id := d.Promote(p, "reuse")
	if id != "reuse0" {
		t.Fatalf("Promote id = %q, want reuse0", id)
	}

	// Original position now holds a <use> reference.
	body := d.Root().Children()
	if len(body) != 2 {
		t.Fatalf("root has %d children, want 2 (defs + use)", len(body))
	}
	use := body[1]
	if use.Tag != "use" {
		t.Fatalf("body element is <%s>, want <use>", use.Tag)
	}
	if href, _ := use.Attr("href"); href != "#reuse0" {
		t.Errorf("use href = %q, want #reuse0", href)
	}

	// The path itself moved into defs.
	if p.Parent() != d.Defs() {
		t.Error("promoted element not in defs")
	}

	// Promoting again is a no-op returning the same id.
	if again := d.Promote(p, "reuse"); again != id {
		t.Errorf("second Promote = %q, want %q", again, id)
	}
}

func TestRoundTripIdempotent(t *testing.T) {
	d := NewDocument()
	d.SetViewBox("0 0 100 100")
	grad := NewElement("linearGradient")
	grad.SetAttr("x1", "0").SetAttr("y1", "0").SetAttr("x2", "100").SetAttr("y2", "0")
	grad.AppendChild(NewElement("stop").SetAttr("offset", "0").SetAttr("stop-color", "#ff0000"))
	grad.AppendChild(NewElement("stop").SetAttr("offset", "1").SetAttr("stop-color", "#0000ff"))
	d.AddDef("grad", grad)
	d.AppendToBody(NewElement("path").SetAttr("d", "M10,10 L90,10 L90,90 L10,90 Z").SetAttr("fill", "url(#grad0)"))
	g := NewElement("g").SetAttr("style", "mix-blend-mode:multiply")
	g.AppendChild(NewElement("path").SetAttr("d", "M0,0 Z"))
	d.AppendToBody(g)

	first := d.String()
	parsed, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second := parsed.String()
	if first != second {
		t.Errorf("round trip not byte-identical:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestParseRejectsCharData(t *testing.T) {
	_, err := Parse("<svg><text>hello</text></svg>")
	if err == nil {
		t.Error("Parse accepted character data")
	}
}

func TestParseAddsDefsRegion(t *testing.T) {
	d, err := Parse(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M0,0 Z"/></svg>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	kids := d.Root().Children()
	if len(kids) != 2 || kids[0].Tag != "defs" {
		t.Errorf("defs region not canonicalized: %s", d.String())
	}
}

func TestParseRecoversUsedIDs(t *testing.T) {
	d, err := Parse(`<svg xmlns="http://www.w3.org/2000/svg"><defs><g id="reuse0"/></defs></svg>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id := d.NextID("reuse"); id != "reuse1" {
		t.Errorf("NextID after parse = %q, want reuse1", id)
	}
}
