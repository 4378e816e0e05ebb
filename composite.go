package nanoemoji

// CompositeMode enumerates the COLR compositing modes: the Porter-Duff
// operators followed by the separable and non-separable blend modes of the
// W3C Compositing and Blending Level 1 specification.
type CompositeMode int

const (
	// Porter-Duff compositing operators.
	CompositeClear CompositeMode = iota
	CompositeSrc
	CompositeDest
	CompositeSrcOver
	CompositeDestOver
	CompositeSrcIn
	CompositeDestIn
	CompositeSrcOut
	CompositeDestOut
	CompositeSrcAtop
	CompositeDestAtop
	CompositeXor
	CompositePlus

	// Separable blend modes.
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeMultiply

	// Non-separable blend modes.
	CompositeHue
	CompositeSaturation
	CompositeColor
	CompositeLuminosity
)

// compositeModeNames doubles as the String table and the CSS
// mix-blend-mode vocabulary for the blend modes.
var compositeModeNames = map[CompositeMode]string{
	CompositeClear:      "clear",
	CompositeSrc:        "src",
	CompositeDest:       "dest",
	CompositeSrcOver:    "src-over",
	CompositeDestOver:   "dest-over",
	CompositeSrcIn:      "src-in",
	CompositeDestIn:     "dest-in",
	CompositeSrcOut:     "src-out",
	CompositeDestOut:    "dest-out",
	CompositeSrcAtop:    "src-atop",
	CompositeDestAtop:   "dest-atop",
	CompositeXor:        "xor",
	CompositePlus:       "plus",
	CompositeScreen:     "screen",
	CompositeOverlay:    "overlay",
	CompositeDarken:     "darken",
	CompositeLighten:    "lighten",
	CompositeColorDodge: "color-dodge",
	CompositeColorBurn:  "color-burn",
	CompositeHardLight:  "hard-light",
	CompositeSoftLight:  "soft-light",
	CompositeDifference: "difference",
	CompositeExclusion:  "exclusion",
	CompositeMultiply:   "multiply",
	CompositeHue:        "hue",
	CompositeSaturation: "saturation",
	CompositeColor:      "color",
	CompositeLuminosity: "luminosity",
}

// String returns the lowercase dashed name of the mode.
func (m CompositeMode) String() string {
	if s, ok := compositeModeNames[m]; ok {
		return s
	}
	return "unknown"
}

// blendModeValue returns the CSS mix-blend-mode value for the mode, or
// "" when the mode has no SVG equivalent. SrcOver composites naturally in
// SVG painter's order and needs no blend style at all.
func (m CompositeMode) blendModeValue() (value string, ok bool) {
	switch m {
	case CompositeScreen, CompositeOverlay, CompositeDarken, CompositeLighten,
		CompositeColorDodge, CompositeColorBurn, CompositeHardLight,
		CompositeSoftLight, CompositeDifference, CompositeExclusion,
		CompositeMultiply, CompositeHue, CompositeSaturation,
		CompositeColor, CompositeLuminosity:
		return compositeModeNames[m], true
	default:
		return "", false
	}
}
