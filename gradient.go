package nanoemoji

import "sort"

// ExtendMode defines how gradients extend beyond their defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// spreadMethod maps the extend mode to the SVG spreadMethod attribute value.
// Pad is the SVG default and maps to the empty string (attribute omitted).
func (m ExtendMode) spreadMethod() string {
	switch m {
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	default:
		return ""
	}
}

// ColorStop represents a palette-indexed color at a specific position in a
// color line. Offsets are not restricted to [0, 1] in COLR; see
// normalizeStops.
type ColorStop struct {
	Offset       float64
	PaletteIndex uint16
	Alpha        float64
}

// ColorLine is the ordered stop list plus extend mode shared by all gradient
// paint formats.
type ColorLine struct {
	Stops  []ColorStop
	Extend ExtendMode
}

// ResolvedStop is a color stop with its palette reference resolved to a
// concrete color. Derived, never mutated after creation.
type ResolvedStop struct {
	Offset float64
	Color  RGBA
}

// resolveColorLine resolves every stop of a color line against the font's
// palette and returns the stops sorted by offset. Stop order ties keep their
// relative input order, matching COLR's "paint later stops on top" rule.
func resolveColorLine(f Font, cl ColorLine) ([]ResolvedStop, error) {
	resolved := make([]ResolvedStop, len(cl.Stops))
	for i, s := range cl.Stops {
		c, err := f.PaletteColor(s.PaletteIndex, s.Alpha)
		if err != nil {
			return nil, err
		}
		resolved[i] = ResolvedStop{Offset: s.Offset, Color: c}
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Offset < resolved[j].Offset
	})
	return resolved, nil
}

// normalizeStops rescales stop offsets into [0, 1].
//
// COLR permits stop offsets anywhere on the number line; SVG requires
// offsets within [0, 1]. The gradient geometry is reparameterized instead:
// the caller lerps its endpoints (points, radii, or angles) by the returned
// first and last offsets, and the stops returned here are rescaled to cover
// [0, 1] over that adjusted geometry. This is exact for every extend mode
// because the color line is affine in its parameter.
//
// The input must contain at least two stops spanning a non-zero range;
// degenerate color lines are handled by the walker before this point.
func normalizeStops(stops []ResolvedStop) (norm []ResolvedStop, first, last float64) {
	first = stops[0].Offset
	last = stops[len(stops)-1].Offset
	norm = make([]ResolvedStop, len(stops))
	span := last - first
	for i, s := range stops {
		norm[i] = ResolvedStop{
			Offset: (s.Offset - first) / span,
			Color:  s.Color,
		}
	}
	return norm, first, last
}

// lerpValue interpolates a scalar the same way the stop geometry is
// reparameterized in normalizeStops.
func lerpValue(a, b, t float64) float64 {
	return a + (b-a)*t
}
