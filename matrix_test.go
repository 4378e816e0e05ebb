package nanoemoji

import (
	"math"
	"testing"
)

const matrixEpsilon = 1e-9

func matricesAlmostEqual(a, b Matrix, epsilon float64) bool {
	return math.Abs(a.A-b.A) < epsilon &&
		math.Abs(a.B-b.B) < epsilon &&
		math.Abs(a.C-b.C) < epsilon &&
		math.Abs(a.D-b.D) < epsilon &&
		math.Abs(a.E-b.E) < epsilon &&
		math.Abs(a.F-b.F) < epsilon
}

func pointsAlmostEqual(a, b Point, epsilon float64) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestMultiplyAssociative(t *testing.T) {
	matrices := []Matrix{
		Identity(),
		Translate(10, -20),
		Scale(2, 0.5),
		Rotate(math.Pi / 3),
		Skew(math.Pi/4, 0),
		RotateAbout(math.Pi/2, 2, 0),
		{A: 1.5, B: 0.25, C: -3, D: -0.5, E: 2, F: 7},
	}
	for _, a := range matrices {
		for _, b := range matrices {
			for _, c := range matrices {
				left := a.Multiply(b).Multiply(c)
				right := a.Multiply(b.Multiply(c))
				if !matricesAlmostEqual(left, right, matrixEpsilon) {
					t.Errorf("(A*B)*C != A*(B*C) for %+v, %+v, %+v:\n%+v\n%+v",
						a, b, c, left, right)
				}
			}
		}
	}
}

func TestMultiplyIdentity(t *testing.T) {
	matrices := []Matrix{
		Translate(10, -20),
		Scale(2, 0.5),
		Rotate(math.Pi / 3),
		{A: 1.5, B: 0.25, C: -3, D: -0.5, E: 2, F: 7},
	}
	for _, m := range matrices {
		if got := m.Multiply(Identity()); !matricesAlmostEqual(got, m, matrixEpsilon) {
			t.Errorf("m*I = %+v, want %+v", got, m)
		}
		if got := Identity().Multiply(m); !matricesAlmostEqual(got, m, matrixEpsilon) {
			t.Errorf("I*m = %+v, want %+v", got, m)
		}
	}
}

func TestRotateAbout(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"90deg about origin", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"90deg about (2,0)", RotateAbout(math.Pi/2, 2, 0), Pt(1, 0), Pt(2, -1)},
		{"180deg about (1,1)", RotateAbout(math.Pi, 1, 1), Pt(0, 0), Pt(2, 2)},
		{"center is fixed point", RotateAbout(math.Pi/3, 4, -2), Pt(4, -2), Pt(4, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointsAlmostEqual(got, tt.want, matrixEpsilon) {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSkewConvention(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"x-skew 45deg", Skew(math.Pi/4, 0), Pt(0, 1), Pt(-1, 1)},
		{"y-skew 45deg", Skew(0, math.Pi/4), Pt(1, 0), Pt(1, 1)},
		{"x-skew about (0,1)", SkewAbout(math.Pi/4, 0, 0, 1), Pt(0, 1), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointsAlmostEqual(got, tt.want, matrixEpsilon) {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.7)).Multiply(Scale(2, 5))
	if got := m.Multiply(m.Invert()); !matricesAlmostEqual(got, Identity(), matrixEpsilon) {
		t.Errorf("m * m^-1 = %+v, want identity", got)
	}
}

func TestViewBoxTransform(t *testing.T) {
	tests := []struct {
		name string
		upem uint16
		vb   ViewBox
		in   Point
		want Point
	}{
		{"unit scale flips y", 100, ViewBox{W: 100, H: 100}, Pt(10, 10), Pt(10, 90)},
		{"baseline to bottom", 100, ViewBox{W: 100, H: 100}, Pt(0, 0), Pt(0, 100)},
		{"downscale", 1024, ViewBox{W: 128, H: 128}, Pt(1024, 1024), Pt(128, 0)},
		{"offset box", 100, ViewBox{MinX: 5, MinY: 5, W: 100, H: 100}, Pt(0, 0), Pt(5, 105)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := viewBoxTransform(tt.upem, tt.vb).TransformPoint(tt.in)
			if !pointsAlmostEqual(got, tt.want, matrixEpsilon) {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixSVGValue(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want string
	}{
		{"identity", Identity(), "matrix(1,0,0,1,0,0)"},
		{"translate", Translate(10, -5), "matrix(1,0,0,1,10,-5)"},
		{"scale", Scale(2, 0.5), "matrix(2,0,0,0.5,0,0)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.svgValue(); got != tt.want {
				t.Errorf("svgValue() = %q, want %q", got, tt.want)
			}
		})
	}
}
