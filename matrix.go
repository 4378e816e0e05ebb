package nanoemoji

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Paint graphs use font design units with Y up, so positive rotation angles
// turn counter-clockwise when the matrix is applied in font space.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// ScaleAbout creates a scaling matrix around the given center point.
func ScaleAbout(x, y, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Scale(x, y)).Multiply(Translate(-cx, -cy))
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotateAbout creates a rotation matrix (angle in radians) around the given
// center point, decomposed as translate-rotate-translate-back.
func RotateAbout(angle, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// Skew creates a skew matrix from two angles in radians.
// The sign convention follows COLR: a positive X skew angle shifts points
// with positive Y toward negative X.
func Skew(xAngle, yAngle float64) Matrix {
	return Matrix{
		A: 1, B: -math.Tan(xAngle), C: 0,
		D: math.Tan(yAngle), E: 1, F: 0,
	}
}

// SkewAbout creates a skew matrix around the given center point.
func SkewAbout(xAngle, yAngle, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Skew(xAngle, yAngle)).Multiply(Translate(-cx, -cy))
}

// Multiply multiplies two matrices (m * other).
// The combined matrix applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// svgValue renders the matrix in SVG transform syntax, which orders the six
// values column by column: matrix(a d b e c f) in this package's naming.
func (m Matrix) svgValue() string {
	return "matrix(" + ntos(m.A) + "," + ntos(m.D) + "," + ntos(m.B) + "," +
		ntos(m.E) + "," + ntos(m.C) + "," + ntos(m.F) + ")"
}
