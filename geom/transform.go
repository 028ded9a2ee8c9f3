package geom

import "math"

// Transform represents a 2D affine transformation matrix.
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
// The zero value is not the identity; use [Identity].
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation.
func Translate(x, y float64) Transform {
	return Transform{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling transformation.
func Scale(x, y float64) Transform {
	return Transform{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation (angle in radians).
func Rotate(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// FlipY mirrors the Y axis. Glyph outlines are authored Y-up and are
// flipped into the Y-down output space with it.
func FlipY() Transform {
	return Scale(1, -1)
}

// PreConcat returns t * other: other is applied first, then t.
func (t Transform) PreConcat(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Then returns the transformation applying t first, then next.
//
//	FlipY().Then(Scale(s, s)).Then(Translate(x, y))
//
// flips, then scales, then translates.
func (t Transform) Then(next Transform) Transform {
	return next.PreConcat(t)
}

// ThenTranslate is shorthand for t.Then(Translate(x, y)).
func (t Transform) ThenTranslate(x, y float64) Transform {
	return t.Then(Translate(x, y))
}

// ThenScale is shorthand for t.Then(Scale(x, y)).
func (t Transform) ThenScale(x, y float64) Transform {
	return t.Then(Scale(x, y))
}

// MapPoint applies the transformation to a point.
func (t Transform) MapPoint(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// MapVector applies the transformation to a vector (no translation).
func (t Transform) MapVector(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y,
		Y: t.D*p.X + t.E*p.Y,
	}
}

// Invert returns the inverse transformation and whether it exists.
func (t Transform) Invert() (Transform, bool) {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}, true
}

// IsIdentity reports whether t is the identity.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}

// IsTranslation reports whether t only translates.
func (t Transform) IsTranslation() bool {
	return t.A == 1 && t.B == 0 && t.D == 0 && t.E == 1
}
