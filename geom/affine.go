package geom

import "math"

// Affine is a 2x3 affine matrix, applied to a column point as:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
//
// This is the same row/column convention SVG's `matrix(a,b,c,d,e,f)` uses.
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the do-nothing transform.
var Identity = Affine{A: 1, D: 1}

// NewAffine builds a matrix from its six components.
func NewAffine(a, b, c, d, e, f float64) Affine {
	return Affine{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Translate builds a pure translation.
func Translate(v Vector) Affine {
	return Affine{A: 1, D: 1, E: v.X, F: v.Y}
}

// Scale builds a pure, possibly non-uniform, scale.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate builds a pure rotation by a radians, counter-clockwise.
func Rotate(a float64) Affine {
	sin, cos := math.Sincos(a)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// SkewX builds an x-skew of a radians, following the CSS convention.
func SkewX(a float64) Affine {
	return Affine{A: 1, D: 1, C: math.Tan(a)}
}

// SkewY builds a y-skew of a radians, following the CSS convention.
func SkewY(a float64) Affine {
	return Affine{A: 1, D: 1, B: math.Tan(a)}
}

// TransformPoint maps a point from the matrix's input space to its output
// space.
func (m Affine) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector maps a displacement, ignoring translation.
func (m Affine) TransformVector(v Vector) Vector {
	return Vector{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Then composes n followed by m: for a point p, n.Then(m) applied to p
// equals m applied to (n applied to p). This matches SVG's rule that the
// transform closest to the element applies first.
func (n Affine) Then(m Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// ThenTranslate composes m followed by a translation by v.
func (m Affine) ThenTranslate(v Vector) Affine {
	return m.Then(Translate(v))
}

// ThenScale composes m followed by a scale.
func (m Affine) ThenScale(sx, sy float64) Affine {
	return m.Then(Scale(sx, sy))
}

// Determinant returns the determinant of the linear (2x2) part.
func (m Affine) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Inverse returns the inverse matrix. Callers in this package only ever
// invert transform-stack products, which are always invertible by
// construction (the stack never contains a degenerate scale); a zero
// determinant here indicates a malformed `transform` attribute.
func (m Affine) Inverse() (Affine, bool) {
	det := m.Determinant()
	if det == 0 {
		return Affine{}, false
	}
	invDet := 1 / det
	return Affine{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}, true
}

// ComposeAll folds a sequence of transforms into one, in the order SVG
// lexes a `transform` attribute's token list: the last token applies
// closest to the geometry (for "translate(10,0) scale(2)", the scale is
// applied first).
func ComposeAll(transforms []Affine) Affine {
	acc := Identity
	for _, t := range transforms {
		acc = t.Then(acc)
	}
	return acc
}
