// Package geom implements the 2-D primitives the conversion pipeline is
// built from: points, vectors, affine transforms, lines, and the cubic
// bezier / elliptical-arc parametric shapes produced while walking an SVG
// path.
//
// The shapes here mirror the turtle-graphics Vec2 that aprice2704's cam
// package used for cutting paths, generalized from a single-purpose logo
// turtle into the full 2x3 affine machinery a nested SVG coordinate system
// needs.
package geom

import (
	"fmt"
	"math"
)

// Point is a 2-D coordinate in some coordinate space. The space it belongs
// to is tracked by the caller, not the type.
type Point struct {
	X, Y float64
}

// Vector is a 2-D displacement, as opposed to a position.
type Vector struct {
	X, Y float64
}

// Origin is the zero point.
var Origin = Point{}

// Pt is a convenience constructor.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec is a convenience constructor.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// ToVector reinterprets a point as a displacement from the origin.
func (p Point) ToVector() Vector {
	return Vector{X: p.X, Y: p.Y}
}

// Lerp linearly interpolates between p and q at parameter t (0 at p, 1 at q).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// String renders a point for diagnostics.
func (p Point) String() string {
	return fmt.Sprintf("(%.4g,%.4g)", p.X, p.Y)
}

// Add adds two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub subtracts w from v.
func (v Vector) Sub(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale scales uniformly.
func (v Vector) Scale(k float64) Vector {
	return Vector{X: k * v.X, Y: k * v.Y}
}

// ScaleXY scales each axis independently, used when a vector represents
// arc radii rather than a true displacement.
func (v Vector) ScaleXY(kx, ky float64) Vector {
	return Vector{X: kx * v.X, Y: ky * v.Y}
}

// Dot returns the dot product.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Det returns the 2-D cross product (z-component of the 3-D cross product).
func (v Vector) Det(w Vector) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// SquareLength avoids the square root when only comparisons are needed.
func (v Vector) SquareLength() float64 {
	return v.Dot(v)
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vector) Perpendicular() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Rotate rotates v by a radians, counter-clockwise for positive a.
func (v Vector) Rotate(a float64) Vector {
	sin, cos := math.Sincos(a)
	return Vector{X: cos*v.X - sin*v.Y, Y: sin*v.X + cos*v.Y}
}

// ToPoint reinterprets a vector as a point, i.e. a displacement from the
// origin.
func (v Vector) ToPoint() Point {
	return Point{X: v.X, Y: v.Y}
}

// String renders a vector for diagnostics.
func (v Vector) String() string {
	return fmt.Sprintf("<%.4g,%.4g ø%.4g>", v.X, v.Y, v.Length())
}

// ApproxEqual reports whether p and q differ by less than eps on each axis.
func (p Point) ApproxEqual(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}
