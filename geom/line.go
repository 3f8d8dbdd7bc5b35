package geom

import "math"

// epsilonNearZero is used where the vec package's sibling geometry code
// treats a quantity as "may as well be zero" -- avoids false negatives from
// strict zero comparisons on computed floats.
const epsilonNearZero = 1e-9

// Line is an infinite 2-D line: all points P such that P = PointOn + t*Along,
// for some real t.
//
// Modeled on the 3-D Line/Plane pair in the cam package's sibling vec
// package, specialized to the plane.
type Line struct {
	PointOn Point
	Along   Vector
}

// NewLine builds a line through a point along a direction. Along need not
// be normalized.
func NewLine(on Point, along Vector) Line {
	return Line{PointOn: on, Along: along}
}

// LineThrough builds the line through two points.
func LineThrough(p, q Point) Line {
	return Line{PointOn: p, Along: q.Sub(p)}
}

// Intersection finds where two lines cross. hits is false when the lines
// are parallel (including coincident).
func (l Line) Intersection(o Line) (where Point, hits bool) {
	// Solve l.PointOn + t*l.Along == o.PointOn + s*o.Along for t via the
	// 2-D cross-product determinant, same structure as the 3-D
	// plane/line intersection this is ported from.
	denom := l.Along.Det(o.Along)
	if math.Abs(denom) < epsilonNearZero {
		return Point{}, false
	}
	diff := o.PointOn.Sub(l.PointOn)
	t := diff.Det(o.Along) / denom
	return l.PointOn.Add(l.Along.Scale(t)), true
}

// Sample returns the point at parameter t along the line.
func (l Line) Sample(t float64) Point {
	return l.PointOn.Add(l.Along.Scale(t))
}

// PerpendicularBisector returns the line perpendicular to segment a-b,
// passing through its midpoint.
func PerpendicularBisector(a, b Point) Line {
	d := a.Sub(b)
	return Line{
		PointOn: a.Lerp(b, 0.5),
		Along:   Vector{X: -d.Y, Y: d.X}.Normalized(),
	}
}
