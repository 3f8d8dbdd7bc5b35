// Package arcmath flattens cubic beziers and elliptical arcs into sequences
// of straight lines and circular arcs, and carries elliptical arcs through
// affine transforms.
//
// The flattening algorithm is Kaewsaiha & Dejdumrong's "Modeling of Bezier
// Curves Using a Combination of Linear and Circular Arc Approximations"
// (CGIV 2012), the same approach the original svg2gcode pipeline used; the
// arc transform is the eigen-decomposition approach from Vitaly Puzrin's
// svgpath, ported from the same pipeline's Rust implementation. Both are
// specified in terms of the monotonic-range, tangent-fit and deviation-check
// plumbing below rather than any particular curve library, mirroring how
// aprice2704's cam package hand-rolled its own Curl stepper instead of
// depending on one.
package arcmath

import (
	"math"

	"github.com/aprice2704/svg2gcode/geom"
)

// DefaultTolerance is the default allowable deviation from the true curve,
// in the same units as the geometry being flattened. Mirrors the cam
// package's CurveTolerance.
const DefaultTolerance = 0.05

// deviationSamples is how many interior points are checked when deciding
// whether an arc approximation is within tolerance of the curve it stands
// in for.
const deviationSamples = 19

// ElementKind distinguishes the two shapes FlattenCubic/FlattenArc can
// produce.
type ElementKind int

const (
	// LineElement is a straight line.
	LineElement ElementKind = iota
	// ArcElement is a circular (not elliptical) arc.
	ArcElement
)

// Element is either a line or a circular arc, the atomic units a flattened
// curve is built from.
type Element struct {
	Kind ElementKind
	Line geom.Segment
	Arc  geom.SvgArc
}

// FlattenCubic approximates a cubic bezier with a minimal sequence of lines
// and circular arcs, each within tolerance of the original curve.
func FlattenCubic(c geom.CubicBezier, tolerance float64) []Element {
	if c.To.Sub(c.From).SquareLength() < epsilon {
		return nil
	}
	if c.IsLinear(tolerance) {
		return []Element{{Kind: LineElement, Line: c.Baseline()}}
	}

	var acc []Element
	c.ForEachMonotonicRange(func(inner geom.CubicBezier) {
		if inner.To.Sub(inner.From).SquareLength() < epsilon {
			return
		}
		if inner.IsLinear(tolerance) {
			acc = append(acc, Element{Kind: LineElement, Line: inner.Baseline()})
			return
		}

		if arc, ok := arcFromEndpointsAndTangents(inner.From, inner.Derivative(0), inner.To, inner.Derivative(1)); ok {
			if maxDeviation(arc.ToArc().Sample, inner.Sample) < tolerance {
				acc = append(acc, Element{Kind: ArcElement, Arc: arc})
				return
			}
		}

		left, right := inner.Split(0.5)
		acc = append(acc, FlattenCubic(left, tolerance)...)
		acc = append(acc, FlattenCubic(right, tolerance)...)
	})
	return acc
}

// FlattenArc approximates an elliptical arc with a minimal sequence of
// lines and circular arcs. A near-circular arc (rx == ry) is returned
// as-is.
func FlattenArc(a geom.SvgArc, tolerance float64) []Element {
	if a.To.Sub(a.From).SquareLength() < epsilon {
		return nil
	}
	if a.IsStraightLine() {
		return []Element{{Kind: LineElement, Line: geom.Segment{From: a.From, To: a.To}}}
	}
	if math.Abs(math.Abs(a.Radii.X)-math.Abs(a.Radii.Y)) < epsilon {
		return []Element{{Kind: ArcElement, Arc: a}}
	}

	centered := a.ToArc()
	if approx, ok := arcFromEndpointsAndTangents(a.From, centered.SampleTangent(0), a.To, centered.SampleTangent(1)); ok {
		if maxDeviation(approx.ToArc().Sample, centered.Sample) < tolerance {
			return []Element{{Kind: ArcElement, Arc: approx}}
		}
	}

	left, right := centered.Split(0.5)
	out := FlattenArc(left.ToSvgArc(), tolerance)
	out = append(out, FlattenArc(right.ToSvgArc(), tolerance)...)
	return out
}

// maxDeviation samples both curves at evenly spaced interior parameters and
// returns the largest distance observed between them.
func maxDeviation(a, b func(float64) geom.Point) float64 {
	max := 0.0
	for i := 1; i < deviationSamples+1; i++ {
		t := float64(i) / float64(deviationSamples+1)
		d := a(t).Sub(b(t)).Length()
		if d > max {
			max = d
		}
	}
	return max
}

// arcFromEndpointsAndTangents fits a circular arc through two endpoints
// with the given tangent directions at each, via the incenter/perpendicular-
// bisector construction. Returns ok=false when the tangents are parallel
// (no well-defined incenter or center exists).
func arcFromEndpointsAndTangents(from geom.Point, fromTangent geom.Vector, to geom.Point, toTangent geom.Vector) (geom.SvgArc, bool) {
	fromTo := to.Sub(from).Length()

	intersection, ok := geom.NewLine(from, fromTangent).Intersection(geom.NewLine(to, toTangent))
	if !ok {
		return geom.SvgArc{}, false
	}
	fromIntersection := intersection.Sub(from).Length()
	toIntersection := intersection.Sub(to).Length()
	denom := fromIntersection + toIntersection + fromTo
	if denom < epsilon {
		return geom.SvgArc{}, false
	}
	incenter := geom.Pt(
		(from.X*toIntersection+to.X*fromIntersection+intersection.X*fromTo)/denom,
		(from.Y*toIntersection+to.Y*fromIntersection+intersection.Y*fromTo)/denom,
	)

	fromBisector := geom.PerpendicularBisector(from, incenter)
	toBisector := geom.PerpendicularBisector(to, incenter)
	center, ok := fromBisector.Intersection(toBisector)
	if !ok {
		return geom.SvgArc{}, false
	}

	radius := center.Sub(from).Length()

	fromCenter := from.Sub(center).Normalized()
	toCenter := to.Sub(center).Normalized()
	det := fromCenter.X*toCenter.Y - fromCenter.Y*toCenter.X
	dot := fromCenter.Dot(toCenter)
	angle := math.Atan2(det, dot)

	return geom.SvgArc{
		From:      from,
		To:        to,
		Radii:     geom.Vec(radius, radius),
		XRotation: 0,
		Flags: geom.ArcFlags{
			LargeArc: math.Abs(angle) >= math.Pi,
			Sweep:    angle >= 0,
		},
	}, true
}

const epsilon = 1e-9
