// Package turtle is the sink half of the conversion pipeline: a Turtle
// receives drawing primitives (moves, lines, arcs, beziers) in absolute,
// already-transformed coordinates and does something with them -- emit
// G-code, accumulate a bounding box, or convert units before forwarding to
// another Turtle.
//
// Grounded on original_source/lib/src/turtle/mod.rs's Turtle trait and
// cam.Turtle's method-chaining drawing style (cam/logo.go), generalized
// from a single concrete logo-drawing turtle into an interface with
// multiple sinks.
package turtle

import (
	"github.com/aprice2704/svg2gcode/arcmath"
	"github.com/aprice2704/svg2gcode/geom"
)

// Turtle is anything that can receive a stream of absolute-coordinate
// drawing primitives. One Begin/End pair brackets a whole document walk;
// each SVG path (or shape) inside it arrives as a Comment followed by its
// moves and draws.
type Turtle interface {
	Begin()
	End()
	Comment(text string)
	MoveTo(to geom.Point)
	LineTo(to geom.Point)
	Arc(a geom.SvgArc)
	CubicBezier(c geom.CubicBezier)
	QuadraticBezier(q geom.QuadBezier)
}

// FlattenKind controls how a curved turtle sink expands arcs and beziers
// into machine moves.
type FlattenKind int

const (
	// FlattenToArcsAndLines uses arcmath to approximate a curve with a
	// minimal mix of circular arcs and line segments, for machines that
	// support G2/G3 circular interpolation.
	FlattenToArcsAndLines FlattenKind = iota
	// FlattenToLines reduces a curve to a polyline only, for machines
	// that support just G0/G1.
	FlattenToLines
)

// flattenArc returns an arcmath.Element sequence for a, using whichever
// strategy kind names.
func flattenArc(a geom.SvgArc, tolerance float64, kind FlattenKind) []arcmath.Element {
	if kind == FlattenToLines {
		return linesOnly(arcmath.FlattenArc(a, tolerance))
	}
	return arcmath.FlattenArc(a, tolerance)
}

func flattenCubic(c geom.CubicBezier, tolerance float64, kind FlattenKind) []arcmath.Element {
	if kind == FlattenToLines {
		return linesOnly(arcmath.FlattenCubic(c, tolerance))
	}
	return arcmath.FlattenCubic(c, tolerance)
}

// linesOnly collapses every element to a line to its endpoint, discarding
// any arc fit, for machines without circular interpolation. Only the
// endpoint of each element matters to a caller driving it through line_to
// calls, so the segment's start point is left zeroed.
func linesOnly(elems []arcmath.Element) []arcmath.Element {
	out := make([]arcmath.Element, len(elems))
	for i, e := range elems {
		to := e.Line.To
		if e.Kind == arcmath.ArcElement {
			to = e.Arc.To
		}
		out[i] = arcmath.Element{Kind: arcmath.LineElement, Line: geom.Segment{To: to}}
	}
	return out
}
