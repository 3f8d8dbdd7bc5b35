// Package shapelowering turns the basic SVG shape elements -- rect,
// circle, ellipse, line, polyline, polygon -- into the same path-segment
// vocabulary "path" elements use, and applies either form to a Terrarium.
//
// Grounded on original_source/lib/src/converter/path.rs's apply_path, and
// on the shape-to-path equivalences the SVG 1.1 spec defines in its
// "Basic shapes" chapter (the Rust original leans on usvg's preprocessing
// for this; no such preprocessor exists in the pack, so these are
// re-derived directly from the spec text named in SPEC_FULL.md §4.5).
package shapelowering

import (
	"math"

	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/svgattr"
	"github.com/aprice2704/svg2gcode/terrarium"
)

// Apply replays segs against t, matching original_source's apply_path: it
// resets the Terrarium's notion of current position first, since each
// path/shape element starts a fresh subpath chain.
func Apply(t *terrarium.Terrarium, segs []svgattr.PathSegment) {
	t.Reset()
	for _, seg := range segs {
		switch seg.Kind {
		case svgattr.MoveTo:
			t.MoveTo(seg.Abs, seg.X, seg.Y)
		case svgattr.ClosePath:
			t.Close()
		case svgattr.LineTo:
			t.Line(seg.Abs, seg.X, seg.Y)
		case svgattr.HorizontalLineTo:
			t.HorizontalLineTo(seg.Abs, seg.X)
		case svgattr.VerticalLineTo:
			t.VerticalLineTo(seg.Abs, seg.Y)
		case svgattr.CurveTo:
			t.CubicBezier(seg.Abs, geom.Pt(seg.X1, seg.Y1), geom.Pt(seg.X2, seg.Y2), geom.Pt(seg.X, seg.Y))
		case svgattr.SmoothCurveTo:
			t.SmoothCubicBezier(seg.Abs, geom.Pt(seg.X2, seg.Y2), geom.Pt(seg.X, seg.Y))
		case svgattr.QuadTo:
			t.QuadraticBezier(seg.Abs, geom.Pt(seg.X1, seg.Y1), geom.Pt(seg.X, seg.Y))
		case svgattr.SmoothQuadTo:
			t.SmoothQuadraticBezier(seg.Abs, geom.Pt(seg.X, seg.Y))
		case svgattr.ArcTo:
			t.Elliptical(seg.Abs, geom.Vec(seg.Rx, seg.Ry), degToRad(seg.XRotation),
				geom.ArcFlags{LargeArc: seg.LargeArc, Sweep: seg.Sweep}, geom.Pt(seg.X, seg.Y))
		}
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func moveTo(x, y float64) svgattr.PathSegment {
	return svgattr.PathSegment{Kind: svgattr.MoveTo, Abs: true, X: x, Y: y}
}

func lineTo(x, y float64) svgattr.PathSegment {
	return svgattr.PathSegment{Kind: svgattr.LineTo, Abs: true, X: x, Y: y}
}

func closePath() svgattr.PathSegment {
	return svgattr.PathSegment{Kind: svgattr.ClosePath, Abs: true}
}

func arcTo(rx, ry float64, largeArc, sweep bool, x, y float64) svgattr.PathSegment {
	return svgattr.PathSegment{Kind: svgattr.ArcTo, Abs: true, Rx: rx, Ry: ry, LargeArc: largeArc, Sweep: sweep, X: x, Y: y}
}

// Rect lowers a <rect> into path segments: a straight 4-sided path if rx
// or ry is zero or negative, or a rounded path with a quarter-ellipse arc
// at each corner when both are positive. Per SVG 1.1 "Basic shapes", a degenerate width or
// height (<= 0) lowers to no segments at all.
func Rect(x, y, width, height, rx, ry float64) []svgattr.PathSegment {
	if width <= 0 || height <= 0 {
		return nil
	}
	if rx <= 0 || ry <= 0 {
		return []svgattr.PathSegment{
			moveTo(x, y),
			lineTo(x+width, y),
			lineTo(x+width, y+height),
			lineTo(x, y+height),
			closePath(),
		}
	}
	if rx > width/2 {
		rx = width / 2
	}
	if ry > height/2 {
		ry = height / 2
	}
	return []svgattr.PathSegment{
		moveTo(x+rx, y),
		lineTo(x+width-rx, y),
		arcTo(rx, ry, false, true, x+width, y+ry),
		lineTo(x+width, y+height-ry),
		arcTo(rx, ry, false, true, x+width-rx, y+height),
		lineTo(x+rx, y+height),
		arcTo(rx, ry, false, true, x, y+height-ry),
		lineTo(x, y+ry),
		arcTo(rx, ry, false, true, x+rx, y),
		closePath(),
	}
}

// Ellipse lowers a <circle> (rx == ry == r) or <ellipse> into two
// half-ellipse arcs plus a close, the usual way of expressing a full
// ellipse as SVG path data (a single arc command cannot return to its own
// start point).
func Ellipse(cx, cy, rx, ry float64) []svgattr.PathSegment {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	return []svgattr.PathSegment{
		moveTo(cx+rx, cy),
		arcTo(rx, ry, true, true, cx-rx, cy),
		arcTo(rx, ry, true, true, cx+rx, cy),
		closePath(),
	}
}

// Circle lowers a <circle> into the same two-arc form as Ellipse.
func Circle(cx, cy, r float64) []svgattr.PathSegment {
	return Ellipse(cx, cy, r, r)
}

// Line lowers a <line> into a bare move+line.
func Line(x1, y1, x2, y2 float64) []svgattr.PathSegment {
	return []svgattr.PathSegment{moveTo(x1, y1), lineTo(x2, y2)}
}

// Polyline lowers a <polyline>'s points into a move followed by a line to
// each subsequent point, with no closing segment.
func Polyline(pts []geom.Point) []svgattr.PathSegment {
	return polyPoints(pts, false)
}

// Polygon is Polyline with an implicit close back to the first point.
func Polygon(pts []geom.Point) []svgattr.PathSegment {
	return polyPoints(pts, true)
}

func polyPoints(pts []geom.Point, closed bool) []svgattr.PathSegment {
	if len(pts) == 0 {
		return nil
	}
	segs := make([]svgattr.PathSegment, 0, len(pts)+1)
	segs = append(segs, moveTo(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		segs = append(segs, lineTo(p.X, p.Y))
	}
	if closed {
		segs = append(segs, closePath())
	}
	return segs
}
