package turtle

import "github.com/aprice2704/svg2gcode/geom"

const mmPerInch = 25.4

// DpiTurtle wraps another Turtle and converts every coordinate it receives
// from user units (SVG's "px", nominally 1/96 inch, or whatever DPI the
// caller chose to treat a unit as) into millimeters before forwarding.
// Grounded on original_source/lib/src/turtle/dpi.rs.
type DpiTurtle struct {
	Dpi   float64
	Inner Turtle
}

// NewDpiTurtle wraps inner, converting at dpi user-units-per-inch.
func NewDpiTurtle(dpi float64, inner Turtle) *DpiTurtle {
	return &DpiTurtle{Dpi: dpi, Inner: inner}
}

func (d *DpiTurtle) toMM(v float64) float64 {
	return (v / d.Dpi) * mmPerInch
}

func (d *DpiTurtle) pointToMM(p geom.Point) geom.Point {
	return geom.Pt(d.toMM(p.X), d.toMM(p.Y))
}

func (d *DpiTurtle) vectorToMM(v geom.Vector) geom.Vector {
	return geom.Vec(d.toMM(v.X), d.toMM(v.Y))
}

func (d *DpiTurtle) Begin() { d.Inner.Begin() }
func (d *DpiTurtle) End()   { d.Inner.End() }

func (d *DpiTurtle) Comment(text string) { d.Inner.Comment(text) }

func (d *DpiTurtle) MoveTo(to geom.Point) { d.Inner.MoveTo(d.pointToMM(to)) }

func (d *DpiTurtle) LineTo(to geom.Point) { d.Inner.LineTo(d.pointToMM(to)) }

func (d *DpiTurtle) Arc(a geom.SvgArc) {
	d.Inner.Arc(geom.SvgArc{
		From:      d.pointToMM(a.From),
		To:        d.pointToMM(a.To),
		Radii:     d.vectorToMM(a.Radii),
		XRotation: a.XRotation,
		Flags:     a.Flags,
	})
}

func (d *DpiTurtle) CubicBezier(c geom.CubicBezier) {
	d.Inner.CubicBezier(geom.CubicBezier{
		From:  d.pointToMM(c.From),
		Ctrl1: d.pointToMM(c.Ctrl1),
		Ctrl2: d.pointToMM(c.Ctrl2),
		To:    d.pointToMM(c.To),
	})
}

func (d *DpiTurtle) QuadraticBezier(q geom.QuadBezier) {
	d.Inner.QuadraticBezier(geom.QuadBezier{
		From: d.pointToMM(q.From),
		Ctrl: d.pointToMM(q.Ctrl),
		To:   d.pointToMM(q.To),
	})
}
