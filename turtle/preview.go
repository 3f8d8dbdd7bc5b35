package turtle

import "github.com/aprice2704/svg2gcode/geom"

// PreviewTurtle flattens every primitive it receives to straight line
// segments in absolute coordinates, for rendering a quick visual check of
// a conversion before it's sent to a machine. Grounded on the same
// arcmath flattening GCodeTurtle uses for its line-only machines, and on
// cam/logo.go's OutputSVG, which walks a recorded turtle path's segments
// into a draw2d.GraphicContext one MoveTo/LineTo pair at a time.
type PreviewTurtle struct {
	Tolerance float64
	Segments  []geom.Segment
	current   geom.Point
}

// NewPreviewTurtle returns a turtle that flattens curves to tolerance.
func NewPreviewTurtle(tolerance float64) *PreviewTurtle {
	return &PreviewTurtle{Tolerance: tolerance}
}

func (p *PreviewTurtle) Begin()         {}
func (p *PreviewTurtle) End()           {}
func (p *PreviewTurtle) Comment(string) {}

func (p *PreviewTurtle) MoveTo(to geom.Point) {
	p.current = to
}

func (p *PreviewTurtle) LineTo(to geom.Point) {
	p.Segments = append(p.Segments, geom.Segment{From: p.current, To: to})
	p.current = to
}

func (p *PreviewTurtle) Arc(a geom.SvgArc) {
	for _, elem := range flattenArc(a, p.Tolerance, FlattenToLines) {
		p.LineTo(elem.Line.To)
	}
}

func (p *PreviewTurtle) CubicBezier(c geom.CubicBezier) {
	for _, elem := range flattenCubic(c, p.Tolerance, FlattenToLines) {
		p.LineTo(elem.Line.To)
	}
}

func (p *PreviewTurtle) QuadraticBezier(q geom.QuadBezier) {
	p.CubicBezier(q.ToCubic())
}
