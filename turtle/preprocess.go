package turtle

import "github.com/aprice2704/svg2gcode/geom"

// PreprocessTurtle does nothing but accumulate the bounding box of
// everything drawn through it. Running a program through this sink first
// gives the real GCodeTurtle pass the extent it needs to align the origin
// (see the convert package). Grounded on
// original_source/lib/src/turtle/preprocess.rs.
type PreprocessTurtle struct {
	BoundingBox geom.Box
}

// NewPreprocessTurtle returns a turtle with an empty bounding box.
func NewPreprocessTurtle() *PreprocessTurtle {
	return &PreprocessTurtle{BoundingBox: geom.EmptyBox()}
}

func (p *PreprocessTurtle) Begin()            {}
func (p *PreprocessTurtle) End()              {}
func (p *PreprocessTurtle) Comment(text string) {}

func (p *PreprocessTurtle) MoveTo(to geom.Point) {
	p.BoundingBox = p.BoundingBox.UnionPoint(to)
}

func (p *PreprocessTurtle) LineTo(to geom.Point) {
	p.BoundingBox = p.BoundingBox.UnionPoint(to)
}

func (p *PreprocessTurtle) Arc(a geom.SvgArc) {
	if a.IsStraightLine() {
		p.LineTo(a.To)
		return
	}
	p.BoundingBox = p.BoundingBox.Union(a.ToArc().BoundingBox())
}

func (p *PreprocessTurtle) CubicBezier(c geom.CubicBezier) {
	p.BoundingBox = p.BoundingBox.Union(c.BoundingBox())
}

func (p *PreprocessTurtle) QuadraticBezier(q geom.QuadBezier) {
	p.BoundingBox = p.BoundingBox.Union(q.BoundingBox())
}
