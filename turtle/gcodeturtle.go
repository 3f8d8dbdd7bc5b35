package turtle

import (
	"github.com/aprice2704/svg2gcode/arcmath"
	"github.com/aprice2704/svg2gcode/gcode"
	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/machine"
)

// GCodeTurtle is the turtle that actually drives the output: it owns a
// Machine to track tool/distance latches and appends to Program as it
// receives primitives. Grounded on
// original_source/lib/src/turtle/g_code.rs.
type GCodeTurtle struct {
	Machine   *machine.Machine
	Tolerance float64
	Feedrate  float64
	Flatten   FlattenKind
	Program   []gcode.Token
}

// NewGCodeTurtle returns a GCodeTurtle driving m, flattening curves to
// tolerance and cutting at feedrate.
func NewGCodeTurtle(m *machine.Machine, tolerance, feedrate float64) *GCodeTurtle {
	flatten := FlattenToLines
	if m.Supported.CircularInterpolation {
		flatten = FlattenToArcsAndLines
	}
	return &GCodeTurtle{Machine: m, Tolerance: tolerance, Feedrate: feedrate, Flatten: flatten}
}

func (g *GCodeTurtle) toolOn() {
	g.Program = append(g.Program, g.Machine.ToolOn()...)
	g.Program = append(g.Program, g.Machine.Absolute()...)
}

func (g *GCodeTurtle) toolOff() {
	g.Program = append(g.Program, g.Machine.ToolOff()...)
	g.Program = append(g.Program, g.Machine.Absolute()...)
}

// circularInterpolation emits a single G2/G3 move for a, splitting a
// large arc into two non-large arcs (a controller's G2/G3 cannot sweep
// more than 180 degrees in one command).
func (g *GCodeTurtle) circularInterpolation(a geom.SvgArc) {
	if a.Flags.LargeArc {
		left, right := a.ToArc().Split(0.5)
		g.circularInterpolation(left.ToSvgArc())
		g.circularInterpolation(right.ToSvgArc())
		return
	}
	cw := !a.Flags.Sweep
	g.Program = append(g.Program, gcode.ArcMove(cw, a.To.X, a.To.Y, a.Radii.X, g.Feedrate)...)
}

func (g *GCodeTurtle) Begin() {
	g.Program = append(g.Program, gcode.UnitsMM()...)
	g.Program = append(g.Program, g.Machine.Absolute()...)
	g.Program = append(g.Program, g.Machine.ProgramBegin()...)
	g.Program = append(g.Program, g.Machine.Absolute()...)
}

func (g *GCodeTurtle) End() {
	g.Program = append(g.Program, g.Machine.ToolOff()...)
	g.Program = append(g.Program, g.Machine.Absolute()...)
	g.Program = append(g.Program, g.Machine.ProgramEnd()...)
	g.Program = append(g.Program, gcode.ProgramEnd()...)
}

func (g *GCodeTurtle) Comment(text string) {
	g.Program = append(g.Program, gcode.NewComment(text))
}

func (g *GCodeTurtle) MoveTo(to geom.Point) {
	g.toolOff()
	g.Program = append(g.Program, gcode.RapidMove(to.X, to.Y)...)
}

func (g *GCodeTurtle) LineTo(to geom.Point) {
	g.toolOn()
	g.Program = append(g.Program, gcode.LinearMove(to.X, to.Y, g.Feedrate)...)
}

func (g *GCodeTurtle) Arc(a geom.SvgArc) {
	if a.IsStraightLine() {
		g.LineTo(a.To)
		return
	}
	g.toolOn()
	for _, elem := range flattenArc(a, g.Tolerance, g.Flatten) {
		if elem.Kind == arcmath.ArcElement {
			g.circularInterpolation(elem.Arc)
		} else {
			g.LineTo(elem.Line.To)
		}
	}
}

func (g *GCodeTurtle) CubicBezier(c geom.CubicBezier) {
	g.toolOn()
	for _, elem := range flattenCubic(c, g.Tolerance, g.Flatten) {
		if elem.Kind == arcmath.ArcElement {
			g.circularInterpolation(elem.Arc)
		} else {
			g.LineTo(elem.Line.To)
		}
	}
}

func (g *GCodeTurtle) QuadraticBezier(q geom.QuadBezier) {
	g.CubicBezier(q.ToCubic())
}
