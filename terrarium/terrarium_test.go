package terrarium

import (
	"testing"

	"github.com/aprice2704/svg2gcode/geom"
)

// fakeTurtle records every primitive it receives for assertions.
type fakeTurtle struct {
	moves []geom.Point
	lines []geom.Point
	arcs  []geom.SvgArc
	cubes []geom.CubicBezier
	quads []geom.QuadBezier
}

func (f *fakeTurtle) Begin()         {}
func (f *fakeTurtle) End()           {}
func (f *fakeTurtle) Comment(string) {}
func (f *fakeTurtle) MoveTo(to geom.Point) {
	f.moves = append(f.moves, to)
}
func (f *fakeTurtle) LineTo(to geom.Point) {
	f.lines = append(f.lines, to)
}
func (f *fakeTurtle) Arc(a geom.SvgArc) {
	f.arcs = append(f.arcs, a)
}
func (f *fakeTurtle) CubicBezier(c geom.CubicBezier) {
	f.cubes = append(f.cubes, c)
}
func (f *fakeTurtle) QuadraticBezier(q geom.QuadBezier) {
	f.quads = append(f.quads, q)
}

func TestMoveToAbsoluteAndRelative(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 5, 5)
	tr.MoveTo(false, 2, 3)
	if len(f.moves) != 2 {
		t.Fatalf("got %+v", f.moves)
	}
	if f.moves[0] != geom.Pt(5, 5) {
		t.Errorf("absolute MoveTo: got %v, want (5,5)", f.moves[0])
	}
	if f.moves[1] != geom.Pt(7, 8) {
		t.Errorf("relative MoveTo: got %v, want (7,8)", f.moves[1])
	}
}

func TestLineAbsoluteAndRelative(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.Line(true, 10, 0)
	tr.Line(false, 0, 10)
	if len(f.lines) != 2 {
		t.Fatalf("got %+v", f.lines)
	}
	if f.lines[0] != geom.Pt(10, 0) {
		t.Errorf("got %v", f.lines[0])
	}
	if f.lines[1] != geom.Pt(10, 10) {
		t.Errorf("got %v", f.lines[1])
	}
}

func TestHorizontalAndVerticalLineTo(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 5, 5)
	tr.HorizontalLineTo(true, 20)
	tr.VerticalLineTo(true, 1)
	if f.lines[0] != geom.Pt(20, 5) {
		t.Errorf("HorizontalLineTo: got %v, want (20,5)", f.lines[0])
	}
	if f.lines[1] != geom.Pt(20, 1) {
		t.Errorf("VerticalLineTo: got %v, want (20,1)", f.lines[1])
	}
}

func TestCloseLinesBackToSubpathStartWhenNotAlreadyThere(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.Line(true, 10, 0)
	tr.Line(true, 10, 10)
	tr.Close()
	if len(f.lines) != 3 {
		t.Fatalf("got %+v", f.lines)
	}
	if f.lines[2] != geom.Pt(0, 0) {
		t.Errorf("Close() should line back to the subpath start, got %v", f.lines[2])
	}
}

func TestCloseIsNoOpAtSubpathStart(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.Close()
	if len(f.lines) != 0 {
		t.Errorf("Close() at the start should not emit a line, got %+v", f.lines)
	}
}

func TestCubicBezierAbsolute(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.CubicBezier(true, geom.Pt(1, 1), geom.Pt(2, 1), geom.Pt(3, 0))
	if len(f.cubes) != 1 {
		t.Fatalf("got %+v", f.cubes)
	}
	c := f.cubes[0]
	if c.From != geom.Pt(0, 0) || c.Ctrl1 != geom.Pt(1, 1) || c.Ctrl2 != geom.Pt(2, 1) || c.To != geom.Pt(3, 0) {
		t.Errorf("got %+v", c)
	}
}

func TestSmoothCubicBezierReflectsPreviousControlPoint(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.CubicBezier(true, geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(2, 0))
	tr.SmoothCubicBezier(true, geom.Pt(3, -1), geom.Pt(4, 0))
	if len(f.cubes) != 2 {
		t.Fatalf("got %+v", f.cubes)
	}
	// Reflection of (1,1) about (2,0) is (3,-1).
	if f.cubes[1].Ctrl1 != geom.Pt(3, -1) {
		t.Errorf("got reflected control point %v, want (3,-1)", f.cubes[1].Ctrl1)
	}
}

func TestSmoothCubicBezierFallsBackToCurrentPositionWithoutPriorCubic(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 5, 5)
	tr.SmoothCubicBezier(true, geom.Pt(6, 6), geom.Pt(10, 5))
	if f.cubes[0].Ctrl1 != geom.Pt(5, 5) {
		t.Errorf("without a prior cubic, control point 1 should be the current position, got %v", f.cubes[0].Ctrl1)
	}
}

func TestQuadraticBezierAndSmoothQuadratic(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.QuadraticBezier(true, geom.Pt(1, 2), geom.Pt(2, 0))
	tr.SmoothQuadraticBezier(true, geom.Pt(4, 0))
	if len(f.quads) != 2 {
		t.Fatalf("got %+v", f.quads)
	}
	// Reflection of (1,2) about (2,0) is (3,-2).
	if f.quads[1].Ctrl != geom.Pt(3, -2) {
		t.Errorf("got reflected control point %v, want (3,-2)", f.quads[1].Ctrl)
	}
}

func TestEllipticalArc(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.MoveTo(true, 0, 0)
	tr.Elliptical(true, geom.Vec(1, 1), 0, geom.ArcFlags{Sweep: true}, geom.Pt(2, 0))
	if len(f.arcs) != 1 {
		t.Fatalf("got %+v", f.arcs)
	}
	if f.arcs[0].From != geom.Pt(0, 0) || f.arcs[0].To != geom.Pt(2, 0) {
		t.Errorf("got %+v", f.arcs[0])
	}
}

func TestPushPopTransformAffectsSubsequentPrimitives(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.PushTransform(geom.Translate(geom.Vec(10, 0)))
	tr.MoveTo(true, 0, 0)
	tr.PopTransform()
	tr.MoveTo(true, 0, 0)
	if f.moves[0] != geom.Pt(10, 0) {
		t.Errorf("inside the pushed transform, got %v, want (10,0)", f.moves[0])
	}
	if f.moves[1] != geom.Pt(0, 0) {
		t.Errorf("after popping, got %v, want (0,0)", f.moves[1])
	}
}

func TestPopTransformWithoutPushPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic popping an empty transform stack")
		}
	}()
	tr := New(&fakeTurtle{})
	tr.PopTransform()
}

func TestResetMovesWithoutEmittingDrawCall(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.PushTransform(geom.Translate(geom.Vec(5, 5)))
	tr.Reset()
	if len(f.moves) != 0 {
		t.Errorf("Reset() should not emit a MoveTo, got %+v", f.moves)
	}
	tr.Line(true, 0, 0)
	if f.lines[0] != geom.Pt(5, 5) {
		t.Errorf("after Reset() under a translate, current position should be (5,5), got %v", f.lines[0])
	}
}

func TestBeginEndCommentForwardToWrappedTurtle(t *testing.T) {
	f := &fakeTurtle{}
	tr := New(f)
	tr.Begin()
	tr.End()
	tr.Comment("hello")
}
