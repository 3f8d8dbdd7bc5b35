package geom

import (
	"math"
	"testing"
)

func TestSvgArcIsStraightLine(t *testing.T) {
	a := SvgArc{From: Pt(0, 0), To: Pt(1, 0), Radii: Vec(0, 5)}
	if !a.IsStraightLine() {
		t.Error("expected zero-radius arc to be a straight line")
	}
	b := SvgArc{From: Pt(0, 0), To: Pt(1, 0), Radii: Vec(5, 5)}
	if b.IsStraightLine() {
		t.Error("expected non-degenerate arc to not be a straight line")
	}
}

// A semicircle from (0,0) to (2,0) with radius 1 should center at (1,0).
func TestSvgArcToArcSemicircle(t *testing.T) {
	a := SvgArc{
		From:  Pt(0, 0),
		To:    Pt(2, 0),
		Radii: Vec(1, 1),
		Flags: ArcFlags{LargeArc: false, Sweep: true},
	}
	c := a.ToArc()
	if !c.Center.ApproxEqual(Pt(1, 0), 1e-9) {
		t.Errorf("got center %v", c.Center)
	}
	if !approx(math.Abs(c.SweepAngle), math.Pi) {
		t.Errorf("expected a half-turn sweep, got %v", c.SweepAngle)
	}
}

func TestArcSampleEndpoints(t *testing.T) {
	a := SvgArc{
		From:  Pt(0, 0),
		To:    Pt(2, 0),
		Radii: Vec(1, 1),
		Flags: ArcFlags{LargeArc: false, Sweep: true},
	}
	c := a.ToArc()
	if !c.Sample(0).ApproxEqual(a.From, 1e-6) {
		t.Errorf("Sample(0) = %v, want %v", c.Sample(0), a.From)
	}
	if !c.Sample(1).ApproxEqual(a.To, 1e-6) {
		t.Errorf("Sample(1) = %v, want %v", c.Sample(1), a.To)
	}
}

func TestArcToSvgArcRoundTrip(t *testing.T) {
	orig := SvgArc{
		From:  Pt(0, 0),
		To:    Pt(2, 0),
		Radii: Vec(1, 1),
		Flags: ArcFlags{LargeArc: false, Sweep: true},
	}
	back := orig.ToArc().ToSvgArc()
	if !back.From.ApproxEqual(orig.From, 1e-6) || !back.To.ApproxEqual(orig.To, 1e-6) {
		t.Errorf("got %+v, want endpoints %v -> %v", back, orig.From, orig.To)
	}
	if back.Flags != orig.Flags {
		t.Errorf("got flags %+v, want %+v", back.Flags, orig.Flags)
	}
}

func TestArcSplit(t *testing.T) {
	a := SvgArc{
		From:  Pt(0, 0),
		To:    Pt(2, 0),
		Radii: Vec(1, 1),
		Flags: ArcFlags{LargeArc: false, Sweep: true},
	}
	c := a.ToArc()
	left, right := c.Split(0.5)
	if !left.Sample(1).ApproxEqual(right.Sample(0), 1e-6) {
		t.Errorf("split halves should meet: %v vs %v", left.Sample(1), right.Sample(0))
	}
	if !left.Sample(0).ApproxEqual(c.Sample(0), 1e-6) {
		t.Errorf("left half should start where the original did")
	}
	if !right.Sample(1).ApproxEqual(c.Sample(1), 1e-6) {
		t.Errorf("right half should end where the original did")
	}
}

func TestArcBoundingBoxFullCircle(t *testing.T) {
	c := Arc{Center: Pt(0, 0), Radii: Vec(1, 1), StartAngle: 0, SweepAngle: 2 * math.Pi}
	box := c.BoundingBox()
	if !approx(box.Min.X, -1) || !approx(box.Max.X, 1) || !approx(box.Min.Y, -1) || !approx(box.Max.Y, 1) {
		t.Errorf("got box %+v", box)
	}
}

func TestArcBoundingBoxQuarterCircle(t *testing.T) {
	// Quarter circle from angle 0 to pi/2 should only reach x=1 and y=1
	// at its endpoints, not bulge further.
	c := Arc{Center: Pt(0, 0), Radii: Vec(1, 1), StartAngle: 0, SweepAngle: math.Pi / 2}
	box := c.BoundingBox()
	if !approx(box.Min.X, 0) || !approx(box.Max.X, 1) || !approx(box.Min.Y, 0) || !approx(box.Max.Y, 1) {
		t.Errorf("got box %+v", box)
	}
}
