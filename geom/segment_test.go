package geom

import "testing"

func TestSegmentLength(t *testing.T) {
	s := Segment{From: Pt(0, 0), To: Pt(3, 4)}
	if !approx(s.Length(), 5) {
		t.Errorf("got %v", s.Length())
	}
}

func TestSegmentSample(t *testing.T) {
	s := Segment{From: Pt(0, 0), To: Pt(10, 0)}
	mid := s.Sample(0.5)
	if !mid.ApproxEqual(Pt(5, 0), 1e-9) {
		t.Errorf("got %v", mid)
	}
}

func TestSegmentToLine(t *testing.T) {
	s := Segment{From: Pt(0, 0), To: Pt(1, 1)}
	l := s.ToLine()
	p := l.Sample(2)
	if !p.ApproxEqual(Pt(2, 2), 1e-9) {
		t.Errorf("got %v", p)
	}
}
