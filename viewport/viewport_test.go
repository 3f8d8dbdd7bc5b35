package viewport

import (
	"testing"

	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/svgattr"
)

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}

func TestHintForAttr(t *testing.T) {
	cases := map[string]DimensionHint{
		"x": Horizontal, "width": Horizontal, "rx": Horizontal,
		"y": Vertical, "height": Vertical, "ry": Vertical,
		"stroke-width": Other, "font-size": Other,
	}
	for attr, want := range cases {
		if got := HintForAttr(attr); got != want {
			t.Errorf("HintForAttr(%q) = %v, want %v", attr, got, want)
		}
	}
}

func TestLengthToUserUnitsAbsoluteUnits(t *testing.T) {
	cases := []struct {
		l    svgattr.Length
		want float64
	}{
		{svgattr.Length{Value: 1, Unit: svgattr.UnitIn}, 96},
		{svgattr.Length{Value: 2.54, Unit: svgattr.UnitCm}, 96},
		{svgattr.Length{Value: 25.4, Unit: svgattr.UnitMm}, 96},
		{svgattr.Length{Value: 72, Unit: svgattr.UnitPt}, 96},
		{svgattr.Length{Value: 6, Unit: svgattr.UnitPc}, 96},
		{svgattr.Length{Value: 10, Unit: svgattr.UnitPx}, 10},
		{svgattr.Length{Value: 10, Unit: svgattr.UnitNone}, 10},
	}
	for _, tc := range cases {
		got := LengthToUserUnits(tc.l, Other, nil)
		if !approx(got, tc.want) {
			t.Errorf("LengthToUserUnits(%+v) = %v, want %v", tc.l, got, tc.want)
		}
	}
}

func TestLengthToUserUnitsQ(t *testing.T) {
	// 4 quarter-millimeters is 1mm, which at 96dpi is 96/25.4 px.
	got := LengthToUserUnits(svgattr.Length{Value: 4, Unit: svgattr.UnitQ}, Other, nil)
	want := 96.0 / 25.4
	if !approx(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLengthToUserUnitsPercentWithoutStackFallsBackToFraction(t *testing.T) {
	got := LengthToUserUnits(svgattr.Length{Value: 50, Unit: svgattr.UnitPercent}, Horizontal, nil)
	if !approx(got, 0.5) {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestLengthToUserUnitsPercentResolvesAgainstStackTop(t *testing.T) {
	stack := []ViewportSize{{Width: 100, Height: 50}, {Width: 200, Height: 80}}
	gotX := LengthToUserUnits(svgattr.Length{Value: 50, Unit: svgattr.UnitPercent}, Horizontal, stack)
	if !approx(gotX, 100) {
		t.Errorf("got %v, want 100 (50%% of innermost width 200)", gotX)
	}
	gotY := LengthToUserUnits(svgattr.Length{Value: 50, Unit: svgattr.UnitPercent}, Vertical, stack)
	if !approx(gotY, 40) {
		t.Errorf("got %v, want 40 (50%% of innermost height 80)", gotY)
	}
}

func TestLengthToUserUnitsPercentOtherUsesDiagonal(t *testing.T) {
	stack := []ViewportSize{{Width: 300, Height: 400}}
	got := LengthToUserUnits(svgattr.Length{Value: 100, Unit: svgattr.UnitPercent}, Other, stack)
	want := stack[0].diagonal()
	if !approx(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLengthToUserUnitsEmFallsBackTo16px(t *testing.T) {
	got := LengthToUserUnits(svgattr.Length{Value: 2, Unit: svgattr.UnitEm}, Other, nil)
	if !approx(got, 32) {
		t.Errorf("got %v, want 32", got)
	}
}

func TestGetViewportTransformIdentityWhenSizesMatch(t *testing.T) {
	vb := svgattr.ViewBox{MinX: 0, MinY: 0, Width: 100, Height: 100}
	m := GetViewportTransform(vb, svgattr.DefaultAspectRatio, geom.Vec(100, 100), geom.Pt(0, 0))
	p := m.TransformPoint(geom.Pt(50, 50))
	if !p.ApproxEqual(geom.Pt(50, 50), 1e-9) {
		t.Errorf("got %v", p)
	}
}

func TestGetViewportTransformScalesUniformlyForMeet(t *testing.T) {
	// viewBox is taller than wide, viewport is square: meet should pick the
	// smaller scale (height-limited) and center horizontally.
	vb := svgattr.ViewBox{MinX: 0, MinY: 0, Width: 100, Height: 200}
	m := GetViewportTransform(vb, svgattr.DefaultAspectRatio, geom.Vec(100, 100), geom.Pt(0, 0))
	topLeft := m.TransformPoint(geom.Pt(0, 0))
	bottomRight := m.TransformPoint(geom.Pt(100, 200))
	if !approx(bottomRight.Y-topLeft.Y, 100) {
		t.Errorf("expected the viewBox height to fill the viewport, got %v", bottomRight.Y-topLeft.Y)
	}
	if bottomRight.X-topLeft.X >= 100 {
		t.Errorf("expected the viewBox width to be letterboxed under the viewport width, got %v", bottomRight.X-topLeft.X)
	}
	if topLeft.X <= 0 {
		t.Errorf("expected meet to center horizontally, leaving a left margin, got topLeft.X=%v", topLeft.X)
	}
}

func TestGetViewportTransformSliceCoversViewport(t *testing.T) {
	vb := svgattr.ViewBox{MinX: 0, MinY: 0, Width: 200, Height: 100}
	m := GetViewportTransform(vb, svgattr.AspectRatio{Align: svgattr.AlignXMidYMid, Slice: true}, geom.Vec(100, 100), geom.Pt(0, 0))
	topLeft := m.TransformPoint(geom.Pt(0, 0))
	bottomRight := m.TransformPoint(geom.Pt(200, 100))
	if bottomRight.X-topLeft.X <= 100 {
		t.Errorf("expected slice to overflow the viewport width, got %v", bottomRight.X-topLeft.X)
	}
}

func TestGetViewportTransformAlignNoneStretchesIndependently(t *testing.T) {
	vb := svgattr.ViewBox{MinX: 0, MinY: 0, Width: 200, Height: 100}
	m := GetViewportTransform(vb, svgattr.AspectRatio{Align: svgattr.AlignNone}, geom.Vec(100, 100), geom.Pt(0, 0))
	bottomRight := m.TransformPoint(geom.Pt(200, 100))
	if !approx(bottomRight.X, 100) || !approx(bottomRight.Y, 100) {
		t.Errorf("expected non-uniform stretch to fill the viewport exactly, got %v", bottomRight)
	}
}

func TestGetViewportTransformTranslatesByViewportPosAndMinOffset(t *testing.T) {
	vb := svgattr.ViewBox{MinX: 10, MinY: 20, Width: 100, Height: 100}
	m := GetViewportTransform(vb, svgattr.DefaultAspectRatio, geom.Vec(100, 100), geom.Pt(5, 5))
	p := m.TransformPoint(geom.Pt(10, 20))
	if !p.ApproxEqual(geom.Pt(5, 5), 1e-9) {
		t.Errorf("viewBox origin should map to viewportPos, got %v", p)
	}
}
