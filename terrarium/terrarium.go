// Package terrarium implements Terrarium, the stateful wrapper around a
// turtle.Turtle that turns SVG path-data semantics -- relative coordinates,
// shorthand curve commands, closepath, nested transforms -- into the
// absolute, already-transformed primitive calls a Turtle expects.
//
// Grounded on original_source/lib/src/turtle/mod.rs's Terrarium.
package terrarium

import (
	"github.com/aprice2704/svg2gcode/arcmath"
	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/turtle"
)

// Terrarium tracks path-local state -- current position, the position a
// closepath returns to, the active transform stack, and the reflected
// control point needed by smooth curve commands -- while forwarding
// resolved absolute primitives to the wrapped Turtle.
type Terrarium struct {
	Turtle turtle.Turtle

	currentPosition    geom.Point
	initialPosition    geom.Point
	currentTransform   geom.Affine
	transformStack     []geom.Affine
	prevQuadCtrl       *geom.Point
	prevCubicCtrl      *geom.Point
}

// New returns a Terrarium at the origin with the identity transform.
func New(t turtle.Turtle) *Terrarium {
	return &Terrarium{Turtle: t, currentTransform: geom.Identity}
}

// resolve turns one axis of a path command's coordinate into an absolute
// value: abs means use it as-is, relative means add it to the
// untransformed current position on that axis.
func resolve(value float64, abs bool, original float64) float64 {
	if abs {
		return value
	}
	return original + value
}

// untransformedCurrent returns the current position mapped back into the
// coordinate space the next path command's relative offsets are
// expressed in.
func (t *Terrarium) untransformedCurrent() geom.Point {
	inv, ok := t.currentTransform.Inverse()
	if !ok {
		return t.currentPosition
	}
	return inv.TransformPoint(t.currentPosition)
}

// MoveTo handles the SVG "M"/"m" command.
func (t *Terrarium) MoveTo(abs bool, x, y float64) {
	orig := t.untransformedCurrent()
	to := t.currentTransform.TransformPoint(geom.Pt(resolve(x, abs, orig.X), resolve(y, abs, orig.Y)))

	t.currentPosition = to
	t.initialPosition = to
	t.prevQuadCtrl = nil
	t.prevCubicCtrl = nil
	t.Turtle.MoveTo(to)
}

const epsilon = 1e-9

// Close implements the SVG closepath command: cut back to the subpath's
// start if not already there.
func (t *Terrarium) Close() {
	if !t.currentPosition.ApproxEqual(t.initialPosition, epsilon) {
		t.Turtle.LineTo(t.initialPosition)
	}
	t.currentPosition = t.initialPosition
	t.prevQuadCtrl = nil
	t.prevCubicCtrl = nil
}

// Line implements the SVG "L"/"l" line-to command. "H"/"h" and "V"/"v"
// have their own methods below.
func (t *Terrarium) Line(abs bool, x, y float64) {
	orig := t.untransformedCurrent()
	t.lineToResolved(resolve(x, abs, orig.X), resolve(y, abs, orig.Y))
}

// HorizontalLineTo implements the SVG "H"/"h" command: a Line with the Y
// coordinate held at its current value.
func (t *Terrarium) HorizontalLineTo(abs bool, x float64) {
	orig := t.untransformedCurrent()
	t.lineToResolved(resolve(x, abs, orig.X), orig.Y)
}

// VerticalLineTo implements the SVG "V"/"v" command.
func (t *Terrarium) VerticalLineTo(abs bool, y float64) {
	orig := t.untransformedCurrent()
	t.lineToResolved(orig.X, resolve(y, abs, orig.Y))
}

func (t *Terrarium) lineToResolved(x, y float64) {
	to := t.currentTransform.TransformPoint(geom.Pt(x, y))
	t.currentPosition = to
	t.prevQuadCtrl = nil
	t.prevCubicCtrl = nil
	t.Turtle.LineTo(to)
}

// CubicBezier implements the SVG "C"/"c" command.
func (t *Terrarium) CubicBezier(abs bool, ctrl1, ctrl2, to geom.Point) {
	from := t.currentPosition
	if !abs {
		orig := t.untransformedCurrent()
		ctrl1 = orig.Add(ctrl1.ToVector())
		ctrl2 = orig.Add(ctrl2.ToVector())
		to = orig.Add(to.ToVector())
	}
	ctrl1 = t.currentTransform.TransformPoint(ctrl1)
	ctrl2 = t.currentTransform.TransformPoint(ctrl2)
	to = t.currentTransform.TransformPoint(to)

	cb := geom.CubicBezier{From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
	t.currentPosition = cb.To
	reflected := geom.Pt(2*t.currentPosition.X-cb.Ctrl2.X, 2*t.currentPosition.Y-cb.Ctrl2.Y)
	t.prevCubicCtrl = &reflected
	t.prevQuadCtrl = nil
	t.Turtle.CubicBezier(cb)
}

// SmoothCubicBezier implements the SVG "S"/"s" command, whose first
// control point is the reflection of the previous curve's final control
// point (or the current position, if the previous command wasn't a cubic).
func (t *Terrarium) SmoothCubicBezier(abs bool, ctrl2, to geom.Point) {
	from := t.currentPosition
	ctrl1 := t.currentPosition
	if t.prevCubicCtrl != nil {
		ctrl1 = *t.prevCubicCtrl
	}
	if !abs {
		orig := t.untransformedCurrent()
		ctrl2 = orig.Add(ctrl2.ToVector())
		to = orig.Add(to.ToVector())
	}
	ctrl2 = t.currentTransform.TransformPoint(ctrl2)
	to = t.currentTransform.TransformPoint(to)

	cb := geom.CubicBezier{From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
	t.currentPosition = cb.To
	reflected := geom.Pt(2*t.currentPosition.X-cb.Ctrl2.X, 2*t.currentPosition.Y-cb.Ctrl2.Y)
	t.prevCubicCtrl = &reflected
	t.prevQuadCtrl = nil
	t.Turtle.CubicBezier(cb)
}

// QuadraticBezier implements the SVG "Q"/"q" command.
func (t *Terrarium) QuadraticBezier(abs bool, ctrl, to geom.Point) {
	from := t.currentPosition
	if !abs {
		orig := t.untransformedCurrent()
		ctrl = orig.Add(ctrl.ToVector())
		to = orig.Add(to.ToVector())
	}
	ctrl = t.currentTransform.TransformPoint(ctrl)
	to = t.currentTransform.TransformPoint(to)

	qb := geom.QuadBezier{From: from, Ctrl: ctrl, To: to}
	t.currentPosition = qb.To
	reflected := geom.Pt(2*t.currentPosition.X-qb.Ctrl.X, 2*t.currentPosition.Y-qb.Ctrl.Y)
	t.prevQuadCtrl = &reflected
	t.prevCubicCtrl = nil
	t.Turtle.QuadraticBezier(qb)
}

// SmoothQuadraticBezier implements the SVG "T"/"t" command.
func (t *Terrarium) SmoothQuadraticBezier(abs bool, to geom.Point) {
	from := t.currentPosition
	ctrl := t.currentPosition
	if t.prevQuadCtrl != nil {
		ctrl = *t.prevQuadCtrl
	}
	if !abs {
		orig := t.untransformedCurrent()
		to = orig.Add(to.ToVector())
	}
	to = t.currentTransform.TransformPoint(to)

	qb := geom.QuadBezier{From: from, Ctrl: ctrl, To: to}
	t.currentPosition = qb.To
	reflected := geom.Pt(2*t.currentPosition.X-qb.Ctrl.X, 2*t.currentPosition.Y-qb.Ctrl.Y)
	t.prevQuadCtrl = &reflected
	t.prevCubicCtrl = nil
	t.Turtle.QuadraticBezier(qb)
}

// Elliptical implements the SVG "A"/"a" command.
func (t *Terrarium) Elliptical(abs bool, radii geom.Vector, xRotation float64, flags geom.ArcFlags, to geom.Point) {
	from := t.untransformedCurrent()
	if !abs {
		to = from.Add(to.ToVector())
	}
	svgArc := geom.SvgArc{From: from, To: to, Radii: radii, XRotation: xRotation, Flags: flags}

	transformed := arcmath.TransformArc(svgArc, t.currentTransform)
	t.currentPosition = transformed.To
	t.prevQuadCtrl = nil
	t.prevCubicCtrl = nil
	t.Turtle.Arc(transformed)
}

// PushTransform composes trans, applied before whatever is currently
// active, and remembers the prior transform for PopTransform.
func (t *Terrarium) PushTransform(trans geom.Affine) {
	t.transformStack = append(t.transformStack, t.currentTransform)
	t.currentTransform = trans.Then(t.currentTransform)
}

// PopTransform restores the transform active before the matching
// PushTransform. Panics if the stack is empty, matching the Rust
// original's `.expect(...)` -- popping with nothing pushed is a caller
// bug, not a recoverable runtime condition.
func (t *Terrarium) PopTransform() {
	if len(t.transformStack) == 0 {
		panic("terrarium: popped transform with none pushed")
	}
	last := len(t.transformStack) - 1
	t.currentTransform = t.transformStack[last]
	t.transformStack = t.transformStack[:last]
}

// Reset moves the turtle's notion of "current position" to the origin of
// the active transform, without emitting any drawing call. Used when
// starting a new top-level path element.
func (t *Terrarium) Reset() {
	t.currentPosition = t.currentTransform.TransformPoint(geom.Origin)
	t.initialPosition = t.currentPosition
	t.prevQuadCtrl = nil
	t.prevCubicCtrl = nil
}

// Begin and End simply forward to the wrapped Turtle.
func (t *Terrarium) Begin() { t.Turtle.Begin() }
func (t *Terrarium) End()   { t.Turtle.End() }

// Comment forwards a comment to the wrapped Turtle.
func (t *Terrarium) Comment(text string) { t.Turtle.Comment(text) }
