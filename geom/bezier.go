package geom

import (
	"math"
	"sort"
)

// CubicBezier is a cubic Bezier curve with two control points.
type CubicBezier struct {
	From, Ctrl1, Ctrl2, To Point
}

// QuadBezier is a quadratic Bezier curve with one control point, as used by
// the SVG `Q`/`T` path commands. It is elevated to a CubicBezier wherever
// the pipeline needs cubic machinery.
type QuadBezier struct {
	From, Ctrl, To Point
}

// ToCubic raises a quadratic curve to the equivalent cubic, using the
// standard degree-elevation formula.
func (q QuadBezier) ToCubic() CubicBezier {
	return CubicBezier{
		From:  q.From,
		Ctrl1: q.From.Add(q.Ctrl.Sub(q.From).Scale(2.0 / 3.0)),
		Ctrl2: q.To.Add(q.Ctrl.Sub(q.To).Scale(2.0 / 3.0)),
		To:    q.To,
	}
}

// Sample evaluates the curve at parameter t in [0, 1] via direct evaluation
// of the Bernstein polynomial.
func (c CubicBezier) Sample(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	cc := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*c.From.X + b*c.Ctrl1.X + cc*c.Ctrl2.X + d*c.To.X,
		Y: a*c.From.Y + b*c.Ctrl1.Y + cc*c.Ctrl2.Y + d*c.To.Y,
	}
}

// derivativeCoeffs returns the quadratic coefficients (A, B, C) of
// B'(t) = A*t^2 + B*t + C, component-wise.
func (c CubicBezier) derivativeCoeffs() (a, b, cc Vector) {
	p0, p1, p2, p3 := c.From.ToVector(), c.Ctrl1.ToVector(), c.Ctrl2.ToVector(), c.To.ToVector()
	a = p3.Sub(p2.Scale(3)).Add(p1.Scale(3)).Sub(p0).Scale(3)
	b = p0.Sub(p1.Scale(2)).Add(p2).Scale(6)
	cc = p1.Sub(p0).Scale(3)
	return a, b, cc
}

// Derivative returns B'(t), the (non-normalized) tangent direction.
func (c CubicBezier) Derivative(t float64) Vector {
	a, b, cc := c.derivativeCoeffs()
	return a.Scale(t * t).Add(b.Scale(t)).Add(cc)
}

// Baseline is the straight segment connecting the curve's endpoints,
// ignoring its control points.
func (c CubicBezier) Baseline() Segment {
	return Segment{From: c.From, To: c.To}
}

// IsLinear reports whether both control points lie within tolerance of the
// baseline, i.e. the curve can be safely rendered as a straight line.
func (c CubicBezier) IsLinear(tolerance float64) bool {
	if c.Baseline().Length() < epsilonNearZero {
		return c.Ctrl1.ApproxEqual(c.From, tolerance) && c.Ctrl2.ApproxEqual(c.From, tolerance)
	}
	line := c.Baseline().ToLine()
	return perpendicularDistance(line, c.Ctrl1) < tolerance && perpendicularDistance(line, c.Ctrl2) < tolerance
}

func perpendicularDistance(l Line, p Point) float64 {
	dir := l.Along.Normalized()
	toPoint := p.Sub(l.PointOn)
	return math.Abs(toPoint.Det(dir))
}

// Split divides the curve at parameter t via De Casteljau's algorithm into
// two sub-curves covering [0,t] and [t,1].
func (c CubicBezier) Split(t float64) (left, right CubicBezier) {
	p01 := c.From.Lerp(c.Ctrl1, t)
	p12 := c.Ctrl1.Lerp(c.Ctrl2, t)
	p23 := c.Ctrl2.Lerp(c.To, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p0123 := p012.Lerp(p123, t)

	left = CubicBezier{From: c.From, Ctrl1: p01, Ctrl2: p012, To: p0123}
	right = CubicBezier{From: p0123, Ctrl1: p123, Ctrl2: p23, To: c.To}
	return left, right
}

// SplitRange returns the sub-curve covering parameter range [t0, t1] of c.
func (c CubicBezier) SplitRange(t0, t1 float64) CubicBezier {
	_, afterT0 := c.Split(t0)
	if t1 >= 1 {
		return afterT0
	}
	u := (t1 - t0) / (1 - t0)
	before, _ := afterT0.Split(u)
	return before
}

// monotonicSplitPoints returns the t values in (0,1), sorted, at which
// either the x or y derivative changes sign.
func (c CubicBezier) monotonicSplitPoints() []float64 {
	a, b, cc := c.derivativeCoeffs()
	ts := make([]float64, 0, 4)
	ts = append(ts, solveQuadraticRoots(a.X, b.X, cc.X)...)
	ts = append(ts, solveQuadraticRoots(a.Y, b.Y, cc.Y)...)
	sort.Float64s(ts)
	out := ts[:0]
	var last float64 = -1
	for _, t := range ts {
		if t <= 0 || t >= 1 {
			continue
		}
		if len(out) > 0 && t-last < epsilonNearZero {
			continue
		}
		out = append(out, t)
		last = t
	}
	return out
}

// ForEachMonotonicRange calls fn with the sub-curve of c covering each
// maximal parameter range over which both x(t) and y(t) are monotonic.
func (c CubicBezier) ForEachMonotonicRange(fn func(CubicBezier)) {
	splits := c.monotonicSplitPoints()
	prev := 0.0
	for _, t := range splits {
		fn(c.SplitRange(prev, t))
		prev = t
	}
	fn(c.SplitRange(prev, 1))
}

// BoundingBox returns the axis-aligned bounding box of the curve, found by
// evaluating the endpoints plus every extremum where the x or y derivative
// is zero.
func (c CubicBezier) BoundingBox() Box {
	box := NewBox(c.From, c.To)
	for _, t := range c.monotonicSplitPoints() {
		box = box.UnionPoint(c.Sample(t))
	}
	return box
}

// BoundingBox returns the axis-aligned bounding box of the curve.
func (q QuadBezier) BoundingBox() Box {
	return q.ToCubic().BoundingBox()
}

// solveQuadraticRoots solves a*t^2 + b*t + c = 0, returning real roots.
// Degenerates gracefully to the linear and constant cases.
func solveQuadraticRoots(a, b, cVal float64) []float64 {
	if math.Abs(a) < epsilonNearZero {
		if math.Abs(b) < epsilonNearZero {
			return nil
		}
		return []float64{-cVal / b}
	}
	disc := b*b - 4*a*cVal
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
