package geom

import "math"

// ArcFlags are the two boolean flags of an SVG elliptical-arc path command.
type ArcFlags struct {
	LargeArc bool
	Sweep    bool
}

// SvgArc is an elliptical arc in SVG's endpoint parameterization: it names
// where the arc starts and ends and leaves the center implicit.
type SvgArc struct {
	From, To  Point
	Radii     Vector // rx, ry; always treated as positive magnitudes
	XRotation float64
	Flags     ArcFlags
}

// Arc is the same ellipse segment in center parameterization, which is what
// sampling, splitting and bounding-box computation actually want.
type Arc struct {
	Center     Point
	Radii      Vector
	XRotation  float64
	StartAngle float64
	// SweepAngle is signed: positive sweeps counter-clockwise in the arc's
	// own (unrotated, unit-circle) parameter space.
	SweepAngle float64
}

// IsStraightLine reports whether this arc is degenerate enough (one radius
// effectively zero) that it should be rendered as a line instead.
func (a SvgArc) IsStraightLine() bool {
	return math.Abs(a.Radii.X) < epsilonNearZero || math.Abs(a.Radii.Y) < epsilonNearZero
}

// ToArc implements the SVG 1.1 Appendix F.6.5 endpoint-to-center
// conversion.
func (a SvgArc) ToArc() Arc {
	rx, ry := math.Abs(a.Radii.X), math.Abs(a.Radii.Y)
	if rx < epsilonNearZero || ry < epsilonNearZero {
		// Degenerate: report a zero-radius arc centered at the midpoint so
		// callers that don't special-case IsStraightLine still get a
		// sensible, non-NaN value.
		return Arc{Center: a.From.Lerp(a.To, 0.5)}
	}

	sin, cos := math.Sincos(a.XRotation)
	dx2, dy2 := (a.From.X-a.To.X)/2, (a.From.Y-a.To.Y)/2
	x1p := cos*dx2 + sin*dy2
	y1p := -sin*dx2 + cos*dy2

	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	if num < 0 {
		num = 0
	}
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	co := 0.0
	if den > epsilonNearZero {
		co = math.Sqrt(num / den)
	}
	if a.Flags.LargeArc == a.Flags.Sweep {
		co = -co
	}
	cxp := co * rx * y1p / ry
	cyp := co * -ry * x1p / rx

	cx := cos*cxp - sin*cyp + (a.From.X+a.To.X)/2
	cy := sin*cxp + cos*cyp + (a.From.Y+a.To.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
		cosA := 1.0
		if lenProd > epsilonNearZero {
			cosA = dot / lenProd
		}
		cosA = math.Max(-1, math.Min(1, cosA))
		ang := math.Acos(cosA)
		if ux*vy-uy*vx < 0 {
			ang = -ang
		}
		return ang
	}

	startAngle := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	delta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	delta = math.Mod(delta, 2*math.Pi)
	if !a.Flags.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if a.Flags.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	return Arc{
		Center:     Point{X: cx, Y: cy},
		Radii:      Vector{X: rx, Y: ry},
		XRotation:  a.XRotation,
		StartAngle: startAngle,
		SweepAngle: delta,
	}
}

// ToSvgArc recovers the endpoint parameterization from the center form.
func (c Arc) ToSvgArc() SvgArc {
	return SvgArc{
		From:      c.Sample(0),
		To:        c.Sample(1),
		Radii:     c.Radii,
		XRotation: c.XRotation,
		Flags: ArcFlags{
			LargeArc: math.Abs(c.SweepAngle) > math.Pi,
			Sweep:    c.SweepAngle > 0,
		},
	}
}

// Sample evaluates the arc at parameter t in [0, 1].
func (c Arc) Sample(t float64) Point {
	theta := c.StartAngle + c.SweepAngle*t
	sinT, cosT := math.Sincos(theta)
	local := Vector{X: c.Radii.X * cosT, Y: c.Radii.Y * sinT}
	return c.Center.Add(local.Rotate(c.XRotation))
}

// SampleTangent returns the (non-normalized) direction of travel at
// parameter t in [0, 1].
func (c Arc) SampleTangent(t float64) Vector {
	theta := c.StartAngle + c.SweepAngle*t
	sinT, cosT := math.Sincos(theta)
	local := Vector{X: -c.Radii.X * sinT, Y: c.Radii.Y * cosT}
	return local.Scale(c.SweepAngle).Rotate(c.XRotation)
}

// Split divides the arc at parameter t into two sub-arcs covering [0,t]
// and [t,1].
func (c Arc) Split(t float64) (left, right Arc) {
	mid := c.StartAngle + c.SweepAngle*t
	left = Arc{Center: c.Center, Radii: c.Radii, XRotation: c.XRotation, StartAngle: c.StartAngle, SweepAngle: mid - c.StartAngle}
	right = Arc{Center: c.Center, Radii: c.Radii, XRotation: c.XRotation, StartAngle: mid, SweepAngle: c.StartAngle + c.SweepAngle - mid}
	return left, right
}

// BoundingBox returns the axis-aligned bounding box of the swept arc,
// accounting for rotation.
func (c Arc) BoundingBox() Box {
	box := NewBox(c.Sample(0), c.Sample(1))
	for _, theta := range c.extremaThetas() {
		t := (theta - c.StartAngle) / c.SweepAngle
		if t > 0 && t < 1 {
			box = box.UnionPoint(c.Sample(t))
		}
	}
	return box
}

// extremaThetas returns the (up to four) raw ellipse angles, un-normalized
// to any particular winding, at which x or y is locally extremal.
func (c Arc) extremaThetas() []float64 {
	sinPhi, cosPhi := math.Sincos(c.XRotation)
	// dx/dtheta = 0: -rx*sin(theta)*cosPhi - ry*cos(theta)*sinPhi = 0
	txTheta := math.Atan2(-c.Radii.Y*sinPhi, c.Radii.X*cosPhi)
	// dy/dtheta = 0: -rx*sin(theta)*sinPhi + ry*cos(theta)*cosPhi = 0
	tyTheta := math.Atan2(c.Radii.Y*cosPhi, c.Radii.X*sinPhi)

	candidates := []float64{txTheta, txTheta + math.Pi, tyTheta, tyTheta + math.Pi}
	out := make([]float64, 0, 4)
	for _, theta := range candidates {
		// Normalize theta to be within one winding of StartAngle in the
		// direction of travel so the (theta-Start)/Sweep test in
		// BoundingBox behaves.
		delta := math.Mod(theta-c.StartAngle, 2*math.Pi)
		if c.SweepAngle >= 0 {
			if delta < 0 {
				delta += 2 * math.Pi
			}
		} else if delta > 0 {
			delta -= 2 * math.Pi
		}
		out = append(out, c.StartAngle+delta)
	}
	return out
}
