package arcmath

import (
	"math"

	"github.com/aprice2704/svg2gcode/geom"
)

// TransformArc carries an elliptical arc through an affine transform. The
// endpoints transform directly; the radii and x-rotation are recovered from
// the eigen-decomposition of the transformed radii matrix (M * Mt), since an
// affine map of an ellipse is itself an ellipse but not necessarily aligned
// with the original axes. A mirroring transform (negative determinant)
// flips the sweep flag.
//
// Ported from the svgpath-derived arc transform used by the original
// svg2gcode pipeline.
func TransformArc(a geom.SvgArc, m geom.Affine) geom.SvgArc {
	from := m.TransformPoint(a.From)
	to := m.TransformPoint(a.To)

	sin, cos := math.Sincos(a.XRotation)

	ma := [4]float64{
		a.Radii.X * (m.A*cos + m.C*sin),
		a.Radii.X * (m.B*cos + m.D*sin),
		a.Radii.Y * (-m.A*sin + m.C*cos),
		a.Radii.Y * (-m.B*sin + m.D*cos),
	}

	j := ma[0]*ma[0] + ma[2]*ma[2]
	k := ma[1]*ma[1] + ma[3]*ma[3]
	d := ((ma[0]-ma[3])*(ma[0]-ma[3]) + (ma[2]+ma[1])*(ma[2]+ma[1])) *
		((ma[0]+ma[3])*(ma[0]+ma[3]) + (ma[2]-ma[1])*(ma[2]-ma[1]))
	jk := (j + k) / 2

	var xRotation float64
	var radii geom.Vector

	if d < epsilon*jk {
		radii = geom.Vec(math.Sqrt(jk), math.Sqrt(jk))
		xRotation = 0
	} else {
		l := ma[0]*ma[1] + ma[2]*ma[3]
		dRoot := math.Sqrt(d)
		l1 := jk + dRoot/2
		l2 := jk - dRoot/2

		var ax float64
		if math.Abs(l) < epsilon && math.Abs(l1-k) < epsilon {
			ax = math.Pi / 2
		} else if math.Abs(l) > math.Abs(l1-k) {
			ax = math.Atan((l1 - j) / l)
		} else {
			ax = math.Atan(l / (l1 - k))
		}
		xRotation = ax
		radii = geom.Vec(math.Sqrt(l1), math.Sqrt(l2))
	}

	invertSweep := m.A*m.D-m.B*m.C < 0
	sweep := a.Flags.Sweep
	if invertSweep {
		sweep = !sweep
	}

	return geom.SvgArc{
		From:      from,
		To:        to,
		Radii:     radii,
		XRotation: xRotation,
		Flags: geom.ArcFlags{
			LargeArc: a.Flags.LargeArc,
			Sweep:    sweep,
		},
	}
}
