package geom

import "math"

// Box is an axis-aligned bounding box. Use NewBox, EmptyBox, or UnionPoint
// to construct one; the bare zero value is a non-empty box at the origin,
// not an empty one.
type Box struct {
	Min, Max Point
	empty    bool
}

// EmptyBox returns a box containing no points.
func EmptyBox() Box {
	return Box{empty: true}
}

// NewBox returns the smallest box containing both points.
func NewBox(a, b Point) Box {
	return Box{
		Min: Pt(math.Min(a.X, b.X), math.Min(a.Y, b.Y)),
		Max: Pt(math.Max(a.X, b.X), math.Max(a.Y, b.Y)),
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.empty
}

// UnionPoint grows the box, if necessary, to contain p.
func (b Box) UnionPoint(p Point) Box {
	if b.empty {
		return Box{Min: p, Max: p}
	}
	return Box{
		Min: Pt(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y)),
		Max: Pt(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y)),
	}
}

// Union grows b, if necessary, to also contain o.
func (b Box) Union(o Box) Box {
	if o.empty {
		return b
	}
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// Width returns the box's extent along X. Zero for an empty box.
func (b Box) Width() float64 {
	if b.empty {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Height returns the box's extent along Y. Zero for an empty box.
func (b Box) Height() float64 {
	if b.empty {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// Center returns the midpoint of the box.
func (b Box) Center() Point {
	return b.Min.Lerp(b.Max, 0.5)
}
