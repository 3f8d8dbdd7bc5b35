// Package viewport computes the two things a nested SVG coordinate system
// needs: the affine transform that maps a viewBox onto its viewport
// (get_viewport_transform), and the conversion of a length with an
// arbitrary unit suffix into user units (length_to_user_units).
//
// Grounded on original_source/lib/src/converter/transform.rs and
// .../units.rs.
package viewport

import (
	"math"

	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/svgattr"
)

// CSSDefaultDPI is the CSS/SVG convention that one "px" user unit is
// 1/96 inch, used to convert absolute-unit lengths (cm, mm, in, pt, pc)
// into user units.
const CSSDefaultDPI = 96.0

// DimensionHint says which axis (if any) a percentage length is relative
// to, per the attribute it came from.
type DimensionHint int

const (
	// Horizontal lengths (x, cx, rx, width, ...) are relative to the
	// viewport's width.
	Horizontal DimensionHint = iota
	// Vertical lengths (y, cy, ry, height, ...) are relative to the
	// viewport's height.
	Vertical
	// Other lengths (stroke-width and the like) are relative to the
	// viewport diagonal divided by sqrt(2), per the SVG spec.
	Other
)

// HintForAttr returns the DimensionHint conventionally associated with an
// SVG attribute name, per units.rs's length_attr_to_user_units mapping.
func HintForAttr(attr string) DimensionHint {
	switch attr {
	case "x", "x1", "x2", "cx", "rx", "width":
		return Horizontal
	case "y", "y1", "y2", "cy", "ry", "height":
		return Vertical
	default:
		return Other
	}
}

// ViewportSize is the current viewport's size in user units, the context a
// percentage length is resolved against.
type ViewportSize struct {
	Width, Height float64
}

func (v ViewportSize) diagonal() float64 {
	return math.Sqrt(v.Width*v.Width+v.Height*v.Height) / math.Sqrt2
}

// LengthToUserUnits converts l into user units. stack is the active
// viewport-size stack, innermost last; percentages resolve against its
// last entry, and an empty stack falls back to treating the percentage as
// a bare number (with the caller expected to have logged a warning, as the
// grounding Rust does).
func LengthToUserUnits(l svgattr.Length, hint DimensionHint, stack []ViewportSize) float64 {
	switch l.Unit {
	case svgattr.UnitCm:
		return l.Value / 2.54 * CSSDefaultDPI
	case svgattr.UnitMm:
		return l.Value / 25.4 * CSSDefaultDPI
	case svgattr.UnitIn:
		return l.Value * CSSDefaultDPI
	case svgattr.UnitPc:
		return l.Value / 6 * CSSDefaultDPI
	case svgattr.UnitPt:
		return l.Value / 72 * CSSDefaultDPI
	case svgattr.UnitQ:
		return l.Value / 4 / 25.4 * CSSDefaultDPI
	case svgattr.UnitPx, svgattr.UnitNone:
		return l.Value
	case svgattr.UnitEm, svgattr.UnitEx:
		// No font metrics are available in this pipeline; fall back to
		// the same generic 16px assumption the grounding Rust uses.
		return 16 * l.Value
	case svgattr.UnitPercent:
		if len(stack) == 0 {
			return l.Value / 100
		}
		vp := stack[len(stack)-1]
		switch hint {
		case Horizontal:
			return l.Value / 100 * vp.Width
		case Vertical:
			return l.Value / 100 * vp.Height
		default:
			return l.Value / 100 * vp.diagonal()
		}
	default:
		return l.Value
	}
}

// GetViewportTransform returns the affine transform mapping viewBox
// coordinates onto a viewport of size viewportSize positioned at
// viewportPos, honoring aspect.Align/aspect.Slice. Grounded on
// transform.rs's get_viewport_transform.
func GetViewportTransform(viewBox svgattr.ViewBox, aspect svgattr.AspectRatio, viewportSize geom.Vector, viewportPos geom.Point) geom.Affine {
	scaleX := viewportSize.X / viewBox.Width
	scaleY := viewportSize.Y / viewBox.Height

	if aspect.Align != svgattr.AlignNone {
		var unified float64
		if aspect.Slice {
			unified = math.Max(scaleX, scaleY)
		} else {
			unified = math.Min(scaleX, scaleY)
		}
		scaleX, scaleY = unified, unified
	}

	translateX := viewportPos.X - viewBox.MinX*scaleX
	translateY := viewportPos.Y - viewBox.MinY*scaleY

	if aspect.Align != svgattr.AlignNone {
		slackX := viewportSize.X - viewBox.Width*scaleX
		slackY := viewportSize.Y - viewBox.Height*scaleY
		translateX += slackX * aspect.Align.XSlack()
		translateY += slackY * aspect.Align.YSlack()
	}

	return geom.Scale(scaleX, scaleY).ThenTranslate(geom.Vec(translateX, translateY))
}
