package svgattr

import (
	"fmt"
	"strings"
)

// Align is the alignment half of a preserveAspectRatio attribute: which
// edge (or midpoint) of the viewBox lines up with the corresponding edge
// of the viewport, independently per axis.
type Align int

const (
	AlignNone Align = iota
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMidYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = map[string]Align{
	"none":     AlignNone,
	"xMinYMin": AlignXMinYMin,
	"xMidYMin": AlignXMidYMin,
	"xMaxYMin": AlignXMaxYMin,
	"xMinYMid": AlignXMinYMid,
	"xMidYMid": AlignXMidYMid,
	"xMaxYMid": AlignXMaxYMid,
	"xMinYMax": AlignXMinYMax,
	"xMidYMax": AlignXMidYMax,
	"xMaxYMax": AlignXMaxYMax,
}

// XSlack reports how much of the viewBox's horizontal slack (extra space
// after uniform scaling) to push to the left edge: 0 for Min, 0.5 for Mid,
// 1 for Max. AlignNone behaves like XMid.
func (a Align) XSlack() float64 {
	switch a {
	case AlignXMinYMin, AlignXMinYMid, AlignXMinYMax:
		return 0
	case AlignXMaxYMin, AlignXMaxYMid, AlignXMaxYMax:
		return 1
	default:
		return 0.5
	}
}

// YSlack is XSlack's vertical counterpart.
func (a Align) YSlack() float64 {
	switch a {
	case AlignXMinYMin, AlignXMidYMin, AlignXMaxYMin:
		return 0
	case AlignXMinYMax, AlignXMidYMax, AlignXMaxYMax:
		return 1
	default:
		return 0.5
	}
}

// AspectRatio is a parsed preserveAspectRatio attribute.
type AspectRatio struct {
	Align Align
	// Slice is true for "slice" (scale to cover, cropping overflow) and
	// false for "meet" (scale to fit, the default).
	Slice bool
}

// DefaultAspectRatio is the SVG default when the attribute is absent:
// "xMidYMid meet".
var DefaultAspectRatio = AspectRatio{Align: AlignXMidYMid}

// ParseAspectRatio parses a preserveAspectRatio attribute value. The
// optional leading "defer" keyword (meaningful only for the <image>
// element) is accepted and ignored.
func ParseAspectRatio(s string) (AspectRatio, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return DefaultAspectRatio, nil
	}
	align, ok := alignNames[fields[0]]
	if !ok {
		return AspectRatio{}, fmt.Errorf("svgattr: preserveAspectRatio %q: unknown align %q", s, fields[0])
	}
	ar := AspectRatio{Align: align}
	if len(fields) > 1 {
		switch fields[1] {
		case "meet":
		case "slice":
			ar.Slice = true
		default:
			return AspectRatio{}, fmt.Errorf("svgattr: preserveAspectRatio %q: unknown meetOrSlice %q", s, fields[1])
		}
	}
	return ar, nil
}
