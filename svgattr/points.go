package svgattr

import (
	"fmt"
	"strconv"

	"github.com/aprice2704/svg2gcode/geom"
)

// ParsePoints parses a polyline/polygon points attribute: a flat list of
// numbers, comma- or whitespace-separated, taken two at a time. Grounded on
// ui/svg.go's parsePoints.
func ParsePoints(s string) ([]geom.Point, error) {
	fields := splitCoordList(s)
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("svgattr: points %q: odd number of coordinates", s)
	}
	pts := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, fmt.Errorf("svgattr: points %q: %w", s, err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("svgattr: points %q: %w", s, err)
		}
		pts = append(pts, geom.Pt(x, y))
	}
	return pts, nil
}
