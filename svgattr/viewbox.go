package svgattr

import (
	"fmt"
	"strconv"
	"strings"
)

// ViewBox is the parsed form of a viewBox="min-x min-y width height"
// attribute.
type ViewBox struct {
	MinX, MinY, Width, Height float64
}

// ParseViewBox parses a viewBox attribute value. Fields may be separated
// by commas, whitespace, or both.
func ParseViewBox(s string) (ViewBox, error) {
	fields := splitCoordList(s)
	if len(fields) != 4 {
		return ViewBox{}, fmt.Errorf("svgattr: viewBox %q: want 4 numbers, got %d", s, len(fields))
	}
	nums := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return ViewBox{}, fmt.Errorf("svgattr: viewBox %q: %w", s, err)
		}
		nums[i] = v
	}
	return ViewBox{MinX: nums[0], MinY: nums[1], Width: nums[2], Height: nums[3]}, nil
}

// splitCoordList splits an SVG number-list on any mix of commas and
// whitespace, dropping empty fields.
func splitCoordList(s string) []string {
	fn := func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}
	return strings.FieldsFunc(s, fn)
}
