package svgattr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aprice2704/svg2gcode/geom"
)

// ParseTransformList parses a transform attribute's token list ("translate(10
// 20) rotate(45)") into a slice of Affines, in document order -- the order
// geom.ComposeAll expects, where the last token applies closest to the
// geometry. Grounded on
// original_source/lib/src/converter/transform.rs's
// svg_transform_into_euclid_transform, generalized from a single token to
// the full list ui/svg.go's parseSVGTransform splits on.
func ParseTransformList(s string) ([]geom.Affine, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []geom.Affine
	for len(s) > 0 {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return nil, fmt.Errorf("svgattr: transform %q: missing '('", s)
		}
		name := strings.TrimSpace(s[:open])
		rest := s[open+1:]
		closeIdx := strings.IndexByte(rest, ')')
		if closeIdx < 0 {
			return nil, fmt.Errorf("svgattr: transform %q: missing ')'", s)
		}
		argsStr := rest[:closeIdx]
		args, err := parseNumberList(argsStr)
		if err != nil {
			return nil, fmt.Errorf("svgattr: transform %q: %w", s, err)
		}
		t, err := transformToken(name, args)
		if err != nil {
			return nil, fmt.Errorf("svgattr: transform %q: %w", s, err)
		}
		out = append(out, t)
		s = strings.TrimSpace(rest[closeIdx+1:])
	}
	return out, nil
}

func parseNumberList(s string) ([]float64, error) {
	fields := splitCoordList(s)
	nums := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		nums[i] = v
	}
	return nums, nil
}

func transformToken(name string, a []float64) (geom.Affine, error) {
	switch name {
	case "matrix":
		if len(a) != 6 {
			return geom.Affine{}, fmt.Errorf("matrix() wants 6 args, got %d", len(a))
		}
		return geom.NewAffine(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	case "translate":
		switch len(a) {
		case 1:
			return geom.Translate(geom.Vec(a[0], 0)), nil
		case 2:
			return geom.Translate(geom.Vec(a[0], a[1])), nil
		}
		return geom.Affine{}, fmt.Errorf("translate() wants 1 or 2 args, got %d", len(a))
	case "scale":
		switch len(a) {
		case 1:
			return geom.Scale(a[0], a[0]), nil
		case 2:
			return geom.Scale(a[0], a[1]), nil
		}
		return geom.Affine{}, fmt.Errorf("scale() wants 1 or 2 args, got %d", len(a))
	case "rotate":
		switch len(a) {
		case 1:
			return geom.Rotate(degToRad(a[0])), nil
		case 3:
			about := geom.Translate(geom.Vec(a[1], a[2]))
			back := geom.Translate(geom.Vec(-a[1], -a[2]))
			return back.Then(geom.Rotate(degToRad(a[0]))).Then(about), nil
		}
		return geom.Affine{}, fmt.Errorf("rotate() wants 1 or 3 args, got %d", len(a))
	case "skewX":
		if len(a) != 1 {
			return geom.Affine{}, fmt.Errorf("skewX() wants 1 arg, got %d", len(a))
		}
		return geom.SkewX(degToRad(a[0])), nil
	case "skewY":
		if len(a) != 1 {
			return geom.Affine{}, fmt.Errorf("skewY() wants 1 arg, got %d", len(a))
		}
		return geom.SkewY(degToRad(a[0])), nil
	default:
		return geom.Affine{}, fmt.Errorf("unknown transform function %q", name)
	}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
