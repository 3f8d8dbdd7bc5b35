// Package visitor walks a parsed SVG document depth-first, maintaining the
// transform and viewport-size stacks a nested coordinate system needs, and
// drives a Terrarium through every shape it finds.
//
// Grounded on original_source/lib/src/converter/visit.rs's XmlVisitor
// trait and depth_first_visit, cross-checked against mod.rs's
// svg2program/node_name/apply_path driver code.
package visitor

import (
	"fmt"
	"strings"

	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/shapelowering"
	"github.com/aprice2704/svg2gcode/svgattr"
	"github.com/aprice2704/svg2gcode/svgdom"
	"github.com/aprice2704/svg2gcode/terrarium"
	"github.com/aprice2704/svg2gcode/viewport"
)

// Warning is a non-fatal problem noticed while walking (an unparsable
// attribute, a percentage with no enclosing viewport, an unknown element).
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// DefaultDocumentSize is the user-unit width assumed for an <svg> that has
// neither a width attribute nor a viewBox to fall back on: together with
// DefaultDocumentHeight it gives a 1x1 unit viewport.
const DefaultDocumentSize = 1.0

// DefaultDocumentHeight is the height half of DefaultDocumentSize's 1x1
// fallback.
const DefaultDocumentHeight = 1.0

// DimensionOverrides optionally overrides the root <svg> element's
// width/height, corresponding to ConversionOptions.Dimensions in
// SPEC_FULL.md §4.8.
type DimensionOverrides struct {
	Width, Height *svgattr.Length
}

// Walk brackets the walk with t.Begin()/t.End() and drives every shape
// element found into t, returning any warnings collected along the way.
// initial, if non-nil, is pushed onto t before Begin and popped after End --
// the hook the Pipeline uses for its bounding-box-space flip (Pass 1) and
// for that same flip followed by its origin alignment (Pass 2), per
// SPEC_FULL.md §4.8.
func Walk(doc *svgdom.Document, t *terrarium.Terrarium, overrides DimensionOverrides, initial *geom.Affine) []Warning {
	w := &walker{terrarium: t, overrides: overrides}
	if initial != nil {
		t.PushTransform(*initial)
	}
	t.Begin()
	w.visit(doc.Root, true)
	t.End()
	if initial != nil {
		t.PopTransform()
	}
	return w.warnings
}

type walker struct {
	terrarium     *terrarium.Terrarium
	nameStack     []string
	viewportStack []viewport.ViewportSize
	warnings      []Warning
	overrides     DimensionOverrides
}

func (w *walker) warn(format string, args ...any) {
	w.warnings = append(w.warnings, Warning{Message: fmt.Sprintf(format, args...)})
}

func shouldSkip(n *svgdom.Node) bool {
	style, ok := n.Attr("style")
	if !ok {
		return false
	}
	return strings.Contains(strings.ReplaceAll(style, " ", ""), "display:none")
}

// nodeName renders a breadcrumb element like "rect#my-id", matching
// mod.rs's node_name.
func nodeName(n *svgdom.Node) string {
	if id := n.ID(); id != "" {
		return n.Tag + "#" + id
	}
	return n.Tag
}

func (w *walker) visit(n *svgdom.Node, isRoot bool) {
	if shouldSkip(n) {
		return
	}

	pushed := 0
	if ts, ok := n.Attr("transform"); ok {
		affines, err := svgattr.ParseTransformList(ts)
		if err != nil {
			w.warn("element %s: bad transform %q: %v", nodeName(n), ts, err)
		} else if len(affines) > 0 {
			w.terrarium.PushTransform(geom.ComposeAll(affines))
			pushed++
		}
	}

	isSVG := n.Tag == "svg"
	if isSVG {
		vt, size, err := w.computeViewport(n, isRoot)
		if err != nil {
			w.warn("element %s: %v", nodeName(n), err)
		} else {
			w.terrarium.PushTransform(vt)
			pushed++
		}
		w.viewportStack = append(w.viewportStack, size)
	} else if _, ok := n.Attr("viewBox"); ok {
		w.warn("element %s: viewBox is only honored on <svg>, ignoring it", nodeName(n))
	}

	w.nameStack = append(w.nameStack, nodeName(n))

	switch n.Tag {
	case "path":
		w.visitPath(n)
	case "rect":
		w.visitRect(n)
	case "circle":
		w.visitCircle(n)
	case "ellipse":
		w.visitEllipse(n)
	case "line":
		w.visitLine(n)
	case "polyline":
		w.visitPolyline(n)
	case "polygon":
		w.visitPolygon(n)
	case "g", "svg":
		// pure containers: nothing to draw, just recurse.
	default:
		w.warn("element %s: unrecognized, skipping its own geometry (children still visited)", nodeName(n))
	}

	for _, c := range n.Children {
		w.visit(c, false)
	}

	w.nameStack = w.nameStack[:len(w.nameStack)-1]
	if isSVG {
		w.viewportStack = w.viewportStack[:len(w.viewportStack)-1]
	}
	for i := 0; i < pushed; i++ {
		w.terrarium.PopTransform()
	}
}

// computeViewport determines an <svg> element's size in its parent's user
// units (honoring DimensionOverrides at the root) and the affine transform
// mapping its viewBox (if any) onto that size. Grounded on visit.rs's
// exhaustive width/height/viewBox match and transform.rs's
// get_viewport_transform.
func (w *walker) computeViewport(n *svgdom.Node, isRoot bool) (geom.Affine, viewport.ViewportSize, error) {
	x := w.length(n, "x", viewport.Horizontal, 0)
	y := w.length(n, "y", viewport.Vertical, 0)

	vb, hasViewBox, err := w.parseViewBoxAttr(n)
	if err != nil {
		return geom.Identity, viewport.ViewportSize{}, err
	}

	width, haveWidth := w.overriddenLength(n, "width", viewport.Horizontal, isRoot, w.overrides.Width)
	height, haveHeight := w.overriddenLength(n, "height", viewport.Vertical, isRoot, w.overrides.Height)

	// One dimension plus a viewBox: derive the other from the viewBox's
	// aspect ratio.
	switch {
	case haveWidth && !haveHeight && hasViewBox && vb.Width > 0:
		height, haveHeight = width*vb.Height/vb.Width, true
	case haveHeight && !haveWidth && hasViewBox && vb.Height > 0:
		width, haveWidth = height*vb.Width/vb.Height, true
	}

	switch {
	case !haveWidth && hasViewBox:
		width = vb.Width
	case !haveWidth:
		width = DefaultDocumentSize
	}
	switch {
	case !haveHeight && hasViewBox:
		height = vb.Height
	case !haveHeight:
		height = DefaultDocumentHeight
	}

	size := viewport.ViewportSize{Width: width, Height: height}

	if !hasViewBox {
		return geom.Translate(geom.Vec(x, y)), size, nil
	}

	aspect := svgattr.DefaultAspectRatio
	if s, ok := n.Attr("preserveAspectRatio"); ok {
		aspect, err = svgattr.ParseAspectRatio(s)
		if err != nil {
			return geom.Identity, size, err
		}
	}
	return viewport.GetViewportTransform(vb, aspect, geom.Vec(width, height), geom.Pt(x, y)), size, nil
}

func (w *walker) parseViewBoxAttr(n *svgdom.Node) (svgattr.ViewBox, bool, error) {
	s, ok := n.Attr("viewBox")
	if !ok || strings.TrimSpace(s) == "" {
		return svgattr.ViewBox{}, false, nil
	}
	vb, err := svgattr.ParseViewBox(s)
	if err != nil {
		return svgattr.ViewBox{}, false, err
	}
	return vb, true, nil
}

// overriddenLength resolves a width/height attribute, preferring an
// explicit root-level override (ConversionOptions.Dimensions) when one is
// given.
func (w *walker) overriddenLength(n *svgdom.Node, attr string, hint viewport.DimensionHint, isRoot bool, override *svgattr.Length) (float64, bool) {
	if isRoot && override != nil {
		return viewport.LengthToUserUnits(*override, hint, w.viewportStack), true
	}
	raw, ok := n.Attr(attr)
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	l, unknownUnit, err := svgattr.ParseLength(raw)
	if err != nil {
		w.warn("element %s: bad %s %q: %v", nodeName(n), attr, raw, err)
		return 0, false
	}
	if unknownUnit {
		w.warn("element %s: %s %q: unrecognized unit, treating as px", nodeName(n), attr, raw)
	}
	return viewport.LengthToUserUnits(l, hint, w.viewportStack), true
}

func (w *walker) length(n *svgdom.Node, attr string, hint viewport.DimensionHint, def float64) float64 {
	raw, ok := n.Attr(attr)
	if !ok || strings.TrimSpace(raw) == "" {
		return def
	}
	l, unknownUnit, err := svgattr.ParseLength(raw)
	if err != nil {
		w.warn("element %s: bad %s %q: %v", nodeName(n), attr, raw, err)
		return def
	}
	if unknownUnit {
		w.warn("element %s: %s %q: unrecognized unit, treating as px", nodeName(n), attr, raw)
	}
	return viewport.LengthToUserUnits(l, hint, w.viewportStack)
}

func (w *walker) visitPath(n *svgdom.Node) {
	d, ok := n.Attr("d")
	if !ok || strings.TrimSpace(d) == "" {
		return
	}
	segs, err := svgattr.ParsePathData(d)
	if err != nil {
		w.warn("element %s: %v", nodeName(n), err)
		return
	}
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, segs)
}

func (w *walker) visitRect(n *svgdom.Node) {
	x := w.length(n, "x", viewport.Horizontal, 0)
	y := w.length(n, "y", viewport.Vertical, 0)
	width := w.length(n, "width", viewport.Horizontal, 0)
	height := w.length(n, "height", viewport.Vertical, 0)
	rx, hasRx := w.optionalLength(n, "rx", viewport.Horizontal)
	ry, hasRy := w.optionalLength(n, "ry", viewport.Vertical)
	switch {
	case hasRx && !hasRy:
		ry = rx
	case hasRy && !hasRx:
		rx = ry
	}
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, shapelowering.Rect(x, y, width, height, rx, ry))
}

func (w *walker) optionalLength(n *svgdom.Node, attr string, hint viewport.DimensionHint) (float64, bool) {
	raw, ok := n.Attr(attr)
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, false
	}
	l, unknownUnit, err := svgattr.ParseLength(raw)
	if err != nil {
		w.warn("element %s: bad %s %q: %v", nodeName(n), attr, raw, err)
		return 0, false
	}
	if unknownUnit {
		w.warn("element %s: %s %q: unrecognized unit, treating as px", nodeName(n), attr, raw)
	}
	return viewport.LengthToUserUnits(l, hint, w.viewportStack), true
}

func (w *walker) visitCircle(n *svgdom.Node) {
	cx := w.length(n, "cx", viewport.Horizontal, 0)
	cy := w.length(n, "cy", viewport.Vertical, 0)
	r := w.length(n, "r", viewport.Other, 0)
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, shapelowering.Circle(cx, cy, r))
}

func (w *walker) visitEllipse(n *svgdom.Node) {
	cx := w.length(n, "cx", viewport.Horizontal, 0)
	cy := w.length(n, "cy", viewport.Vertical, 0)
	rx := w.length(n, "rx", viewport.Horizontal, 0)
	ry := w.length(n, "ry", viewport.Vertical, 0)
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, shapelowering.Ellipse(cx, cy, rx, ry))
}

func (w *walker) visitLine(n *svgdom.Node) {
	x1 := w.length(n, "x1", viewport.Horizontal, 0)
	y1 := w.length(n, "y1", viewport.Vertical, 0)
	x2 := w.length(n, "x2", viewport.Horizontal, 0)
	y2 := w.length(n, "y2", viewport.Vertical, 0)
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, shapelowering.Line(x1, y1, x2, y2))
}

func (w *walker) visitPolyline(n *svgdom.Node) {
	pts := w.points(n)
	if pts == nil {
		return
	}
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, shapelowering.Polyline(pts))
}

func (w *walker) visitPolygon(n *svgdom.Node) {
	pts := w.points(n)
	if pts == nil {
		return
	}
	w.terrarium.Comment(strings.Join(w.nameStack, " > "))
	shapelowering.Apply(w.terrarium, shapelowering.Polygon(pts))
}

func (w *walker) points(n *svgdom.Node) []geom.Point {
	s, ok := n.Attr("points")
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	pts, err := svgattr.ParsePoints(s)
	if err != nil {
		w.warn("element %s: %v", nodeName(n), err)
		return nil
	}
	return pts
}
