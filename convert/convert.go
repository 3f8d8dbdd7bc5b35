// Package convert drives the two-pass SVG-to-G-code pipeline: a first
// pass that only measures the drawing's bounding box, and a second pass
// that emits the real program aligned to the configured origin.
//
// Grounded on original_source/lib/src/converter/mod.rs's svg2program.
package convert

import (
	"github.com/aprice2704/svg2gcode/gcode"
	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/machine"
	"github.com/aprice2704/svg2gcode/svgattr"
	"github.com/aprice2704/svg2gcode/svgdom"
	"github.com/aprice2704/svg2gcode/terrarium"
	"github.com/aprice2704/svg2gcode/turtle"
	"github.com/aprice2704/svg2gcode/visitor"
)

// Config holds the conversion parameters independent of the document
// itself: the flattening tolerance, cutting feedrate, source DPI (how
// many user units make an inch, for the unit-conversion turtle), and an
// optional per-axis origin to align the drawing's bounding box to. A nil
// Origin axis leaves that axis unaligned, matching Origin: [Option<f64>; 2]
// in the grounding Rust.
type Config struct {
	Tolerance float64
	Feedrate  float64
	Dpi       float64
	OriginX   *float64
	OriginY   *float64
}

// Options holds the optional per-document overrides that don't belong in
// Config because they describe the document rather than the conversion.
type Options struct {
	Width, Height *svgattr.Length
}

func (o Options) dims() visitor.DimensionOverrides {
	return visitor.DimensionOverrides{Width: o.Width, Height: o.Height}
}

// flipTransform is the scale(1,-1) that maps SVG's y-down user-unit space
// into the y-up space G-code programs are conventionally written in.
var flipTransform = geom.Scale(1, -1)

// Convert runs the full two-pass pipeline against doc and returns the
// resulting G-code token stream, plus any warnings the walk collected
// (duplicated across both passes; only the second pass's warnings are
// returned, since the two passes visit identical geometry and only the
// sink differs).
func Convert(doc *svgdom.Document, cfg Config, opts Options, m *machine.Machine) ([]gcode.Token, []visitor.Warning) {
	bbox := measureBoundingBox(doc, cfg, opts)
	origin := originTransform(cfg, bbox)

	gt := turtle.NewGCodeTurtle(m, cfg.Tolerance, cfg.Feedrate)
	dpi := turtle.NewDpiTurtle(cfg.Dpi, gt)
	terr := terrarium.New(dpi)

	// Pass 2 pushes the same y-flip Pass 1 does, followed by the origin
	// alignment computed against the flipped bounding box, matching
	// mod.rs's symmetric ConversionVisitor::begin() for both passes.
	initial := flipTransform.Then(origin)
	warnings := visitor.Walk(doc, terr, opts.dims(), &initial)
	return gt.Program, warnings
}

// Preview runs the same origin-aligned pass Convert does, but through a
// PreviewTurtle instead of a GCodeTurtle, returning the flattened line
// segments (in the machine's mm units) a caller can render for a visual
// sanity check without driving a real machine.
func Preview(doc *svgdom.Document, cfg Config, opts Options) ([]geom.Segment, []visitor.Warning) {
	bbox := measureBoundingBox(doc, cfg, opts)
	origin := originTransform(cfg, bbox)

	pt := turtle.NewPreviewTurtle(cfg.Tolerance)
	dpi := turtle.NewDpiTurtle(cfg.Dpi, pt)
	terr := terrarium.New(dpi)

	initial := flipTransform.Then(origin)
	warnings := visitor.Walk(doc, terr, opts.dims(), &initial)
	return pt.Segments, warnings
}

// measureBoundingBox runs the cheap Pass 1: a Terrarium over
// DpiTurtle(PreprocessTurtle), bracketed by the same y-flip Pass 2 uses,
// so the measured box is in the same machine-space orientation the real
// origin alignment needs.
func measureBoundingBox(doc *svgdom.Document, cfg Config, opts Options) geom.Box {
	pre := turtle.NewPreprocessTurtle()
	dpi := turtle.NewDpiTurtle(cfg.Dpi, pre)
	terr := terrarium.New(dpi)
	visitor.Walk(doc, terr, opts.dims(), &flipTransform)
	return pre.BoundingBox
}

// originTransform returns the translation that moves bbox.Min to
// (OriginX, OriginY) on whichever axes are configured; unconfigured axes
// are left untranslated. bbox is already in flipped (y-up) space, so this
// translate is applied on top of flipTransform by the emitting pass
// (Convert, and Preview); the measuring pass pushes only flipTransform.
func originTransform(cfg Config, bbox geom.Box) geom.Affine {
	dx, dy := 0.0, 0.0
	if cfg.OriginX != nil && !bbox.IsEmpty() {
		dx = *cfg.OriginX - bbox.Min.X
	}
	if cfg.OriginY != nil && !bbox.IsEmpty() {
		dy = *cfg.OriginY - bbox.Min.Y
	}
	// bbox is in mm (measured behind the DpiTurtle), while this translate
	// is pushed ahead of the DpiTurtle, so it is converted to user units.
	userPerMM := cfg.Dpi / 25.4
	return geom.Translate(geom.Vec(dx*userPerMM, dy*userPerMM))
}
