// Command svg2gcode converts an SVG drawing into a G-code program for a
// 2-axis plotter, laser, or cutter, and can also re-origin an already
// generated G-code file without re-running the conversion.
//
// Grounded on original_source/lib/src/main.rs's CLI surface, the flag-var
// style of esimov-caire/cmd/caire/main.go, and the
// tracerr.PrintSourceColor+log.Fatal failure idiom shelly.go/eshell.go use
// throughout the teacher repo.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/llgcode/draw2d/draw2dsvg"
	"github.com/ztrue/tracerr"

	"github.com/aprice2704/svg2gcode/convert"
	"github.com/aprice2704/svg2gcode/gcode"
	"github.com/aprice2704/svg2gcode/geom"
	"github.com/aprice2704/svg2gcode/machine"
	"github.com/aprice2704/svg2gcode/postprocess"
	"github.com/aprice2704/svg2gcode/svgattr"
	"github.com/aprice2704/svg2gcode/svgdom"
)

var (
	tolerance      = flag.Float64("tolerance", 0.05, "maximum deviation allowed when flattening curves to lines/arcs, in mm")
	feedrate       = flag.Float64("feedrate", 1000, "cutting feedrate for linear and arc moves")
	dpi            = flag.Float64("dpi", 96, "user units per inch in the source SVG")
	originX        = flag.String("origin-x", "", "align the drawing's bounding box minimum X to this value (mm); unset leaves X unaligned")
	originY        = flag.String("origin-y", "", "align the drawing's bounding box minimum Y to this value (mm); unset leaves Y unaligned")
	width          = flag.String("width", "", "override the root <svg> element's width, e.g. \"210mm\"")
	height         = flag.String("height", "", "override the root <svg> element's height, e.g. \"297mm\"")
	machineConfig  = flag.String("machine-config", "", "path to a TOML machine profile; a generic GRBL-class profile is used if omitted")
	output         = flag.String("o", "-", "output path for the G-code program (\"-\" for stdout)")
	preview        = flag.String("preview", "", "also render the flattened drawing to this SVG path, for a visual sanity check")
	postprocessIn  = flag.String("postprocess-in", "", "path to an existing G-code program to re-origin instead of converting an SVG")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: svg2gcode [flags] input.svg")
		flag.PrintDefaults()
	}
	flag.Parse()

	var err error
	if *postprocessIn != "" {
		err = runPostprocess()
	} else {
		err = runConvert()
	}
	if err != nil {
		tracerr.PrintSourceColor(err, 5, 2)
		log.Fatal(err)
	}
}

// runConvert implements the normal SVG-to-G-code mode.
func runConvert() error {
	if flag.NArg() != 1 {
		flag.Usage()
		return tracerr.Errorf("svg2gcode: exactly one input SVG path is required")
	}
	inPath := flag.Arg(0)

	m, err := loadMachine()
	if err != nil {
		return err
	}

	f, err := os.Open(inPath)
	if err != nil {
		return tracerr.Errorf("svg2gcode: opening %q: %w", inPath, err)
	}
	defer f.Close()

	doc, err := svgdom.Parse(f)
	if err != nil {
		return tracerr.Errorf("svg2gcode: parsing %q: %w", inPath, err)
	}

	cfg, opts, err := buildConfig()
	if err != nil {
		return err
	}

	tokens, warnings := convert.Convert(doc, cfg, opts, m)
	for _, w := range warnings {
		log.Printf("warning: %s", w.Message)
	}

	if err := writeOutput(*output, gcode.Format(tokens)); err != nil {
		return err
	}

	if *preview != "" {
		segs, _ := convert.Preview(doc, cfg, opts)
		if err := renderPreview(*preview, segs); err != nil {
			return err
		}
	}
	return nil
}

// runPostprocess re-origins an already generated G-code program, the
// standalone alternative to the full conversion pipeline.
func runPostprocess() error {
	data, err := os.ReadFile(*postprocessIn)
	if err != nil {
		return tracerr.Errorf("svg2gcode: reading %q: %w", *postprocessIn, err)
	}
	tokens, err := gcode.ParseSnippet(string(data))
	if err != nil {
		return tracerr.Errorf("svg2gcode: parsing %q: %w", *postprocessIn, err)
	}

	ox, err := parseOptionalFloat(*originX)
	if err != nil {
		return tracerr.Errorf("svg2gcode: -origin-x: %w", err)
	}
	oy, err := parseOptionalFloat(*originY)
	if err != nil {
		return tracerr.Errorf("svg2gcode: -origin-y: %w", err)
	}

	rewritten := postprocess.SetOrigin(tokens, ox, oy)
	return writeOutput(*output, gcode.Format(rewritten))
}

func loadMachine() (*machine.Machine, error) {
	var cfg machine.Config
	if *machineConfig != "" {
		c, err := machine.LoadConfig(*machineConfig)
		if err != nil {
			return nil, tracerr.Errorf("svg2gcode: loading machine config %q: %w", *machineConfig, err)
		}
		cfg = c
	} else {
		cfg = machine.DefaultConfig()
	}
	m, err := cfg.Build()
	if err != nil {
		return nil, tracerr.Errorf("svg2gcode: building machine: %w", err)
	}
	return m, nil
}

func buildConfig() (convert.Config, convert.Options, error) {
	ox, err := parseOptionalFloat(*originX)
	if err != nil {
		return convert.Config{}, convert.Options{}, tracerr.Errorf("svg2gcode: -origin-x: %w", err)
	}
	oy, err := parseOptionalFloat(*originY)
	if err != nil {
		return convert.Config{}, convert.Options{}, tracerr.Errorf("svg2gcode: -origin-y: %w", err)
	}
	w, err := parseOptionalLength(*width)
	if err != nil {
		return convert.Config{}, convert.Options{}, tracerr.Errorf("svg2gcode: -width: %w", err)
	}
	h, err := parseOptionalLength(*height)
	if err != nil {
		return convert.Config{}, convert.Options{}, tracerr.Errorf("svg2gcode: -height: %w", err)
	}

	cfg := convert.Config{
		Tolerance: *tolerance,
		Feedrate:  *feedrate,
		Dpi:       *dpi,
		OriginX:   ox,
		OriginY:   oy,
	}
	opts := convert.Options{Width: w, Height: h}
	return cfg, opts, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalLength(s string) (*svgattr.Length, error) {
	if s == "" {
		return nil, nil
	}
	l, _, err := svgattr.ParseLength(s)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return tracerr.Errorf("svg2gcode: writing %q: %w", path, err)
	}
	return nil
}

// renderPreview renders segs (already in mm, y-up) as a stroked line
// drawing, the same MoveTo/LineTo-per-segment approach cam/logo.go's
// OutputSVG uses to render a recorded turtle's trail.
func renderPreview(path string, segs []geom.Segment) error {
	dest := draw2dsvg.NewSvg()
	gc := draw2dsvg.NewGraphicContext(dest)

	gc.SetStrokeColor(color.RGBA{0x20, 0x20, 0x20, 0xff})
	gc.SetLineWidth(0.2)

	for _, s := range segs {
		gc.MoveTo(s.From.X, s.From.Y)
		gc.LineTo(s.To.X, s.To.Y)
	}
	gc.Stroke()

	return draw2dsvg.SaveToSvgFile(path, dest)
}
