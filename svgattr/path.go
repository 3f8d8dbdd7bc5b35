package svgattr

import (
	"fmt"
	"strings"
)

// SegKind distinguishes the path-data command shapes, mirroring
// original_source/lib/src/converter/path.rs's PathSegment enum.
type SegKind int

const (
	MoveTo SegKind = iota
	ClosePath
	LineTo
	HorizontalLineTo
	VerticalLineTo
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ArcTo
)

// PathSegment is one parsed path-data command. Only the fields relevant to
// Kind are meaningful; the rest are left zero. Abs is false for the
// lowercase (relative) form of the command.
type PathSegment struct {
	Kind SegKind
	Abs  bool

	// MoveTo, LineTo, HorizontalLineTo (X only), VerticalLineTo (Y only)
	X, Y float64

	// CurveTo: ctrl1, ctrl2, endpoint. SmoothCurveTo: ctrl2, endpoint only
	// (X1/Y1 unused). QuadTo: ctrl (X1,Y1), endpoint. SmoothQuadTo:
	// endpoint only.
	X1, Y1, X2, Y2 float64

	// ArcTo
	Rx, Ry, XRotation float64
	LargeArc, Sweep   bool
}

// ParsePathData parses a "d" attribute's full path-data grammar into a
// sequence of segments, in document order. A missing or empty d is not an
// error: it returns a nil slice, matching the no-op-path behavior the rest
// of the pipeline expects from an empty path.
func ParsePathData(d string) ([]PathSegment, error) {
	if strings.TrimSpace(d) == "" {
		return nil, nil
	}
	lx := &pathLexer{s: d}
	var segs []PathSegment
	var cmd byte
	haveCmd := false

	for {
		lx.skipSeparators()
		if lx.atEnd() {
			break
		}
		if c := lx.peek(); isCommandLetter(c) {
			cmd = c
			lx.advance()
			haveCmd = true
		} else if !haveCmd {
			return nil, fmt.Errorf("svgattr: path data: expected command, got %q", string(lx.peek()))
		} else if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}
		// else: implicit repeat of the same command.

		seg, err := parseOneSegment(lx, cmd)
		if err != nil {
			return nil, fmt.Errorf("svgattr: path data: %w", err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func isCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'Z', 'z', 'L', 'l', 'H', 'h', 'V', 'v',
		'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

func parseOneSegment(lx *pathLexer, cmd byte) (PathSegment, error) {
	abs := cmd >= 'A' && cmd <= 'Z'

	switch cmd {
	case 'M', 'm':
		x, y, err := lx.readPoint()
		return PathSegment{Kind: MoveTo, Abs: abs, X: x, Y: y}, err
	case 'Z', 'z':
		return PathSegment{Kind: ClosePath, Abs: true}, nil
	case 'L', 'l':
		x, y, err := lx.readPoint()
		return PathSegment{Kind: LineTo, Abs: abs, X: x, Y: y}, err
	case 'H', 'h':
		x, err := lx.readNumber()
		return PathSegment{Kind: HorizontalLineTo, Abs: abs, X: x}, err
	case 'V', 'v':
		y, err := lx.readNumber()
		return PathSegment{Kind: VerticalLineTo, Abs: abs, Y: y}, err
	case 'C', 'c':
		x1, y1, err := lx.readPoint()
		if err != nil {
			return PathSegment{}, err
		}
		x2, y2, err := lx.readPoint()
		if err != nil {
			return PathSegment{}, err
		}
		x, y, err := lx.readPoint()
		return PathSegment{Kind: CurveTo, Abs: abs, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y}, err
	case 'S', 's':
		x2, y2, err := lx.readPoint()
		if err != nil {
			return PathSegment{}, err
		}
		x, y, err := lx.readPoint()
		return PathSegment{Kind: SmoothCurveTo, Abs: abs, X2: x2, Y2: y2, X: x, Y: y}, err
	case 'Q', 'q':
		x1, y1, err := lx.readPoint()
		if err != nil {
			return PathSegment{}, err
		}
		x, y, err := lx.readPoint()
		return PathSegment{Kind: QuadTo, Abs: abs, X1: x1, Y1: y1, X: x, Y: y}, err
	case 'T', 't':
		x, y, err := lx.readPoint()
		return PathSegment{Kind: SmoothQuadTo, Abs: abs, X: x, Y: y}, err
	case 'A', 'a':
		rx, err := lx.readNumber()
		if err != nil {
			return PathSegment{}, err
		}
		ry, err := lx.readNumber()
		if err != nil {
			return PathSegment{}, err
		}
		xrot, err := lx.readNumber()
		if err != nil {
			return PathSegment{}, err
		}
		large, err := lx.readFlag()
		if err != nil {
			return PathSegment{}, err
		}
		sweep, err := lx.readFlag()
		if err != nil {
			return PathSegment{}, err
		}
		x, y, err := lx.readPoint()
		return PathSegment{
			Kind: ArcTo, Abs: abs, Rx: rx, Ry: ry, XRotation: xrot,
			LargeArc: large, Sweep: sweep, X: x, Y: y,
		}, err
	default:
		return PathSegment{}, fmt.Errorf("unknown command %q", string(cmd))
	}
}

// pathLexer scans SVG path-data's number grammar: signed floats with
// optional decimal and exponent, separated by any mix of commas and
// whitespace, with single-digit flags (no separator required) for arc
// commands.
type pathLexer struct {
	s   string
	pos int
}

func (lx *pathLexer) atEnd() bool {
	return lx.pos >= len(lx.s)
}

func (lx *pathLexer) peek() byte {
	return lx.s[lx.pos]
}

func (lx *pathLexer) advance() {
	lx.pos++
}

func (lx *pathLexer) skipSeparators() {
	for !lx.atEnd() {
		c := lx.s[lx.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			lx.pos++
			continue
		}
		break
	}
}

func (lx *pathLexer) readPoint() (x, y float64, err error) {
	x, err = lx.readNumber()
	if err != nil {
		return 0, 0, err
	}
	y, err = lx.readNumber()
	return x, y, err
}

func (lx *pathLexer) readNumber() (float64, error) {
	lx.skipSeparators()
	start := lx.pos
	if !lx.atEnd() && (lx.s[lx.pos] == '+' || lx.s[lx.pos] == '-') {
		lx.pos++
	}
	sawDigit := false
	for !lx.atEnd() && isDigit(lx.s[lx.pos]) {
		lx.pos++
		sawDigit = true
	}
	if !lx.atEnd() && lx.s[lx.pos] == '.' {
		lx.pos++
		for !lx.atEnd() && isDigit(lx.s[lx.pos]) {
			lx.pos++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	if !lx.atEnd() && (lx.s[lx.pos] == 'e' || lx.s[lx.pos] == 'E') {
		save := lx.pos
		lx.pos++
		if !lx.atEnd() && (lx.s[lx.pos] == '+' || lx.s[lx.pos] == '-') {
			lx.pos++
		}
		expDigit := false
		for !lx.atEnd() && isDigit(lx.s[lx.pos]) {
			lx.pos++
			expDigit = true
		}
		if !expDigit {
			lx.pos = save
		}
	}
	var v float64
	_, err := fmt.Sscanf(lx.s[start:lx.pos], "%g", &v)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", lx.s[start:lx.pos], err)
	}
	return v, nil
}

// readFlag reads a single SVG path arc-flag: exactly one '0' or '1', which
// may run directly against the next token with no separator.
func (lx *pathLexer) readFlag() (bool, error) {
	lx.skipSeparators()
	if lx.atEnd() {
		return false, fmt.Errorf("expected flag, got end of input")
	}
	switch lx.s[lx.pos] {
	case '0':
		lx.pos++
		return false, nil
	case '1':
		lx.pos++
		return true, nil
	default:
		return false, fmt.Errorf("expected flag (0 or 1), got %q", string(lx.s[lx.pos]))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
