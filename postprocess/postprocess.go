// Package postprocess re-centers an already-emitted G-code token stream
// without re-running the conversion pipeline: it scans the stream once to
// find its bounding box (tracking a running position through the G90/G91
// mode latches), then rewrites every X/Y field's value by the offset
// needed to move that box's minimum corner to a configured origin.
//
// This is a standalone, alternative feature to the convert package's
// Pipeline, not a stage chained after it -- SPEC_FULL.md §4.9 labels it
// "(alternative)" precisely because it operates on a finished program,
// e.g. one loaded from a file the caller didn't generate with this tool.
package postprocess

import "github.com/aprice2704/svg2gcode/gcode"

// position tracks the running X/Y position a token stream implies, given
// its sequence of G90 (absolute) / G91 (relative) mode fields and X/Y
// value fields.
type position struct {
	x, y     float64
	relative bool
}

// apply updates pos for a single X (axis 0) or Y (axis 1) field and
// returns the field's resolved absolute-equivalent value.
func (p *position) apply(axis int, value float64) float64 {
	if axis == 0 {
		if p.relative {
			p.x += value
		} else {
			p.x = value
		}
		return p.x
	}
	if p.relative {
		p.y += value
	} else {
		p.y = value
	}
	return p.y
}

// BoundingBox is the axis-aligned extent a token stream's moves cover.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
	empty                  bool
}

// IsEmpty reports whether the stream contained no X/Y fields at all.
func (b BoundingBox) IsEmpty() bool { return b.empty }

func (b BoundingBox) union(x, y float64) BoundingBox {
	if b.empty {
		return BoundingBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
	}
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
	return b
}

// ScanBoundingBox performs the first scan SPEC_FULL.md §4.9 describes:
// tracking the running position implied by the stream's mode fields, and
// unioning every resolved X/Y position into a bounding box.
func ScanBoundingBox(tokens []gcode.Token) BoundingBox {
	var pos position
	box := BoundingBox{empty: true}
	for _, t := range tokens {
		switch {
		case t.IsAbsoluteModeField():
			pos.relative = false
		case t.IsRelativeModeField():
			pos.relative = true
		default:
			if axis, ok := t.IsAxisField(); ok {
				v := pos.apply(axis, t.Value)
				if axis == 0 {
					box = box.union(v, pos.y)
				} else {
					box = box.union(pos.x, v)
				}
			}
		}
	}
	return box
}

// SetOrigin rewrites tokens so the bounding box ScanBoundingBox reports
// has its minimum corner at (originX, originY), replaying the same
// running-position state machine and overwriting each X/Y field's value
// with its resolved position plus the computed offset. An axis whose
// origin pointer is nil is left untranslated. A stream with no X/Y fields
// is returned unchanged.
func SetOrigin(tokens []gcode.Token, originX, originY *float64) []gcode.Token {
	box := ScanBoundingBox(tokens)
	if box.IsEmpty() {
		return tokens
	}

	var offsetX, offsetY float64
	if originX != nil {
		offsetX = *originX - box.MinX
	}
	if originY != nil {
		offsetY = *originY - box.MinY
	}

	out := make([]gcode.Token, len(tokens))
	var pos position
	for i, t := range tokens {
		switch {
		case t.IsAbsoluteModeField():
			pos.relative = false
			out[i] = t
		case t.IsRelativeModeField():
			pos.relative = true
			out[i] = t
		default:
			axis, ok := t.IsAxisField()
			if !ok {
				out[i] = t
				continue
			}
			current := pos.apply(axis, t.Value)
			offset := offsetX
			if axis == 1 {
				offset = offsetY
			}
			out[i] = gcode.Field(t.Letters, current+offset)
		}
	}
	return out
}
