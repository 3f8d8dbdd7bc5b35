// Package machine emulates the state of an arbitrary machine that can run
// G-code: it tracks the tool and distance-mode latches so the pipeline
// never emits a redundant mode change, and holds the user-supplied
// begin/end/tool-on/tool-off snippets.
//
// Grounded on original_source/lib/src/machine.rs's Machine/MachineConfig/
// SupportedFunctionality, with Rust's Option<Tool>/Option<Distance>
// re-expressed as Go enums whose zero value means "unknown".
package machine

import "github.com/aprice2704/svg2gcode/gcode"

// Tool is whether the cutting/marking head is engaged.
type Tool int

const (
	toolUnknown Tool = iota
	ToolOn
	ToolOff
)

// Distance is the G90/G91 distance mode.
type Distance int

const (
	distanceUnknown Distance = iota
	Absolute
	Relative
)

// SupportedFunctionality describes what a machine profile can do, beyond
// the baseline G0/G1 moves every profile supports.
type SupportedFunctionality struct {
	// CircularInterpolation indicates support for G2/G3 circular moves.
	// Most modern controllers support this; older ones (e.g. early
	// MakerBot firmware) do not and must be flattened to polylines.
	CircularInterpolation bool
}

// Machine tracks latch state and the four configured snippets. The zero
// value is a usable machine with both latches Unknown and no snippets.
type Machine struct {
	Supported SupportedFunctionality

	toolState     Tool
	distanceMode  Distance
	toolOnTokens  []gcode.Token
	toolOffTokens []gcode.Token
	beginTokens   []gcode.Token
	endTokens     []gcode.Token
}

// New builds a Machine from pre-lexed snippet token sequences. Any snippet
// may be nil, meaning "this machine profile defines no such sequence."
func New(supported SupportedFunctionality, toolOn, toolOff, begin, end []gcode.Token) *Machine {
	return &Machine{
		Supported:     supported,
		toolOnTokens:  toolOn,
		toolOffTokens: toolOff,
		beginTokens:   begin,
		endTokens:     end,
	}
}

// ToolOn emits the tool-on snippet if the tool was off or unknown, and
// latches it on. Returns nil if the tool was already on.
func (m *Machine) ToolOn() []gcode.Token {
	if m.toolState == ToolOff || m.toolState == toolUnknown {
		m.toolState = ToolOn
		return m.toolOnTokens
	}
	return nil
}

// ToolOff is the symmetric operation for turning the tool off.
func (m *Machine) ToolOff() []gcode.Token {
	if m.toolState == ToolOn || m.toolState == toolUnknown {
		m.toolState = ToolOff
		return m.toolOffTokens
	}
	return nil
}

// ProgramBegin unconditionally emits the configured begin snippet.
func (m *Machine) ProgramBegin() []gcode.Token {
	return m.beginTokens
}

// ProgramEnd unconditionally emits the configured end snippet.
func (m *Machine) ProgramEnd() []gcode.Token {
	return m.endTokens
}

// Absolute emits the G90 field if the distance mode was relative or
// unknown, and latches it absolute.
func (m *Machine) Absolute() []gcode.Token {
	if m.distanceMode == Relative || m.distanceMode == distanceUnknown {
		m.distanceMode = Absolute
		return gcode.Absolute()
	}
	return nil
}

// Relative emits the G91 field if the distance mode was absolute or
// unknown, and latches it relative.
func (m *Machine) Relative() []gcode.Token {
	if m.distanceMode == Absolute || m.distanceMode == distanceUnknown {
		m.distanceMode = Relative
		return gcode.Relative()
	}
	return nil
}
