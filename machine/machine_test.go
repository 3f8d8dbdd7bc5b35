package machine

import (
	"reflect"
	"testing"

	"github.com/aprice2704/svg2gcode/gcode"
)

func TestToolOnOffLatching(t *testing.T) {
	onTok := []gcode.Token{gcode.Field("M", 3)}
	offTok := []gcode.Token{gcode.Field("M", 5)}
	m := New(SupportedFunctionality{}, onTok, offTok, nil, nil)

	if got := m.ToolOn(); !reflect.DeepEqual(got, onTok) {
		t.Errorf("first ToolOn() = %+v, want %+v", got, onTok)
	}
	if got := m.ToolOn(); got != nil {
		t.Errorf("second ToolOn() should be a no-op, got %+v", got)
	}
	if got := m.ToolOff(); !reflect.DeepEqual(got, offTok) {
		t.Errorf("ToolOff() after ToolOn() = %+v, want %+v", got, offTok)
	}
	if got := m.ToolOff(); got != nil {
		t.Errorf("second ToolOff() should be a no-op, got %+v", got)
	}
}

func TestToolOnFromUnknownState(t *testing.T) {
	onTok := []gcode.Token{gcode.Field("M", 3)}
	m := New(SupportedFunctionality{}, onTok, nil, nil, nil)
	if got := m.ToolOn(); !reflect.DeepEqual(got, onTok) {
		t.Errorf("ToolOn() from unknown state = %+v, want %+v", got, onTok)
	}
}

func TestAbsoluteRelativeLatching(t *testing.T) {
	m := New(SupportedFunctionality{}, nil, nil, nil, nil)
	if got := m.Absolute(); !reflect.DeepEqual(got, gcode.Absolute()) {
		t.Errorf("first Absolute() = %+v, want %+v", got, gcode.Absolute())
	}
	if got := m.Absolute(); got != nil {
		t.Errorf("second Absolute() should be a no-op, got %+v", got)
	}
	if got := m.Relative(); !reflect.DeepEqual(got, gcode.Relative()) {
		t.Errorf("Relative() after Absolute() = %+v, want %+v", got, gcode.Relative())
	}
	if got := m.Relative(); got != nil {
		t.Errorf("second Relative() should be a no-op, got %+v", got)
	}
}

func TestProgramBeginEndAlwaysEmit(t *testing.T) {
	begin := []gcode.Token{gcode.NewComment("begin")}
	end := []gcode.Token{gcode.NewComment("end")}
	m := New(SupportedFunctionality{}, nil, nil, begin, end)
	if got := m.ProgramBegin(); !reflect.DeepEqual(got, begin) {
		t.Errorf("ProgramBegin() = %+v, want %+v", got, begin)
	}
	if got := m.ProgramBegin(); !reflect.DeepEqual(got, begin) {
		t.Errorf("ProgramBegin() should emit every call, got %+v", got)
	}
	if got := m.ProgramEnd(); !reflect.DeepEqual(got, end) {
		t.Errorf("ProgramEnd() = %+v, want %+v", got, end)
	}
}

func TestZeroValueMachineIsUsable(t *testing.T) {
	var m Machine
	if got := m.ToolOn(); got != nil {
		t.Errorf("zero-value machine's ToolOn() should be nil snippet, got %+v", got)
	}
	if got := m.Absolute(); !reflect.DeepEqual(got, gcode.Absolute()) {
		t.Errorf("zero-value machine should still latch distance mode, got %+v", got)
	}
}
