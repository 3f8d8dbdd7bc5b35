package machine

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/ztrue/tracerr"

	"github.com/aprice2704/svg2gcode/gcode"
)

// Config is the on-disk (TOML) description of a machine profile: whether it
// supports circular interpolation, and the raw text of its four optional
// G-code snippets. Grounded on original_source/lib/src/machine.rs's
// MachineConfig.
type Config struct {
	SupportedFunctionality SupportedFunctionalityConfig `toml:"supported_functionality"`
	ToolOnSequence         string                       `toml:"tool_on_sequence"`
	ToolOffSequence        string                       `toml:"tool_off_sequence"`
	BeginSequence          string                       `toml:"begin_sequence"`
	EndSequence            string                       `toml:"end_sequence"`
}

// SupportedFunctionalityConfig mirrors machine.SupportedFunctionality for
// TOML decoding.
type SupportedFunctionalityConfig struct {
	CircularInterpolation bool `toml:"circular_interpolation"`
}

// DefaultConfig is the generic GRBL-class profile used when the caller
// supplies no machine config file: circular interpolation supported, no
// custom snippets. This stands in for the teacher's statik-embedded
// default asset, which this module cannot reproduce without running a
// code generator (see DESIGN.md).
func DefaultConfig() Config {
	return Config{
		SupportedFunctionality: SupportedFunctionalityConfig{CircularInterpolation: true},
	}
}

// LoadConfig reads and parses a machine profile from a TOML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, tracerr.Errorf("machine: reading config %q: %w", path, err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, tracerr.Errorf("machine: parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// Build lexes the configured snippets and constructs a ready-to-use
// Machine. A snippet parse failure is returned as an error rather than
// silently dropped, matching the "core refuses to construct a Machine
// without a valid parse" contract.
func (c Config) Build() (*Machine, error) {
	toolOn, err := parseSnippet(c.ToolOnSequence)
	if err != nil {
		return nil, tracerr.Errorf("machine: tool_on_sequence: %w", err)
	}
	toolOff, err := parseSnippet(c.ToolOffSequence)
	if err != nil {
		return nil, tracerr.Errorf("machine: tool_off_sequence: %w", err)
	}
	begin, err := parseSnippet(c.BeginSequence)
	if err != nil {
		return nil, tracerr.Errorf("machine: begin_sequence: %w", err)
	}
	end, err := parseSnippet(c.EndSequence)
	if err != nil {
		return nil, tracerr.Errorf("machine: end_sequence: %w", err)
	}
	return New(SupportedFunctionality{CircularInterpolation: c.SupportedFunctionality.CircularInterpolation}, toolOn, toolOff, begin, end), nil
}

func parseSnippet(text string) ([]gcode.Token, error) {
	if text == "" {
		return nil, nil
	}
	return gcode.ParseSnippet(text)
}
