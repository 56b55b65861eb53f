package domain

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
)

// Toolchain cache variable names understood by the packaged project's CMake build.
const (
	VarUseALSA       = "USE_ALSA"
	VarUsePulseAudio = "USE_PULSEAUDIO"
	VarUseSndfile    = "USE_SNDFILE"
	VarUseBenchmarks = "USE_BENCHMARKS"
	VarUseSndio      = "USE_SNDIO"
)

// ToolchainVariables is an immutable mapping of build-system cache variables to boolean values.
type ToolchainVariables struct {
	values map[string]bool
}

// NewToolchainVariables creates a ToolchainVariables holding a copy of values.
func NewToolchainVariables(values map[string]bool) ToolchainVariables {
	return ToolchainVariables{values: maps.Clone(values)}
}

// Get returns the value of name and whether it was emitted.
func (v ToolchainVariables) Get(name string) (value, ok bool) {
	value, ok = v.values[name]
	return value, ok
}

// Len returns the number of emitted variables.
func (v ToolchainVariables) Len() int {
	return len(v.values)
}

// Names returns the emitted variable names in sorted order.
func (v ToolchainVariables) Names() []string {
	return slices.Sorted(maps.Keys(v.values))
}

// All yields the variables in sorted name order.
func (v ToolchainVariables) All() iter.Seq2[string, bool] {
	return func(yield func(string, bool) bool) {
		for _, name := range v.Names() {
			if !yield(name, v.values[name]) {
				return
			}
		}
	}
}

// Map returns a copy of the variables.
func (v ToolchainVariables) Map() map[string]bool {
	out := maps.Clone(v.values)
	if out == nil {
		out = make(map[string]bool)
	}
	return out
}

// Equal reports whether both mappings hold the same names and values.
func (v ToolchainVariables) Equal(other ToolchainVariables) bool {
	return maps.Equal(v.values, other.values)
}

// MarshalJSON encodes the variables as a JSON object with sorted keys.
func (v ToolchainVariables) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Map())
}

// UnmarshalJSON decodes a JSON object of booleans.
func (v *ToolchainVariables) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.values = raw
	return nil
}

// MarshalYAML encodes the variables as a mapping.
func (v ToolchainVariables) MarshalYAML() (any, error) {
	return v.Map(), nil
}
