package domain

import (
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// OptionName is the name of a user-configurable build option.
type OptionName string

const (
	// OptionShared builds a shared artifact instead of a static one.
	OptionShared OptionName = "shared"
	// OptionFPIC compiles static artifacts as position independent code.
	OptionFPIC OptionName = "fPIC"
	// OptionWithALSA enables the ALSA audio backend.
	OptionWithALSA OptionName = "with_alsa"
	// OptionWithSndfile enables audio file support through libsndfile.
	OptionWithSndfile OptionName = "with_sendfile"
	// OptionWithPulseAudio enables the PulseAudio backend.
	OptionWithPulseAudio OptionName = "with_pulseaudio"
	// OptionWithBenchmarks builds the benchmark programs.
	OptionWithBenchmarks OptionName = "with_benchmarks"
)

// canonicalOrder is the declaration order of the option schema.
var canonicalOrder = []OptionName{
	OptionShared,
	OptionFPIC,
	OptionWithALSA,
	OptionWithSndfile,
	OptionWithPulseAudio,
	OptionWithBenchmarks,
}

// OptionNames returns every known option name in canonical order.
func OptionNames() []OptionName {
	return slices.Clone(canonicalOrder)
}

// OptionValues is a raw, possibly partial, option request as supplied by a user.
// Values are literals such as "true" or "False".
type OptionValues map[string]string

// Merge returns a new OptionValues where entries of other override entries of v.
func (v OptionValues) Merge(other OptionValues) OptionValues {
	out := make(OptionValues, len(v)+len(other))
	maps.Copy(out, v)
	maps.Copy(out, other)
	return out
}

// OptionSet is an immutable mapping from option name to boolean value.
// The zero value is an empty set.
type OptionSet struct {
	values map[OptionName]bool
}

// NewOptionSet creates an OptionSet holding a copy of values.
func NewOptionSet(values map[OptionName]bool) OptionSet {
	return OptionSet{values: maps.Clone(values)}
}

// Get returns the value of name and whether it is present.
func (s OptionSet) Get(name OptionName) (value, ok bool) {
	value, ok = s.values[name]
	return value, ok
}

// Enabled reports whether name is present and true.
func (s OptionSet) Enabled(name OptionName) bool {
	return s.values[name]
}

// Has reports whether name is present in the set.
func (s OptionSet) Has(name OptionName) bool {
	_, ok := s.values[name]
	return ok
}

// Len returns the number of options present.
func (s OptionSet) Len() int {
	return len(s.values)
}

// With returns a copy of the set with name set to value.
func (s OptionSet) With(name OptionName, value bool) OptionSet {
	out := make(map[OptionName]bool, len(s.values)+1)
	maps.Copy(out, s.values)
	out[name] = value
	return OptionSet{values: out}
}

// Without returns a copy of the set with the given names removed.
// Removing an absent name is a no-op.
func (s OptionSet) Without(names ...OptionName) OptionSet {
	out := maps.Clone(s.values)
	if out == nil {
		out = make(map[OptionName]bool)
	}
	for _, name := range names {
		delete(out, name)
	}
	return OptionSet{values: out}
}

// Names returns the present option names in canonical order.
func (s OptionSet) Names() []OptionName {
	names := make([]OptionName, 0, len(s.values))
	for _, name := range canonicalOrder {
		if _, ok := s.values[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

// All yields the present options in canonical order.
func (s OptionSet) All() iter.Seq2[OptionName, bool] {
	return func(yield func(OptionName, bool) bool) {
		for _, name := range s.Names() {
			if !yield(name, s.values[name]) {
				return
			}
		}
	}
}

// Map returns a copy of the set keyed by plain strings.
func (s OptionSet) Map() map[string]bool {
	out := make(map[string]bool, len(s.values))
	for name, value := range s.values {
		out[string(name)] = value
	}
	return out
}

// Equal reports whether both sets hold the same names and values.
func (s OptionSet) Equal(other OptionSet) bool {
	return maps.Equal(s.values, other.values)
}

// String renders the set as name=value pairs in canonical order.
func (s OptionSet) String() string {
	parts := make([]string, 0, len(s.values))
	for name, value := range s.All() {
		parts = append(parts, string(name)+"="+strconv.FormatBool(value))
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON encodes the set as a JSON object with sorted keys.
func (s OptionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

// UnmarshalJSON decodes a JSON object of booleans into the set.
func (s *OptionSet) UnmarshalJSON(data []byte) error {
	var raw map[string]bool
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	values := make(map[OptionName]bool, len(raw))
	for name, value := range raw {
		values[OptionName(name)] = value
	}
	s.values = values
	return nil
}

// MarshalYAML encodes the set as a mapping of option names to booleans.
func (s OptionSet) MarshalYAML() (any, error) {
	return s.Map(), nil
}
