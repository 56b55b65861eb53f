package domain

import (
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// OptionDef describes a single option of the schema: its value domain and default.
type OptionDef struct {
	Name        OptionName
	Domain      []bool
	Default     bool
	Description string
}

// Schema is the canonical set of configurable options.
type Schema struct {
	defs []OptionDef
}

var boolDomain = []bool{true, false}

// DefaultSchema returns the option schema of the recipe.
func DefaultSchema() Schema {
	return Schema{defs: []OptionDef{
		{Name: OptionShared, Domain: boolDomain, Default: false, Description: "build a shared artifact"},
		{Name: OptionFPIC, Domain: boolDomain, Default: true, Description: "position independent code for static builds"},
		{Name: OptionWithALSA, Domain: boolDomain, Default: true, Description: "ALSA audio backend"},
		{Name: OptionWithSndfile, Domain: boolDomain, Default: true, Description: "audio file support via libsndfile"},
		{Name: OptionWithPulseAudio, Domain: boolDomain, Default: false, Description: "PulseAudio audio backend"},
		{Name: OptionWithBenchmarks, Domain: boolDomain, Default: true, Description: "build benchmark programs"},
	}}
}

// Definitions returns a copy of the option definitions in canonical order.
func (s Schema) Definitions() []OptionDef {
	out := make([]OptionDef, len(s.defs))
	copy(out, s.defs)
	return out
}

// Defaults returns the fully defaulted option set.
func (s Schema) Defaults() OptionSet {
	values := make(map[OptionName]bool, len(s.defs))
	for _, def := range s.defs {
		values[def.Name] = def.Default
	}
	return OptionSet{values: values}
}

// Apply validates a partial request and fills missing options with their defaults.
// It returns an error wrapping ErrSchema when a name is unknown or a value is outside
// the option's domain. No partial set is returned on error.
func (s Schema) Apply(requested OptionValues) (OptionSet, error) {
	values := s.Defaults().values

	for _, name := range sortedKeys(requested) {
		def, ok := s.lookup(OptionName(name))
		if !ok {
			return OptionSet{}, zerr.With(zerr.Wrap(ErrUnknownOption, "failed to apply options"), "option", name)
		}

		raw := requested[name]
		value, ok := parseBool(raw)
		if !ok || !inDomain(def.Domain, value) {
			err := zerr.With(zerr.Wrap(ErrInvalidOptionValue, "failed to apply options"), "option", name)
			return OptionSet{}, zerr.With(err, "value", raw)
		}
		values[def.Name] = value
	}

	return OptionSet{values: values}, nil
}

func (s Schema) lookup(name OptionName) (OptionDef, bool) {
	for _, def := range s.defs {
		if def.Name == name {
			return def, true
		}
	}
	return OptionDef{}, false
}

// parseBool accepts the literals true and false in any letter case.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func inDomain(domain []bool, value bool) bool {
	return slices.Contains(domain, value)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
