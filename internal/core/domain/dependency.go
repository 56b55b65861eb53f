package domain

import (
	"github.com/hashicorp/go-version"
	"go.trai.ch/zerr"
)

// LinkMode describes which parts of a dependency the consumer needs.
type LinkMode string

const (
	// LinkHeadersOnly requires only the dependency's headers.
	LinkHeadersOnly LinkMode = "headers_only"
	// LinkHeadersAndLibs requires the dependency's headers and libraries.
	LinkHeadersAndLibs LinkMode = "headers_and_libs"
)

// NeedsLibs reports whether the link mode requires libraries.
func (m LinkMode) NeedsLibs() bool {
	return m == LinkHeadersAndLibs
}

// DependencySpec is a required external library pinned to an exact version.
// It is produced by the dependency selector and never mutated afterwards.
type DependencySpec struct {
	Name     string   `json:"name" yaml:"name"`
	Version  string   `json:"version" yaml:"version"`
	LinkMode LinkMode `json:"link_mode" yaml:"link_mode"`
}

// NewDependencySpec creates a DependencySpec after checking that version is an exact pin.
func NewDependencySpec(name, pin string, mode LinkMode) (DependencySpec, error) {
	if _, err := ParsePin(pin); err != nil {
		return DependencySpec{}, zerr.With(err, "dependency", name)
	}
	return DependencySpec{Name: name, Version: pin, LinkMode: mode}, nil
}

// MustDependencySpec is like NewDependencySpec but panics on an invalid pin.
// It is intended for static dependency tables.
func MustDependencySpec(name, pin string, mode LinkMode) DependencySpec {
	spec, err := NewDependencySpec(name, pin, mode)
	if err != nil {
		panic(err)
	}
	return spec
}

// Reference renders the spec as name/version.
func (d DependencySpec) Reference() string {
	return d.Name + "/" + d.Version
}

// String implements fmt.Stringer.
func (d DependencySpec) String() string {
	return d.Reference()
}

// ParsePin parses an exact version pin. Ranges and constraints are rejected.
func ParsePin(pin string) (*version.Version, error) {
	v, err := version.NewVersion(pin)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(ErrInvalidVersionPin, err.Error()), "version", pin)
	}
	return v, nil
}

// ResolvedDependency is a DependencySpec located on the build machine by the package registry.
type ResolvedDependency struct {
	Spec         DependencySpec `json:"spec"`
	Root         string         `json:"root"`
	IncludePaths []string       `json:"include_paths"`
	LibPaths     []string       `json:"lib_paths,omitempty"`
}
