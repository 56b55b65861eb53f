package domain

import (
	"encoding/json"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// BuildPlan is the resolved, immutable triple of options, dependencies and toolchain
// variables for one platform. It is handed to the build invoker exactly once.
type BuildPlan struct {
	Platform     Platform           `json:"platform" yaml:"platform"`
	Options      OptionSet          `json:"options" yaml:"options"`
	Dependencies []DependencySpec   `json:"dependencies" yaml:"dependencies"`
	Variables    ToolchainVariables `json:"variables" yaml:"variables"`
}

// NewBuildPlan assembles a plan. The dependency slice is copied.
func NewBuildPlan(
	platform Platform,
	options OptionSet,
	deps []DependencySpec,
	vars ToolchainVariables,
) *BuildPlan {
	return &BuildPlan{
		Platform:     platform,
		Options:      options,
		Dependencies: slices.Clone(deps),
		Variables:    vars,
	}
}

// DependencyNames returns the dependency names in plan order.
func (p *BuildPlan) DependencyNames() []string {
	names := make([]string, len(p.Dependencies))
	for i, dep := range p.Dependencies {
		names[i] = dep.Name
	}
	return names
}

// Fingerprint returns a stable hash of the plan's canonical JSON encoding.
// Two plans with the same fingerprint are bit-identical.
func (p *BuildPlan) Fingerprint() string {
	data, err := json.Marshal(p)
	if err != nil {
		// Every field marshals to plain JSON values; this is unreachable.
		panic(err)
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
