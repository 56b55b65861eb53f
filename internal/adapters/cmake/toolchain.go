package cmake

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
)

// RenderToolchain renders the CMake toolchain file for plan.
// The output depends only on its arguments.
func RenderToolchain(plan *domain.BuildPlan, deps []domain.ResolvedDependency) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# Generated by recipe for %s. Do not edit.\n\n", plan.Platform)

	writeBool(&b, "BUILD_SHARED_LIBS", plan.Options.Enabled(domain.OptionShared))
	if pic, ok := plan.Options.Get(domain.OptionFPIC); ok {
		writeBool(&b, "CMAKE_POSITION_INDEPENDENT_CODE", pic)
	}

	if plan.Variables.Len() > 0 {
		b.WriteString("\n")
		for name, value := range plan.Variables.All() {
			writeBool(&b, name, value)
		}
	}

	for _, dep := range deps {
		fmt.Fprintf(&b, "\n# %s\n", dep.Spec.Reference())
		writeList(&b, "CMAKE_PREFIX_PATH", dep.Root)
		for _, dir := range dep.IncludePaths {
			writeList(&b, "CMAKE_INCLUDE_PATH", dir)
		}
		for _, dir := range dep.LibPaths {
			writeList(&b, "CMAKE_LIBRARY_PATH", dir)
		}
	}

	return b.Bytes()
}

func writeBool(b *bytes.Buffer, name string, value bool) {
	state := "OFF"
	if value {
		state = "ON"
	}
	fmt.Fprintf(b, "set(%s %s CACHE BOOL \"\" FORCE)\n", name, state)
}

func writeList(b *bytes.Buffer, name, path string) {
	fmt.Fprintf(b, "list(APPEND %s %s)\n", name, quote(filepath.ToSlash(path)))
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}

type depsManifest struct {
	Platform     string                      `json:"platform"`
	Fingerprint  string                      `json:"fingerprint"`
	Dependencies []domain.ResolvedDependency `json:"dependencies"`
}

// RenderManifest renders the JSON manifest of the dependencies located for plan.
func RenderManifest(plan *domain.BuildPlan, deps []domain.ResolvedDependency) ([]byte, error) {
	if deps == nil {
		deps = []domain.ResolvedDependency{}
	}
	data, err := json.MarshalIndent(depsManifest{
		Platform:     plan.Platform.String(),
		Fingerprint:  plan.Fingerprint(),
		Dependencies: deps,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
