// Package buildenv builds the process environment of the native build.
package buildenv

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
)

// Path-list variables extended with the resolved dependencies.
const (
	varPath           = "PATH"
	varPkgConfigPath  = "PKG_CONFIG_PATH"
	varCMakePrefixDir = "CMAKE_PREFIX_PATH"
)

// EnvFactory implements ports.EnvironmentFactory on top of an inherited base environment.
type EnvFactory struct {
	base func() []string
}

// NewEnvFactory creates an EnvFactory inheriting the current process environment.
func NewEnvFactory() *EnvFactory {
	return &EnvFactory{base: os.Environ}
}

// NewEnvFactoryWithBase creates an EnvFactory inheriting the given environment.
func NewEnvFactoryWithBase(base []string) *EnvFactory {
	return &EnvFactory{base: func() []string { return slices.Clone(base) }}
}

// GetEnvironment returns the inherited environment with the dependencies exposed
// to the toolchain, then extra applied on top. Output is sorted.
func (e *EnvFactory) GetEnvironment(
	ctx context.Context,
	deps []domain.ResolvedDependency,
	extra map[string]string,
) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	env := parseEnv(e.base())

	var binDirs, pkgConfigDirs, prefixes []string
	for _, dep := range deps {
		prefixes = append(prefixes, dep.Root)
		if dir := filepath.Join(dep.Root, "bin"); isDir(dir) {
			binDirs = append(binDirs, dir)
		}
		for _, lib := range dep.LibPaths {
			if dir := filepath.Join(lib, "pkgconfig"); isDir(dir) {
				pkgConfigDirs = append(pkgConfigDirs, dir)
			}
		}
	}

	prependList(env, varPath, binDirs)
	prependList(env, varPkgConfigPath, pkgConfigDirs)
	prependList(env, varCMakePrefixDir, prefixes)

	for key, value := range extra {
		env[key] = value
	}

	out := make([]string, 0, len(env))
	for key, value := range env {
		out = append(out, key+"="+value)
	}
	slices.Sort(out)
	return out, nil
}

// ShouldIncludeVar reports whether an inherited variable is passed to the build.
// Interactive shell state is dropped.
func ShouldIncludeVar(key string) bool {
	exclude := []string{"PS1", "PS2", "SHLVL", "OLDPWD", "_"}
	return key != "" && !slices.Contains(exclude, key)
}

func parseEnv(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !ShouldIncludeVar(key) {
			continue
		}
		env[key] = value
	}
	return env
}

func prependList(env map[string]string, key string, dirs []string) {
	if len(dirs) == 0 {
		return
	}
	parts := slices.Clone(dirs)
	if current := env[key]; current != "" {
		parts = append(parts, current)
	}
	env[key] = strings.Join(parts, string(os.PathListSeparator))
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
