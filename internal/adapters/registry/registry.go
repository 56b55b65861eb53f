// Package registry implements the PackageRegistry port over a local directory tree.
//
// The registry root holds one directory per package and one sub-directory per
// installed version:
//
//	<root>/fftw/3.3.10/include
//	<root>/fftw/3.3.10/lib
package registry

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-version"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Library directories probed for headers_and_libs dependencies, in order.
var libDirs = []string{"lib", "lib64"}

// Registry implements ports.PackageRegistry on the local filesystem.
type Registry struct{}

// New creates a new filesystem Registry.
func New() *Registry {
	return &Registry{}
}

// Resolve finds the installed version of dep equal to its pin.
// Versions are compared semantically, so a pin of 17.0 matches a 17.0.0 directory.
func (r *Registry) Resolve(
	ctx context.Context,
	root string,
	dep domain.DependencySpec,
) (domain.ResolvedDependency, error) {
	if err := ctx.Err(); err != nil {
		return domain.ResolvedDependency{}, err
	}

	pin, err := domain.ParsePin(dep.Version)
	if err != nil {
		return domain.ResolvedDependency{}, zerr.With(err, "dependency", dep.Name)
	}

	pkgDir := filepath.Join(root, dep.Name)
	entries, err := os.ReadDir(pkgDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ResolvedDependency{}, notFound(dep, root)
		}
		return domain.ResolvedDependency{}, zerr.With(domain.Fail(domain.ErrRegistryReadFailed, err), "path", pkgDir)
	}

	versionDir, ok := matchVersion(pkgDir, entries, pin)
	if !ok {
		err := notFound(dep, root)
		if available := installedVersions(entries); len(available) > 0 {
			err = zerr.With(err, "available", strings.Join(available, ", "))
		}
		return domain.ResolvedDependency{}, err
	}

	resolved := domain.ResolvedDependency{
		Spec: dep,
		Root: versionDir,
	}
	if dir := filepath.Join(versionDir, "include"); isDir(dir) {
		resolved.IncludePaths = []string{dir}
	}
	if dep.LinkMode.NeedsLibs() {
		for _, name := range libDirs {
			if dir := filepath.Join(versionDir, name); isDir(dir) {
				resolved.LibPaths = append(resolved.LibPaths, dir)
			}
		}
	}

	return resolved, nil
}

// installedVersions lists the version directories among entries, oldest first.
// Entries that are not valid versions are ignored.
func installedVersions(entries []os.DirEntry) []string {
	var versions []*version.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if v, err := version.NewVersion(entry.Name()); err == nil {
			versions = append(versions, v)
		}
	}
	slices.SortFunc(versions, func(a, b *version.Version) int { return a.Compare(b) })

	names := make([]string, len(versions))
	for i, v := range versions {
		names[i] = v.Original()
	}
	return names
}

func matchVersion(pkgDir string, entries []os.DirEntry, pin *version.Version) (string, bool) {
	// An exact directory name wins over a semantically equal one.
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() == pin.Original() {
			return filepath.Join(pkgDir, entry.Name()), true
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := version.NewVersion(entry.Name())
		if err != nil {
			continue
		}
		if v.Equal(pin) {
			return filepath.Join(pkgDir, entry.Name()), true
		}
	}
	return "", false
}

func notFound(dep domain.DependencySpec, root string) error {
	err := zerr.With(zerr.Wrap(domain.ErrDependencyNotFound, "failed to resolve dependency"), "dependency", dep.Name)
	err = zerr.With(err, "version", dep.Version)
	return zerr.With(err, "registry", root)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
