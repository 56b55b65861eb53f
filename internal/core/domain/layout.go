package domain

import "path/filepath"

const (
	// RecipeDirName is the name of the internal workspace directory.
	RecipeDirName = ".recipe"

	// StoreDirName is the name of the plan store directory.
	StoreDirName = "store"

	// RecipeFileName is the name of the project configuration file.
	RecipeFileName = "recipe.yaml"

	// DefaultBuildDir is the build folder used when the config does not set one.
	DefaultBuildDir = "build"

	// DefaultRegistryDir is the package registry root used when the config does not set one.
	DefaultRegistryDir = "packages"

	// DefaultCMake is the CMake executable used when the config does not set one.
	DefaultCMake = "cmake"

	// ToolchainFileName is the name of the generated CMake toolchain file.
	ToolchainFileName = "recipe_toolchain.cmake"

	// DepsManifestName is the name of the generated dependency manifest.
	DepsManifestName = "recipe_deps.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the plan store.
// It joins .recipe and store.
func DefaultStorePath() string {
	return filepath.Join(RecipeDirName, StoreDirName)
}

// BuildFolder returns the folder of one profile and build type inside buildDir,
// e.g. build/linux/Release. Profiles never share a CMake cache.
func BuildFolder(buildDir, profile string, buildType BuildType) string {
	return filepath.Join(buildDir, profile, string(buildType))
}
