package domain

import "time"

// RecipeConfig is the project configuration loaded from recipe.yaml.
type RecipeConfig struct {
	// Root is the directory containing the configuration file.
	Root string
	// Source is the folder of the packaged project's CMakeLists.txt.
	Source string
	// BuildDir is the folder receiving per-build-type build trees.
	BuildDir string
	// Registry is the root of the local package registry.
	Registry string
	// CMake is the CMake executable.
	CMake string
	// Options are project-level option requests.
	Options OptionValues
	// Profiles maps profile names to profile file paths.
	Profiles map[string]string
	// BuildEnv holds extra environment variables for the native build.
	BuildEnv map[string]string
}

// Profile is a named platform descriptor plus the option requests attached to it.
type Profile struct {
	Name     string
	Platform Platform
	Options  OptionValues
}

// BuildRecord is persisted after a successful build of a plan.
type BuildRecord struct {
	Profile     string    `json:"profile,omitzero"`
	Platform    string    `json:"platform,omitzero"`
	Fingerprint string    `json:"fingerprint,omitzero"`
	BuildFolder string    `json:"build_folder,omitzero"`
	Timestamp   time.Time `json:"timestamp,omitzero"`
}

// BuildLayout locates the folders a build invoker works in and carries
// everything it needs besides the plan.
type BuildLayout struct {
	Source       string
	BuildFolder  string
	// CMake is the CMake executable. A bare name is looked up on the build PATH.
	CMake        string
	Dependencies []ResolvedDependency
	// Env is the complete environment of the native build, "KEY=VALUE" each.
	Env []string
}

// BuildHandle is the opaque result of configuring a build tree.
type BuildHandle struct {
	CMake         string
	BuildFolder   string
	ToolchainFile string
	BuildType     BuildType
	Env           []string
}
