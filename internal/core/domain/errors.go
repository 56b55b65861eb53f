package domain

import "go.trai.ch/zerr"

var (
	// ErrSchema is returned when a requested option name is not part of the schema
	// or its value is outside the option's domain.
	ErrSchema = zerr.New("schema error")

	// ErrUnknownOption is returned when a requested option name is not in the canonical set.
	// It unwraps to ErrSchema.
	ErrUnknownOption = zerr.Wrap(ErrSchema, "unknown option")

	// ErrInvalidOptionValue is returned when a requested option value is outside its domain.
	// It unwraps to ErrSchema.
	ErrInvalidOptionValue = zerr.Wrap(ErrSchema, "option value outside domain")

	// ErrInvalidPlatform is returned when a platform descriptor is malformed.
	ErrInvalidPlatform = zerr.New("invalid platform descriptor")

	// ErrInvalidVersionPin is returned when a dependency version is not an exact pin.
	ErrInvalidVersionPin = zerr.New("invalid dependency version pin")

	// ErrDependencyNotFound is returned by the package registry when a pinned
	// dependency version is unavailable on the build machine.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrRegistryReadFailed is returned when the package registry cannot be read.
	ErrRegistryReadFailed = zerr.New("failed to read package registry")

	// ErrConfigNotFound is returned when no recipe.yaml exists at or above the search path.
	ErrConfigNotFound = zerr.New("recipe.yaml not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrProfileReadFailed is returned when a profile file cannot be read.
	ErrProfileReadFailed = zerr.New("failed to read profile")

	// ErrProfileParseFailed is returned when a profile file cannot be parsed.
	ErrProfileParseFailed = zerr.New("failed to parse profile")

	// ErrProfileNotFound is returned when a named profile is not declared in the config.
	ErrProfileNotFound = zerr.New("profile not found")

	// ErrInvalidAssignment is returned when a key=value flag is malformed.
	ErrInvalidAssignment = zerr.New("invalid assignment, expected key=value")

	// ErrUnknownSetting is returned when a setting override names an unknown setting.
	ErrUnknownSetting = zerr.New("unknown setting")

	// ErrNoProfiles is returned when a command needing profiles receives none.
	ErrNoProfiles = zerr.New("no profiles specified")

	// ErrResolutionFailed is returned when resolving a build plan fails.
	ErrResolutionFailed = zerr.New("build plan resolution failed")

	// ErrConfigureFailed is returned when the build invoker cannot configure a build tree.
	ErrConfigureFailed = zerr.New("failed to configure build")

	// ErrBuildFailed is returned when the native build fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrToolchainWriteFailed is returned when generated toolchain files cannot be written.
	ErrToolchainWriteFailed = zerr.New("failed to write toolchain files")

	// ErrStoreCreateFailed is returned when the plan store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create plan store directory")

	// ErrStoreReadFailed is returned when a build record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build record")

	// ErrStoreUnmarshalFailed is returned when a build record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build record")

	// ErrStoreMarshalFailed is returned when a build record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build record")

	// ErrStoreWriteFailed is returned when a build record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build record")

	// ErrUnknownFormat is returned when an unsupported report format is requested.
	ErrUnknownFormat = zerr.New("unknown output format")
)
