package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// OS identifies the target operating system of a build.
type OS string

const (
	// OSLinux is the Linux operating system.
	OSLinux OS = "Linux"
	// OSWindows is the Windows operating system.
	OSWindows OS = "Windows"
	// OSMacos is the macOS operating system.
	OSMacos OS = "Macos"
	// OSFreeBSD is the FreeBSD operating system.
	OSFreeBSD OS = "FreeBSD"
	// OSAndroid is the Android operating system.
	OSAndroid OS = "Android"
	// OSiOS is the iOS operating system.
	OSiOS OS = "iOS"
)

// BuildType identifies the CMake build configuration.
type BuildType string

const (
	// BuildTypeRelease is an optimized build without debug info.
	BuildTypeRelease BuildType = "Release"
	// BuildTypeDebug is an unoptimized build with debug info.
	BuildTypeDebug BuildType = "Debug"
	// BuildTypeRelWithDebInfo is an optimized build with debug info.
	BuildTypeRelWithDebInfo BuildType = "RelWithDebInfo"
	// BuildTypeMinSizeRel is a size-optimized build.
	BuildTypeMinSizeRel BuildType = "MinSizeRel"
)

var knownOS = []OS{OSLinux, OSWindows, OSMacos, OSFreeBSD, OSAndroid, OSiOS}

var knownBuildTypes = []BuildType{
	BuildTypeRelease, BuildTypeDebug, BuildTypeRelWithDebInfo, BuildTypeMinSizeRel,
}

// ParseOS converts a case-insensitive operating system name to its canonical form.
func ParseOS(s string) (OS, error) {
	for _, known := range knownOS {
		if strings.EqualFold(string(known), s) {
			return known, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidPlatform, "unknown operating system"), "os", s)
}

// ParseBuildType converts a case-insensitive build type to its canonical form.
// An empty string yields BuildTypeRelease.
func ParseBuildType(s string) (BuildType, error) {
	if s == "" {
		return BuildTypeRelease, nil
	}
	for _, bt := range knownBuildTypes {
		if strings.EqualFold(string(bt), s) {
			return bt, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidPlatform, "unknown build type"), "build_type", s)
}

// Compiler identifies the toolchain compiler.
type Compiler struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Libcxx  string `json:"libcxx,omitempty" yaml:"libcxx,omitempty"`
}

// String renders the compiler as name-version.
func (c Compiler) String() string {
	if c.Version == "" {
		return c.Name
	}
	return c.Name + "-" + c.Version
}

// Platform is the immutable description of the build target supplied at the start
// of a resolution.
type Platform struct {
	OS        OS        `json:"os" yaml:"os"`
	Compiler  Compiler  `json:"compiler" yaml:"compiler"`
	Arch      string    `json:"arch" yaml:"arch"`
	BuildType BuildType `json:"build_type" yaml:"build_type"`
}

// Validate checks that the platform is well formed and returns it in canonical form.
func (p Platform) Validate() (Platform, error) {
	osName, err := ParseOS(string(p.OS))
	if err != nil {
		return Platform{}, err
	}
	bt, err := ParseBuildType(string(p.BuildType))
	if err != nil {
		return Platform{}, err
	}
	if strings.TrimSpace(p.Arch) == "" {
		return Platform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "missing architecture"), "os", string(osName))
	}
	if strings.TrimSpace(p.Compiler.Name) == "" {
		return Platform{}, zerr.With(zerr.Wrap(ErrInvalidPlatform, "missing compiler"), "os", string(osName))
	}

	p.OS = osName
	p.BuildType = bt
	return p, nil
}

// WithoutLibcxx returns a copy of the platform with the C++ standard library setting removed.
func (p Platform) WithoutLibcxx() Platform {
	p.Compiler.Libcxx = ""
	return p
}

// String renders the platform as os-arch-compiler-buildtype.
func (p Platform) String() string {
	return strings.Join([]string{string(p.OS), p.Arch, p.Compiler.String(), string(p.BuildType)}, "-")
}
