package app

import (
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultProfileName names the profile used when none is selected.
const DefaultProfileName = "default"

// selectProfiles loads the named profiles. A name declared in recipe.yaml wins
// over a file of the same name. Without names, the "default" profile of
// recipe.yaml is used, or the host platform when there is none.
func (a *App) selectProfiles(cfg *domain.RecipeConfig, names []string) ([]domain.Profile, error) {
	if len(names) == 0 {
		if _, ok := cfg.Profiles[DefaultProfileName]; !ok {
			return []domain.Profile{{Name: DefaultProfileName, Platform: HostPlatform()}}, nil
		}
		names = []string{DefaultProfileName}
	}

	profiles := make([]domain.Profile, 0, len(names))
	for _, name := range names {
		profile, err := a.loadProfile(cfg, name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func (a *App) loadProfile(cfg *domain.RecipeConfig, name string) (domain.Profile, error) {
	if path, ok := cfg.Profiles[name]; ok {
		profile, err := a.profileLoader.Load(path)
		if err != nil {
			return domain.Profile{}, zerr.With(err, "profile", name)
		}
		profile.Name = name
		return profile, nil
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return a.profileLoader.Load(name)
	}

	err := zerr.With(zerr.Wrap(domain.ErrProfileNotFound, "failed to select profile"), "profile", name)
	if len(cfg.Profiles) > 0 {
		err = zerr.With(err, "available", strings.Join(slices.Sorted(maps.Keys(cfg.Profiles)), ", "))
	}
	return domain.Profile{}, err
}

// HostPlatform describes the machine recipe runs on, building in Release mode.
func HostPlatform() domain.Platform {
	p := domain.Platform{
		OS:        hostOS(runtime.GOOS),
		Arch:      hostArch(runtime.GOARCH),
		BuildType: domain.BuildTypeRelease,
	}

	switch p.OS {
	case domain.OSWindows:
		p.Compiler.Name = "msvc"
	case domain.OSMacos, domain.OSiOS:
		p.Compiler.Name = "apple-clang"
	case domain.OSFreeBSD, domain.OSAndroid:
		p.Compiler.Name = "clang"
	default:
		p.Compiler.Name = "gcc"
	}
	return p
}

func hostOS(goos string) domain.OS {
	switch goos {
	case "windows":
		return domain.OSWindows
	case "darwin":
		return domain.OSMacos
	case "freebsd":
		return domain.OSFreeBSD
	case "android":
		return domain.OSAndroid
	case "ios":
		return domain.OSiOS
	default:
		return domain.OSLinux
	}
}

func hostArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "armv8"
	case "arm":
		return "armv7"
	default:
		return goarch
	}
}

// parseAssignments parses key=value flags. Later assignments win.
func parseAssignments(values []string) (map[string]string, error) {
	out := make(map[string]string, len(values))
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidAssignment, "failed to parse flag"), "value", kv)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// applySettings overrides platform settings. Keys mirror the profile [settings] table.
func applySettings(p domain.Platform, settings map[string]string) (domain.Platform, error) {
	for _, key := range slices.Sorted(maps.Keys(settings)) {
		value := settings[key]
		switch key {
		case "os":
			p.OS = domain.OS(value)
		case "arch":
			p.Arch = value
		case "build_type":
			p.BuildType = domain.BuildType(value)
		case "compiler":
			p.Compiler.Name = value
		case "compiler.version":
			p.Compiler.Version = value
		case "compiler.libcxx":
			p.Compiler.Libcxx = value
		default:
			return domain.Platform{}, zerr.With(zerr.Wrap(domain.ErrUnknownSetting, "failed to apply settings"), "setting", key)
		}
	}
	return p, nil
}
