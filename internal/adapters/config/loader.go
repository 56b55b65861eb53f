// Package config loads recipe.yaml and the TOML platform profiles.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only recipe.yaml schema version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads recipe.yaml. When path is a directory the file is searched for
// in path and its parents.
func (l *Loader) Load(path string) (*domain.RecipeConfig, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var file Recipefile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	switch file.Version {
	case SupportedVersion:
	case "":
		l.Logger.Warn(fmt.Sprintf("%s declares no version, assuming %q", configPath, SupportedVersion))
	default:
		err := zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigVersion, "failed to load config"), "version", file.Version)
		return nil, zerr.With(err, "path", configPath)
	}

	return buildConfig(configPath, &file), nil
}

func findConfiguration(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(domain.Fail(domain.ErrConfigReadFailed, err), "path", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir, err := filepath.Abs(path)
	if err != nil {
		return "", domain.Fail(domain.ErrConfigReadFailed, err)
	}

	for {
		candidate := filepath.Join(currentDir, domain.RecipeFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to locate config"), "cwd", path)
}

// DefaultConfig returns the configuration used when a project has no recipe.yaml.
func DefaultConfig(root string) *domain.RecipeConfig {
	return buildConfig(filepath.Join(root, domain.RecipeFileName), &Recipefile{})
}

// Default implements ports.ConfigLoader.
func (l *Loader) Default(root string) *domain.RecipeConfig {
	return DefaultConfig(root)
}

func buildConfig(configPath string, file *Recipefile) *domain.RecipeConfig {
	root := filepath.Clean(filepath.Dir(configPath))

	cfg := &domain.RecipeConfig{
		Root:     root,
		Source:   resolvePath(root, file.Source, "."),
		BuildDir: resolvePath(root, file.BuildDir, domain.DefaultBuildDir),
		Registry: resolvePath(root, file.Registry, domain.DefaultRegistryDir),
		CMake:    file.CMake,
		Options:  make(domain.OptionValues, len(file.Options)),
		Profiles: make(map[string]string, len(file.Profiles)),
		BuildEnv: make(map[string]string, len(file.BuildEnv)),
	}
	if cfg.CMake == "" {
		cfg.CMake = domain.DefaultCMake
	} else if filepath.Base(cfg.CMake) != cfg.CMake {
		// Bare names are looked up on PATH; anything with a separator is project-relative.
		cfg.CMake = resolvePath(root, cfg.CMake, "")
	}

	for name, value := range file.Options {
		cfg.Options[name] = string(value)
	}
	for name, path := range file.Profiles {
		cfg.Profiles[name] = resolvePath(root, path, "")
	}
	for key, value := range file.BuildEnv {
		cfg.BuildEnv[key] = value
	}

	return cfg
}

func resolvePath(root, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(root, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	data, err := os.ReadFile(configPath)
	if err != nil {
		return domain.Fail(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return domain.Fail(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
