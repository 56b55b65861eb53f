package config

import (
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Recipefile represents the structure of the recipe.yaml configuration file.
type Recipefile struct {
	Version  string                 `yaml:"version"`
	Source   string                 `yaml:"source"`
	BuildDir string                 `yaml:"build_dir"`
	Registry string                 `yaml:"registry"`
	CMake    string                 `yaml:"cmake"`
	Options  map[string]OptionValue `yaml:"options"`
	Profiles map[string]string      `yaml:"profiles"`
	BuildEnv map[string]string      `yaml:"build_env"`
}

// OptionValue keeps the literal text of an option value so that `true`, `"True"`
// and `yes` all reach the option schema unchanged.
type OptionValue string

// UnmarshalYAML accepts any scalar node.
func (v *OptionValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "option value must be a scalar"), "line", node.Line)
	}
	*v = OptionValue(node.Value)
	return nil
}

// Profilefile represents the structure of a TOML profile.
type Profilefile struct {
	Settings SettingsDTO    `toml:"settings"`
	Options  map[string]any `toml:"options"`
}

// SettingsDTO is the [settings] table of a profile.
type SettingsDTO struct {
	OS        string      `toml:"os"`
	Arch      string      `toml:"arch"`
	BuildType string      `toml:"build_type"`
	Compiler  CompilerDTO `toml:"compiler"`
}

// CompilerDTO is the [settings.compiler] table of a profile.
type CompilerDTO struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Libcxx  string `toml:"libcxx"`
}
