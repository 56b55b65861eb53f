package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// ProfileLoader implements ports.ProfileLoader for TOML profiles.
type ProfileLoader struct{}

// NewProfileLoader creates a new ProfileLoader.
func NewProfileLoader() *ProfileLoader {
	return &ProfileLoader{}
}

// Load reads a profile. The profile name is the file name without its extension.
// Unknown keys are rejected so that typos in settings do not silently fall back to defaults.
func (p *ProfileLoader) Load(path string) (domain.Profile, error) {
	// #nosec G304 -- path comes from the user's command line or recipe.yaml
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, zerr.With(domain.Fail(domain.ErrProfileReadFailed, err), "path", path)
	}

	var file Profilefile
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return domain.Profile{}, zerr.With(domain.Fail(domain.ErrProfileParseFailed, err), "path", path)
	}

	return domain.Profile{
		Name: ProfileName(path),
		Platform: domain.Platform{
			OS:        domain.OS(file.Settings.OS),
			Arch:      file.Settings.Arch,
			BuildType: domain.BuildType(file.Settings.BuildType),
			Compiler: domain.Compiler{
				Name:    file.Settings.Compiler.Name,
				Version: file.Settings.Compiler.Version,
				Libcxx:  file.Settings.Compiler.Libcxx,
			},
		},
		Options: optionValues(file.Options),
	}, nil
}

// ProfileName derives a profile name from its file path.
func ProfileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// optionValues converts TOML values to the literal form understood by the option schema.
func optionValues(raw map[string]any) domain.OptionValues {
	out := make(domain.OptionValues, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case bool:
			out[name] = strconv.FormatBool(v)
		case string:
			out[name] = v
		default:
			out[name] = fmt.Sprint(v)
		}
	}
	return out
}
