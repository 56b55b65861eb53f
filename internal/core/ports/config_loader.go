package ports

import "go.trai.ch/recipe/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads recipe.yaml. path is either the file itself or a directory to
	// search upwards from. Returns domain.ErrConfigNotFound when no file exists.
	Load(path string) (*domain.RecipeConfig, error)

	// Default returns the configuration of a project rooted at root that has no recipe.yaml.
	Default(root string) *domain.RecipeConfig
}

// ProfileLoader defines the interface for loading platform profiles.
type ProfileLoader interface {
	// Load reads a profile file and returns the platform and option requests it declares.
	Load(path string) (domain.Profile, error)
}
