// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
)

// EnvironmentFactory builds the environment of the native build process.
//
// Implementations are responsible for:
//   - Exposing resolved dependencies to the toolchain (PATH, PKG_CONFIG_PATH, CMAKE_PREFIX_PATH)
//   - Applying project-level overrides
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentFactory interface {
	// GetEnvironment returns "KEY=VALUE" strings suitable for process execution.
	// The calling process environment is never modified.
	GetEnvironment(ctx context.Context, deps []domain.ResolvedDependency, extra map[string]string) ([]string, error)
}
