package ports

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
)

// PackageRegistry locates pinned dependencies on the build machine.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PackageRegistry interface {
	// Resolve finds the headers and libraries of dep under the registry root.
	// It fails with domain.ErrDependencyNotFound when the pinned version is unavailable.
	Resolve(ctx context.Context, root string, dep domain.DependencySpec) (domain.ResolvedDependency, error)
}
