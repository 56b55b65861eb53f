package ports

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
)

// BuildInvoker drives the native build system for a resolved plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type BuildInvoker interface {
	// Configure generates the toolchain files for plan inside layout.BuildFolder
	// and configures the build tree.
	Configure(ctx context.Context, plan *domain.BuildPlan, layout domain.BuildLayout) (domain.BuildHandle, error)

	// Build compiles a configured build tree.
	Build(ctx context.Context, handle domain.BuildHandle) error
}
