package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/core/ports"
)

// NodeID is the unique identifier for the package registry Graft node.
const NodeID graft.ID = "adapter.package_registry"

func init() {
	graft.Register(graft.Node[ports.PackageRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageRegistry, error) {
			return New(), nil
		},
	})
}
