package buildenv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/core/ports"
)

// NodeID is the unique identifier for the environment factory Graft node.
const NodeID graft.ID = "adapter.environment_factory"

func init() {
	graft.Register(graft.Node[ports.EnvironmentFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentFactory, error) {
			return NewEnvFactory(), nil
		},
	})
}
