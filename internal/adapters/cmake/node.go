package cmake

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/logger"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/ui/output"
)

// NodeID is the unique identifier for the build invoker Graft node.
const NodeID graft.ID = "adapter.build_invoker"

func init() {
	graft.Register(graft.Node[ports.BuildInvoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildInvoker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvoker(log, WithPTY(output.IsInteractive(os.Stderr))), nil
		},
	})
}
