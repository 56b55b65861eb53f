package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/logger"
	"go.trai.ch/recipe/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ProfileNodeID is the unique identifier for the profile loader Graft node.
	ProfileNodeID graft.ID = "adapter.profile_loader"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.ProfileLoader]{
		ID:        ProfileNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProfileLoader, error) {
			return NewProfileLoader(), nil
		},
	})
}
