package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/recipe/internal/adapters/buildenv"  //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/cmake"     //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/registry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.ProfileNodeID,
			resolver.NodeID,
			registry.NodeID,
			buildenv.NodeID,
			cmake.NodeID,
			store.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	profileLoader, err := graft.Dep[ports.ProfileLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[ports.PackageRegistry](ctx)
	if err != nil {
		return nil, err
	}

	envFactory, err := graft.Dep[ports.EnvironmentFactory](ctx)
	if err != nil {
		return nil, err
	}

	invoker, err := graft.Dep[ports.BuildInvoker](ctx)
	if err != nil {
		return nil, err
	}

	planStore, err := graft.Dep[ports.PlanStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, profileLoader, res, reg, envFactory, invoker, planStore, tracer, log), nil
}
