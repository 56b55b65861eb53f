// Package app implements the application layer for recipe.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/recipe/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	profileLoader ports.ProfileLoader
	resolver      *resolver.Resolver
	registry      ports.PackageRegistry
	envFactory    ports.EnvironmentFactory
	invoker       ports.BuildInvoker
	store         ports.PlanStore
	tracer        ports.Tracer
	logger        ports.Logger
	now           func() time.Time
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	profileLoader ports.ProfileLoader,
	res *resolver.Resolver,
	registry ports.PackageRegistry,
	envFactory ports.EnvironmentFactory,
	invoker ports.BuildInvoker,
	store ports.PlanStore,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  configLoader,
		profileLoader: profileLoader,
		resolver:      res,
		registry:      registry,
		envFactory:    envFactory,
		invoker:       invoker,
		store:         store,
		tracer:        tracer,
		logger:        log,
		now:           time.Now,
	}
}

// WithClock replaces the clock used to timestamp build records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Selection picks the configuration, the profiles and the overrides a command works on.
type Selection struct {
	// ConfigPath is recipe.yaml or a directory to search upwards from.
	// Empty means the working directory, falling back to defaults when no file exists.
	ConfigPath string
	// Profiles are profile names declared in recipe.yaml or profile file paths.
	Profiles []string
	// Settings are key=value platform overrides applied to every profile.
	Settings []string
	// Options are key=value option requests applied on top of recipe.yaml and the profile.
	Options []string
}

// ResolvedPlan is a build plan together with the profile it was resolved for.
type ResolvedPlan struct {
	Profile string
	Plan    *domain.BuildPlan
}

// Resolve resolves the build plan of every selected profile.
// Without profiles the default profile is used.
func (a *App) Resolve(ctx context.Context, sel Selection) ([]ResolvedPlan, error) {
	_, plans, err := a.resolve(ctx, sel)
	return plans, err
}

// Matrix resolves the build plans of several profiles in parallel.
func (a *App) Matrix(ctx context.Context, sel Selection) ([]ResolvedPlan, error) {
	if len(sel.Profiles) == 0 {
		return nil, domain.ErrNoProfiles
	}
	return a.Resolve(ctx, sel)
}

// Options returns the option schema.
func (a *App) Options() []domain.OptionDef {
	return a.resolver.Schema().Definitions()
}

// Info returns the recipe metadata.
func (a *App) Info() domain.Recipe {
	return domain.MiniModem()
}

func (a *App) resolve(ctx context.Context, sel Selection) (*domain.RecipeConfig, []ResolvedPlan, error) {
	settings, err := parseAssignments(sel.Settings)
	if err != nil {
		return nil, nil, err
	}
	optionFlags, err := parseAssignments(sel.Options)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := a.loadConfig(sel.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	profiles, err := a.selectProfiles(cfg, sel.Profiles)
	if err != nil {
		return nil, nil, err
	}

	requests := make([]resolver.Request, len(profiles))
	for i, profile := range profiles {
		platform, err := applySettings(profile.Platform, settings)
		if err != nil {
			return nil, nil, zerr.With(err, "profile", profile.Name)
		}
		requests[i] = resolver.Request{
			Label:    profile.Name,
			Platform: platform,
			Options:  cfg.Options.Merge(profile.Options).Merge(domain.OptionValues(optionFlags)),
		}
	}

	plans, err := a.resolver.ResolveAll(ctx, requests)
	if err != nil {
		return nil, nil, domain.Fail(domain.ErrResolutionFailed, err)
	}

	out := make([]ResolvedPlan, len(plans))
	for i, plan := range plans {
		out[i] = ResolvedPlan{Profile: requests[i].Label, Plan: plan}
	}
	return cfg, out, nil
}

func (a *App) loadConfig(path string) (*domain.RecipeConfig, error) {
	if path != "" {
		cfg, err := a.configLoader.Load(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to load configuration")
		}
		return cfg, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get current working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if errors.Is(err, domain.ErrConfigNotFound) {
		return a.configLoader.Default(cwd), nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// Build also removes the build folders.
	Build bool
}

// Clean removes the plan store and, optionally, the build folders.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.loadConfig(options.ConfigPath)
	if err != nil {
		return err
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(filepath.Join(cfg.Root, domain.DefaultStorePath()), "plan store")

	if options.Build {
		remove(cfg.BuildDir, "build folders")
	}

	return errs
}
