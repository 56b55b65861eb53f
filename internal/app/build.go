package app

import (
	"context"
	"fmt"
	"os"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Force rebuilds even when the stored plan matches.
	Force bool
}

// BuildOutcome reports what happened to one profile.
type BuildOutcome struct {
	Profile     string
	BuildFolder string
	Skipped     bool
}

// Build resolves the selected profiles, locates their dependencies, then
// configures and compiles each one. Profiles are built one after another and
// the first failure stops the run.
func (a *App) Build(ctx context.Context, sel Selection, opts BuildOptions) ([]BuildOutcome, error) {
	cfg, plans, err := a.resolve(ctx, sel)
	if err != nil {
		return nil, err
	}

	outcomes := make([]BuildOutcome, 0, len(plans))
	for _, rp := range plans {
		outcome, err := a.buildOne(ctx, cfg, rp, opts)
		if err != nil {
			return outcomes, zerr.With(err, "profile", rp.Profile)
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (a *App) buildOne(
	ctx context.Context,
	cfg *domain.RecipeConfig,
	rp ResolvedPlan,
	opts BuildOptions,
) (outcome BuildOutcome, err error) {
	ctx, span := a.tracer.Start(ctx, "build "+rp.Profile)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	plan := rp.Plan
	fingerprint := plan.Fingerprint()
	folder := domain.BuildFolder(cfg.BuildDir, rp.Profile, plan.Platform.BuildType)
	outcome = BuildOutcome{Profile: rp.Profile, BuildFolder: folder}

	span.SetAttribute("platform", plan.Platform.String())
	span.SetAttribute("fingerprint", fingerprint)
	span.SetAttribute("dependencies", plan.DependencyNames())

	record, err := a.store.Get(cfg.Root, rp.Profile)
	if err != nil {
		return outcome, err
	}
	if !opts.Force && upToDate(record, fingerprint, folder) {
		a.logger.Warn(fmt.Sprintf("%s: plan unchanged, skipping build", rp.Profile))
		outcome.Skipped = true
		return outcome, nil
	}

	a.logger.Info(fmt.Sprintf("building %s for %s", rp.Profile, plan.Platform))

	deps, err := a.locateDependencies(ctx, cfg.Registry, plan)
	if err != nil {
		return outcome, err
	}

	env, err := a.envFactory.GetEnvironment(ctx, deps, cfg.BuildEnv)
	if err != nil {
		return outcome, zerr.Wrap(err, "failed to prepare build environment")
	}

	handle, err := a.phase(ctx, "configure", func(ctx context.Context) (domain.BuildHandle, error) {
		return a.invoker.Configure(ctx, plan, domain.BuildLayout{
			Source:       cfg.Source,
			BuildFolder:  folder,
			CMake:        cfg.CMake,
			Dependencies: deps,
			Env:          env,
		})
	})
	if err != nil {
		return outcome, err
	}

	if _, err := a.phase(ctx, "compile", func(ctx context.Context) (domain.BuildHandle, error) {
		return handle, a.invoker.Build(ctx, handle)
	}); err != nil {
		return outcome, err
	}

	if err := a.store.Put(cfg.Root, domain.BuildRecord{
		Profile:     rp.Profile,
		Platform:    plan.Platform.String(),
		Fingerprint: fingerprint,
		BuildFolder: folder,
		Timestamp:   a.now(),
	}); err != nil {
		return outcome, err
	}

	a.logger.Info(fmt.Sprintf("built %s in %s", rp.Profile, folder))
	return outcome, nil
}

// locateDependencies resolves every plan dependency in the registry.
// The first missing dependency aborts the build.
func (a *App) locateDependencies(
	ctx context.Context,
	registry string,
	plan *domain.BuildPlan,
) (deps []domain.ResolvedDependency, err error) {
	ctx, span := a.tracer.Start(ctx, "registry")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	deps = make([]domain.ResolvedDependency, 0, len(plan.Dependencies))
	for _, dep := range plan.Dependencies {
		resolved, err := a.registry.Resolve(ctx, registry, dep)
		if err != nil {
			return nil, err
		}
		deps = append(deps, resolved)
	}
	return deps, nil
}

func (a *App) phase(
	ctx context.Context,
	name string,
	fn func(context.Context) (domain.BuildHandle, error),
) (domain.BuildHandle, error) {
	ctx, span := a.tracer.Start(ctx, name)
	defer span.End()

	handle, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
	}
	return handle, err
}

func upToDate(record *domain.BuildRecord, fingerprint, folder string) bool {
	if record == nil || record.Fingerprint != fingerprint || record.BuildFolder != folder {
		return false
	}
	info, err := os.Stat(record.BuildFolder)
	return err == nil && info.IsDir()
}
