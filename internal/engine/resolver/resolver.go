// Package resolver turns a platform descriptor and an option request into a build plan.
package resolver

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver runs the option pipeline: schema, pruning, normalization, then
// dependency selection and variable emission. It holds no per-resolution state
// and is safe for concurrent use.
type Resolver struct {
	schema domain.Schema
}

// New creates a Resolver over the default option schema.
func New() *Resolver {
	return &Resolver{schema: domain.DefaultSchema()}
}

// Schema returns the option schema the resolver validates against.
func (r *Resolver) Schema() domain.Schema {
	return r.schema
}

// Resolve produces the build plan for platform and the requested options.
// Requested options may name options that are later pruned for the platform;
// they are validated against the schema and then dropped.
// On error no plan is returned.
func (r *Resolver) Resolve(platform domain.Platform, requested domain.OptionValues) (*domain.BuildPlan, error) {
	platform, err := platform.Validate()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve build plan")
	}
	platform = PruneSettings(platform)

	opts, err := r.schema.Apply(requested)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve build plan"), "platform", platform.String())
	}

	opts = PruneOptions(platform, opts)
	opts = Normalize(opts)

	deps := SelectDependencies(platform, opts)
	vars := EmitVariables(platform, opts)

	return domain.NewBuildPlan(platform, opts, deps, vars), nil
}

// Request is one independent resolution.
type Request struct {
	// Label identifies the request in errors, e.g. a profile name.
	Label    string
	Platform domain.Platform
	Options  domain.OptionValues
}

// ResolveAll resolves independent requests in parallel. Plans are returned in
// request order. The first failure cancels the remaining work and is returned.
func (r *Resolver) ResolveAll(ctx context.Context, requests []Request) ([]*domain.BuildPlan, error) {
	plans := make([]*domain.BuildPlan, len(requests))

	g, ctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plan, err := r.Resolve(req.Platform, req.Options)
			if err != nil {
				return zerr.With(err, "request", req.Label)
			}
			plans[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}
