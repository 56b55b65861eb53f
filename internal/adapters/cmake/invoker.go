// Package cmake drives CMake for a resolved build plan.
package cmake

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invoker implements ports.BuildInvoker by running the cmake executable.
type Invoker struct {
	logger ports.Logger
	usePTY bool
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithPTY runs cmake attached to a pseudo terminal so it keeps its colored output.
func WithPTY(enabled bool) Option {
	return func(i *Invoker) {
		i.usePTY = enabled
	}
}

// NewInvoker creates a new Invoker streaming cmake output to logger.
func NewInvoker(logger ports.Logger, opts ...Option) *Invoker {
	i := &Invoker{logger: logger}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Configure writes the toolchain file and dependency manifest into layout.BuildFolder,
// then configures the build tree.
func (i *Invoker) Configure(
	ctx context.Context,
	plan *domain.BuildPlan,
	layout domain.BuildLayout,
) (domain.BuildHandle, error) {
	if err := os.MkdirAll(layout.BuildFolder, domain.DirPerm); err != nil {
		return domain.BuildHandle{}, domain.Fail(domain.ErrToolchainWriteFailed, err)
	}

	toolchain := filepath.Join(layout.BuildFolder, domain.ToolchainFileName)
	if err := os.WriteFile(toolchain, RenderToolchain(plan, layout.Dependencies), domain.FilePerm); err != nil {
		return domain.BuildHandle{}, domain.Fail(domain.ErrToolchainWriteFailed, err)
	}

	manifest, err := RenderManifest(plan, layout.Dependencies)
	if err != nil {
		return domain.BuildHandle{}, domain.Fail(domain.ErrToolchainWriteFailed, err)
	}
	manifestPath := filepath.Join(layout.BuildFolder, domain.DepsManifestName)
	if err := os.WriteFile(manifestPath, manifest, domain.FilePerm); err != nil {
		return domain.BuildHandle{}, domain.Fail(domain.ErrToolchainWriteFailed, err)
	}

	handle := domain.BuildHandle{
		CMake:         executableName(layout.CMake),
		BuildFolder:   layout.BuildFolder,
		ToolchainFile: toolchain,
		BuildType:     plan.Platform.BuildType,
		Env:           layout.Env,
	}

	args := []string{
		"-S", layout.Source,
		"-B", layout.BuildFolder,
		"-DCMAKE_TOOLCHAIN_FILE=" + toolchain,
		"-DCMAKE_BUILD_TYPE=" + string(handle.BuildType),
	}
	if err := i.run(ctx, layout.Source, handle.Env, handle.CMake, args...); err != nil {
		return domain.BuildHandle{}, commandError(domain.ErrConfigureFailed, err)
	}

	return handle, nil
}

// Build compiles a configured build tree.
func (i *Invoker) Build(ctx context.Context, handle domain.BuildHandle) error {
	args := []string{"--build", handle.BuildFolder, "--config", string(handle.BuildType)}
	if err := i.run(ctx, handle.BuildFolder, handle.Env, executableName(handle.CMake), args...); err != nil {
		return commandError(domain.ErrBuildFailed, err)
	}
	return nil
}

func executableName(name string) string {
	if name == "" {
		return domain.DefaultCMake
	}
	return name
}

func commandError(sentinel, err error) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.With(zerr.Wrap(sentinel, "cmake invocation failed"), "exit_code", exitCode)
	return zerr.With(wrapped, "reason", err.Error())
}
