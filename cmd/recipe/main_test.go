package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/recipe/internal/adapters/telemetry"
	"go.trai.ch/recipe/internal/app"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports/mocks"
	"go.trai.ch/recipe/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app    *app.App
	config *mocks.MockConfigLoader
	logger *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		config: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(
		f.config,
		mocks.NewMockProfileLoader(ctrl),
		resolver.New(),
		mocks.NewMockPackageRegistry(ctrl),
		mocks.NewMockEnvironmentFactory(ctrl),
		mocks.NewMockBuildInvoker(ctrl),
		mocks.NewMockPlanStore(ctrl),
		telemetry.NewOTelTracer(noop.NewTracerProvider()),
		f.logger,
	)
	return f
}

func (f *fixture) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, stderr, f.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "recipe version")
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 and reports the error when the provider fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs the error when a command fails.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)

	f.config.EXPECT().Load("broken.yaml").Return(nil, domain.ErrConfigParseFailed)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
	})

	exitCode := run(context.Background(), []string{"resolve", "-c", "broken.yaml"},
		new(bytes.Buffer), new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_ResolveOptions verifies that run renders the options schema to stdout.
func TestRun_ResolveOptions(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t)

	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"options", "--format", "json"},
		stdout, new(bytes.Buffer), f.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), `"name": "shared"`)
	assert.Contains(t, stdout.String(), `"name": "with_pulseaudio"`)
}

// TestRun_AppOptions verifies that options are applied to the application before execution.
func TestRun_AppOptions(t *testing.T) {
	f := newFixture(t)

	applied := false
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), f.provider,
		func(a *app.App) {
			applied = a == f.app
		})
	assert.Equal(t, 0, exitCode)
	assert.True(t, applied)
}
