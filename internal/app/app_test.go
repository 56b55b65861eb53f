package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/recipe/internal/adapters/telemetry"
	"go.trai.ch/recipe/internal/app"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports/mocks"
	"go.trai.ch/recipe/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	app      *app.App
	config   *mocks.MockConfigLoader
	profiles *mocks.MockProfileLoader
	registry *mocks.MockPackageRegistry
	env      *mocks.MockEnvironmentFactory
	invoker  *mocks.MockBuildInvoker
	store    *mocks.MockPlanStore
	logger   *mocks.MockLogger
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		config:   mocks.NewMockConfigLoader(ctrl),
		profiles: mocks.NewMockProfileLoader(ctrl),
		registry: mocks.NewMockPackageRegistry(ctrl),
		env:      mocks.NewMockEnvironmentFactory(ctrl),
		invoker:  mocks.NewMockBuildInvoker(ctrl),
		store:    mocks.NewMockPlanStore(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	ta.app = app.New(
		ta.config,
		ta.profiles,
		resolver.New(),
		ta.registry,
		ta.env,
		ta.invoker,
		ta.store,
		telemetry.NewOTelTracer(noop.NewTracerProvider()),
		ta.logger,
	)
	return ta
}

func linuxPlatform() domain.Platform {
	return domain.Platform{
		OS:        domain.OSLinux,
		Arch:      "x86_64",
		Compiler:  domain.Compiler{Name: "gcc", Version: "13"},
		BuildType: domain.BuildTypeRelease,
	}
}

func testConfig(root string) *domain.RecipeConfig {
	return &domain.RecipeConfig{
		Root:     root,
		Source:   filepath.Join(root, "src"),
		BuildDir: filepath.Join(root, "build"),
		Registry: filepath.Join(root, "packages"),
		CMake:    domain.DefaultCMake,
		Options:  domain.OptionValues{},
		Profiles: map[string]string{"linux": filepath.Join(root, "linux.toml")},
		BuildEnv: map[string]string{"CC": "gcc-13"},
	}
}

// expectLinuxProfile wires recipe.yaml with a single "linux" profile.
func (ta *testApp) expectLinuxProfile(cfg *domain.RecipeConfig, options domain.OptionValues) {
	ta.config.EXPECT().Load("recipe.yaml").Return(cfg, nil)
	ta.profiles.EXPECT().Load(cfg.Profiles["linux"]).Return(domain.Profile{
		Name:     "linux-file",
		Platform: linuxPlatform(),
		Options:  options,
	}, nil)
}

func TestApp_Resolve_HostDefaultWithoutConfig(t *testing.T) {
	ta := newTestApp(t)
	root := t.TempDir()
	t.Chdir(root)

	notFound := zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to locate config"), "cwd", root)
	ta.config.EXPECT().Load(gomock.Any()).Return(nil, notFound)
	ta.config.EXPECT().Default(gomock.Any()).Return(&domain.RecipeConfig{Root: root, Options: domain.OptionValues{}})

	plans, err := ta.app.Resolve(context.Background(), app.Selection{})
	require.NoError(t, err)
	require.Len(t, plans, 1)

	assert.Equal(t, app.DefaultProfileName, plans[0].Profile)
	assert.Equal(t, app.HostPlatform().OS, plans[0].Plan.Platform.OS)
	assert.Equal(t, "fftw", plans[0].Plan.Dependencies[0].Name)
}

func TestApp_Resolve_ConfigError(t *testing.T) {
	ta := newTestApp(t)

	ta.config.EXPECT().Load("broken.yaml").Return(nil, domain.ErrConfigParseFailed)

	_, err := ta.app.Resolve(context.Background(), app.Selection{ConfigPath: "broken.yaml"})
	require.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestApp_Resolve_OptionPrecedence(t *testing.T) {
	ta := newTestApp(t)
	cfg := testConfig(t.TempDir())
	cfg.Options = domain.OptionValues{"shared": "true", "with_alsa": "false", "with_benchmarks": "false"}
	ta.expectLinuxProfile(cfg, domain.OptionValues{"shared": "false", "with_pulseaudio": "true"})

	plans, err := ta.app.Resolve(context.Background(), app.Selection{
		ConfigPath: "recipe.yaml",
		Profiles:   []string{"linux"},
		Options:    []string{"with_alsa=true"},
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)

	plan := plans[0].Plan
	assert.Equal(t, "linux", plans[0].Profile, "recipe.yaml names win over file names")
	assert.Equal(t, map[string]bool{
		"shared":          false,
		"fPIC":            true,
		"with_alsa":       true,
		"with_sendfile":   true,
		"with_pulseaudio": true,
		"with_benchmarks": false,
	}, plan.Options.Map())
	assert.Equal(t, []string{"fftw", "libalsa", "pulseaudio", "libsndfile"}, plan.DependencyNames())
}

func TestApp_Resolve_ProfileFile(t *testing.T) {
	ta := newTestApp(t)
	root := t.TempDir()
	cfg := testConfig(root)
	profilePath := filepath.Join(root, "windows.toml")
	require.NoError(t, os.WriteFile(profilePath, []byte("[settings]\n"), 0o600))

	ta.config.EXPECT().Load("recipe.yaml").Return(cfg, nil)
	ta.profiles.EXPECT().Load(profilePath).Return(domain.Profile{
		Name: "windows",
		Platform: domain.Platform{
			OS:        domain.OSWindows,
			Arch:      "x86_64",
			Compiler:  domain.Compiler{Name: "msvc", Version: "193"},
			BuildType: domain.BuildTypeRelease,
		},
	}, nil)

	plans, err := ta.app.Resolve(context.Background(), app.Selection{
		ConfigPath: "recipe.yaml",
		Profiles:   []string{profilePath},
	})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "windows", plans[0].Profile)
	assert.False(t, plans[0].Plan.Options.Has(domain.OptionFPIC))
}

func TestApp_Resolve_ProfileNotFound(t *testing.T) {
	ta := newTestApp(t)
	cfg := testConfig(t.TempDir())
	ta.config.EXPECT().Load("recipe.yaml").Return(cfg, nil)

	_, err := ta.app.Resolve(context.Background(), app.Selection{
		ConfigPath: "recipe.yaml",
		Profiles:   []string{"solaris"},
	})
	require.ErrorIs(t, err, domain.ErrProfileNotFound)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "solaris", zErr.Metadata()["profile"])
	assert.Equal(t, "linux", zErr.Metadata()["available"])
}

func TestApp_Resolve_DefaultProfileFromConfig(t *testing.T) {
	ta := newTestApp(t)
	cfg := testConfig(t.TempDir())
	cfg.Profiles[app.DefaultProfileName] = cfg.Profiles["linux"]
	ta.config.EXPECT().Load("recipe.yaml").Return(cfg, nil)
	ta.profiles.EXPECT().Load(cfg.Profiles["linux"]).Return(domain.Profile{Platform: linuxPlatform()}, nil)

	plans, err := ta.app.Resolve(context.Background(), app.Selection{ConfigPath: "recipe.yaml"})
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, app.DefaultProfileName, plans[0].Profile)
	assert.Equal(t, domain.OSLinux, plans[0].Plan.Platform.OS)
}

func TestApp_Resolve_Settings(t *testing.T) {
	ta := newTestApp(t)
	cfg := testConfig(t.TempDir())
	ta.expectLinuxProfile(cfg, nil)

	plans, err := ta.app.Resolve(context.Background(), app.Selection{
		ConfigPath: "recipe.yaml",
		Profiles:   []string{"linux"},
		Settings:   []string{"build_type=debug", "compiler.version=14", "compiler.libcxx=libstdc++11"},
	})
	require.NoError(t, err)

	platform := plans[0].Plan.Platform
	assert.Equal(t, domain.BuildTypeDebug, platform.BuildType)
	assert.Equal(t, "14", platform.Compiler.Version)
	assert.Empty(t, platform.Compiler.Libcxx, "the C++ library setting is pruned")
}

func TestApp_Resolve_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		sel     app.Selection
		wantErr error
	}{
		{
			name:    "malformed setting",
			sel:     app.Selection{Settings: []string{"os"}},
			wantErr: domain.ErrInvalidAssignment,
		},
		{
			name:    "malformed option",
			sel:     app.Selection{Options: []string{"=true"}},
			wantErr: domain.ErrInvalidAssignment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			_, err := ta.app.Resolve(context.Background(), tt.sel)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApp_Resolve_UnknownSetting(t *testing.T) {
	ta := newTestApp(t)
	cfg := testConfig(t.TempDir())
	ta.expectLinuxProfile(cfg, nil)

	_, err := ta.app.Resolve(context.Background(), app.Selection{
		ConfigPath: "recipe.yaml",
		Profiles:   []string{"linux"},
		Settings:   []string{"compiler.cppstd=17"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownSetting)
}

func TestApp_Resolve_SchemaError(t *testing.T) {
	ta := newTestApp(t)
	cfg := testConfig(t.TempDir())
	ta.expectLinuxProfile(cfg, nil)

	_, err := ta.app.Resolve(context.Background(), app.Selection{
		ConfigPath: "recipe.yaml",
		Profiles:   []string{"linux"},
		Options:    []string{"with_sndio=true"},
	})
	require.ErrorIs(t, err, domain.ErrUnknownOption)
	require.ErrorIs(t, err, domain.ErrSchema)
	require.ErrorIs(t, err, domain.ErrResolutionFailed)
}

func TestApp_Matrix(t *testing.T) {
	t.Run("requires profiles", func(t *testing.T) {
		ta := newTestApp(t)
		_, err := ta.app.Matrix(context.Background(), app.Selection{})
		require.ErrorIs(t, err, domain.ErrNoProfiles)
	})

	t.Run("keeps profile order", func(t *testing.T) {
		ta := newTestApp(t)
		cfg := testConfig(t.TempDir())
		cfg.Profiles["mac"] = filepath.Join(cfg.Root, "mac.toml")

		ta.config.EXPECT().Load("recipe.yaml").Return(cfg, nil)
		ta.profiles.EXPECT().Load(cfg.Profiles["mac"]).Return(domain.Profile{Platform: domain.Platform{
			OS:       domain.OSMacos,
			Arch:     "armv8",
			Compiler: domain.Compiler{Name: "apple-clang", Version: "15"},
		}}, nil)
		ta.profiles.EXPECT().Load(cfg.Profiles["linux"]).Return(domain.Profile{Platform: linuxPlatform()}, nil)

		plans, err := ta.app.Matrix(context.Background(), app.Selection{
			ConfigPath: "recipe.yaml",
			Profiles:   []string{"mac", "linux"},
		})
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.Equal(t, "mac", plans[0].Profile)
		assert.Equal(t, []string{"fftw"}, plans[0].Plan.DependencyNames())
		assert.Equal(t, "linux", plans[1].Profile)
		assert.Equal(t, []string{"fftw", "libalsa", "libsndfile"}, plans[1].Plan.DependencyNames())
	})
}

func TestApp_OptionsAndInfo(t *testing.T) {
	ta := newTestApp(t)

	defs := ta.app.Options()
	require.Len(t, defs, 6)
	assert.Equal(t, domain.OptionShared, defs[0].Name)

	assert.Equal(t, domain.MiniModem(), ta.app.Info())
}

func TestHostPlatform(t *testing.T) {
	p, err := app.HostPlatform().Validate()
	require.NoError(t, err)
	assert.Equal(t, domain.BuildTypeRelease, p.BuildType)
	assert.NotEmpty(t, p.Compiler.Name)
}

func TestApp_Clean(t *testing.T) {
	ta := newTestApp(t)
	root := t.TempDir()
	cfg := testConfig(root)

	storeDir := filepath.Join(root, domain.DefaultStorePath())
	buildDir := filepath.Join(cfg.BuildDir, "Release")
	require.NoError(t, os.MkdirAll(storeDir, domain.DirPerm))
	require.NoError(t, os.MkdirAll(buildDir, domain.DirPerm))

	ta.config.EXPECT().Load("recipe.yaml").Return(cfg, nil).Times(2)
	ta.logger.EXPECT().Info("removing plan store...").Times(2)
	ta.logger.EXPECT().Info("removed plan store").Times(2)
	ta.logger.EXPECT().Info("removing build folders...")
	ta.logger.EXPECT().Info("removed build folders")

	require.NoError(t, ta.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "recipe.yaml"}))
	assert.NoDirExists(t, storeDir)
	assert.DirExists(t, buildDir)

	require.NoError(t, ta.app.Clean(context.Background(), app.CleanOptions{ConfigPath: "recipe.yaml", Build: true}))
	assert.NoDirExists(t, cfg.BuildDir)
}

