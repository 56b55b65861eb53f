package cmake_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/cmake"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const fakeCMake = `#!/bin/sh
echo "$@" >> "$FAKE_CMAKE_LOG"
echo "-- fake cmake $1"
echo "CMake Warning: fake" >&2
exit "${FAKE_CMAKE_EXIT:-0}"
`

// writeFakeCMake installs a cmake stand-in that records its arguments.
func writeFakeCMake(t *testing.T) (bin, argLog string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake cmake is a shell script")
	}

	dir := t.TempDir()
	bin = filepath.Join(dir, "cmake")
	//nolint:gosec // test fixture must be executable
	require.NoError(t, os.WriteFile(bin, []byte(fakeCMake), 0o755))
	return bin, filepath.Join(dir, "args.log")
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	//nolint:gosec // test fixture
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestInvoker_ConfigureAndBuild(t *testing.T) {
	bin, argLog := writeFakeCMake(t)
	root := t.TempDir()
	src := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(src, domain.DirPerm))
	buildFolder := filepath.Join(root, "build", "Release")

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("-- fake cmake -S").Times(1)
	log.EXPECT().Info("-- fake cmake --build").Times(1)
	log.EXPECT().Warn("CMake Warning: fake").Times(2)

	inv := cmake.NewInvoker(log)
	handle, err := inv.Configure(context.Background(), linuxPlan(), domain.BuildLayout{
		Source:       src,
		BuildFolder:  buildFolder,
		CMake:        bin,
		Dependencies: linuxDeps(),
		Env:          []string{"FAKE_CMAKE_LOG=" + argLog},
	})
	require.NoError(t, err)

	toolchain := filepath.Join(buildFolder, domain.ToolchainFileName)
	assert.Equal(t, toolchain, handle.ToolchainFile)
	assert.Equal(t, domain.BuildTypeRelease, handle.BuildType)
	assert.FileExists(t, toolchain)
	assert.FileExists(t, filepath.Join(buildFolder, domain.DepsManifestName))

	//nolint:gosec // test fixture
	written, err := os.ReadFile(toolchain)
	require.NoError(t, err)
	assert.Equal(t, cmake.RenderToolchain(linuxPlan(), linuxDeps()), written)

	require.NoError(t, inv.Build(context.Background(), handle))

	assert.Equal(t, []string{
		"-S " + src + " -B " + buildFolder + " -DCMAKE_TOOLCHAIN_FILE=" + toolchain + " -DCMAKE_BUILD_TYPE=Release",
		"--build " + buildFolder + " --config Release",
	}, readLines(t, argLog))
}

func TestInvoker_ConfigureFailed(t *testing.T) {
	bin, argLog := writeFakeCMake(t)
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	_, err := cmake.NewInvoker(log).Configure(context.Background(), linuxPlan(), domain.BuildLayout{
		Source:      root,
		BuildFolder: filepath.Join(root, "build"),
		CMake:       bin,
		Env:         []string{"FAKE_CMAKE_LOG=" + argLog, "FAKE_CMAKE_EXIT=3"},
	})
	require.ErrorIs(t, err, domain.ErrConfigureFailed)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestInvoker_BuildFailed(t *testing.T) {
	bin, argLog := writeFakeCMake(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	err := cmake.NewInvoker(log).Build(context.Background(), domain.BuildHandle{
		CMake:       bin,
		BuildFolder: t.TempDir(),
		BuildType:   domain.BuildTypeDebug,
		Env:         []string{"FAKE_CMAKE_LOG=" + argLog, "FAKE_CMAKE_EXIT=2"},
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)
}

func TestInvoker_MissingExecutable(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	err := cmake.NewInvoker(log).Build(context.Background(), domain.BuildHandle{
		CMake:       "recipe-no-such-cmake",
		BuildFolder: t.TempDir(),
		BuildType:   domain.BuildTypeRelease,
		Env:         []string{"PATH=" + t.TempDir()},
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestInvoker_IgnoresParentPath(t *testing.T) {
	bin, argLog := writeFakeCMake(t)
	t.Setenv("PATH", filepath.Dir(bin))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	err := cmake.NewInvoker(log).Build(context.Background(), domain.BuildHandle{
		CMake:       "cmake",
		BuildFolder: t.TempDir(),
		BuildType:   domain.BuildTypeRelease,
		Env:         []string{"PATH=" + t.TempDir(), "FAKE_CMAKE_LOG=" + argLog},
	})
	require.ErrorIs(t, err, domain.ErrBuildFailed)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
	assert.Contains(t, zErr.Metadata()["reason"], exec.ErrNotFound.Error())
	assert.NoFileExists(t, argLog)
}

func TestInvoker_LooksUpCMakeOnBuildPath(t *testing.T) {
	bin, argLog := writeFakeCMake(t)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	err := cmake.NewInvoker(log).Build(context.Background(), domain.BuildHandle{
		CMake:       "cmake",
		BuildFolder: t.TempDir(),
		BuildType:   domain.BuildTypeRelease,
		Env:         []string{"PATH=" + filepath.Dir(bin), "FAKE_CMAKE_LOG=" + argLog},
	})
	require.NoError(t, err)
	assert.Len(t, readLines(t, argLog), 1)
}

func TestInvoker_PTY(t *testing.T) {
	bin, argLog := writeFakeCMake(t)
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	_ = ptmx.Close()
	_ = tty.Close()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	// A pty merges stderr into stdout.
	log.EXPECT().Info("-- fake cmake --build").Times(1)
	log.EXPECT().Info("CMake Warning: fake").Times(1)

	err = cmake.NewInvoker(log, cmake.WithPTY(true)).Build(context.Background(), domain.BuildHandle{
		CMake:       bin,
		BuildFolder: t.TempDir(),
		BuildType:   domain.BuildTypeRelease,
		Env:         []string{"FAKE_CMAKE_LOG=" + argLog},
	})
	require.NoError(t, err)
}
