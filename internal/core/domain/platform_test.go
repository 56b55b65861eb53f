package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/core/domain"
)

func TestParseOS(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.OS
		wantErr bool
	}{
		{in: "Linux", want: domain.OSLinux},
		{in: "linux", want: domain.OSLinux},
		{in: "WINDOWS", want: domain.OSWindows},
		{in: "macos", want: domain.OSMacos},
		{in: "ios", want: domain.OSiOS},
		{in: "", wantErr: true},
		{in: "Solaris", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseOS(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidPlatform)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBuildType(t *testing.T) {
	bt, err := domain.ParseBuildType("")
	require.NoError(t, err)
	assert.Equal(t, domain.BuildTypeRelease, bt)

	bt, err = domain.ParseBuildType("relwithdebinfo")
	require.NoError(t, err)
	assert.Equal(t, domain.BuildTypeRelWithDebInfo, bt)

	_, err = domain.ParseBuildType("Profile")
	require.ErrorIs(t, err, domain.ErrInvalidPlatform)
}

func TestPlatform_String(t *testing.T) {
	p := domain.Platform{
		OS:        domain.OSLinux,
		Arch:      "x86_64",
		Compiler:  domain.Compiler{Name: "gcc", Version: "13"},
		BuildType: domain.BuildTypeDebug,
	}
	assert.Equal(t, "Linux-x86_64-gcc-13-Debug", p.String())

	p.Compiler.Version = ""
	assert.Equal(t, "Linux-x86_64-gcc-Debug", p.String())
}

func TestLayoutPaths(t *testing.T) {
	assert.Equal(t, filepath.Join(".recipe", "store"), domain.DefaultStorePath())
	assert.Equal(t, filepath.Join("build", "linux", "Release"), domain.BuildFolder("build", "linux", domain.BuildTypeRelease))
	assert.NotEqual(t,
		domain.BuildFolder("build", "linux", domain.BuildTypeRelease),
		domain.BuildFolder("build", "linux-shared", domain.BuildTypeRelease))
}
