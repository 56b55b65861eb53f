package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/recipe/internal/adapters/store"
	"go.trai.ch/recipe/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.New()

	record := domain.BuildRecord{
		Profile:     "linux-gcc",
		Platform:    "Linux-x86_64-gcc-13-Release",
		Fingerprint: "abc123",
		BuildFolder: filepath.Join(root, "build", "Release"),
		Timestamp:   time.Now().UTC().Truncate(time.Second),
	}

	t.Run("put and get", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, s.Put(root, record))

		got, err := s.Get(root, "linux-gcc")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, record, *got)
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		got, err := s.Get(root, "missing-profile")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestStore_PutReplaces(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.New()

	require.NoError(t, s.Put(root, domain.BuildRecord{Profile: "default", Fingerprint: "old"}))
	require.NoError(t, s.Put(root, domain.BuildRecord{Profile: "default", Fingerprint: "new"}))

	got, err := s.Get(root, "default")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Fingerprint)

	entries, err := os.ReadDir(filepath.Join(root, domain.DefaultStorePath()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_GetCorrupt(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	s := store.New()
	require.NoError(t, s.Put(root, domain.BuildRecord{Profile: "default"}))

	storeDir := filepath.Join(root, domain.DefaultStorePath())
	entries, err := os.ReadDir(storeDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	//nolint:gosec // test fixture
	err = os.WriteFile(filepath.Join(storeDir, entries[0].Name()), []byte("{ invalid json"), 0o600)
	require.NoError(t, err)

	_, err = s.Get(root, "default")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}

func TestStore_PutCreateFailed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	// A file where the store directory should be blocks MkdirAll.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.RecipeDirName), nil, 0o600))

	err := store.New().Put(root, domain.BuildRecord{Profile: "default"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreCreateFailed)
}
