// Package store persists build records, one JSON file per profile.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.PlanStore using a file-per-profile strategy.
type Store struct{}

// New creates a new Store.
func New() *Store {
	return &Store{}
}

// Get retrieves the last build record for a profile.
func (s *Store) Get(root, profile string) (*domain.BuildRecord, error) {
	filename := recordPath(root, profile)
	//nolint:gosec // Path is constructed from the project root and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.Fail(domain.ErrStoreReadFailed, err)
	}

	var record domain.BuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(domain.Fail(domain.ErrStoreUnmarshalFailed, err), "profile", profile)
	}

	return &record, nil
}

// Put stores the build record, replacing any previous record of the same profile.
func (s *Store) Put(root string, record domain.BuildRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return domain.Fail(domain.ErrStoreMarshalFailed, err)
	}

	filename := recordPath(root, record.Profile)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return domain.Fail(domain.ErrStoreCreateFailed, err)
	}

	// Write to a sibling file and rename so readers never see a partial record.
	tmp, err := os.CreateTemp(dir, ".record-*")
	if err != nil {
		return domain.Fail(domain.ErrStoreWriteFailed, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return domain.Fail(domain.ErrStoreWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		return domain.Fail(domain.ErrStoreWriteFailed, err)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return domain.Fail(domain.ErrStoreWriteFailed, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return domain.Fail(domain.ErrStoreWriteFailed, err)
	}

	return nil
}

func recordPath(root, profile string) string {
	hash := sha256.Sum256([]byte(profile))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(hash[:])+".json")
}
