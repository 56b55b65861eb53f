package ports

import "go.trai.ch/recipe/internal/core/domain"

// PlanStore defines the interface for recording the plans that were built.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PlanStore interface {
	// Get retrieves the last build record for a profile.
	// Returns nil, nil if not found.
	Get(root, profile string) (*domain.BuildRecord, error)

	// Put stores the build record.
	Put(root string, record domain.BuildRecord) error
}
