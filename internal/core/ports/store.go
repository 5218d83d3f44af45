package ports

import (
	"context"

	"go.trai.ch/syncnm/internal/core/domain"
)

// CacheStore swaps a project's live dependency directory against cache slots.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Save links the live directory under key and records key as current.
	Save(ctx context.Context, key domain.Hash) error

	// Restore makes the snapshot under key live.
	// It fails with domain.ErrNotDir when no slot exists for key.
	Restore(ctx context.Context, key domain.Hash) error

	// RevokeCurrent parks the live directory under the recorded current key.
	RevokeCurrent(ctx context.Context) error

	// DirKey returns the identity of the project in the journal.
	DirKey() domain.DirKey

	// Current returns the recorded current key of the project.
	Current(ctx context.Context) (domain.Hash, bool, error)

	// Entry returns the journal record of the project.
	Entry(ctx context.Context) (domain.MetadataEntry, bool, error)

	// Prune removes every parked snapshot of the project except the current one.
	Prune(ctx context.Context) ([]domain.Hash, error)

	// Forget removes the project's live slot and journal record, leaving the live directory in place.
	Forget(ctx context.Context) error
}

// CacheStoreFactory opens a CacheStore for a given layout.
type CacheStoreFactory interface {
	// Open prepares the cache directory and returns a store bound to layout.
	Open(layout domain.CacheLayout) (CacheStore, error)
}
