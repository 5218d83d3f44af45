package ports

import (
	"context"

	"go.trai.ch/syncnm/internal/core/domain"
)

// Journal persists the cache metadata of one cache directory.
//
//go:generate mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Load reads the metadata fresh from disk, creating an empty journal if absent.
	Load(ctx context.Context) (domain.Metadata, error)

	// Update re-reads the metadata, applies fn and writes the result,
	// holding an exclusive lock for the whole read-modify-write.
	// Nothing is written if fn returns an error.
	Update(ctx context.Context, fn func(domain.Metadata) error) error

	// Transaction runs fn under the exclusive lock with the metadata read
	// under that lock. Filesystem changes made by fn are serialized with every
	// other writer of the cache directory. commit writes the metadata while
	// the lock is still held; nothing is written unless fn calls it.
	Transaction(ctx context.Context, fn func(meta domain.Metadata, commit func() error) error) error
}
