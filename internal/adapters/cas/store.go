// Package cas implements the content-addressed store that swaps a project's
// live dependency directory against cache slots.
package cas

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/syncnm/internal/adapters/fs"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// Filesystem is the set of filesystem primitives the store is built on.
type Filesystem interface {
	Kind(path string) (fs.EntryKind, error)
	Rename(from, to string) error
	Symlink(target, link string) error
	RemoveAll(path string) error
}

// Store implements ports.CacheStore for one project.
//
// A slot {cacheDir}/{key} is a symlink to the target directory while that key
// is live and an ordinary directory while it is parked.
type Store struct {
	layout     domain.CacheLayout
	dir        domain.DirKey
	journal    ports.Journal
	fs         Filesystem
	provenance ports.ProvenanceSource
	logger     ports.Logger
}

// NewStore creates a store for the project identified by dir.
func NewStore(
	layout domain.CacheLayout,
	dir domain.DirKey,
	journal ports.Journal,
	filesystem Filesystem,
	provenance ports.ProvenanceSource,
	logger ports.Logger,
) *Store {
	return &Store{
		layout:     layout,
		dir:        dir,
		journal:    journal,
		fs:         filesystem,
		provenance: provenance,
		logger:     logger,
	}
}

// DirKey returns the journal identity of the project.
func (s *Store) DirKey() domain.DirKey {
	return s.dir
}

// Save links the target directory under key and records key as current.
func (s *Store) Save(ctx context.Context, key domain.Hash) error {
	prov := s.provenance.Lookup(ctx, s.layout.BaseDir)
	return s.journal.Update(ctx, func(m domain.Metadata) error {
		s.link(key)
		m.Record(s.dir, key, prov)
		return nil
	})
}

// RevokeCurrent parks the target directory under the recorded current key.
func (s *Store) RevokeCurrent(ctx context.Context) error {
	return s.journal.Transaction(ctx, func(m domain.Metadata, _ func() error) error {
		current, ok := m.Current(s.dir)
		if !ok {
			return nil
		}
		return s.park(current)
	})
}

// Restore makes the snapshot under key live.
// The swap and the journal write happen under one lock. A failed journal
// write moves the directories back, so slots keep matching their keys.
func (s *Store) Restore(ctx context.Context, key domain.Hash) error {
	return s.journal.Transaction(ctx, func(m domain.Metadata, commit func() error) error {
		slot := s.slot(key)
		kind, err := s.fs.Kind(slot)
		if err != nil {
			return err
		}

		if kind == fs.EntrySymlink {
			return nil
		}
		if kind != fs.EntryDir {
			return zerr.With(domain.ErrNotDir, "path", slot)
		}

		current, hasCurrent := m.Current(s.dir)
		if hasCurrent && current == key {
			return nil
		}

		parked := false
		if hasCurrent {
			if err := s.park(current); err != nil {
				s.logger.Warn(fmt.Sprintf("failed to save the current cache %s: %v", current, err))
			} else {
				parked = true
			}
		}

		if err := s.fs.Rename(slot, s.layout.TargetDir); err != nil {
			if parked {
				s.unpark(current)
			}
			return err
		}
		s.link(key)

		m.SetCurrent(s.dir, key, s.provenance.Lookup(ctx, s.layout.BaseDir))
		if err := commit(); err != nil {
			s.rollback(key, current, parked)
			return err
		}
		return nil
	})
}

// Current returns the recorded live key of the project.
func (s *Store) Current(ctx context.Context) (domain.Hash, bool, error) {
	entry, ok, err := s.Entry(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	current, ok := entry.Current()
	return current, ok, nil
}

// Entry returns the journal record of the project.
func (s *Store) Entry(ctx context.Context) (domain.MetadataEntry, bool, error) {
	meta, err := s.journal.Load(ctx)
	if err != nil {
		return domain.MetadataEntry{}, false, err
	}
	entry, ok := meta[s.dir]
	return entry, ok, nil
}

// Prune removes every parked snapshot of the project except the current one.
// It returns the removed keys in sorted order.
func (s *Store) Prune(ctx context.Context) ([]domain.Hash, error) {
	var removed []domain.Hash
	err := s.journal.Update(ctx, func(m domain.Metadata) error {
		entry, ok := m[s.dir]
		if !ok {
			return nil
		}
		current, hasCurrent := entry.Current()
		for _, key := range sortedKeys(entry.Caches) {
			if hasCurrent && key == current {
				continue
			}
			if err := s.fs.RemoveAll(s.slot(key)); err != nil {
				return err
			}
			removed = append(removed, key)
		}
		m.Drop(s.dir, removed...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// Forget removes the project's slots and journal record.
// The target directory is left in place.
func (s *Store) Forget(ctx context.Context) error {
	return s.journal.Update(ctx, func(m domain.Metadata) error {
		entry, ok := m[s.dir]
		if !ok {
			return nil
		}
		for _, key := range sortedKeys(entry.Caches) {
			if err := s.fs.RemoveAll(s.slot(key)); err != nil {
				return err
			}
		}
		m.Forget(s.dir)
		return nil
	})
}

// park moves the target directory onto the slot of key.
// Without a target directory there is nothing to preserve. A live link for
// key is still removed so it cannot later resolve to another key's content.
func (s *Store) park(key domain.Hash) error {
	kind, err := s.fs.Kind(s.layout.TargetDir)
	if err != nil {
		return err
	}
	if kind != fs.EntryDir {
		if err := s.unlinkStale(key); err != nil {
			return err
		}
		return zerr.With(domain.ErrNotDir, "path", s.layout.TargetDir)
	}
	return s.fs.Rename(s.layout.TargetDir, s.slot(key))
}

// unlinkStale removes the slot of key when it is a symlink.
// Parked snapshots are left alone.
func (s *Store) unlinkStale(key domain.Hash) error {
	slot := s.slot(key)
	kind, err := s.fs.Kind(slot)
	if err != nil || kind != fs.EntrySymlink {
		return err
	}
	return s.fs.RemoveAll(slot)
}

// unpark moves the parked snapshot of key back into the target directory
// and relinks its slot.
func (s *Store) unpark(key domain.Hash) {
	if err := s.fs.Rename(s.slot(key), s.layout.TargetDir); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to bring back cache %s: %v", key, err))
		return
	}
	s.link(key)
}

// rollback undoes a swap whose journal write failed: restored goes back to
// its slot and previous, if it was parked, becomes live again.
func (s *Store) rollback(restored, previous domain.Hash, parked bool) {
	if err := s.fs.Rename(s.layout.TargetDir, s.slot(restored)); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to return cache %s to its slot: %v", restored, err))
		return
	}
	if parked {
		s.unpark(previous)
	}
}

// link points the slot of key at the target directory.
func (s *Store) link(key domain.Hash) {
	slot := s.slot(key)
	if err := s.fs.Symlink(s.layout.TargetDir, slot); err != nil {
		s.logger.Debug(fmt.Sprintf("could not link cache slot %s: %v", slot, err))
	}
}

func (s *Store) slot(key domain.Hash) string {
	return filepath.Join(s.layout.CacheDir, key.String())
}

func sortedKeys(caches map[domain.Hash]domain.Provenance) []domain.Hash {
	keys := make([]domain.Hash, 0, len(caches))
	for k := range caches {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
