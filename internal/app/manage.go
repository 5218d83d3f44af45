package app

import (
	"context"
	"fmt"
	"sort"

	"go.trai.ch/syncnm/internal/core/domain"
)

// Install records an explicitly chosen cache directory in the project's
// syncnm.yaml and performs a run.
func (a *App) Install(ctx context.Context, opts Options) (RunResult, error) {
	s, err := a.open(ctx, opts)
	if err != nil {
		return RunResult{}, err
	}

	if opts.CacheDir != "" {
		if err := a.config.Save(s.baseDir, domain.Settings{CacheDir: s.settings.CacheDir}); err != nil {
			return RunResult{}, err
		}
		a.logger.Info(fmt.Sprintf("recorded cache directory %s", s.settings.CacheDir))
	}

	return a.run(ctx, s)
}

// Uninstall drops the project's cache slots and journal record and removes syncnm.yaml.
// The live dependency directory is left in place.
func (a *App) Uninstall(ctx context.Context, opts Options) error {
	s, err := a.open(ctx, opts)
	if err != nil {
		return err
	}

	if err := s.store.Forget(ctx); err != nil {
		return err
	}
	if err := a.config.Remove(s.baseDir); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removed cache entries of %s", s.store.DirKey()))
	return nil
}

// Prune removes every parked snapshot of the project except the current one
// and returns the removed keys.
func (a *App) Prune(ctx context.Context, opts Options) ([]domain.Hash, error) {
	s, err := a.open(ctx, opts)
	if err != nil {
		return nil, err
	}

	removed, err := s.store.Prune(ctx)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("pruned %d snapshot(s)", len(removed)))
	return removed, nil
}

// StatusEntry is one snapshot in a project's history.
type StatusEntry struct {
	Key        domain.Hash
	Provenance domain.Provenance
	Current    bool
}

// Status describes the cache state of a project.
type Status struct {
	DirKey   domain.DirKey
	CacheDir string
	Current  domain.Hash
	// Entries are sorted by key.
	Entries []StatusEntry
}

// Status reports the project's identity, current key and history.
func (a *App) Status(ctx context.Context, opts Options) (Status, error) {
	s, err := a.open(ctx, opts)
	if err != nil {
		return Status{}, err
	}

	status := Status{DirKey: s.store.DirKey(), CacheDir: s.settings.CacheDir}

	entry, ok, err := s.store.Entry(ctx)
	if err != nil || !ok {
		return status, err
	}

	if current, ok := entry.Current(); ok {
		status.Current = current
	}

	for key, prov := range entry.Caches {
		status.Entries = append(status.Entries, StatusEntry{
			Key:        key,
			Provenance: prov,
			Current:    key == status.Current,
		})
	}
	sort.Slice(status.Entries, func(i, j int) bool {
		return status.Entries[i].Key < status.Entries[j].Key
	})

	return status, nil
}
