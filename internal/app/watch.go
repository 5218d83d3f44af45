package app

import (
	"context"
	"path/filepath"
	"slices"

	"go.trai.ch/syncnm/internal/adapters/watcher"
	"go.trai.ch/syncnm/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Watch performs a run and then re-runs whenever the digest of the project's
// manifests and lockfiles changes. It returns when ctx is cancelled.
// Failed re-runs are logged and watching continues.
func (a *App) Watch(ctx context.Context, opts Options) error {
	s, err := a.open(ctx, opts)
	if err != nil {
		return err
	}

	result, err := a.run(ctx, s)
	if err != nil {
		return err
	}

	w, err := a.watchers.New()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	files := watchedFiles(s.baseDir, result.Project)
	if err := w.Start(ctx, files); err != nil {
		return err
	}

	digest, err := a.hasher.ComputeSetHash(files)
	if err != nil {
		return err
	}

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(s.settings.WatchDebounce, func([]string) {
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	a.logger.Info("watching for dependency changes")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range w.Events() {
			a.logger.Debug("changed: " + event.Path)
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		defer func() { _ = w.Stop() }()

		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
			}

			next, err := a.hasher.ComputeSetHash(files)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			if next == digest {
				a.logger.Debug("watched files unchanged, skipping run")
				continue
			}

			result, err := a.run(gctx, s)
			if err != nil {
				a.logger.Error(err)
			}

			files = mergeFiles(files, watchedFiles(s.baseDir, result.Project))
			if err := w.Start(gctx, files); err != nil {
				a.logger.Warn("failed to watch new workspace members: " + err.Error())
			}

			// The installer rewrites lockfiles; settle on the post-run digest.
			if digest, err = a.hasher.ComputeSetHash(files); err != nil {
				a.logger.Error(err)
			}
		}
	})

	return g.Wait()
}

// watchedFiles lists the files whose changes can alter the cache key:
// the root manifest, every supported lockfile, the pnpm workspace file
// and each member manifest.
func watchedFiles(baseDir string, project *domain.Project) []string {
	files := []string{
		domain.PackageJSONPath(baseDir),
		filepath.Join(baseDir, domain.PnpmWorkspaceFileName),
		filepath.Join(baseDir, domain.PnpmWorkspaceAltFileName),
	}
	for _, kind := range domain.PackageManagerKinds {
		for _, name := range kind.LockfileNames() {
			files = append(files, filepath.Join(baseDir, name))
		}
	}
	if project != nil {
		for _, member := range project.Members {
			files = append(files, domain.PackageJSONPath(member.Dir))
		}
	}
	slices.Sort(files)
	return slices.Compact(files)
}

func mergeFiles(a, b []string) []string {
	merged := append(slices.Clone(a), b...)
	slices.Sort(merged)
	return slices.Compact(merged)
}
