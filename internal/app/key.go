package app

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/zerr"
)

// derivation is the outcome of detecting and fingerprinting a project.
type derivation struct {
	lockfile *domain.Lockfile
	project  *domain.Project
	key      domain.Hash
}

// derive detects the lockfile, builds the project and computes its cache key.
// The returned derivation holds whatever was found before an error.
func (a *App) derive(ctx context.Context, s *session) (derivation, error) {
	var d derivation

	lock, err := a.lockfiles.Detect(s.baseDir)
	if err != nil {
		return d, err
	}
	d.lockfile = &lock

	project, err := a.projects.Build(ctx, s.baseDir, lock.Kind)
	if err != nil {
		return d, err
	}
	d.project = project

	key, err := deriveKey(project, lock, s.store.DirKey())
	if err != nil {
		return d, err
	}
	d.key = key

	return d, nil
}

// deriveKey combines the lockfile bytes, the project fingerprint and the
// project identity into the composite cache key.
func deriveKey(project *domain.Project, lock domain.Lockfile, dir domain.DirKey) (domain.Hash, error) {
	data, err := os.ReadFile(lock.Path)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(err, "failed to read lockfile"), "path", lock.Path)
		if errors.Is(err, iofs.ErrNotExist) {
			return "", errors.Join(domain.ErrNoEntry, wrapped)
		}
		return "", wrapped
	}

	fingerprint, err := project.Fingerprint().Hash()
	if err != nil {
		return "", zerr.Wrap(err, "failed to hash project fingerprint")
	}

	return domain.NewCacheKey(domain.HashBytes(data), fingerprint, dir), nil
}

// installKind picks the package manager for a fresh install.
// A detected lockfile sets the base kind, the manifest's packageManager
// declaration overrides it, and npm is the fallback.
func (a *App) installKind(s *session, lock *domain.Lockfile) domain.PackageManagerKind {
	kind := domain.Npm
	if lock != nil {
		kind = lock.Kind
	}
	manifest, err := a.manifests.ReadPackageJSON(s.baseDir)
	if err != nil || manifest.PackageManager == nil {
		return kind
	}
	return domain.ResolveKind(*manifest.PackageManager, kind)
}
