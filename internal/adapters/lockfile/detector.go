// Package lockfile detects which package manager owns a project directory.
package lockfile

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileDetector = (*Detector)(nil)

// Detector implements ports.LockfileDetector by probing well-known lockfile names.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the single lockfile of baseDir.
//
// Bun projects commonly keep a yarn.lock next to bun.lockb, so that exact pair
// resolves to Bun. Any other combination is ambiguous.
func (d *Detector) Detect(baseDir string) (domain.Lockfile, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return domain.Lockfile{}, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", baseDir)
	}

	found := make(map[domain.PackageManagerKind]string)
	var paths []string
	for _, kind := range domain.PackageManagerKinds {
		for _, name := range kind.LockfileNames() {
			path := filepath.Join(abs, name)
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			if _, ok := found[kind]; !ok {
				found[kind] = path
			}
			paths = append(paths, path)
		}
	}

	switch {
	case len(found) == 0:
		return domain.Lockfile{}, zerr.With(domain.ErrNoLockfile, "base_dir", abs)
	case len(found) == 1:
		for kind, path := range found {
			return domain.Lockfile{Kind: kind, Path: path}, nil
		}
	case len(found) == 2:
		bun, hasBun := found[domain.Bun]
		_, hasYarn := found[domain.Yarn]
		if hasBun && hasYarn {
			return domain.Lockfile{Kind: domain.Bun, Path: bun}, nil
		}
	}

	slices.Sort(paths)
	return domain.Lockfile{}, zerr.With(domain.ErrMultipleLockfiles, "paths", paths)
}
