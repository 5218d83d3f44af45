package ports

import "go.trai.ch/syncnm/internal/core/domain"

// LockfileDetector identifies the package manager governing a project directory.
//
//go:generate mockgen -source=lockfile.go -destination=mocks/mock_lockfile.go -package=mocks
type LockfileDetector interface {
	// Detect scans baseDir for lockfiles of every supported package manager.
	// It fails with domain.ErrNoLockfile or domain.ErrMultipleLockfiles.
	Detect(baseDir string) (domain.Lockfile, error)
}
