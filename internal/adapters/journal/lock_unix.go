//go:build unix

package journal

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// acquire takes an advisory flock on path and returns the release function.
func acquire(path string, exclusive bool) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", filepath.Dir(path))
	}

	//nolint:gosec // Lock path is derived from the cache directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataLockFailed.Error()), "path", path)
	}

	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}
	for {
		err = unix.Flock(int(f.Fd()), how)
		if !errors.Is(err, unix.EINTR) {
			break
		}
	}
	if err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataLockFailed.Error()), "path", path)
	}

	return func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		_ = f.Close()
	}, nil
}
