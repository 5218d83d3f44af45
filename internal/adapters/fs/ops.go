// Package fs provides the filesystem primitives the cache store is built on.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/zerr"
)

// EntryKind classifies what occupies a path without following symlinks.
type EntryKind uint8

const (
	// EntryMissing means nothing exists at the path.
	EntryMissing EntryKind = iota
	// EntrySymlink means the path is a symbolic link.
	EntrySymlink
	// EntryDir means the path is an ordinary directory.
	EntryDir
	// EntryOther means the path is a regular file or special file.
	EntryOther
)

// Ops implements rename, symlink and atomic write operations.
type Ops struct{}

// NewOps creates a new Ops.
func NewOps() *Ops {
	return &Ops{}
}

// Kind reports what is at path, using Lstat so symlinks are not followed.
func (o *Ops) Kind(path string) (EntryKind, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return EntryMissing, nil
		}
		return EntryMissing, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", path)
	}
	switch mode := info.Mode(); {
	case mode&os.ModeSymlink != 0:
		return EntrySymlink, nil
	case mode.IsDir():
		return EntryDir, nil
	default:
		return EntryOther, nil
	}
}

// Rename moves from onto to. The parent of to is created and any existing
// entry at to is removed first, so retrying a rename is safe.
func (o *Ops) Rename(from, to string) error {
	if err := o.prepareDestination(to); err != nil {
		return err
	}
	if err := os.Rename(from, to); err != nil {
		err = zerr.Wrap(err, domain.ErrRenameFailed.Error())
		err = zerr.With(err, "from", from)
		return zerr.With(err, "to", to)
	}
	return nil
}

// Symlink creates link pointing at target, replacing any existing entry at link.
func (o *Ops) Symlink(target, link string) error {
	if err := o.prepareDestination(link); err != nil {
		return err
	}
	if err := os.Symlink(target, link); err != nil {
		err = zerr.Wrap(err, domain.ErrSymlinkFailed.Error())
		err = zerr.With(err, "target", target)
		return zerr.With(err, "link", link)
	}
	return nil
}

// RemoveAll removes path and anything below it. Symlinks are removed, not followed.
func (o *Ops) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", path)
	}
	return nil
}

// ReadFile reads the entire file at path.
func (o *Ops) ReadFile(path string) ([]byte, error) {
	//nolint:gosec // Path is constructed by the caller from trusted directories
	return os.ReadFile(path)
}

// AtomicWrite writes data to a temp file next to path and renames it into place.
func (o *Ops) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create parent directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp file"), "path", dir)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write temp file"), "path", tmpPath)
	}
	if err := tmp.Sync(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to sync temp file"), "path", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close temp file"), "path", tmpPath)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set permissions"), "path", tmpPath)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rename temp file"), "path", path)
	}
	committed = true
	return nil
}

func (o *Ops) prepareDestination(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", filepath.Dir(path))
	}
	return o.RemoveAll(path)
}
