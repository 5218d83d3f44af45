// Package journal persists cache metadata as a JSON file guarded by an advisory lock.
package journal

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Journal = (*FileJournal)(nil)

// emptyJournal is written when the journal does not exist yet.
var emptyJournal = []byte("{}")

// Writer is the subset of filesystem operations the journal needs.
type Writer interface {
	ReadFile(path string) ([]byte, error)
	AtomicWrite(path string, data []byte, perm os.FileMode) error
}

// FileJournal stores metadata in {cacheDir}/metadata.json.
type FileJournal struct {
	path     string
	lockPath string
	fs       Writer
}

// New creates a journal rooted at cacheDir.
func New(cacheDir string, fs Writer) *FileJournal {
	return &FileJournal{
		path:     domain.MetadataPath(cacheDir),
		lockPath: domain.MetadataLockPath(cacheDir),
		fs:       fs,
	}
}

// Path returns the location of the metadata file.
func (j *FileJournal) Path() string {
	return j.path
}

// Load reads the metadata under a shared lock.
func (j *FileJournal) Load(ctx context.Context) (domain.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock, err := acquire(j.lockPath, false)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return j.read()
}

// Update performs a locked read-modify-write of the metadata.
func (j *FileJournal) Update(ctx context.Context, fn func(domain.Metadata) error) error {
	return j.Transaction(ctx, func(meta domain.Metadata, commit func() error) error {
		if err := fn(meta); err != nil {
			return err
		}
		return commit()
	})
}

// Transaction holds the exclusive lock for the duration of fn.
func (j *FileJournal) Transaction(ctx context.Context, fn func(domain.Metadata, func() error) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	unlock, err := acquire(j.lockPath, true)
	if err != nil {
		return err
	}
	defer unlock()

	meta, err := j.read()
	if err != nil {
		return err
	}
	return fn(meta, func() error { return j.write(meta) })
}

func (j *FileJournal) write(meta domain.Metadata) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", j.path)
	}
	if err := j.fs.AtomicWrite(j.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", j.path)
	}
	return nil
}

func (j *FileJournal) read() (domain.Metadata, error) {
	data, err := j.fs.ReadFile(j.path)
	if err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", j.path)
		}
		if err := j.fs.AtomicWrite(j.path, emptyJournal, domain.FilePerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrMetadataWriteFailed.Error()), "path", j.path)
		}
		data = emptyJournal
	}

	var meta domain.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrParse.Error()), "path", j.path)
	}
	if meta == nil {
		meta = domain.Metadata{}
	}
	return meta, nil
}
