package cas

import (
	"os"
	"path/filepath"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStoreFactory = (*Factory)(nil)

// JournalOpener returns the journal of a cache directory.
type JournalOpener interface {
	Open(cacheDir string) ports.Journal
}

// Factory opens stores bound to a concrete layout.
type Factory struct {
	fs         Filesystem
	journals   JournalOpener
	provenance ports.ProvenanceSource
	logger     ports.Logger
	home       string
}

// NewFactory creates a Factory. home is stripped from project paths when
// deriving their journal identity; it may be empty.
func NewFactory(
	filesystem Filesystem,
	journals JournalOpener,
	provenance ports.ProvenanceSource,
	logger ports.Logger,
	home string,
) *Factory {
	return &Factory{
		fs:         filesystem,
		journals:   journals,
		provenance: provenance,
		logger:     logger,
		home:       home,
	}
}

// Open makes the layout absolute, ensures the cache directory exists and
// returns a store for it.
func (f *Factory) Open(layout domain.CacheLayout) (ports.CacheStore, error) {
	abs, err := absLayout(layout)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs.CacheDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", abs.CacheDir)
	}

	dir := domain.NewDirKey(abs.BaseDir, f.home)
	return NewStore(abs, dir, f.journals.Open(abs.CacheDir), f.fs, f.provenance, f.logger), nil
}

func absLayout(layout domain.CacheLayout) (domain.CacheLayout, error) {
	var out domain.CacheLayout
	for _, p := range []struct {
		src string
		dst *string
	}{
		{layout.BaseDir, &out.BaseDir},
		{layout.TargetDir, &out.TargetDir},
		{layout.CacheDir, &out.CacheDir},
	} {
		abs, err := filepath.Abs(p.src)
		if err != nil {
			return domain.CacheLayout{}, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", p.src)
		}
		*p.dst = abs
	}
	return out, nil
}
