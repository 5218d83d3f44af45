// Package manifest reads package.json and pnpm-workspace.yaml documents.
package manifest

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ManifestReader = (*Reader)(nil)

// Reader implements ports.ManifestReader on the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadPackageJSON parses {dir}/package.json.
func (r *Reader) ReadPackageJSON(dir string) (*domain.PackageJSON, error) {
	path := domain.PackageJSONPath(dir)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var pkg domain.PackageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrParse.Error()), "path", path)
	}
	return &pkg, nil
}

// ReadPnpmWorkspace parses {dir}/pnpm-workspace.yaml, falling back to the .yml
// spelling. It returns domain.ErrNoEntry when neither exists.
func (r *Reader) ReadPnpmWorkspace(dir string) (*domain.PnpmWorkspace, error) {
	var (
		data []byte
		path string
		err  error
	)
	for _, name := range []string{domain.PnpmWorkspaceFileName, domain.PnpmWorkspaceAltFileName} {
		path = filepath.Join(dir, name)
		data, err = readFile(path)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	var ws domain.PnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrParse.Error()), "path", path)
	}
	return &ws, nil
}

func readFile(path string) ([]byte, error) {
	//nolint:gosec // Manifest paths are derived from the project directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, errors.Join(domain.ErrNoEntry, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path))
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", path)
	}
	return data, nil
}
