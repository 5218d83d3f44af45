package ports

import "go.trai.ch/syncnm/internal/core/domain"

// ManifestReader reads package manifests from disk.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestReader interface {
	// ReadPackageJSON reads dir/package.json.
	// Absence is domain.ErrNoEntry, malformed content is domain.ErrParse.
	ReadPackageJSON(dir string) (*domain.PackageJSON, error)

	// ReadPnpmWorkspace reads dir/pnpm-workspace.yaml, falling back to the .yml extension.
	// Absence of both is domain.ErrNoEntry.
	ReadPnpmWorkspace(dir string) (*domain.PnpmWorkspace, error)
}
