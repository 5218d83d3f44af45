package ports

import (
	"context"

	"go.trai.ch/syncnm/internal/core/domain"
)

// Installer runs a package manager's install command.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install runs the install subcommand of kind with baseDir as working directory.
	// A non-zero exit is domain.ErrInstallFailed carrying exit_code and output.
	Install(ctx context.Context, kind domain.PackageManagerKind, baseDir string) error
}
