package ports

import (
	"context"

	"go.trai.ch/syncnm/internal/core/domain"
)

// ProjectBuilder parses a project's root manifest and its workspace members.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectBuilder interface {
	// Build resolves the project rooted at baseDir as governed by kind.
	// The manifest's packageManager declaration may override kind.
	Build(ctx context.Context, baseDir string, kind domain.PackageManagerKind) (*domain.Project, error)
}
