// Package project resolves a project's root manifest and workspace members.
package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectBuilder = (*Builder)(nil)

// Builder implements ports.ProjectBuilder.
type Builder struct {
	manifests ports.ManifestReader
	globber   ports.Globber
	logger    ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(manifests ports.ManifestReader, globber ports.Globber, logger ports.Logger) *Builder {
	return &Builder{
		manifests: manifests,
		globber:   globber,
		logger:    logger,
	}
}

// Build reads the root manifest of baseDir and resolves its workspace members.
// A "packageManager" declaration in the root manifest overrides kind.
// Members that cannot be read or fail validation are logged and skipped.
func (b *Builder) Build(ctx context.Context, baseDir string, kind domain.PackageManagerKind) (*domain.Project, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", baseDir)
	}

	root, err := b.manifests.ReadPackageJSON(abs)
	if err != nil {
		return nil, err
	}
	if root.PackageManager != nil {
		kind = domain.ResolveKind(*root.PackageManager, kind)
	}

	patterns, err := b.patterns(abs, kind, root)
	if err != nil {
		return nil, err
	}

	candidates, err := b.globber.Collect(abs, patterns, kind.SupportsNegation())
	if err != nil {
		return nil, err
	}

	members, err := b.members(ctx, kind, candidates)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		BaseDir:  abs,
		Kind:     kind,
		Manifest: *root,
		Root:     domain.NewManifestDependencies(root),
		Members:  members,
	}, nil
}

func (b *Builder) patterns(baseDir string, kind domain.PackageManagerKind, root *domain.PackageJSON) ([]string, error) {
	switch kind {
	case domain.Yarn:
		if len(root.Workspaces) > 0 && !root.IsPrivate() {
			return nil, zerr.With(domain.ErrInvalidPackageJSONPrivateForYarn, "path", domain.PackageJSONPath(baseDir))
		}
		return root.Workspaces, nil
	case domain.Npm, domain.Bun:
		return root.Workspaces, nil
	case domain.Pnpm:
		ws, err := b.manifests.ReadPnpmWorkspace(baseDir)
		if err != nil {
			if !errors.Is(err, domain.ErrNoEntry) {
				b.logger.Warn(fmt.Sprintf("ignoring pnpm workspace of %s: %v", baseDir, err))
			}
			return nil, nil
		}
		return ws.Packages, nil
	default:
		return nil, zerr.With(domain.ErrInvalidWorkspace, "kind", kind.String())
	}
}

func (b *Builder) members(
	ctx context.Context,
	kind domain.PackageManagerKind,
	candidates []string,
) (map[string]domain.WorkspaceMember, error) {
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	members := make(map[string]domain.WorkspaceMember, len(sorted))
	for _, dir := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !isMemberDir(dir) {
			continue
		}

		manifest, err := b.manifests.ReadPackageJSON(dir)
		if err != nil {
			b.logger.Warn(fmt.Sprintf("skipping workspace %s: %v", dir, err))
			continue
		}
		if err := validateMember(kind, manifest); err != nil {
			b.logger.Warn(fmt.Sprintf("skipping workspace %s: %v", dir, err))
			continue
		}

		key := manifest.NameOrEmpty()
		if key == "" {
			key = filepath.Base(dir)
		}
		if _, taken := members[key]; taken {
			key = dir
		}
		members[key] = domain.WorkspaceMember{
			Dir:          dir,
			Manifest:     *manifest,
			Dependencies: domain.NewManifestDependencies(manifest),
		}
	}
	return members, nil
}

// isMemberDir rejects anything that is not a directory and anything inside node_modules.
func isMemberDir(dir string) bool {
	if slices.Contains(strings.Split(filepath.ToSlash(dir), "/"), domain.NodeModulesDirName) {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

func validateMember(kind domain.PackageManagerKind, manifest *domain.PackageJSON) error {
	switch kind {
	case domain.Yarn:
		if manifest.Name == nil || manifest.Version == nil {
			return domain.ErrInvalidPackageJSONFieldsForYarn
		}
	case domain.Bun:
		if manifest.Name == nil {
			return domain.ErrInvalidPackageJSONFieldsForBun
		}
	case domain.Npm, domain.Pnpm:
	}
	return nil
}
