// Package vcs reports best-effort version control provenance of a directory.
package vcs

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
)

var _ ports.ProvenanceSource = (*Git)(nil)

// Git reads branch and commit from the git repository containing a directory.
type Git struct {
	lookPath func(string) (string, error)
}

// NewGit creates a Git provenance source.
func NewGit() *Git {
	return &Git{lookPath: exec.LookPath}
}

// Lookup returns the checked out branch and commit of dir.
// Missing git, a directory outside any repository, or a repository without
// commits all yield empty fields.
func (g *Git) Lookup(ctx context.Context, dir string) domain.Provenance {
	gitPath, err := g.lookPath("git")
	if err != nil {
		return domain.Provenance{}
	}

	var prov domain.Provenance
	if commit, err := gitOutput(ctx, dir, gitPath, "rev-parse", "HEAD"); err == nil {
		prov.Commit = commit
	}
	if branch, err := gitOutput(ctx, dir, gitPath, "rev-parse", "--abbrev-ref", "HEAD"); err == nil && branch != "HEAD" {
		prov.Branch = branch
	}
	return prov
}

func gitOutput(ctx context.Context, dir, gitPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
