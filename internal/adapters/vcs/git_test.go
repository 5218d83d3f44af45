package vcs_test

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/adapters/vcs"
	"go.trai.ch/syncnm/internal/core/domain"
)

func TestGit_LookupWithoutGit(t *testing.T) {
	g := vcs.NewGitWithLookPath(func(string) (string, error) {
		return "", errors.New("not found")
	})
	assert.Equal(t, domain.Provenance{}, g.Lookup(context.Background(), t.TempDir()))
}

func TestGit_LookupOutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	assert.Equal(t, domain.Provenance{}, vcs.NewGit().Lookup(context.Background(), dir))
}

func TestGit_LookupRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	git := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(cmd.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}
	git("init", "-q", "-b", "trunk")
	git("commit", "-q", "--allow-empty", "-m", "init")

	prov := vcs.NewGit().Lookup(context.Background(), dir)
	assert.Equal(t, "trunk", prov.Branch)
	assert.Len(t, prov.Commit, 40)
}
