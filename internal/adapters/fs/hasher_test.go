package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0o600))

	h := fs.NewHasher()
	ha, err := h.ComputeFileHash(a)
	require.NoError(t, err)
	hb, err := h.ComputeFileHash(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)

	_, err = h.ComputeFileHash(filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "failed to hash file")
}

func TestHasher_ComputeSetHash(t *testing.T) {
	dir := t.TempDir()
	lock := filepath.Join(dir, "package-lock.json")
	manifest := filepath.Join(dir, "package.json")
	missing := filepath.Join(dir, "pnpm-workspace.yaml")
	require.NoError(t, os.WriteFile(lock, []byte("{}"), 0o600))
	require.NoError(t, os.WriteFile(manifest, []byte(`{"name":"x"}`), 0o600))

	h := fs.NewHasher()

	first, err := h.ComputeSetHash([]string{lock, manifest, missing})
	require.NoError(t, err)
	assert.Len(t, first, 16)

	t.Run("order independent", func(t *testing.T) {
		got, err := h.ComputeSetHash([]string{missing, manifest, lock, lock})
		require.NoError(t, err)
		assert.Equal(t, first, got)
	})

	t.Run("content sensitive", func(t *testing.T) {
		require.NoError(t, os.WriteFile(manifest, []byte(`{"name":"y"}`), 0o600))
		got, err := h.ComputeSetHash([]string{lock, manifest, missing})
		require.NoError(t, err)
		assert.NotEqual(t, first, got)
	})

	t.Run("creation of a missing file changes the digest", func(t *testing.T) {
		before, err := h.ComputeSetHash([]string{lock, missing})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(missing, nil, 0o600))
		after, err := h.ComputeSetHash([]string{lock, missing})
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})
}
