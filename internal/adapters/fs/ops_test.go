package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syncnm/internal/adapters/fs"
)

func TestOps_Kind(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "dir")
	file := filepath.Join(root, "file")
	link := filepath.Join(root, "link")
	require.NoError(t, os.Mkdir(dir, 0o750))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	require.NoError(t, os.Symlink(dir, link))

	ops := fs.NewOps()
	tests := []struct {
		name string
		path string
		want fs.EntryKind
	}{
		{"missing", filepath.Join(root, "nope"), fs.EntryMissing},
		{"directory", dir, fs.EntryDir},
		{"file", file, fs.EntryOther},
		{"symlink to directory", link, fs.EntrySymlink},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ops.Kind(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOps_Rename(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "src")
		require.NoError(t, os.Mkdir(src, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(src, "a"), []byte("a"), 0o600))

		dst := filepath.Join(root, "deep", "nested", "dst")
		require.NoError(t, fs.NewOps().Rename(src, dst))

		assert.NoDirExists(t, src)
		assert.FileExists(t, filepath.Join(dst, "a"))
	})

	t.Run("replaces existing symlink", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "src")
		other := filepath.Join(root, "other")
		require.NoError(t, os.Mkdir(src, 0o750))
		require.NoError(t, os.Mkdir(other, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(other, "keep"), []byte("k"), 0o600))

		dst := filepath.Join(root, "dst")
		require.NoError(t, os.Symlink(other, dst))

		ops := fs.NewOps()
		require.NoError(t, ops.Rename(src, dst))

		kind, err := ops.Kind(dst)
		require.NoError(t, err)
		assert.Equal(t, fs.EntryDir, kind)
		assert.FileExists(t, filepath.Join(other, "keep"), "symlink target must survive")
	})

	t.Run("replaces existing directory", func(t *testing.T) {
		root := t.TempDir()
		src := filepath.Join(root, "src")
		dst := filepath.Join(root, "dst")
		require.NoError(t, os.Mkdir(src, 0o750))
		require.NoError(t, os.Mkdir(dst, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(dst, "stale"), []byte("s"), 0o600))

		require.NoError(t, fs.NewOps().Rename(src, dst))
		assert.NoFileExists(t, filepath.Join(dst, "stale"))
	})

	t.Run("missing source", func(t *testing.T) {
		root := t.TempDir()
		err := fs.NewOps().Rename(filepath.Join(root, "nope"), filepath.Join(root, "dst"))
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to move directory")
	})
}

func TestOps_Symlink(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	require.NoError(t, os.Mkdir(target, 0o750))

	link := filepath.Join(root, "cache", "slot")
	ops := fs.NewOps()
	require.NoError(t, ops.Symlink(target, link))

	got, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	// A second call replaces the existing link.
	require.NoError(t, ops.Symlink(target, link))
	kind, err := ops.Kind(link)
	require.NoError(t, err)
	assert.Equal(t, fs.EntrySymlink, kind)
}

func TestOps_AtomicWrite(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "sub", "metadata.json")

	ops := fs.NewOps()
	require.NoError(t, ops.AtomicWrite(path, []byte(`{"a":1}`), 0o644))
	require.NoError(t, ops.AtomicWrite(path, []byte(`{}`), 0o644))

	data, err := ops.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestOps_RemoveAll(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "dir")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "x", "y"), 0o750))

	ops := fs.NewOps()
	require.NoError(t, ops.RemoveAll(dir))
	assert.NoDirExists(t, dir)
	require.NoError(t, ops.RemoveAll(dir), "removing a missing path is not an error")
}
