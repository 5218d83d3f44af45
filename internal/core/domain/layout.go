package domain

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

const (
	// AppName is used for the default cache directory and env prefix.
	AppName = "syncnm"

	// MetadataFileName is the name of the metadata journal at the cache root.
	MetadataFileName = "metadata.json"

	// MetadataLockFileName is the advisory lock guarding the metadata journal.
	MetadataLockFileName = "metadata.json.lock"

	// PackageJSONFileName is the name of a JavaScript package manifest.
	PackageJSONFileName = "package.json"

	// PnpmWorkspaceFileName is the pnpm workspace declaration file.
	PnpmWorkspaceFileName = "pnpm-workspace.yaml"

	// PnpmWorkspaceAltFileName is the alternate extension for the pnpm workspace file.
	PnpmWorkspaceAltFileName = "pnpm-workspace.yml"

	// NodeModulesDirName is the default dependency install target.
	NodeModulesDirName = "node_modules"

	// ConfigFileName is the optional per-project configuration file.
	ConfigFileName = "syncnm.yaml"

	// DebugLogFile is the name of the debug log file inside the cache directory.
	DebugLogFile = "debug.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCacheDir returns the per-user cache root for syncnm.
// It is created if it does not exist.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrNotAccessible.Error()), "path", "user cache directory")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrCacheDirCreateFailed.Error()), "path", dir)
	}
	return dir, nil
}

// MetadataPath returns the path of the metadata journal under cacheDir.
func MetadataPath(cacheDir string) string {
	return filepath.Join(cacheDir, MetadataFileName)
}

// MetadataLockPath returns the path of the metadata lock file under cacheDir.
func MetadataLockPath(cacheDir string) string {
	return filepath.Join(cacheDir, MetadataLockFileName)
}

// DebugLogPath returns the path of the rotating debug log under cacheDir.
func DebugLogPath(cacheDir string) string {
	return filepath.Join(cacheDir, DebugLogFile)
}

// PackageJSONPath returns the manifest path for the package rooted at dir.
func PackageJSONPath(dir string) string {
	return filepath.Join(dir, PackageJSONFileName)
}
