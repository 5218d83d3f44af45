package domain

import "go.trai.ch/zerr"

var (
	// ErrNoEntry is returned when a required file or directory does not exist.
	ErrNoEntry = zerr.New("no such file or directory")

	// ErrNoLockfile is returned when no lockfile of any supported package manager is found.
	ErrNoLockfile = zerr.New("no lockfile found")

	// ErrMultipleLockfiles is returned when lockfiles of conflicting package managers are found.
	ErrMultipleLockfiles = zerr.New("multiple lockfiles found")

	// ErrParse is returned when a manifest, lockfile or metadata file is malformed.
	ErrParse = zerr.New("failed to parse file")

	// ErrNotDir is returned when a directory was required but something else (or nothing) was found.
	ErrNotDir = zerr.New("not a directory")

	// ErrInvalidWorkspace is returned when a workspace member cannot be resolved.
	ErrInvalidWorkspace = zerr.New("invalid workspace")

	// ErrInvalidPackageJSONFieldsForYarn is returned when a yarn workspace member lacks name or version.
	ErrInvalidPackageJSONFieldsForYarn = zerr.New("yarn workspace packages require both name and version")

	// ErrInvalidPackageJSONFieldsForBun is returned when a bun workspace member lacks a name.
	ErrInvalidPackageJSONFieldsForBun = zerr.New("bun workspace packages require a name")

	// ErrInvalidPackageJSONPrivateForYarn is returned when a yarn root declares workspaces without "private": true.
	ErrInvalidPackageJSONPrivateForYarn = zerr.New("yarn workspaces can only be enabled in private projects")

	// ErrNotAccessible is returned when a path cannot be resolved or accessed.
	ErrNotAccessible = zerr.New("path is not accessible")

	// ErrInstallFailed is returned when the package manager install command fails.
	ErrInstallFailed = zerr.New("failed to install dependencies")

	// ErrMetadataReadFailed is returned when the metadata journal cannot be read.
	ErrMetadataReadFailed = zerr.New("failed to read cache metadata")

	// ErrMetadataWriteFailed is returned when the metadata journal cannot be written.
	ErrMetadataWriteFailed = zerr.New("failed to write cache metadata")

	// ErrMetadataLockFailed is returned when the metadata lock cannot be acquired.
	ErrMetadataLockFailed = zerr.New("failed to lock cache metadata")

	// ErrRenameFailed is returned when moving a directory into or out of the cache fails.
	ErrRenameFailed = zerr.New("failed to move directory")

	// ErrSymlinkFailed is returned when a cache slot symlink cannot be created.
	ErrSymlinkFailed = zerr.New("failed to create symlink")

	// ErrRemoveFailed is returned when a cache slot cannot be removed.
	ErrRemoveFailed = zerr.New("failed to remove cache entry")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrInvalidLogFormat is returned when an unknown log format is configured.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")

	// ErrWatchFailed is returned when the file watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch project files")
)
