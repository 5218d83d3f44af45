// Package app implements the application layer for syncnm.
package app

import (
	"context"
	"log/slog"
	"path/filepath"

	"go.trai.ch/syncnm/internal/adapters/detector"
	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/syncnm/internal/core/ports"
	"go.trai.ch/zerr"
)

// LogController adjusts logger output once the settings of an invocation are known.
type LogController interface {
	SetJSON(enable bool)
	SetLevel(level slog.Level)
	SetDebugFile(path string) error
}

// App represents the main application logic.
type App struct {
	config    ports.ConfigLoader
	lockfiles ports.LockfileDetector
	manifests ports.ManifestReader
	projects  ports.ProjectBuilder
	installer ports.Installer
	stores    ports.CacheStoreFactory
	tracer    ports.Tracer
	watchers  ports.WatcherFactory
	hasher    ports.Hasher
	logger    ports.Logger

	logs LogController
	mode detector.Mode
}

// New creates a new App instance.
func New(
	config ports.ConfigLoader,
	lockfiles ports.LockfileDetector,
	manifests ports.ManifestReader,
	projects ports.ProjectBuilder,
	installer ports.Installer,
	stores ports.CacheStoreFactory,
	tracer ports.Tracer,
	watchers ports.WatcherFactory,
	hasher ports.Hasher,
	logger ports.Logger,
) *App {
	return &App{
		config:    config,
		lockfiles: lockfiles,
		manifests: manifests,
		projects:  projects,
		installer: installer,
		stores:    stores,
		tracer:    tracer,
		watchers:  watchers,
		hasher:    hasher,
		logger:    logger,
		mode:      detector.ModePlain,
	}
}

// WithLogController lets the App apply log settings resolved from configuration.
func (a *App) WithLogController(logs LogController, mode detector.Mode) *App {
	a.logs = logs
	a.mode = mode
	return a
}

// Options are the settings shared by every use case.
// Empty fields fall back to the environment, syncnm.yaml and defaults.
type Options struct {
	BaseDir   string
	CacheDir  string
	TargetDir string
	LogFormat domain.LogFormat
	Verbose   bool
}

// session is one project opened against its cache.
type session struct {
	baseDir  string
	settings domain.Settings
	store    ports.CacheStore
}

// open resolves settings for opts, applies them to the logger and opens the store.
func (a *App) open(_ context.Context, opts Options) (*session, error) {
	if a.logs != nil && opts.Verbose {
		a.logs.SetLevel(slog.LevelDebug)
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNotAccessible.Error()), "path", opts.BaseDir)
	}

	settings, err := a.config.Load(baseDir, domain.Settings{
		CacheDir:  opts.CacheDir,
		TargetDir: opts.TargetDir,
		LogFormat: opts.LogFormat,
	})
	if err != nil {
		return nil, err
	}

	if a.logs != nil {
		format, err := detector.ResolveLogFormat(a.mode, settings.LogFormat)
		if err != nil {
			return nil, err
		}
		a.logs.SetJSON(format == domain.LogFormatJSON)
	}

	store, err := a.stores.Open(domain.CacheLayout{
		BaseDir:   baseDir,
		TargetDir: settings.TargetDir,
		CacheDir:  settings.CacheDir,
	})
	if err != nil {
		return nil, err
	}

	if a.logs != nil {
		if err := a.logs.SetDebugFile(domain.DebugLogPath(settings.CacheDir)); err != nil {
			a.logger.Warn("debug log disabled: " + err.Error())
		}
	}

	return &session{baseDir: baseDir, settings: settings, store: store}, nil
}
