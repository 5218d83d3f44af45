package app

import (
	"context"
	"fmt"

	"go.trai.ch/syncnm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Phase names reported as spans.
const (
	spanRun      = "run"
	spanDetect   = "detect"
	spanRestore  = "restore"
	spanRevoke   = "revoke"
	spanInstall  = "install"
	spanRedetect = "redetect"
	spanSave     = "save"
)

// RunResult reports the key a run settled on and whether it was restored from cache.
type RunResult struct {
	Key domain.Hash
	Hit bool
	// Kind is the package manager governing the project.
	Kind domain.PackageManagerKind
	// Project is the project as built after the run.
	Project *domain.Project
}

// Run makes the dependency directory of the project match its manifests,
// restoring a cached snapshot when one exists and installing otherwise.
func (a *App) Run(ctx context.Context, opts Options) (RunResult, error) {
	s, err := a.open(ctx, opts)
	if err != nil {
		return RunResult{}, err
	}
	return a.run(ctx, s)
}

func (a *App) run(ctx context.Context, s *session) (RunResult, error) {
	ctx, span := a.tracer.Start(ctx, spanRun)
	defer span.End()
	span.SetAttribute("base_dir", s.baseDir)

	result, err := a.runPhases(ctx, s)
	if err != nil {
		span.RecordError(err)
		return result, err
	}
	span.SetAttribute("key", result.Key.String())
	span.SetAttribute("hit", result.Hit)
	return result, nil
}

func (a *App) runPhases(ctx context.Context, s *session) (RunResult, error) {
	detected := a.detect(ctx, s)

	if detected.project != nil && detected.key != "" && a.tryRestore(ctx, s, detected.key) {
		a.logger.Info(fmt.Sprintf("cache hit: %s", detected.key))
		return RunResult{Key: detected.key, Hit: true, Kind: detected.project.Kind, Project: detected.project}, nil
	}

	var kind domain.PackageManagerKind
	if detected.project != nil {
		kind = detected.project.Kind
	} else {
		kind = a.installKind(s, detected.lockfile)
	}

	a.revoke(ctx, s)

	if err := a.install(ctx, s, kind); err != nil {
		return RunResult{}, err
	}

	final, err := a.redetect(ctx, s)
	if err != nil {
		return RunResult{}, err
	}

	if err := a.save(ctx, s, final.key); err != nil {
		return RunResult{}, err
	}

	a.logger.Info(fmt.Sprintf("cache saved: %s", final.key))
	return RunResult{Key: final.key, Kind: final.project.Kind, Project: final.project}, nil
}

// detect derives the current key. Failures only mean the run cannot hit.
func (a *App) detect(ctx context.Context, s *session) derivation {
	ctx, span := a.tracer.Start(ctx, spanDetect)
	defer span.End()

	d, err := a.derive(ctx, s)
	if err != nil {
		span.RecordError(err)
		a.logger.Debug("cache key unavailable before install: " + err.Error())
		return d
	}
	span.SetAttribute("kind", d.project.Kind.String())
	span.SetAttribute("members", len(d.project.Members))
	span.SetAttribute("key", d.key.String())
	return d
}

// tryRestore reports whether the snapshot under key is now live.
func (a *App) tryRestore(ctx context.Context, s *session, key domain.Hash) bool {
	ctx, span := a.tracer.Start(ctx, spanRestore)
	defer span.End()

	if err := s.store.Restore(ctx, key); err != nil {
		span.SetAttribute("hit", false)
		a.logger.Debug(fmt.Sprintf("cache miss: %s: %s", key, err.Error()))
		return false
	}
	span.SetAttribute("hit", true)
	return true
}

// revoke parks the live directory before the installer touches it.
func (a *App) revoke(ctx context.Context, s *session) {
	ctx, span := a.tracer.Start(ctx, spanRevoke)
	defer span.End()

	if err := s.store.RevokeCurrent(ctx); err != nil {
		span.RecordError(err)
		a.logger.Warn("failed to park current dependencies: " + err.Error())
	}
}

func (a *App) install(ctx context.Context, s *session, kind domain.PackageManagerKind) error {
	ctx, span := a.tracer.Start(ctx, spanInstall)
	defer span.End()
	span.SetAttribute("kind", kind.String())

	if err := a.installer.Install(ctx, kind, s.baseDir); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// redetect derives the key of the freshly installed state. Failures are fatal.
func (a *App) redetect(ctx context.Context, s *session) (derivation, error) {
	ctx, span := a.tracer.Start(ctx, spanRedetect)
	defer span.End()

	d, err := a.derive(ctx, s)
	if err != nil {
		span.RecordError(err)
		return d, zerr.Wrap(err, "failed to derive cache key after install")
	}
	span.SetAttribute("key", d.key.String())
	return d, nil
}

func (a *App) save(ctx context.Context, s *session, key domain.Hash) error {
	ctx, span := a.tracer.Start(ctx, spanSave)
	defer span.End()

	if err := s.store.Save(ctx, key); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
