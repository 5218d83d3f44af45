package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/cas"
	"go.trai.ch/syncnm/internal/adapters/config"
	"go.trai.ch/syncnm/internal/adapters/detector"
	"go.trai.ch/syncnm/internal/adapters/fs"
	"go.trai.ch/syncnm/internal/adapters/lockfile"
	"go.trai.ch/syncnm/internal/adapters/logger"
	"go.trai.ch/syncnm/internal/adapters/manifest"
	"go.trai.ch/syncnm/internal/adapters/project"
	"go.trai.ch/syncnm/internal/adapters/shell"
	"go.trai.ch/syncnm/internal/adapters/telemetry"
	"go.trai.ch/syncnm/internal/adapters/watcher"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles what the CLI needs to run.
type Components struct {
	App    *App
	Logger ports.Logger
	// Close releases resources held by the components.
	Close func() error
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lockfile.NodeID,
			manifest.NodeID,
			project.NodeID,
			shell.NodeID,
			cas.NodeID,
			telemetry.NodeID,
			watcher.NodeID,
			fs.HasherNodeID,
			logger.NodeID,
			logger.ControllerNodeID,
			detector.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			lockfiles, err := graft.Dep[ports.LockfileDetector](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			projects, err := graft.Dep[ports.ProjectBuilder](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			stores, err := graft.Dep[ports.CacheStoreFactory](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			watchers, err := graft.Dep[ports.WatcherFactory](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			controller, err := graft.Dep[*logger.Logger](ctx)
			if err != nil {
				return nil, err
			}
			mode, err := graft.Dep[detector.Mode](ctx)
			if err != nil {
				return nil, err
			}

			a := New(loader, lockfiles, manifests, projects, installer, stores, tracer, watchers, hasher, log).
				WithLogController(controller, mode)

			return &Components{
				App:    a,
				Logger: log,
				Close:  controller.Close,
			}, nil
		},
	})
}
