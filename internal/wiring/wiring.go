// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/syncnm/internal/adapters/cas"
	_ "go.trai.ch/syncnm/internal/adapters/config"
	_ "go.trai.ch/syncnm/internal/adapters/detector"
	_ "go.trai.ch/syncnm/internal/adapters/fs"
	_ "go.trai.ch/syncnm/internal/adapters/glob"
	_ "go.trai.ch/syncnm/internal/adapters/journal"
	_ "go.trai.ch/syncnm/internal/adapters/lockfile"
	_ "go.trai.ch/syncnm/internal/adapters/logger"
	_ "go.trai.ch/syncnm/internal/adapters/manifest"
	_ "go.trai.ch/syncnm/internal/adapters/project"
	_ "go.trai.ch/syncnm/internal/adapters/shell"
	_ "go.trai.ch/syncnm/internal/adapters/telemetry"
	_ "go.trai.ch/syncnm/internal/adapters/vcs"
	_ "go.trai.ch/syncnm/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/syncnm/internal/app"
)
