package project

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/glob"
	"go.trai.ch/syncnm/internal/adapters/logger"
	"go.trai.ch/syncnm/internal/adapters/manifest"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the project builder Graft node.
const NodeID graft.ID = "adapter.project"

func init() {
	graft.Register(graft.Node[ports.ProjectBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID, glob.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectBuilder, error) {
			manifests, err := graft.Dep[ports.ManifestReader](ctx)
			if err != nil {
				return nil, err
			}
			globber, err := graft.Dep[ports.Globber](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(manifests, globber, log), nil
		},
	})
}
