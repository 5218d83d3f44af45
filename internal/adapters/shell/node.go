package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/detector"
	"go.trai.ch/syncnm/internal/adapters/logger"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, detector.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			mode, err := graft.Dep[detector.Mode](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(log, mode.Interactive()), nil
		},
	})
}
