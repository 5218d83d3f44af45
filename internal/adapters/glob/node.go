package glob

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/logger"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the globber Graft node.
const NodeID graft.ID = "adapter.glob"

func init() {
	graft.Register(graft.Node[ports.Globber]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Globber, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGlobber(log), nil
		},
	})
}
