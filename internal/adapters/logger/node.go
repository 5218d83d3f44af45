package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger port Graft node.
	NodeID graft.ID = "adapter.logger"
	// ControllerNodeID is the unique identifier for the configurable logger Graft node.
	ControllerNodeID graft.ID = "adapter.logger.controller"
)

func init() {
	graft.Register(graft.Node[*Logger]{
		ID:        ControllerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Logger, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ControllerNodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			l, err := graft.Dep[*Logger](ctx)
			if err != nil {
				return nil, err
			}
			return l, nil
		},
	})
}
