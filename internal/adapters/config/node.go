package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/fs"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.OpsNodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			ops, err := graft.Dep[*fs.Ops](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(ops), nil
		},
	})
}
