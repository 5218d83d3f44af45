package cas

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/fs"
	"go.trai.ch/syncnm/internal/adapters/journal"
	"go.trai.ch/syncnm/internal/adapters/logger"
	"go.trai.ch/syncnm/internal/adapters/vcs"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the cache store factory Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.OpsNodeID, journal.NodeID, vcs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheStoreFactory, error) {
			ops, err := graft.Dep[*fs.Ops](ctx)
			if err != nil {
				return nil, err
			}
			journals, err := graft.Dep[*journal.Factory](ctx)
			if err != nil {
				return nil, err
			}
			provenance, err := graft.Dep[ports.ProvenanceSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			// An unknown home only makes project identities longer.
			home, _ := os.UserHomeDir()
			return NewFactory(ops, journals, provenance, log, home), nil
		},
	})
}
