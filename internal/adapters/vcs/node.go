package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the provenance source Graft node.
const NodeID graft.ID = "adapter.vcs"

func init() {
	graft.Register(graft.Node[ports.ProvenanceSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProvenanceSource, error) {
			return NewGit(), nil
		},
	})
}
