package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// OpsNodeID is the unique identifier for the filesystem operations Graft node.
	OpsNodeID graft.ID = "adapter.fs.ops"
	// HasherNodeID is the unique identifier for the file set hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[*Ops]{
		ID:        OpsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Ops, error) {
			return NewOps(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
