package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syncnm/internal/adapters/fs"
	"go.trai.ch/syncnm/internal/core/ports"
)

// NodeID is the unique identifier for the journal factory Graft node.
const NodeID graft.ID = "adapter.journal"

// Factory opens journals for arbitrary cache directories.
type Factory struct {
	fs Writer
}

// NewFactory creates a Factory writing through fs.
func NewFactory(fs Writer) *Factory {
	return &Factory{fs: fs}
}

// Open returns the journal of cacheDir.
func (f *Factory) Open(cacheDir string) ports.Journal {
	return New(cacheDir, f.fs)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.OpsNodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			ops, err := graft.Dep[*fs.Ops](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(ops), nil
		},
	})
}
