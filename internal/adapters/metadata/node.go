package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/strap/internal/adapters/shell" //nolint:depguard // Wired in adapter wiring
	"go.velt.ch/strap/internal/core/ports"
)

// NodeID is the unique identifier for the metadata loader Graft node.
const NodeID graft.ID = "adapter.metadata"

func init() {
	graft.Register(graft.Node[ports.MetadataLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
		},
		Run: func(ctx context.Context) (ports.MetadataLoader, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(exec), nil
		},
	})
}
