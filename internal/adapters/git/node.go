package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/strap/internal/adapters/shell" //nolint:depguard // Wired in adapter wiring
	"go.velt.ch/strap/internal/core/ports"
)

// NodeID is the unique identifier for the git inspector Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.CommitInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
		},
		Run: func(ctx context.Context) (ports.CommitInspector, error) {
			exec, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(exec), nil
		},
	})
}
