package sanity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.velt.ch/strap/internal/adapters/logger" //nolint:depguard // Wired in adapter wiring
	"go.velt.ch/strap/internal/core/ports"
)

// NodeID is the unique identifier for the sanity checker Graft node.
const NodeID graft.ID = "adapter.sanity"

func init() {
	graft.Register(graft.Node[ports.SanityChecker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.SanityChecker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(log), nil
		},
	})
}
