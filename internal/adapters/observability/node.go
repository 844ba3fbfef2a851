package observability

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/adapters/logger"
	"github.com/forgepm/resolve/internal/core/ports"
)

// NodeID is the unique identifier for the observability scope's Graft node.
const NodeID graft.ID = "adapter.observability_scope"

func init() {
	graft.Register(graft.Node[ports.ObservabilityScope]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ObservabilityScope, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
