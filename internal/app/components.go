package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/adapters/logger"
	"github.com/forgepm/resolve/internal/core/ports"
)

// Components bundles the orchestrator with the collaborators the CLI layer
// needs directly (e.g. to report a startup failure before the orchestrator
// itself is usable).
type Components struct {
	Orchestrator *Orchestrator
	Logger       ports.Logger
}

// ComponentsNodeID is the unique identifier for the Components Graft node.
const ComponentsNodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			orchestrator, err := graft.Dep[*Orchestrator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{Orchestrator: orchestrator, Logger: log}, nil
		},
	})
}
