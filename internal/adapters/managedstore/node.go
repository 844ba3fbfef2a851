package managedstore

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/core/ports"
)

// NodeID is the unique identifier for the managed dependency store's Graft node.
const NodeID graft.ID = "adapter.managed_dependency_store"

// StorePath is the workspace-relative path graft resolves the store against.
// Callers may set it before the graph is resolved.
var StorePath = ".resolve/managed.json"

func init() {
	graft.Register(graft.Node[ports.ManagedDependencyStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManagedDependencyStore, error) {
			store := NewStore(StorePath)
			if err := store.Load(); err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
