package pinstore

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/core/ports"
)

// NodeID is the unique identifier for the pin store's Graft node.
const NodeID graft.ID = "adapter.pin_store"

// LockFilePath is the workspace-relative path graft resolves the lock file
// against. Callers may set it before the graph is resolved.
var LockFilePath = "Package.resolved"

func init() {
	graft.Register(graft.Node[ports.PinStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PinStore, error) {
			store := NewStore(LockFilePath)
			if err := store.Load(); err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
