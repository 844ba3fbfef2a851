package memcontainer

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
)

// NodeID is the unique identifier for the in-memory container provider's Graft node.
const NodeID graft.ID = "adapter.container_provider"

// Histories is the fixture set the registered provider is built from. It is
// empty unless a caller populates it before the graph is resolved.
var Histories = map[domain.PackageIdentity]TagHistory{}

func init() {
	graft.Register(graft.Node[ports.ContainerProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContainerProvider, error) {
			return NewProvider(Histories), nil
		},
	})
}
