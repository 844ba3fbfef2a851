package artifacts

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/engine/checkout"
)

// NodeID is the unique identifier for the artifact remover's Graft node.
const NodeID graft.ID = "adapter.artifact_remover"

// Root is the workspace-relative directory managed-dependency artifacts are
// materialized under. Callers may set it before the graph is resolved.
var Root = ".resolve/checkouts"

func init() {
	graft.Register(graft.Node[checkout.ArtifactRemover]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (checkout.ArtifactRemover, error) {
			return NewRemover(Root), nil
		},
	})
}
