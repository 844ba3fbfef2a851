package manifest

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest loader's Graft node.
const NodeID graft.ID = "adapter.manifest_loader"

// FileName is the manifest file name looked up in each package directory.
var FileName = "resolve.yaml"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Loader, error) {
			return NewLoader(FileName), nil
		},
	})
}
