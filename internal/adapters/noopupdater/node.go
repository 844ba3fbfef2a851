package noopupdater

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/core/ports"
)

const (
	// ArtifactsNodeID is the unique identifier for the artifacts updater's Graft node.
	ArtifactsNodeID graft.ID = "adapter.artifacts_updater"
	// PrebuiltsNodeID is the unique identifier for the prebuilts updater's Graft node.
	PrebuiltsNodeID graft.ID = "adapter.prebuilts_updater"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactsUpdater]{
		ID:        ArtifactsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactsUpdater, error) {
			return Updater{}, nil
		},
	})
	graft.Register(graft.Node[ports.PrebuiltsUpdater]{
		ID:        PrebuiltsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PrebuiltsUpdater, error) {
			return Updater{}, nil
		},
	})
}
