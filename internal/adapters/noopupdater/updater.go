// Package noopupdater provides pass-through implementations of the
// binary-artifact and prebuilt updater collaborators, which spec.md
// explicitly places out of scope for the resolution core itself.
package noopupdater

import (
	"context"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
)

// Updater implements both ports.ArtifactsUpdater and ports.PrebuiltsUpdater
// as no-ops, standing in for a real binary-artifact/prebuilt manager.
type Updater struct{}

var (
	_ ports.ArtifactsUpdater = Updater{}
	_ ports.PrebuiltsUpdater = Updater{}
)

// UpdateBinaryArtifacts is a no-op.
func (Updater) UpdateBinaryArtifacts(context.Context, domain.DependencyManifests, []domain.PackageIdentity) error {
	return nil
}

// UpdatePrebuilts is a no-op.
func (Updater) UpdatePrebuilts(context.Context, domain.DependencyManifests, []domain.PackageIdentity) error {
	return nil
}
