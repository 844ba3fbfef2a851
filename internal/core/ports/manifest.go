// Package ports defines the core interfaces the resolution core consumes.
package ports

import (
	"context"

	"github.com/forgepm/resolve/internal/core/domain"
)

// RootManifestLoader loads the manifests of a workspace's own root packages
// (spec.md §6: `loadRootManifests(paths) -> Map<Identity, Manifest>`). Manifest
// parsing itself is explicitly out of scope for the core; this is the seam.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type RootManifestLoader interface {
	LoadRootManifests(ctx context.Context, paths []string) (map[domain.PackageIdentity]domain.RootManifest, error)
}

// DependencyManifestLoader loads the full transitive dependency manifest set
// for a graph root (spec.md §6: `loadDependencyManifests(root, autoAdd?)`).
type DependencyManifestLoader interface {
	LoadDependencyManifests(ctx context.Context, root *domain.RequiredPackageGraph, autoAdd bool) (domain.DependencyManifests, error)
}

// ArtifactsUpdater refreshes binary artifacts for a set of added/updated
// packages (spec.md §6: `updateBinaryArtifacts`). Out of scope to implement;
// the core only needs to call it at the right point in the cycle.
type ArtifactsUpdater interface {
	UpdateBinaryArtifacts(ctx context.Context, manifests domain.DependencyManifests, addedOrUpdated []domain.PackageIdentity) error
}

// PrebuiltsUpdater refreshes prebuilt binaries for a set of added/updated
// packages (spec.md §6: `updatePrebuilts`).
type PrebuiltsUpdater interface {
	UpdatePrebuilts(ctx context.Context, manifests domain.DependencyManifests, addedOrUpdated []domain.PackageIdentity) error
}
