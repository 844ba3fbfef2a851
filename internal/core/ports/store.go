package ports

import "github.com/forgepm/resolve/internal/core/domain"

// ManagedDependencyStore is the durable map of package identity to on-disk
// state (spec.md §3's C1: Managed Dependency Store). Mutated only by the
// Checkout Executor under a single-writer discipline; reads return
// immutable snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManagedDependencyStore interface {
	Load() error
	Save() error

	Get(id domain.PackageIdentity) (domain.ManagedDependency, bool)
	Put(dep domain.ManagedDependency) error
	Remove(id domain.PackageIdentity) error

	// Snapshot returns an immutable copy of every managed dependency,
	// consumed by the State Reconciler under spec.md §5's "consistent
	// snapshot, no concurrent mutation during reconciliation" guarantee.
	Snapshot() []domain.ManagedDependency
}

// PinStore is the durable resolved-packages lock (spec.md §3's C2: Resolved
// Packages Store / spec.md §4.2).
type PinStore interface {
	Load() error
	Save(originHash string, minimumToolsVersion string) error

	Add(dep domain.ManagedDependency) error
	Remove(ref domain.PackageReference) error

	Get(id domain.PackageIdentity) (domain.ResolvedPackage, bool)

	// GetByLocation returns a pin iff both identity and location match,
	// spec.md §4.2's location-drift lookup.
	GetByLocation(ref domain.PackageReference) (domain.ResolvedPackage, bool)

	// Snapshot returns an immutable copy of every pin plus the store's
	// top-level origin hash.
	Snapshot() (pins []domain.ResolvedPackage, originHash string)
}
