package ports

import "github.com/forgepm/resolve/internal/core/domain"

// ContainerKind discriminates the three capability sets containers expose
// (spec.md §9's "container polymorphism" design note): a common capability
// surface plus a typed discriminant, rather than a class hierarchy.
type ContainerKind int

const (
	// ContainerKindSourceControl is a git-style tag/revision history container.
	ContainerKindSourceControl ContainerKind = iota
	// ContainerKindRegistry is a registry version-index container.
	ContainerKindRegistry
	// ContainerKindCustom is a caller-supplied container with its own retrieval logic.
	ContainerKindCustom
)

// Container is a handle to a package's versioned history. All three
// implementations share this capability surface; callers switch on Kind()
// only when they need a capability specific to one variant (e.g. Retrieve
// for custom containers).
//
//go:generate go run go.uber.org/mock/mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type Container interface {
	// Kind reports which of the three container variants this is.
	Kind() ContainerKind

	// GetTag returns the source-control tag for a version, if one exists.
	GetTag(version domain.Version) (tag string, found bool, err error)

	// GetRevision resolves a tag or an arbitrary identifier (branch name,
	// bare revision) to a canonical Revision.
	GetRevision(tagOrIdentifier string) (domain.Revision, error)

	// CheckIntegrity verifies that revision is a legitimate binding for version.
	CheckIntegrity(version domain.Version, revision domain.Revision) error

	// Retrieve materializes a custom-kind container's package at the given
	// version, returning the path it was placed at. Only meaningful when
	// Kind() == ContainerKindCustom.
	Retrieve(version domain.Version) (path string, err error)
}

// ContainerProvider is the consumed collaborator of spec.md §4.3:
// `getContainer(package, updateStrategy, scope) -> Container`.
// Implementations must be safe for concurrent calls with distinct packages;
// concurrent calls for the same package must be coalesced.
type ContainerProvider interface {
	GetContainer(ref domain.PackageReference, strategy domain.UpdateStrategy, scope ObservabilityScope) (Container, error)
}
