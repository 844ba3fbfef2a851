package ports

import "github.com/forgepm/resolve/internal/core/domain"

// SolveConstraints bundles everything the resolver needs to attempt a solve:
// root/edited/manifest-derived requirements plus caller-supplied extras, and
// the current pin set to use as hints.
type SolveConstraints struct {
	Requirements   []domain.Requirement
	PinHints       map[domain.PackageIdentity]domain.ResolvedPackage
	UpdateBranches bool
}

// SolveFailureKind discriminates the shapes a Resolver failure can take,
// consumed by the Precomputer's result mapping (spec.md §4.4).
type SolveFailureKind int

const (
	// SolveFailureMissingPackage means a required package has no satisfying container.
	SolveFailureMissingPackage SolveFailureKind = iota
	// SolveFailureDifferentRequirement means an existing state conflicts with a new requirement.
	SolveFailureDifferentRequirement
	// SolveFailureOther is any other solver-reported failure.
	SolveFailureOther
)

// SolveFailure is the resolver's structured failure payload.
type SolveFailure struct {
	Kind        SolveFailureKind
	Package     domain.PackageIdentity // populated for MissingPackage and DifferentRequirement
	State       domain.PinState        // populated for DifferentRequirement
	Requirement domain.Requirement     // populated for DifferentRequirement
	Message     string                 // populated for Other
}

// Resolver is the consumed PubGrub-style SAT solver collaborator of spec.md
// §4/§6: `resolver.solve(constraints) -> Success(bindings) | Failure(error)`.
// Its internals are out of scope; the core only depends on this interface.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type Resolver interface {
	Solve(constraints SolveConstraints) ([]domain.DependencyResolverBinding, *SolveFailure, error)
}

// ResolverHandle is the "currently active resolver" slot (spec.md §5/§9):
// set before Solve and cleared after, used to route external cancellation.
type ResolverHandle interface {
	Cancel()
}
