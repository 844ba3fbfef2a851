// Package precompute implements the Precomputer (C5): deciding whether full
// resolution can be skipped by solving against an in-memory, manifest-only view.
package precompute

import (
	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
)

// ResultKind discriminates the ResolutionPrecomputationResult shapes of spec.md §4.4.
type ResultKind int

const (
	// ResultNotRequired means the in-memory solve succeeded: real resolution can be skipped.
	ResultNotRequired ResultKind = iota
	// ResultRequired means real resolution must run; Reason explains why.
	ResultRequired
)

// RequiredReasonKind discriminates why resolution is required.
type RequiredReasonKind int

const (
	// ReasonNewPackages means the solve failed on a package with no matching manifest at all.
	ReasonNewPackages RequiredReasonKind = iota
	// ReasonPackageRequirementChange means an existing state conflicts with a new requirement.
	ReasonPackageRequirementChange
	// ReasonOther is any other solver failure.
	ReasonOther
	// ReasonErrorsPreviouslyReported means diagnostics already failed setup before the solve ran.
	ReasonErrorsPreviouslyReported
)

// RequiredReason carries the detail behind a ResultRequired outcome.
type RequiredReason struct {
	Kind        RequiredReasonKind
	Package     domain.PackageIdentity
	State       domain.PinState
	Requirement domain.Requirement
	Message     string
}

// Result is the Precomputer's output: spec.md §4.4's ResolutionPrecomputationResult.
type Result struct {
	Kind   ResultKind
	Reason RequiredReason // populated only when Kind == ResultRequired
}

// NotRequired is the shared notRequired() result value.
var NotRequired = Result{Kind: ResultNotRequired}

// Precomputer runs the resolver against a manifest-only provider to decide
// whether real resolution is necessary (spec.md §4.4). It never mutates any
// store.
type Precomputer struct {
	resolver ports.Resolver
}

// New creates a Precomputer over the given resolver collaborator.
func New(resolver ports.Resolver) *Precomputer {
	return &Precomputer{resolver: resolver}
}

// Precompute builds constraints from root/manifest/edited requirements plus
// any caller-supplied extras, solves against the current pin set as hints,
// and maps the outcome per spec.md §4.4's Result mapping table.
//
// scopeHadErrors reflects whether the observability scope already reported
// errors during setup (manifest loading, pin loading); if so the result is
// unconditionally ReasonErrorsPreviouslyReported without invoking the solver.
//
// The resolver only ever sees requirements built from already-loaded
// manifests plus the current pin set (spec.md §4.4's
// ResolverPrecomputationProvider requirement): Precompute never acquires a
// container or touches the network, so the manifest-only guarantee lives
// entirely in how these constraints are assembled, not in a container facade.
func (p *Precomputer) Precompute(
	rootRequirements []domain.Requirement,
	manifests domain.DependencyManifests,
	editedRequirements []domain.Requirement,
	extraRequirements []domain.Requirement,
	pins map[domain.PackageIdentity]domain.ResolvedPackage,
	updateBranches bool,
	scopeHadErrors bool,
) Result {
	if scopeHadErrors {
		return Result{Kind: ResultRequired, Reason: RequiredReason{Kind: ReasonErrorsPreviouslyReported}}
	}

	constraints := ports.SolveConstraints{
		Requirements:   concatRequirements(rootRequirements, manifests.DependencyConstraints, editedRequirements, extraRequirements),
		PinHints:       pins,
		UpdateBranches: updateBranches,
	}

	_, failure, err := p.resolver.Solve(constraints)
	if err != nil {
		return Result{Kind: ResultRequired, Reason: RequiredReason{Kind: ReasonOther, Message: err.Error()}}
	}
	if failure == nil {
		return NotRequired
	}

	switch failure.Kind {
	case ports.SolveFailureMissingPackage:
		return Result{Kind: ResultRequired, Reason: RequiredReason{Kind: ReasonNewPackages, Package: failure.Package}}
	case ports.SolveFailureDifferentRequirement:
		return Result{Kind: ResultRequired, Reason: RequiredReason{
			Kind:        ReasonPackageRequirementChange,
			Package:     failure.Package,
			State:       failure.State,
			Requirement: failure.Requirement,
		}}
	default:
		return Result{Kind: ResultRequired, Reason: RequiredReason{Kind: ReasonOther, Message: failure.Message}}
	}
}

func concatRequirements(groups ...[]domain.Requirement) []domain.Requirement {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]domain.Requirement, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
