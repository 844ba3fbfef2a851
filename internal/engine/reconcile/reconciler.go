// Package reconcile implements the State Reconciler (C6): diffing resolver
// bindings against the managed-dependency set and classifying each package
// as added, updated, unchanged, or removed (spec.md §4.5).
package reconcile

import (
	"sort"

	"github.com/forgepm/resolve/internal/core/domain"
)

// RevisionResolver looks up the canonical revision for a binding's branch or
// bare revision identifier, standing in for the container query spec.md
// §4.5 step 3 describes ("obtain canonical revision via container").
type RevisionResolver interface {
	ResolveRevision(ref domain.PackageReference, identifier string) (domain.Revision, error)
}

// Reconciler computes the ordered list of package state changes for one
// resolve cycle.
type Reconciler struct {
	revisions RevisionResolver
}

// New creates a Reconciler backed by the given revision-resolving collaborator.
func New(revisions RevisionResolver) *Reconciler {
	return &Reconciler{revisions: revisions}
}

// Reconcile implements spec.md §4.5 exactly. managed is a snapshot of the
// current Managed Dependency Store (by identity); pins is used only to
// support branch-freeze reuse of a previously pinned revision. roots is the
// set of package identities that are workspace roots (unversioned bindings
// for roots are always skipped).
func (r *Reconciler) Reconcile(
	bindings []domain.DependencyResolverBinding,
	managed map[domain.PackageIdentity]domain.ManagedDependency,
	pins map[domain.PackageIdentity]domain.ResolvedPackage,
	roots map[domain.PackageIdentity]bool,
	updateBranches bool,
) ([]domain.ReconciledChange, error) {
	touched := make(map[domain.PackageIdentity]bool, len(bindings))
	changes := make([]domain.ReconciledChange, 0, len(bindings))

	for _, b := range bindings {
		change, touchedID, err := r.reconcileOne(b, managed, pins, roots, updateBranches)
		if err != nil {
			return nil, err
		}
		if touchedID != nil {
			touched[*touchedID] = true
		}
		if change != nil {
			changes = append(changes, *change)
		}
	}

	// Step 4: anything managed but not touched by any binding is removed.
	// Sort by identity string so output is deterministic across runs,
	// since ranging a Go map directly is not.
	removed := make([]domain.PackageIdentity, 0, len(managed))
	for id := range managed {
		if !touched[id] {
			removed = append(removed, id)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].String() < removed[j].String() })
	for _, id := range removed {
		changes = append(changes, domain.ReconciledChange{
			Package: managed[id].PackageRef,
			Change:  domain.RemovedChange,
		})
	}

	return changes, nil
}

// reconcileOne implements the per-binding steps 1-3 of spec.md §4.5. It
// returns the change to emit (nil if none; the edited-preservation case
// emits an unchanged entry for the *original* reference) and the identity
// to mark touched, which is always b.Package.Identity.
func (r *Reconciler) reconcileOne(
	b domain.DependencyResolverBinding,
	managed map[domain.PackageIdentity]domain.ManagedDependency,
	pins map[domain.PackageIdentity]domain.ResolvedPackage,
	roots map[domain.PackageIdentity]bool,
	updateBranches bool,
) (*domain.ReconciledChange, *domain.PackageIdentity, error) {
	id := b.Package.Identity

	// Step 1: edited-dependency preservation.
	if current, ok := managed[id]; ok && current.State.Kind == domain.ManagedStateEdited {
		originalRef := current.PackageRef
		if current.State.HasBasedOn() && current.State.EditedBasedOn != nil {
			originalRef = current.State.EditedBasedOn.PackageRef
		}
		change := domain.ReconciledChange{Package: originalRef, Change: domain.UnchangedChange}
		return &change, &id, nil
	}

	// Step 2: re-lookup by (identity, location) to capture location drift.
	current, hasCurrent := managed[id]
	if hasCurrent && current.PackageRef.Location != b.Package.Location {
		// Location drifted; treat as if there is no matching current state for
		// variant comparison purposes below (a moved source is a fresh bind).
		hasCurrent = false
	}

	switch b.BoundVersion.Kind {
	case domain.BoundKindExcluded:
		return nil, nil, domain.ErrExcludedBinding

	case domain.BoundKindUnversioned:
		return r.reconcileUnversioned(b, current, hasCurrent, roots)

	case domain.BoundKindRevision:
		return r.reconcileRevision(b, current, hasCurrent, pins, updateBranches)

	default: // domain.BoundKindVersion
		return r.reconcileVersion(b, current, hasCurrent)
	}
}

func (r *Reconciler) reconcileUnversioned(
	b domain.DependencyResolverBinding,
	current domain.ManagedDependency,
	hasCurrent bool,
	roots map[domain.PackageIdentity]bool,
) (*domain.ReconciledChange, *domain.PackageIdentity, error) {
	id := b.Package.Identity
	if roots[id] {
		return nil, &id, nil // skip: roots are never materialized as managed dependencies
	}

	state := domain.State{Requirement: domain.Requirement{Kind: domain.RequirementUnversioned}, ProductFilter: b.Products}

	if !hasCurrent {
		change := domain.ReconciledChange{Package: b.Package, Change: domain.NewAddedChange(state)}
		return &change, &id, nil
	}

	switch current.State.Kind {
	case domain.ManagedStateFileSystem, domain.ManagedStateEdited:
		change := domain.ReconciledChange{Package: b.Package, Change: domain.UnchangedChange}
		return &change, &id, nil
	case domain.ManagedStateSourceControlCheckout:
		change := domain.ReconciledChange{Package: b.Package, Change: domain.NewUpdatedChange(state)}
		return &change, &id, nil
	default: // registryDownload | custom
		return nil, nil, domain.ErrIllegalTransition
	}
}

func (r *Reconciler) reconcileRevision(
	b domain.DependencyResolverBinding,
	current domain.ManagedDependency,
	hasCurrent bool,
	pins map[domain.PackageIdentity]domain.ResolvedPackage,
	updateBranches bool,
) (*domain.ReconciledChange, *domain.PackageIdentity, error) {
	id := b.Package.Identity

	identifier := b.BoundVersion.RevisionID
	if b.BoundVersion.HasBranch {
		identifier = b.BoundVersion.Branch
	}
	revision, err := r.revisions.ResolveRevision(b.Package, identifier)
	if err != nil {
		return nil, nil, err
	}

	// Branch-freeze: reuse the previously pinned revision instead of the
	// freshly fetched one when updateBranches is false and we have a
	// matching branch pin.
	if !updateBranches && b.BoundVersion.HasBranch {
		if pin, ok := pins[id]; ok && pin.State.Kind == domain.PinStateBranch && pin.State.Branch == b.BoundVersion.Branch {
			revision = pin.State.Revision
		}
	}

	var target domain.CheckoutState
	if b.BoundVersion.HasBranch {
		target = domain.NewBranchCheckout(b.BoundVersion.Branch, revision)
	} else {
		target = domain.NewRevisionCheckout(revision)
	}

	requirement := domain.Requirement{Kind: domain.RequirementRevision, Revision: revision, Branch: b.BoundVersion.Branch}
	state := domain.State{Requirement: requirement, ProductFilter: b.Products}

	if !hasCurrent || current.State.Kind != domain.ManagedStateSourceControlCheckout {
		kind := domain.ChangeAdded
		if hasCurrent {
			kind = domain.ChangeUpdated
		}
		change := domain.ReconciledChange{Package: b.Package, Change: domain.PackageStateChange{Kind: kind, State: state}}
		return &change, &id, nil
	}

	if current.State.Checkout.Equal(target) {
		change := domain.ReconciledChange{Package: b.Package, Change: domain.UnchangedChange}
		return &change, &id, nil
	}

	change := domain.ReconciledChange{Package: b.Package, Change: domain.NewUpdatedChange(state)}
	return &change, &id, nil
}

func (r *Reconciler) reconcileVersion(
	b domain.DependencyResolverBinding,
	current domain.ManagedDependency,
	hasCurrent bool,
) (*domain.ReconciledChange, *domain.PackageIdentity, error) {
	id := b.Package.Identity
	v := b.BoundVersion.Version

	state := domain.State{
		Requirement:   domain.Requirement{Kind: domain.RequirementVersion, Version: v},
		ProductFilter: b.Products,
	}

	if !hasCurrent {
		change := domain.ReconciledChange{Package: b.Package, Change: domain.NewAddedChange(state)}
		return &change, &id, nil
	}

	if matchesVersion(current.State, v) {
		change := domain.ReconciledChange{Package: b.Package, Change: domain.UnchangedChange}
		return &change, &id, nil
	}

	change := domain.ReconciledChange{Package: b.Package, Change: domain.NewUpdatedChange(state)}
	return &change, &id, nil
}

func matchesVersion(state domain.ManagedDependencyState, v domain.Version) bool {
	switch state.Kind {
	case domain.ManagedStateSourceControlCheckout:
		return state.Checkout.Kind == domain.CheckoutKindVersion && state.Checkout.Version.Equal(v)
	case domain.ManagedStateRegistryDownload:
		return state.RegistryVersion.Equal(v)
	case domain.ManagedStateCustom:
		return state.CustomVersion.Equal(v)
	default:
		return false
	}
}
