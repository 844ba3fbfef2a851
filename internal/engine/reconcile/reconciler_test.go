package reconcile_test

import (
	"errors"
	"testing"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/engine/reconcile"
)

// fakeRevisionResolver stands in for a container-backed revision lookup,
// answering canonical revisions by identifier without touching the network.
type fakeRevisionResolver struct {
	revisions map[string]domain.Revision
	err       error
}

func (f *fakeRevisionResolver) ResolveRevision(ref domain.PackageReference, identifier string) (domain.Revision, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.revisions[identifier], nil
}

func packageRef(identity, location string) domain.PackageReference {
	return domain.PackageReference{
		Identity: domain.NewPackageIdentity(identity),
		Kind:     domain.ReferenceKindRemoteSourceControl,
		Location: location,
	}
}

func TestReconciler_Reconcile_AddsNewVersionBinding(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/a", "example.com/a")
	binding := domain.DependencyResolverBinding{
		Package:      ref,
		BoundVersion: domain.NewVersionBinding(domain.NewVersion("1.0.0")),
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		map[domain.PackageIdentity]domain.ManagedDependency{},
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Change.Kind != domain.ChangeAdded {
		t.Errorf("expected ChangeAdded, got %v", changes[0].Change.Kind)
	}
	if changes[0].Change.State.Requirement.Kind != domain.RequirementVersion {
		t.Errorf("expected RequirementVersion, got %v", changes[0].Change.State.Requirement.Kind)
	}
}

func TestReconciler_Reconcile_UnchangedVersionBinding(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/a", "example.com/a")
	v := domain.NewVersion("1.0.0")
	binding := domain.DependencyResolverBinding{Package: ref, BoundVersion: domain.NewVersionBinding(v)}

	managed := map[domain.PackageIdentity]domain.ManagedDependency{
		ref.Identity: {
			PackageRef: ref,
			State:      domain.NewSourceControlCheckoutState(domain.NewVersionCheckout(v, "abc123")),
		},
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		managed,
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 || changes[0].Change.Kind != domain.ChangeUnchanged {
		t.Fatalf("expected a single ChangeUnchanged, got %+v", changes)
	}
}

func TestReconciler_Reconcile_UpdatesOnVersionDrift(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/a", "example.com/a")
	binding := domain.DependencyResolverBinding{
		Package:      ref,
		BoundVersion: domain.NewVersionBinding(domain.NewVersion("2.0.0")),
	}

	managed := map[domain.PackageIdentity]domain.ManagedDependency{
		ref.Identity: {
			PackageRef: ref,
			State:      domain.NewSourceControlCheckoutState(domain.NewVersionCheckout(domain.NewVersion("1.0.0"), "abc123")),
		},
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		managed,
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 || changes[0].Change.Kind != domain.ChangeUpdated {
		t.Fatalf("expected a single ChangeUpdated, got %+v", changes)
	}
}

func TestReconciler_Reconcile_EditedPreservation(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/a", "example.com/a")
	original := packageRef("example.com/a", "example.com/a-original")
	binding := domain.DependencyResolverBinding{
		Package:      ref,
		BoundVersion: domain.NewVersionBinding(domain.NewVersion("1.0.0")),
	}

	managed := map[domain.PackageIdentity]domain.ManagedDependency{
		ref.Identity: {
			PackageRef: ref,
			State: domain.NewEditedState(&domain.ManagedDependency{
				PackageRef: original,
				State:      domain.NewSourceControlCheckoutState(domain.NewVersionCheckout(domain.NewVersion("1.0.0"), "abc123")),
			}, "/local/override"),
		},
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		managed,
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Change.Kind != domain.ChangeUnchanged {
		t.Errorf("expected the edited dependency to be preserved as unchanged, got %v", changes[0].Change.Kind)
	}
	if changes[0].Package.Location != original.Location {
		t.Errorf("expected the original reference to be emitted, got location %q", changes[0].Package.Location)
	}
}

func TestReconciler_Reconcile_RootUnversionedSkipped(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/root", "example.com/root")
	binding := domain.DependencyResolverBinding{Package: ref, BoundVersion: domain.UnversionedBinding}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		map[domain.PackageIdentity]domain.ManagedDependency{},
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{ref.Identity: true},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("expected root package to produce no change, got %+v", changes)
	}
}

func TestReconciler_Reconcile_UnversionedIllegalTransition(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/a", "example.com/a")
	binding := domain.DependencyResolverBinding{Package: ref, BoundVersion: domain.UnversionedBinding}

	managed := map[domain.PackageIdentity]domain.ManagedDependency{
		ref.Identity: {PackageRef: ref, State: domain.NewRegistryDownloadState(domain.NewVersion("1.0.0"))},
	}

	_, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		managed,
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestReconciler_Reconcile_ExcludedBindingIsFatal(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	ref := packageRef("example.com/a", "example.com/a")
	binding := domain.DependencyResolverBinding{Package: ref, BoundVersion: domain.ExcludedBinding}

	_, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		map[domain.PackageIdentity]domain.ManagedDependency{},
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if !errors.Is(err, domain.ErrExcludedBinding) {
		t.Fatalf("expected ErrExcludedBinding, got %v", err)
	}
}

func TestReconciler_Reconcile_BranchFreezeReusesPinnedRevision(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{revisions: map[string]domain.Revision{"main": "fresh-revision"}})
	ref := packageRef("example.com/a", "example.com/a")
	binding := domain.DependencyResolverBinding{
		Package:      ref,
		BoundVersion: domain.NewRevisionBinding("", "main"),
	}

	pins := map[domain.PackageIdentity]domain.ResolvedPackage{
		ref.Identity: {PackageRef: ref, State: domain.NewBranchPin("main", "frozen-revision")},
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		map[domain.PackageIdentity]domain.ManagedDependency{},
		pins,
		map[domain.PackageIdentity]bool{},
		false, // updateBranches=false: freeze at the pinned revision
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	got := changes[0].Change.State.Requirement.Revision
	if got != "frozen-revision" {
		t.Errorf("expected the frozen pin revision to be reused, got %q", got)
	}
}

func TestReconciler_Reconcile_BranchUpdateFetchesFreshRevision(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{revisions: map[string]domain.Revision{"main": "fresh-revision"}})
	ref := packageRef("example.com/a", "example.com/a")
	binding := domain.DependencyResolverBinding{
		Package:      ref,
		BoundVersion: domain.NewRevisionBinding("", "main"),
	}

	pins := map[domain.PackageIdentity]domain.ResolvedPackage{
		ref.Identity: {PackageRef: ref, State: domain.NewBranchPin("main", "frozen-revision")},
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		map[domain.PackageIdentity]domain.ManagedDependency{},
		pins,
		map[domain.PackageIdentity]bool{},
		true, // updateBranches=true: always fetch the current tip
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := changes[0].Change.State.Requirement.Revision
	if got != "fresh-revision" {
		t.Errorf("expected the freshly resolved revision, got %q", got)
	}
}

func TestReconciler_Reconcile_RemovesUntouchedManagedPackagesInSortedOrder(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	kept := packageRef("example.com/kept", "example.com/kept")
	zebra := packageRef("example.com/zebra", "example.com/zebra")
	alpha := packageRef("example.com/alpha", "example.com/alpha")

	binding := domain.DependencyResolverBinding{
		Package:      kept,
		BoundVersion: domain.NewVersionBinding(domain.NewVersion("1.0.0")),
	}

	managed := map[domain.PackageIdentity]domain.ManagedDependency{
		kept.Identity:  {PackageRef: kept, State: domain.NewSourceControlCheckoutState(domain.NewVersionCheckout(domain.NewVersion("1.0.0"), "abc"))},
		zebra.Identity: {PackageRef: zebra, State: domain.NewFileSystemState("/local/zebra")},
		alpha.Identity: {PackageRef: alpha, State: domain.NewFileSystemState("/local/alpha")},
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		managed,
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var removedOrder []string
	for _, c := range changes {
		if c.Change.Kind == domain.ChangeRemoved {
			removedOrder = append(removedOrder, c.Package.Identity.String())
		}
	}
	if len(removedOrder) != 2 {
		t.Fatalf("expected 2 removed changes, got %d", len(removedOrder))
	}
	if removedOrder[0] != alpha.Identity.String() || removedOrder[1] != zebra.Identity.String() {
		t.Errorf("expected removals sorted by identity [alpha zebra], got %v", removedOrder)
	}
}

func TestReconciler_Reconcile_LocationDriftTreatedAsFreshBind(t *testing.T) {
	r := reconcile.New(&fakeRevisionResolver{})
	movedRef := packageRef("example.com/a", "example.com/a-new-location")

	managed := map[domain.PackageIdentity]domain.ManagedDependency{
		movedRef.Identity: {
			PackageRef: packageRef("example.com/a", "example.com/a-old-location"),
			State:      domain.NewSourceControlCheckoutState(domain.NewVersionCheckout(domain.NewVersion("1.0.0"), "abc123")),
		},
	}

	binding := domain.DependencyResolverBinding{
		Package:      movedRef,
		BoundVersion: domain.NewVersionBinding(domain.NewVersion("1.0.0")),
	}

	changes, err := r.Reconcile(
		[]domain.DependencyResolverBinding{binding},
		managed,
		map[domain.PackageIdentity]domain.ResolvedPackage{},
		map[domain.PackageIdentity]bool{},
		false,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(changes) != 1 || changes[0].Change.Kind != domain.ChangeAdded {
		t.Fatalf("expected location drift to be treated as a fresh add, got %+v", changes)
	}
}
