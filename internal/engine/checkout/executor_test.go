package checkout_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/forgepm/resolve/internal/adapters/memcontainer"
	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"github.com/forgepm/resolve/internal/core/ports/mocks"
	"github.com/forgepm/resolve/internal/engine/checkout"
)

// fakeArtifactRemover records which identities were asked to be removed,
// standing in for real disk access.
type fakeArtifactRemover struct {
	mu       sync.Mutex
	removed  []domain.PackageIdentity
	failWith error
}

func (f *fakeArtifactRemover) RemoveArtifact(id domain.PackageIdentity) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return nil
}

func checkoutRef(identity string) domain.PackageReference {
	return domain.PackageReference{
		Identity: domain.NewPackageIdentity(identity),
		Kind:     domain.ReferenceKindRemoteSourceControl,
		Location: identity,
	}
}

func TestExecutor_Apply_UnversionedInstallsFileSystemState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := checkoutRef("example.com/a")
	change := domain.ReconciledChange{
		Package: ref,
		Change:  domain.NewAddedChange(domain.State{Requirement: domain.Requirement{Kind: domain.RequirementUnversioned}}),
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(dep domain.ManagedDependency) error {
		assert.Equal(t, domain.ManagedStateFileSystem, dep.State.Kind)
		assert.Equal(t, ref.Location, dep.State.Path)
		return nil
	})

	scope := mocks.NewMockObservabilityScope(ctrl)
	provider := memcontainer.NewProvider(nil)
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), []domain.ReconciledChange{change})
	require.NoError(t, err)
}

func TestExecutor_Apply_VersionInstallFromSourceControlContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := checkoutRef("example.com/a")
	v := domain.NewVersion("1.0.0")
	change := domain.ReconciledChange{
		Package: ref,
		Change: domain.NewAddedChange(domain.State{
			Requirement: domain.Requirement{Kind: domain.RequirementVersion, Version: v},
		}),
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(dep domain.ManagedDependency) error {
		assert.Equal(t, domain.ManagedStateSourceControlCheckout, dep.State.Kind)
		assert.Equal(t, domain.CheckoutKindVersion, dep.State.Checkout.Kind)
		assert.Equal(t, domain.Revision("rev-1.0.0"), dep.State.Checkout.Revision)
		return nil
	})

	scope := mocks.NewMockObservabilityScope(ctrl)
	provider := memcontainer.NewProvider(map[domain.PackageIdentity]memcontainer.TagHistory{
		ref.Identity: {
			Kind:      ports.ContainerKindSourceControl,
			Tags:      map[string]domain.Revision{"1.0.0": "rev-1.0.0"},
			Revisions: map[string]domain.Revision{},
		},
	})
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), []domain.ReconciledChange{change})
	require.NoError(t, err)
}

func TestExecutor_Apply_VersionInstallFromRegistryContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := checkoutRef("example.com/registry-pkg")
	v := domain.NewVersion("2.0.0")
	change := domain.ReconciledChange{
		Package: ref,
		Change: domain.NewAddedChange(domain.State{
			Requirement: domain.Requirement{Kind: domain.RequirementVersion, Version: v},
		}),
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(dep domain.ManagedDependency) error {
		assert.Equal(t, domain.ManagedStateRegistryDownload, dep.State.Kind)
		assert.True(t, dep.State.RegistryVersion.Equal(v))
		return nil
	})

	scope := mocks.NewMockObservabilityScope(ctrl)
	provider := memcontainer.NewProvider(map[domain.PackageIdentity]memcontainer.TagHistory{
		ref.Identity: {Kind: ports.ContainerKindRegistry},
	})
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), []domain.ReconciledChange{change})
	require.NoError(t, err)
}

func TestExecutor_Apply_VersionInstallFromCustomContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := checkoutRef("example.com/custom-pkg")
	v := domain.NewVersion("1.5.0")
	change := domain.ReconciledChange{
		Package: ref,
		Change: domain.NewAddedChange(domain.State{
			Requirement: domain.Requirement{Kind: domain.RequirementVersion, Version: v},
		}),
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(dep domain.ManagedDependency) error {
		assert.Equal(t, domain.ManagedStateCustom, dep.State.Kind)
		assert.Equal(t, "/materialized/1.5.0", dep.State.CustomPath)
		return nil
	})

	scope := mocks.NewMockObservabilityScope(ctrl)
	provider := memcontainer.NewProvider(map[domain.PackageIdentity]memcontainer.TagHistory{
		ref.Identity: {
			Kind:      ports.ContainerKindCustom,
			Retrieved: map[string]string{"1.5.0": "/materialized/1.5.0"},
		},
	})
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), []domain.ReconciledChange{change})
	require.NoError(t, err)
}

func TestExecutor_Apply_RevisionInstallChecksIntegrity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := checkoutRef("example.com/pinned")
	change := domain.ReconciledChange{
		Package: ref,
		Change: domain.NewAddedChange(domain.State{
			Requirement: domain.Requirement{Kind: domain.RequirementRevision, Revision: "abc123", Branch: "main"},
		}),
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(dep domain.ManagedDependency) error {
		assert.Equal(t, domain.CheckoutKindBranch, dep.State.Checkout.Kind)
		assert.Equal(t, domain.Revision("abc123"), dep.State.Checkout.Revision)
		return nil
	})

	scope := mocks.NewMockObservabilityScope(ctrl)
	provider := memcontainer.NewProvider(map[domain.PackageIdentity]memcontainer.TagHistory{
		ref.Identity: {
			Kind: ports.ContainerKindSourceControl,
			Tags: map[string]domain.Revision{"abc123": "abc123"},
		},
	})
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), []domain.ReconciledChange{change})
	require.NoError(t, err)
}

func TestExecutor_Apply_RemovalsCompleteBeforeInstalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	removed := checkoutRef("example.com/gone")
	added := checkoutRef("example.com/new")

	changes := []domain.ReconciledChange{
		{Package: removed, Change: domain.RemovedChange},
		{
			Package: added,
			Change:  domain.NewAddedChange(domain.State{Requirement: domain.Requirement{Kind: domain.RequirementUnversioned}}),
		},
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Remove(removed.Identity).Return(nil),
		store.EXPECT().Put(gomock.Any()).Return(nil),
	)

	scope := mocks.NewMockObservabilityScope(ctrl)
	provider := memcontainer.NewProvider(nil)
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), changes)
	require.NoError(t, err)

	require.Len(t, remover.removed, 1)
	assert.Equal(t, removed.Identity, remover.removed[0])
}

func TestExecutor_Apply_RemovalArtifactErrorReportedAndReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ref := checkoutRef("example.com/broken")
	change := domain.ReconciledChange{Package: ref, Change: domain.RemovedChange}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	// Remove on the store must not be reached once RemoveArtifact fails.

	scope := mocks.NewMockObservabilityScope(ctrl)
	scope.EXPECT().Report(gomock.Any(), &ref.Identity).AnyTimes()

	remover := &fakeArtifactRemover{failWith: assertError{"disk error"}}
	provider := memcontainer.NewProvider(nil)

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), []domain.ReconciledChange{change})
	require.Error(t, err)
}

func TestExecutor_Apply_InstallErrorsAreTrappedPerTaskNotAborted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := checkoutRef("example.com/broken")
	ok := checkoutRef("example.com/ok")

	changes := []domain.ReconciledChange{
		{
			Package: broken,
			Change: domain.NewAddedChange(domain.State{
				Requirement: domain.Requirement{Kind: domain.RequirementVersion, Version: domain.NewVersion("1.0.0")},
			}),
		},
		{
			Package: ok,
			Change:  domain.NewAddedChange(domain.State{Requirement: domain.Requirement{Kind: domain.RequirementUnversioned}}),
		},
	}

	store := mocks.NewMockManagedDependencyStore(ctrl)
	store.EXPECT().Put(gomock.Any()).DoAndReturn(func(dep domain.ManagedDependency) error {
		assert.Equal(t, domain.ManagedStateFileSystem, dep.State.Kind)
		return nil
	})

	scope := mocks.NewMockObservabilityScope(ctrl)
	scope.EXPECT().Report(gomock.Any(), &broken.Identity).AnyTimes()

	// broken has no container history registered, so GetContainer fails.
	provider := memcontainer.NewProvider(nil)
	remover := &fakeArtifactRemover{}

	e := checkout.New(store, provider, remover, scope)
	err := e.Apply(context.Background(), changes)
	require.Error(t, err, "expected the broken package's error to propagate as firstErr")
}

// assertError is a minimal error value for constructing failure fixtures.
type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
