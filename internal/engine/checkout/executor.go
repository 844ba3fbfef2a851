// Package checkout implements the Checkout Executor (C7): applying
// reconciled state changes in two strict phases, removals before installs,
// each phase parallel across packages (spec.md §4.6).
package checkout

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
)

// ArtifactRemover deletes the on-disk artifact directory for a removed
// managed dependency. Standing in for direct filesystem access so the
// executor stays testable without touching real disk state.
type ArtifactRemover interface {
	RemoveArtifact(id domain.PackageIdentity) error
}

// Executor applies reconciler output against the managed store and the
// container provider.
type Executor struct {
	store     ports.ManagedDependencyStore
	providers ports.ContainerProvider
	remover   ArtifactRemover
	scope     ports.ObservabilityScope
}

// New creates a Checkout Executor.
func New(store ports.ManagedDependencyStore, providers ports.ContainerProvider, remover ArtifactRemover, scope ports.ObservabilityScope) *Executor {
	return &Executor{store: store, providers: providers, remover: remover, scope: scope}
}

// Apply runs Phase A (removals) to completion, then Phase B (installs), per
// spec.md §4.6. Each installation operation is idempotent: repeating it with
// an identical target state should be a no-op, which the store's Put
// implementation is responsible for making cheap.
func (e *Executor) Apply(ctx context.Context, changes []domain.ReconciledChange) error {
	if err := e.applyRemovals(ctx, changes); err != nil {
		return err
	}
	return e.applyInstalls(ctx, changes)
}

// applyRemovals runs Phase A: sequential-per-package, parallel-across-packages
// removal, all completing before Phase B begins so identity slots are free.
func (e *Executor) applyRemovals(ctx context.Context, changes []domain.ReconciledChange) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range changes {
		if c.Change.Kind != domain.ChangeRemoved {
			continue
		}
		ref := c.Package
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if err := e.remover.RemoveArtifact(ref.Identity); err != nil {
				e.scope.Report(err, &ref.Identity)
				return err
			}
			if err := e.store.Remove(ref.Identity); err != nil {
				e.scope.Report(err, &ref.Identity)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// applyInstalls runs Phase B: parallel-across-packages install/update.
// Transport errors are trapped per-task (spec.md §7's propagation policy) so
// one bad package does not abort the whole cycle; the missing-packages
// invariant (spec.md §4.9), checked by the orchestrator afterward, is what
// ultimately decides whether the cycle fails.
func (e *Executor) applyInstalls(ctx context.Context, changes []domain.ReconciledChange) error {
	var mu sync.Mutex
	var firstErr error

	var wg sync.WaitGroup
	for _, c := range changes {
		if c.Change.Kind != domain.ChangeAdded && c.Change.Kind != domain.ChangeUpdated {
			continue
		}
		change := c
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := e.installOne(ctx, change); err != nil {
				e.scope.Report(err, &change.Package.Identity)
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func (e *Executor) installOne(ctx context.Context, c domain.ReconciledChange) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	req := c.Change.State.Requirement
	switch req.Kind {
	case domain.RequirementUnversioned:
		return e.store.Put(domain.ManagedDependency{
			PackageRef: c.Package,
			State:      domain.NewFileSystemState(c.Package.Location),
		})

	case domain.RequirementRevision:
		container, err := e.providers.GetContainer(c.Package, domain.AlwaysStrategy, e.scope)
		if err != nil {
			return err
		}
		var checkoutState domain.CheckoutState
		if req.Branch != "" {
			checkoutState = domain.NewBranchCheckout(req.Branch, req.Revision)
		} else {
			checkoutState = domain.NewRevisionCheckout(req.Revision)
		}
		if err := container.CheckIntegrity(domain.Version{}, req.Revision); err != nil {
			return err
		}
		return e.store.Put(domain.ManagedDependency{
			PackageRef: c.Package,
			State:      domain.NewSourceControlCheckoutState(checkoutState),
		})

	default: // domain.RequirementVersion
		return e.installVersion(c.Package, req.Version)
	}
}

func (e *Executor) installVersion(ref domain.PackageReference, v domain.Version) error {
	container, err := e.providers.GetContainer(ref, domain.AlwaysStrategy, e.scope)
	if err != nil {
		return err
	}

	switch container.Kind() {
	case ports.ContainerKindSourceControl:
		tag, found, err := container.GetTag(v)
		if err != nil {
			return err
		}
		identifier := tag
		if !found {
			identifier = v.String()
		}
		revision, err := container.GetRevision(identifier)
		if err != nil {
			return err
		}
		if err := container.CheckIntegrity(v, revision); err != nil {
			return domain.ErrIntegrityCheckFailed
		}
		return e.store.Put(domain.ManagedDependency{
			PackageRef: ref,
			State:      domain.NewSourceControlCheckoutState(domain.NewVersionCheckout(v, revision)),
		})

	case ports.ContainerKindRegistry:
		return e.store.Put(domain.ManagedDependency{
			PackageRef: ref,
			State:      domain.NewRegistryDownloadState(v),
		})

	default: // ports.ContainerKindCustom
		path, err := container.Retrieve(v)
		if err != nil {
			return err
		}
		return e.store.Put(domain.ManagedDependency{
			PackageRef: ref,
			State:      domain.NewCustomState(v, path),
		})
	}
}
