package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/engine/precompute"
	"go.trai.ch/zerr"
)

// Resolve implements spec.md §4.7's resolve(root, strategy).
func (o *Orchestrator) Resolve(ctx context.Context, rootPaths []string, strategy Strategy) ([]domain.ReconciledChange, precompute.Result, error) {
	switch strategy.Kind {
	case StrategyLockFile:
		return o.resolveLockFile(ctx, rootPaths)
	case StrategyUpdate:
		return o.resolveUpdate(ctx, rootPaths, strategy)
	default:
		return o.resolveBestEffort(ctx, rootPaths, strategy)
	}
}

func (o *Orchestrator) resolveLockFile(ctx context.Context, rootPaths []string) ([]domain.ReconciledChange, precompute.Result, error) {
	_, result, err := o.resolveFromLock(ctx, rootPaths)
	if err != nil {
		return nil, result, err
	}
	if result.Kind == precompute.ResultRequired {
		o.scope.Report(domain.ErrLockFileStale, nil)
		return nil, result, domain.ErrLockFileStale
	}
	o.delegate.DependenciesUpToDate()
	return nil, result, nil
}

func (o *Orchestrator) resolveUpdate(ctx context.Context, rootPaths []string, strategy Strategy) ([]domain.ReconciledChange, precompute.Result, error) {
	if !strategy.Force {
		_, result, err := o.resolveFromLock(ctx, rootPaths)
		if err == nil && result.Kind == precompute.ResultNotRequired {
			o.delegate.DependenciesUpToDate()
			return nil, result, nil
		}
	}
	changes, err := o.Update(ctx, rootPaths, nil, false, strategy.UpdateBranches)
	return changes, precompute.Result{}, err
}

func (o *Orchestrator) resolveBestEffort(ctx context.Context, rootPaths []string, strategy Strategy) ([]domain.ReconciledChange, precompute.Result, error) {
	if err := o.managed.Load(); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load managed dependency store"), nil)
		return nil, precompute.Result{}, err
	}
	if o.hasEditedDependency() {
		changes, err := o.Update(ctx, rootPaths, nil, false, strategy.UpdateBranches)
		return changes, precompute.Result{}, err
	}

	if o.originHashMismatch(ctx, rootPaths) {
		changes, err := o.Update(ctx, rootPaths, nil, false, strategy.UpdateBranches)
		return changes, precompute.Result{}, err
	}

	_, result, err := o.resolveFromLock(ctx, rootPaths)
	if err != nil {
		return nil, result, err
	}
	if result.Kind == precompute.ResultRequired {
		changes, err := o.Update(ctx, rootPaths, nil, false, strategy.UpdateBranches)
		return changes, precompute.Result{}, err
	}

	o.delegate.DependenciesUpToDate()
	return nil, result, nil
}

func (o *Orchestrator) hasEditedDependency() bool {
	for _, dep := range o.managed.Snapshot() {
		if dep.State.Kind == domain.ManagedStateEdited {
			return true
		}
	}
	return false
}

func (o *Orchestrator) originHashMismatch(ctx context.Context, rootPaths []string) bool {
	rootManifests, order, err := o.loadRoots(ctx, rootPaths)
	if err != nil {
		return true
	}
	current := computeOriginHash(rootManifests, order)

	if err := o.pins.Load(); err != nil {
		return true
	}
	_, stored := o.pins.Snapshot()
	return stored == "" || stored != current
}

// resolveFromLock implements spec.md §4.8's resolve-from-lock procedure.
func (o *Orchestrator) resolveFromLock(ctx context.Context, rootPaths []string) (domain.DependencyManifests, precompute.Result, error) {
	rootManifests, order, err := o.loadRoots(ctx, rootPaths)
	if err != nil {
		return domain.DependencyManifests{}, precompute.Result{}, err
	}
	graph := buildGraphRoot(rootManifests, order)

	if err := o.pins.Load(); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load pin store"), nil)
		return domain.DependencyManifests{}, precompute.Result{}, err
	}
	pinsList, _ := o.pins.Snapshot()

	if err := o.managed.Load(); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load managed dependency store"), nil)
		return domain.DependencyManifests{}, precompute.Result{}, err
	}
	managedSnapshot := toManagedMap(o.managed.Snapshot())

	// Step 2: prewarm containers in parallel using a strategy derived from
	// each pin's state.
	o.prewarmContainers(ctx, pinsList)

	// Step 3: select pins requiring actual reprocessing.
	toReprocess := selectPinsRequiringReprocessing(pinsList, managedSnapshot)

	// Step 4: parallel checkout/download of the selected pins.
	changes := pinsToChanges(toReprocess)
	if len(changes) > 0 {
		if err := o.executor.Apply(ctx, changes); err != nil {
			o.scope.Report(err, nil)
			return domain.DependencyManifests{}, precompute.Result{}, err
		}
	}

	// Step 5: reload manifests, refresh artifacts/prebuilts, precompute.
	reloaded, err := o.deps.LoadDependencyManifests(ctx, graph, true)
	if err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to reload dependency manifests"), nil)
		return domain.DependencyManifests{}, precompute.Result{}, err
	}

	// addedOrUpdatedPackages = [] here even though clones may have just
	// happened; see DESIGN.md's Open Question decision for why this is
	// implemented literally rather than guessed at.
	if err := o.artifacts.UpdateBinaryArtifacts(ctx, reloaded, nil); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to update binary artifacts"), nil)
	}
	if err := o.prebuilts.UpdatePrebuilts(ctx, reloaded, nil); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to update prebuilts"), nil)
	}

	pinHints := toPinMap(pinsList)
	result := o.precomputer.Precompute(nil, reloaded, reloaded.EditedPackagesConstraints, nil, pinHints, false, o.scope.ErrorsReported())
	return reloaded, result, nil
}

func (o *Orchestrator) prewarmContainers(ctx context.Context, pinsList []domain.ResolvedPackage) {
	g, _ := errgroup.WithContext(ctx)
	for _, pin := range pinsList {
		pin := pin
		g.Go(func() error {
			strategy := updateStrategyForPin(pin, o.config.SkipDependenciesUpdates)
			_, err := o.containers.GetContainer(pin.PackageRef, strategy, o.scope)
			if err != nil {
				o.scope.Report(err, &pin.PackageRef.Identity)
			}
			return nil // per-task errors are trapped, never fail the group
		})
	}
	_ = g.Wait()
}

// updateStrategyForPin derives the container update strategy for a pin,
// per spec.md §4.8 step 2.
func updateStrategyForPin(pin domain.ResolvedPackage, skip bool) domain.UpdateStrategy {
	if skip {
		return domain.NeverStrategy
	}
	switch pin.State.Kind {
	case domain.PinStateBranch, domain.PinStateRevision:
		return domain.IfNeededStrategy(pin.State.Revision)
	case domain.PinStateVersion:
		if pin.State.Revision != "" {
			return domain.IfNeededStrategy(pin.State.Revision)
		}
		return domain.AlwaysStrategy
	default:
		return domain.AlwaysStrategy
	}
}

// selectPinsRequiringReprocessing implements spec.md §4.8 step 3.
func selectPinsRequiringReprocessing(pins []domain.ResolvedPackage, managed map[domain.PackageIdentity]domain.ManagedDependency) []domain.ResolvedPackage {
	var out []domain.ResolvedPackage
	for _, pin := range pins {
		dep, ok := managed[pin.Identity()]
		if !ok {
			out = append(out, pin)
			continue
		}
		if dep.State.Kind == domain.ManagedStateEdited || dep.State.Kind == domain.ManagedStateFileSystem || dep.State.Kind == domain.ManagedStateCustom {
			out = append(out, pin)
			continue
		}
		if dep.PackageRef.Location != pin.PackageRef.Location {
			out = append(out, pin)
			continue
		}
		if dep.State.Kind != domain.ManagedStateSourceControlCheckout || !dep.State.Checkout.Equal(pin.State.AsCheckoutState()) {
			out = append(out, pin)
		}
	}
	return out
}

func pinsToChanges(pins []domain.ResolvedPackage) []domain.ReconciledChange {
	changes := make([]domain.ReconciledChange, 0, len(pins))
	for _, pin := range pins {
		changes = append(changes, domain.ReconciledChange{
			Package: pin.PackageRef,
			Change:  domain.NewAddedChange(domain.State{Requirement: requirementFromPinState(pin.State)}),
		})
	}
	return changes
}

func requirementFromPinState(state domain.PinState) domain.Requirement {
	switch state.Kind {
	case domain.PinStateVersion:
		return domain.Requirement{Kind: domain.RequirementVersion, Version: state.Version}
	case domain.PinStateBranch:
		return domain.Requirement{Kind: domain.RequirementRevision, Revision: state.Revision, Branch: state.Branch}
	default:
		return domain.Requirement{Kind: domain.RequirementRevision, Revision: state.Revision}
	}
}
