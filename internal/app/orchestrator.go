// Package app implements the Resolve Orchestrator (C9): the entry points
// update, resolve, and resolve-from-lock that select a strategy and drive
// the Precomputer, State Reconciler, and Checkout Executor (spec.md §4.7-4.9).
package app

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"github.com/forgepm/resolve/internal/engine/checkout"
	"github.com/forgepm/resolve/internal/engine/precompute"
	"github.com/forgepm/resolve/internal/engine/reconcile"
	"go.trai.ch/zerr"
)

// Orchestrator wires together every consumed collaborator and engine
// component into the three entry points spec.md §4.7/§4.8 name.
type Orchestrator struct {
	roots      ports.RootManifestLoader
	deps       ports.DependencyManifestLoader
	managed    ports.ManagedDependencyStore
	pins       ports.PinStore
	resolver   ports.Resolver
	containers ports.ContainerProvider
	artifacts  ports.ArtifactsUpdater
	prebuilts  ports.PrebuiltsUpdater
	scope      ports.ObservabilityScope
	delegate   ports.Delegate
	tracer     ports.Tracer
	config     domain.Configuration

	reconciler  *reconcile.Reconciler
	precomputer *precompute.Precomputer
	executor    *checkout.Executor
	revisions   *containerRevisionResolver

	// activeResolver is the spec.md §5/§9 cancellation slot: set before
	// Solve and cleared after, single-threaded from the orchestrator's own
	// perspective but readable by an external cancel signal at any time.
	activeResolver atomic.Pointer[ports.ResolverHandle]

	// DeprecatedNames records identity migrations consulted by the
	// partial-update pin-dropping step (spec.md §4.7 step 3).
	DeprecatedNames []domain.DeprecatedNameSet
}

// New constructs an Orchestrator from every collaborator it drives.
func New(
	roots ports.RootManifestLoader,
	deps ports.DependencyManifestLoader,
	managed ports.ManagedDependencyStore,
	pins ports.PinStore,
	resolver ports.Resolver,
	containers ports.ContainerProvider,
	remover checkout.ArtifactRemover,
	artifacts ports.ArtifactsUpdater,
	prebuilts ports.PrebuiltsUpdater,
	scope ports.ObservabilityScope,
	delegate ports.Delegate,
	tracer ports.Tracer,
	config domain.Configuration,
) *Orchestrator {
	o := &Orchestrator{
		roots:      roots,
		deps:       deps,
		managed:    managed,
		pins:       pins,
		resolver:   resolver,
		containers: containers,
		artifacts:  artifacts,
		prebuilts:  prebuilts,
		scope:      scope,
		delegate:   delegate,
		tracer:     tracer,
		config:     config,
	}
	o.revisions = &containerRevisionResolver{containers: containers, scope: scope, delegate: delegate}
	o.reconciler = reconcile.New(o.revisions)
	o.precomputer = precompute.New(resolver)
	o.executor = checkout.New(managed, containers, remover, scope)
	return o
}

// Update implements spec.md §4.7's update(root, packages?, dryRun).
func (o *Orchestrator) Update(ctx context.Context, rootPaths []string, packages []domain.PackageIdentity, dryRun bool, updateBranches bool) ([]domain.ReconciledChange, error) {
	if len(rootPaths) == 0 {
		return nil, domain.ErrNoRootPackages
	}

	o.delegate.WillUpdateDependencies()
	start := time.Now()

	rootManifests, order, err := o.loadRoots(ctx, rootPaths)
	if err != nil {
		return nil, err
	}
	originHash := computeOriginHash(rootManifests, order)

	if err := o.managed.Load(); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load managed dependency store"), nil)
		return nil, err
	}
	if err := o.pins.Load(); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load pin store"), nil)
		return nil, err
	}

	pinsList, _ := o.pins.Snapshot()
	pinHints := toPinMap(pinsList)
	if len(packages) > 0 {
		dropMatchingPins(pinHints, packages, o.DeprecatedNames)
	}

	graph := buildGraphRoot(rootManifests, order)
	if err := graph.Validate(); err != nil {
		o.scope.Report(err, nil)
		return nil, err
	}

	depManifests, err := o.deps.LoadDependencyManifests(ctx, graph, true)
	if err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load dependency manifests"), nil)
		return nil, err
	}

	if o.scope.ErrorsReported() {
		return nil, domain.ErrResolutionFailed
	}

	constraints := ports.SolveConstraints{
		Requirements:   concatRequirements(depManifests.EditedPackagesConstraints, depManifests.DependencyConstraints),
		PinHints:       pinHints,
		UpdateBranches: updateBranches,
	}

	changes, err := o.solveAndReconcile(constraints, graph, pinHints, updateBranches)
	if err != nil {
		return nil, err
	}

	if dryRun {
		return changes, nil
	}

	if err := o.executor.Apply(ctx, changes); err != nil {
		return nil, err
	}
	if o.scope.ErrorsReported() {
		return nil, domain.ErrResolutionFailed
	}

	reloaded, err := o.deps.LoadDependencyManifests(ctx, graph, true)
	if err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to reload dependency manifests"), nil)
		return nil, err
	}
	if len(reloaded.MissingPackages) > 0 {
		o.scope.Report(domain.ErrExhaustedAttempts, nil)
		return nil, domain.ErrExhaustedAttempts
	}

	if err := o.savePins(changes, originHash, minimumToolsVersion(rootManifests)); err != nil {
		return nil, err
	}

	o.delegate.DidUpdateDependencies(time.Since(start))
	return changes, nil
}

// solveAndReconcile invokes the resolver under the active-resolver
// cancellation slot and, on success, reconciles bindings against the
// managed store snapshot. It resets the per-cycle memoized delegate
// fan-out gate and fires willResolveDependencies/didResolveDependencies
// around the solve step (spec.md §6), wrapped in a tracer span.
func (o *Orchestrator) solveAndReconcile(
	constraints ports.SolveConstraints,
	graph *domain.RequiredPackageGraph,
	pinHints map[domain.PackageIdentity]domain.ResolvedPackage,
	updateBranches bool,
) ([]domain.ReconciledChange, error) {
	o.revisions.Reset()

	span := o.tracer.Start("resolve.solve")
	o.delegate.WillResolveDependencies("update")
	start := time.Now()
	bindings, failure, err := o.solve(constraints)
	o.delegate.DidResolveDependencies(time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.End()
		o.scope.Report(err, nil)
		return nil, err
	}
	if failure != nil {
		wrapped := zerr.With(domain.ErrResolutionFailed, "message", failure.Message)
		span.RecordError(wrapped)
		span.End()
		o.scope.Report(wrapped, nil)
		return nil, wrapped
	}
	span.End()

	roots := rootIdentitySet(graph)
	managedSnapshot := toManagedMap(o.managed.Snapshot())
	changes, err := o.reconciler.Reconcile(bindings, managedSnapshot, pinHints, roots, updateBranches)
	if err != nil {
		o.scope.Report(err, nil)
		return nil, err
	}
	return changes, nil
}

// solve wraps Resolver.Solve with the active-resolver cancellation slot.
func (o *Orchestrator) solve(constraints ports.SolveConstraints) ([]domain.DependencyResolverBinding, *ports.SolveFailure, error) {
	if handle, ok := o.resolver.(ports.ResolverHandle); ok {
		o.activeResolver.Store(&handle)
		defer o.activeResolver.Store(nil)
	}
	return o.resolver.Solve(constraints)
}

// Cancel cancels the currently active resolve, if any. Safe to call from a
// goroutine other than the one driving the orchestrator (e.g. a SIGINT
// handler), single-threaded with respect to the pointer swap itself.
func (o *Orchestrator) Cancel() {
	if handle := o.activeResolver.Load(); handle != nil {
		(*handle).Cancel()
	}
}

// savePins rebuilds the pin store from this cycle's required identity set
// and persists it, per spec.md P2: save happens at most once, only after
// every Phase-B task has succeeded.
//
// It does not mutate the loaded pin map in place: the reconciler only knows
// how to flag a *managed* dependency as removed, so a pin that survived from
// a previous lock without ever being materialized into the managed store
// (spec.md I2 permits such unmaterialized pins) would never be caught by a
// removed change and would be resaved forever, violating P1
// (forall pin: pin.identity ∈ required_identities). Instead, every pin not
// in this cycle's required set is dropped, whether or not it is backed by a
// managed dependency, then the required set is rebuilt from the managed
// snapshot.
func (o *Orchestrator) savePins(changes []domain.ReconciledChange, originHash, minimumToolsVersion string) error {
	required := make(map[domain.PackageIdentity]bool, len(changes))
	for _, c := range changes {
		if c.Change.Kind != domain.ChangeRemoved {
			required[c.Package.Identity] = true
		}
	}

	existing, _ := o.pins.Snapshot()
	for _, pin := range existing {
		if !required[pin.Identity()] {
			_ = o.pins.Remove(pin.PackageRef)
		}
	}
	for _, dep := range o.managed.Snapshot() {
		if required[dep.Identity()] {
			_ = o.pins.Add(dep) // unpinnable states (fileSystem/edited/custom) are silently skipped
		}
	}

	if err := o.pins.Save(originHash, minimumToolsVersion); err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to save pin store"), nil)
		return err
	}
	return nil
}

func (o *Orchestrator) loadRoots(ctx context.Context, rootPaths []string) (map[domain.PackageIdentity]domain.RootManifest, []string, error) {
	manifests, err := o.roots.LoadRootManifests(ctx, rootPaths)
	if err != nil {
		o.scope.Report(zerr.Wrap(err, "failed to load root manifests"), nil)
		return nil, nil, err
	}
	order := make([]string, 0, len(manifests))
	byPath := make(map[string]domain.PackageIdentity, len(manifests))
	for id, m := range manifests {
		byPath[m.Path] = id
	}
	for _, path := range rootPaths {
		if _, ok := byPath[path]; ok {
			order = append(order, path)
		}
	}
	return manifests, order, nil
}

func buildGraphRoot(manifests map[domain.PackageIdentity]domain.RootManifest, order []string) *domain.RequiredPackageGraph {
	graph := domain.NewRequiredPackageGraph()
	byPath := make(map[string]domain.RootManifest, len(manifests))
	for _, m := range manifests {
		byPath[m.Path] = m
	}
	for _, path := range order {
		m := byPath[path]
		depIDs := make([]domain.PackageIdentity, 0, len(m.Dependencies))
		for _, dep := range m.Dependencies {
			depIDs = append(depIDs, dep.Identity)
		}
		ref := domain.PackageReference{Identity: m.Identity, Kind: domain.ReferenceKindRoot, Location: m.Path}
		_ = graph.AddPackage(ref, depIDs)
		for _, dep := range m.Dependencies {
			if _, ok := graph.Package(dep.Identity); !ok {
				_ = graph.AddPackage(dep, nil)
			}
		}
	}
	return graph
}

func computeOriginHash(manifests map[domain.PackageIdentity]domain.RootManifest, order []string) string {
	byPath := make(map[string]domain.RootManifest, len(manifests))
	for _, m := range manifests {
		byPath[m.Path] = m
	}
	bytesInOrder := make([][]byte, 0, len(order))
	var locations []string
	for _, path := range order {
		m := byPath[path]
		bytesInOrder = append(bytesInOrder, m.RawBytes)
		for _, dep := range m.Dependencies {
			locations = append(locations, dep.Location)
		}
	}
	return domain.ComputeOriginHash(bytesInOrder, locations)
}

func minimumToolsVersion(manifests map[domain.PackageIdentity]domain.RootManifest) string {
	var highest string
	for _, m := range manifests {
		if m.MinimumToolsVersion == "" {
			continue
		}
		if highest == "" || domain.NewVersion(m.MinimumToolsVersion).Compare(domain.NewVersion(highest)) > 0 {
			highest = m.MinimumToolsVersion
		}
	}
	return highest
}

func rootIdentitySet(graph *domain.RequiredPackageGraph) map[domain.PackageIdentity]bool {
	set := make(map[domain.PackageIdentity]bool)
	for _, id := range graph.Roots() {
		set[id] = true
	}
	return set
}

func toManagedMap(deps []domain.ManagedDependency) map[domain.PackageIdentity]domain.ManagedDependency {
	out := make(map[domain.PackageIdentity]domain.ManagedDependency, len(deps))
	for _, d := range deps {
		out[d.Identity()] = d
	}
	return out
}

func toPinMap(pins []domain.ResolvedPackage) map[domain.PackageIdentity]domain.ResolvedPackage {
	out := make(map[domain.PackageIdentity]domain.ResolvedPackage, len(pins))
	for _, p := range pins {
		out[p.Identity()] = p
	}
	return out
}

// dropMatchingPins implements spec.md §4.7 step 3: drop pins whose identity
// or deprecated-name matches a requested package, in place.
func dropMatchingPins(pinHints map[domain.PackageIdentity]domain.ResolvedPackage, requested []domain.PackageIdentity, deprecated []domain.DeprecatedNameSet) {
	for _, want := range requested {
		delete(pinHints, want)
		for _, set := range deprecated {
			if set.Matches(want) {
				delete(pinHints, set.Current)
			}
		}
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
