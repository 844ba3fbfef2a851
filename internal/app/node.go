package app

import (
	"context"
	"time"

	"github.com/grindlemire/graft"

	"github.com/forgepm/resolve/internal/adapters/artifacts"
	"github.com/forgepm/resolve/internal/adapters/managedstore"
	"github.com/forgepm/resolve/internal/adapters/manifest"
	"github.com/forgepm/resolve/internal/adapters/memcontainer"
	"github.com/forgepm/resolve/internal/adapters/noopupdater"
	"github.com/forgepm/resolve/internal/adapters/observability"
	"github.com/forgepm/resolve/internal/adapters/pinstore"
	"github.com/forgepm/resolve/internal/adapters/telemetry/progrock"
	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"github.com/forgepm/resolve/internal/engine/checkout"
)

// NodeID is the unique identifier for the orchestrator's Graft node.
const NodeID graft.ID = "app.orchestrator"

// Resolver must be set by the caller before the graft graph is resolved;
// while it is nil the orchestrator node fails with ErrResolutionFailed. The
// PubGrub-style SAT solver is an out-of-scope external collaborator, so
// there is no default implementation registered here.
var Resolver ports.Resolver

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			managedstore.NodeID,
			pinstore.NodeID,
			memcontainer.NodeID,
			artifacts.NodeID,
			noopupdater.ArtifactsNodeID,
			noopupdater.PrebuiltsNodeID,
			observability.NodeID,
			progrock.NodeID,
		},
		Run: runOrchestratorNode,
	})
}

func runOrchestratorNode(ctx context.Context) (*Orchestrator, error) {
	loader, err := graft.Dep[*manifest.Loader](ctx)
	if err != nil {
		return nil, err
	}
	managed, err := graft.Dep[ports.ManagedDependencyStore](ctx)
	if err != nil {
		return nil, err
	}
	pins, err := graft.Dep[ports.PinStore](ctx)
	if err != nil {
		return nil, err
	}
	containers, err := graft.Dep[ports.ContainerProvider](ctx)
	if err != nil {
		return nil, err
	}
	remover, err := graft.Dep[checkout.ArtifactRemover](ctx)
	if err != nil {
		return nil, err
	}
	artifactsUpdater, err := graft.Dep[ports.ArtifactsUpdater](ctx)
	if err != nil {
		return nil, err
	}
	prebuiltsUpdater, err := graft.Dep[ports.PrebuiltsUpdater](ctx)
	if err != nil {
		return nil, err
	}
	scope, err := graft.Dep[ports.ObservabilityScope](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	if Resolver == nil {
		return nil, domain.ErrResolutionFailed
	}

	return New(loader, loader, managed, pins, Resolver, containers, remover, artifactsUpdater, prebuiltsUpdater, scope, noopDelegate{}, tracer, domain.Configuration{}), nil
}

// noopDelegate is the ports.Delegate the graft node always uses; a caller
// that cares about lifecycle events constructs an Orchestrator with New.
type noopDelegate struct{}

func (noopDelegate) WillResolveDependencies(string)                                                    {}
func (noopDelegate) DidResolveDependencies(time.Duration)                                              {}
func (noopDelegate) WillUpdateDependencies()                                                           {}
func (noopDelegate) DidUpdateDependencies(time.Duration)                                               {}
func (noopDelegate) WillComputeVersion(domain.PackageIdentity, string)                                 {}
func (noopDelegate) DidComputeVersion(domain.PackageIdentity, string, domain.Version, time.Duration)   {}
func (noopDelegate) DependenciesUpToDate()                                                             {}
