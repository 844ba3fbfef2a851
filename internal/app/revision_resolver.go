package app

import (
	"sync"
	"time"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
)

// containerRevisionResolver implements reconcile.RevisionResolver by asking
// the container provider for the canonical revision behind a tag, branch
// name, or bare revision identifier (spec.md §4.5 step 3).
//
// It also fires the willComputeVersion/didComputeVersion delegate pair
// (spec.md §6) around each container lookup. Per spec.md §9's "concurrent
// map for one-shot delegate fan-out" design note, the event must fire at
// most once per identity despite the same package potentially being
// revisited within a cycle; touched tracks that with sync.Map's atomic
// LoadOrStore rather than a plain map, so the resolver stays safe to call
// concurrently.
type containerRevisionResolver struct {
	containers ports.ContainerProvider
	scope      ports.ObservabilityScope
	delegate   ports.Delegate

	touched sync.Map // domain.PackageIdentity -> struct{}
}

// Reset clears the one-shot fan-out gate, called at the start of every
// resolve cycle so each cycle re-fires its own willComputeVersion events.
func (r *containerRevisionResolver) Reset() {
	r.touched = sync.Map{}
}

func (r *containerRevisionResolver) ResolveRevision(ref domain.PackageReference, identifier string) (domain.Revision, error) {
	container, err := r.containers.GetContainer(ref, domain.AlwaysStrategy, r.scope)
	if err != nil {
		return "", err
	}

	if _, alreadyTouched := r.touched.LoadOrStore(ref.Identity, struct{}{}); alreadyTouched {
		return container.GetRevision(identifier)
	}

	r.delegate.WillComputeVersion(ref.Identity, ref.Location)
	start := time.Now()
	revision, err := container.GetRevision(identifier)
	if err != nil {
		return "", err
	}
	r.delegate.DidComputeVersion(ref.Identity, ref.Location, domain.NewVersion(string(revision)), time.Since(start))
	return revision, nil
}
