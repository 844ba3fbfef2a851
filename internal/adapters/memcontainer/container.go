// Package memcontainer provides an in-memory ports.Container/ports.ContainerProvider
// implementation, the container provider the CLI is wired with: no real source-control
// or registry transport is in scope for the resolution core (spec.md Non-goals).
package memcontainer

import (
	"sync"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"go.trai.ch/zerr"
)

// TagHistory describes one package's known tags and the revision each
// resolves to, the fixture shape tests configure a Provider with.
type TagHistory struct {
	Kind      ports.ContainerKind
	Tags      map[string]domain.Revision // version string -> revision
	Revisions map[string]domain.Revision // arbitrary identifier -> revision
	Retrieved map[string]string          // version string -> retrieved path, custom containers only
}

// Container implements ports.Container over a fixed, in-memory TagHistory.
type Container struct {
	history TagHistory
}

var _ ports.Container = (*Container)(nil)

// Kind reports which of the three container variants this is.
func (c *Container) Kind() ports.ContainerKind {
	return c.history.Kind
}

// GetTag returns the source-control tag for a version, if one exists.
func (c *Container) GetTag(version domain.Version) (string, bool, error) {
	if _, ok := c.history.Tags[version.String()]; ok {
		return version.String(), true, nil
	}
	return "", false, nil
}

// GetRevision resolves a tag or arbitrary identifier to a canonical Revision.
func (c *Container) GetRevision(tagOrIdentifier string) (domain.Revision, error) {
	if rev, ok := c.history.Tags[tagOrIdentifier]; ok {
		return rev, nil
	}
	if rev, ok := c.history.Revisions[tagOrIdentifier]; ok {
		return rev, nil
	}
	return "", zerr.With(zerr.New("unknown tag or identifier"), "identifier", tagOrIdentifier)
}

// CheckIntegrity verifies that revision is the recorded binding for version.
// With a zero version (a revision or branch install) it verifies that
// revision is one this history records, as a tag's or an identifier's target.
func (c *Container) CheckIntegrity(version domain.Version, revision domain.Revision) error {
	if version.IsZero() {
		for _, targets := range []map[string]domain.Revision{c.history.Tags, c.history.Revisions} {
			for _, rev := range targets {
				if rev == revision {
					return nil
				}
			}
		}
		return zerr.With(domain.ErrIntegrityCheckFailed, "revision", string(revision))
	}
	rev, ok := c.history.Tags[version.String()]
	if !ok || rev != revision {
		return zerr.With(domain.ErrIntegrityCheckFailed, "version", version.String())
	}
	return nil
}

// Retrieve materializes a custom-kind container's package at version.
func (c *Container) Retrieve(version domain.Version) (string, error) {
	path, ok := c.history.Retrieved[version.String()]
	if !ok {
		return "", zerr.With(zerr.New("no retrievable path recorded for version"), "version", version.String())
	}
	return path, nil
}

// Provider implements ports.ContainerProvider by looking up a fixed
// TagHistory per package identity, coalescing concurrent calls for the same
// package behind a per-identity mutex as the port's contract requires.
type Provider struct {
	mu         sync.Mutex
	histories  map[domain.PackageIdentity]TagHistory
	inFlight   map[domain.PackageIdentity]*sync.Mutex
}

var _ ports.ContainerProvider = (*Provider)(nil)

// NewProvider constructs a Provider from a fixed set of package histories.
func NewProvider(histories map[domain.PackageIdentity]TagHistory) *Provider {
	return &Provider{
		histories: histories,
		inFlight:  make(map[domain.PackageIdentity]*sync.Mutex),
	}
}

// GetContainer returns the Container for ref, coalescing concurrent lookups
// for the same identity behind a per-identity lock.
func (p *Provider) GetContainer(ref domain.PackageReference, _ domain.UpdateStrategy, scope ports.ObservabilityScope) (ports.Container, error) {
	lock := p.identityLock(ref.Identity)
	lock.Lock()
	defer lock.Unlock()

	history, ok := p.histories[ref.Identity]
	if !ok {
		id := ref.Identity
		err := zerr.With(domain.ErrPackageNotFound, "identity", ref.Identity.String())
		if scope != nil {
			scope.Report(err, &id)
		}
		return nil, err
	}
	return &Container{history: history}, nil
}

func (p *Provider) identityLock(id domain.PackageIdentity) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.inFlight[id]
	if !ok {
		lock = &sync.Mutex{}
		p.inFlight[id] = lock
	}
	return lock
}
