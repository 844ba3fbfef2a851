// Package managedstore implements the Managed Dependency Store (C1) as a
// flat JSON file, following the teacher's build-info cache shape.
package managedstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"go.trai.ch/zerr"
)

// entry is the on-disk shape of a single managed dependency, plus a
// fingerprint of its recorded subpath used for cheap drift detection.
type entry struct {
	Identity    string `json:"identity"`
	Location    string `json:"location"`
	Kind        string `json:"kind"`
	StateKind   int    `json:"stateKind"`
	Version     string `json:"version,omitempty"`
	Revision    string `json:"revision,omitempty"`
	Branch      string `json:"branch,omitempty"`
	Path        string `json:"path,omitempty"`
	Subpath     string `json:"subpath,omitempty"`
	Fingerprint uint64 `json:"fingerprint"`
}

// Store implements ports.ManagedDependencyStore using a flat JSON file.
type Store struct {
	path string

	mu    sync.RWMutex
	cache map[domain.PackageIdentity]domain.ManagedDependency
}

var _ ports.ManagedDependencyStore = (*Store)(nil)

// NewStore creates a Store backed by the file at path. The file is not read
// until Load is called, matching ports.ManagedDependencyStore's contract.
func NewStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[domain.PackageIdentity]domain.ManagedDependency),
	}
}

// Load reads the store's contents from disk, replacing the in-memory cache.
// A missing file is not an error: it means an empty store.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read managed dependency store")
	}
	if len(data) == 0 {
		return nil
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return zerr.Wrap(err, "failed to unmarshal managed dependency store")
	}

	cache := make(map[domain.PackageIdentity]domain.ManagedDependency, len(entries))
	for _, e := range entries {
		if e.Fingerprint != fingerprint(e.Subpath) {
			return zerr.With(zerr.New("managed dependency store entry failed fingerprint check"), "identity", e.Identity)
		}
		dep, err := entryToDomain(e)
		if err != nil {
			return err
		}
		cache[dep.Identity()] = dep
	}
	s.cache = cache
	return nil
}

// Save writes the current in-memory cache to disk atomically.
func (s *Store) Save() error {
	s.mu.RLock()
	entries := make([]entry, 0, len(s.cache))
	for _, dep := range s.cache {
		entries = append(entries, domainToEntry(dep))
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal managed dependency store")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for managed dependency store")
	}

	tmp, err := os.CreateTemp(dir, ".managed-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file for managed dependency store")
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to write managed dependency store")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to close temp file for managed dependency store")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to rename temp file into managed dependency store")
	}
	return nil
}

// Get returns the managed dependency recorded for id, if any.
func (s *Store) Get(id domain.PackageIdentity) (domain.ManagedDependency, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dep, ok := s.cache[id]
	return dep, ok
}

// Put records or replaces the managed dependency and persists the store.
func (s *Store) Put(dep domain.ManagedDependency) error {
	s.mu.Lock()
	s.cache[dep.Identity()] = dep
	s.mu.Unlock()
	return s.Save()
}

// Remove deletes the managed dependency for id and persists the store.
func (s *Store) Remove(id domain.PackageIdentity) error {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
	return s.Save()
}

// Snapshot returns an immutable copy of every managed dependency.
func (s *Store) Snapshot() []domain.ManagedDependency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ManagedDependency, 0, len(s.cache))
	for _, dep := range s.cache {
		out = append(out, dep)
	}
	return out
}

func fingerprint(subpath string) uint64 {
	return xxhash.Sum64String(subpath)
}

func domainToEntry(dep domain.ManagedDependency) entry {
	e := entry{
		Identity:    dep.Identity().String(),
		Location:    dep.PackageRef.Location,
		Kind:        string(dep.PackageRef.Kind),
		StateKind:   int(dep.State.Kind),
		Subpath:     dep.Subpath,
		Fingerprint: fingerprint(dep.Subpath),
	}
	switch dep.State.Kind {
	case domain.ManagedStateSourceControlCheckout:
		c := dep.State.Checkout
		e.Version = c.Version.String()
		e.Revision = string(c.Revision)
		e.Branch = c.Branch
	case domain.ManagedStateRegistryDownload:
		e.Version = dep.State.RegistryVersion.String()
	case domain.ManagedStateFileSystem:
		e.Path = dep.State.Path
	case domain.ManagedStateEdited:
		e.Path = dep.State.EditedUnmanaged
	case domain.ManagedStateCustom:
		e.Version = dep.State.CustomVersion.String()
		e.Path = dep.State.CustomPath
	}
	return e
}

func entryToDomain(e entry) (domain.ManagedDependency, error) {
	ref := domain.PackageReference{
		Identity: domain.NewPackageIdentity(e.Identity),
		Kind:     domain.ReferenceKind(e.Kind),
		Location: e.Location,
	}

	var state domain.ManagedDependencyState
	switch domain.ManagedStateKind(e.StateKind) {
	case domain.ManagedStateSourceControlCheckout:
		checkout := checkoutFromEntry(e)
		state = domain.NewSourceControlCheckoutState(checkout)
	case domain.ManagedStateRegistryDownload:
		state = domain.NewRegistryDownloadState(domain.NewVersion(e.Version))
	case domain.ManagedStateFileSystem:
		state = domain.NewFileSystemState(e.Path)
	case domain.ManagedStateEdited:
		state = domain.NewEditedState(nil, e.Path)
	case domain.ManagedStateCustom:
		state = domain.NewCustomState(domain.NewVersion(e.Version), e.Path)
	default:
		return domain.ManagedDependency{}, zerr.With(zerr.New("unknown managed state kind on disk"), "state_kind", e.StateKind)
	}

	return domain.ManagedDependency{
		PackageRef: ref,
		State:      state,
		Subpath:    e.Subpath,
	}, nil
}

func checkoutFromEntry(e entry) domain.CheckoutState {
	switch {
	case e.Branch != "":
		return domain.NewBranchCheckout(e.Branch, domain.Revision(e.Revision))
	case e.Version != "":
		return domain.NewVersionCheckout(domain.NewVersion(e.Version), domain.Revision(e.Revision))
	default:
		return domain.NewRevisionCheckout(domain.Revision(e.Revision))
	}
}
