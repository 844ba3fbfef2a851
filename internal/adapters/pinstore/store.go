// Package pinstore implements the Resolved Packages Store (C2) as a YAML
// lock file, following the teacher's config-loader YAML DTO shape but with
// atomic temp-file-then-rename writes: a lock file must never be observed
// half-written.
package pinstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"go.trai.ch/zerr"
)

// lockFileDTO is the on-disk YAML shape of the resolved-packages lock file.
type lockFileDTO struct {
	OriginHash          string    `yaml:"originHash"`
	MinimumToolsVersion string    `yaml:"minimumToolsVersion,omitempty"`
	Pins                []pinDTO  `yaml:"pins"`
}

type pinDTO struct {
	Identity string `yaml:"identity"`
	Location string `yaml:"location"`
	Kind     string `yaml:"kind"`
	State    string `yaml:"state"`
	Version  string `yaml:"version,omitempty"`
	Revision string `yaml:"revision,omitempty"`
	Branch   string `yaml:"branch,omitempty"`
}

const (
	stateVersion  = "version"
	stateRevision = "revision"
	stateBranch   = "branch"
)

// Store implements ports.PinStore over a single YAML lock file.
type Store struct {
	path string

	mu         sync.RWMutex
	pins       map[domain.PackageIdentity]domain.ResolvedPackage
	originHash string
	toolsVer   string
}

var _ ports.PinStore = (*Store)(nil)

// NewStore creates a Store backed by the lock file at path.
func NewStore(path string) *Store {
	return &Store{
		path: filepath.Clean(path),
		pins: make(map[domain.PackageIdentity]domain.ResolvedPackage),
	}
}

// Load reads the lock file from disk. A missing file means an empty store.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read lock file")
	}
	if len(data) == 0 {
		return nil
	}

	var dto lockFileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return zerr.Wrap(err, "failed to parse lock file")
	}

	pins := make(map[domain.PackageIdentity]domain.ResolvedPackage, len(dto.Pins))
	for _, p := range dto.Pins {
		pin, err := pinFromDTO(p, dto.OriginHash)
		if err != nil {
			return err
		}
		pins[pin.Identity()] = pin
	}

	s.pins = pins
	s.originHash = dto.OriginHash
	s.toolsVer = dto.MinimumToolsVersion
	return nil
}

// Save persists the current pin set alongside originHash and
// minimumToolsVersion, atomically.
func (s *Store) Save(originHash string, minimumToolsVersion string) error {
	s.mu.Lock()
	s.originHash = originHash
	s.toolsVer = minimumToolsVersion
	dto := lockFileDTO{
		OriginHash:          originHash,
		MinimumToolsVersion: minimumToolsVersion,
		Pins:                make([]pinDTO, 0, len(s.pins)),
	}
	for _, pin := range s.pins {
		dto.Pins = append(dto.Pins, pinToDTO(pin))
	}
	// Stable serialization: sort by identity so unrelated resolve runs
	// produce diffable lock files.
	sort.Slice(dto.Pins, func(i, j int) bool { return dto.Pins[i].Identity < dto.Pins[j].Identity })
	s.mu.Unlock()

	data, err := yaml.Marshal(dto)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lock file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for lock file")
	}

	tmp, err := os.CreateTemp(dir, ".lock-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file for lock file")
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to write lock file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to close temp file for lock file")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.Wrap(err, "failed to rename temp file into lock file")
	}
	return nil
}

// Add derives a pin from dep per domain.FromManagedDependency and records it
// in memory (does not persist; callers call Save once per resolution cycle).
func (s *Store) Add(dep domain.ManagedDependency) error {
	pin, ok := domain.FromManagedDependency(dep)
	if !ok {
		return zerr.With(zerr.New("managed dependency state is not pinnable"), "identity", dep.Identity().String())
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pins[pin.Identity()] = pin
	return nil
}

// Remove deletes the pin matching ref's identity.
func (s *Store) Remove(ref domain.PackageReference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pins, ref.Identity)
	return nil
}

// Get returns the pin recorded for id, if any.
func (s *Store) Get(id domain.PackageIdentity) (domain.ResolvedPackage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pin, ok := s.pins[id]
	return pin, ok
}

// GetByLocation returns a pin iff both identity and location match ref.
func (s *Store) GetByLocation(ref domain.PackageReference) (domain.ResolvedPackage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pin, ok := s.pins[ref.Identity]
	if !ok || !pin.PackageRef.SameLocation(ref) {
		return domain.ResolvedPackage{}, false
	}
	return pin, true
}

// Snapshot returns an immutable copy of every pin plus the origin hash.
func (s *Store) Snapshot() ([]domain.ResolvedPackage, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ResolvedPackage, 0, len(s.pins))
	for _, pin := range s.pins {
		out = append(out, pin)
	}
	return out, s.originHash
}

func pinToDTO(pin domain.ResolvedPackage) pinDTO {
	d := pinDTO{
		Identity: pin.Identity().String(),
		Location: pin.PackageRef.Location,
		Kind:     string(pin.PackageRef.Kind),
	}
	switch pin.State.Kind {
	case domain.PinStateVersion:
		d.State = stateVersion
		d.Version = pin.State.Version.String()
		d.Revision = string(pin.State.Revision)
	case domain.PinStateRevision:
		d.State = stateRevision
		d.Revision = string(pin.State.Revision)
	case domain.PinStateBranch:
		d.State = stateBranch
		d.Branch = pin.State.Branch
		d.Revision = string(pin.State.Revision)
	}
	return d
}

func pinFromDTO(d pinDTO, originHash string) (domain.ResolvedPackage, error) {
	ref := domain.PackageReference{
		Identity: domain.NewPackageIdentity(d.Identity),
		Kind:     domain.ReferenceKind(d.Kind),
		Location: d.Location,
	}

	var state domain.PinState
	switch d.State {
	case stateVersion:
		state = domain.NewVersionPin(domain.NewVersion(d.Version), domain.Revision(d.Revision))
	case stateRevision:
		state = domain.NewRevisionPin(domain.Revision(d.Revision))
	case stateBranch:
		state = domain.NewBranchPin(d.Branch, domain.Revision(d.Revision))
	default:
		return domain.ResolvedPackage{}, zerr.With(zerr.New("unknown pin state on disk"), "state", d.State)
	}

	return domain.ResolvedPackage{
		PackageRef: ref,
		State:      state,
		OriginHash: originHash,
	}, nil
}
