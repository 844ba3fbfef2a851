// Package manifest implements the root and dependency manifest loaders,
// following the teacher's YAML DTO -> domain translation shape.
package manifest

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
	"go.trai.ch/zerr"
)

// manifestDTO is the on-disk YAML shape of a package manifest file.
type manifestDTO struct {
	Name                 string             `yaml:"name"`
	MinimumToolsVersion  string             `yaml:"minimumToolsVersion,omitempty"`
	Dependencies         []dependencyDTO    `yaml:"dependencies"`
}

type dependencyDTO struct {
	Identity string `yaml:"identity"`
	Kind     string `yaml:"kind"`
	Location string `yaml:"location"`
}

// Loader implements ports.RootManifestLoader and ports.DependencyManifestLoader
// by reading a manifestDTO file named Filename from each package's directory.
type Loader struct {
	Filename string
}

var (
	_ ports.RootManifestLoader       = (*Loader)(nil)
	_ ports.DependencyManifestLoader = (*Loader)(nil)
)

// NewLoader constructs a Loader that reads filename from each package path.
func NewLoader(filename string) *Loader {
	return &Loader{Filename: filename}
}

// LoadRootManifests reads and parses the manifest file under each given
// directory path, keyed by the parsed package identity.
func (l *Loader) LoadRootManifests(_ context.Context, paths []string) (map[domain.PackageIdentity]domain.RootManifest, error) {
	out := make(map[domain.PackageIdentity]domain.RootManifest, len(paths))
	for _, dir := range paths {
		manifest, err := l.loadOne(dir)
		if err != nil {
			return nil, err
		}
		out[manifest.Identity] = manifest
	}
	return out, nil
}

func (l *Loader) loadOne(dir string) (domain.RootManifest, error) {
	path := filepath.Join(dir, l.Filename)
	//nolint:gosec // path is joined from a caller-trusted workspace root
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RootManifest{}, zerr.Wrap(err, "failed to read manifest file")
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.RootManifest{}, zerr.Wrap(err, "failed to parse manifest file")
	}

	deps := make([]domain.PackageReference, 0, len(dto.Dependencies))
	for _, d := range dto.Dependencies {
		deps = append(deps, domain.PackageReference{
			Identity: domain.NewPackageIdentity(d.Identity),
			Kind:     domain.ReferenceKind(d.Kind),
			Location: d.Location,
		})
	}

	return domain.RootManifest{
		Identity:            domain.NewPackageIdentity(dto.Name),
		Path:                path,
		RawBytes:            data,
		Dependencies:        deps,
		MinimumToolsVersion: dto.MinimumToolsVersion,
	}, nil
}

// LoadDependencyManifests walks root's required-package graph and derives the
// aggregate constraint/edited/missing/required sets spec.md §6 names. It
// treats each package's declared PackageReference.Location as its manifest
// directory and only checks that the manifest file exists there; non-root
// manifests are not parsed, and each package found contributes one
// unversioned requirement.
func (l *Loader) LoadDependencyManifests(_ context.Context, root *domain.RequiredPackageGraph, autoAdd bool) (domain.DependencyManifests, error) {
	var out domain.DependencyManifests
	seen := make(map[domain.PackageIdentity]bool)

	for ref := range root.Walk() {
		if seen[ref.Identity] {
			continue
		}
		seen[ref.Identity] = true
		out.RequiredPackages = append(out.RequiredPackages, ref.Identity)

		if ref.Kind == domain.ReferenceKindEdited {
			out.EditedPackagesConstraints = append(out.EditedPackagesConstraints, domain.Requirement{Kind: domain.RequirementUnversioned})
			continue
		}

		dir := ref.Location
		if dir == "" {
			if autoAdd {
				continue
			}
			out.MissingPackages = append(out.MissingPackages, ref.Identity)
			continue
		}

		if _, err := os.Stat(filepath.Join(dir, l.Filename)); err != nil {
			out.MissingPackages = append(out.MissingPackages, ref.Identity)
			continue
		}

		out.DependencyConstraints = append(out.DependencyConstraints, domain.Requirement{Kind: domain.RequirementUnversioned})
	}

	return out, nil
}
