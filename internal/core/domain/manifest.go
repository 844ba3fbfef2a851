package domain

// RootManifest is the parsed form of one root package's manifest file, as
// produced by the out-of-scope manifest-parsing collaborator (spec.md §1).
// The core only needs the root's identity, its raw bytes (for the origin
// hash), its declared top-level dependencies, and its minimum tools version.
type RootManifest struct {
	Identity            PackageIdentity
	Path                string
	RawBytes            []byte
	Dependencies        []PackageReference
	MinimumToolsVersion string
}

// DependencyManifests is the result of loading the full dependency manifest
// set for a graph root (spec.md §6's `loadDependencyManifests`).
type DependencyManifests struct {
	DependencyConstraints     []Requirement
	EditedPackagesConstraints []Requirement
	MissingPackages           []PackageIdentity
	RequiredPackages          []PackageIdentity
}

// RequiredIdentitySet returns RequiredPackages as a set, used by the
// missing-packages invariant check (spec.md §4.9) and by tests asserting P1.
func (d DependencyManifests) RequiredIdentitySet() map[PackageIdentity]bool {
	set := make(map[PackageIdentity]bool, len(d.RequiredPackages))
	for _, id := range d.RequiredPackages {
		set[id] = true
	}
	return set
}
