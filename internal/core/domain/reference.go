package domain

// ReferenceKind discriminates how a PackageReference names its target.
type ReferenceKind string

const (
	// ReferenceKindRoot names one of the workspace's own root packages.
	ReferenceKindRoot ReferenceKind = "root"
	// ReferenceKindFileSystem names an unversioned local path dependency.
	ReferenceKindFileSystem ReferenceKind = "fileSystem"
	// ReferenceKindLocalSourceControl names a source-control checkout on local disk.
	ReferenceKindLocalSourceControl ReferenceKind = "localSourceControl"
	// ReferenceKindRemoteSourceControl names a source-control URL dependency.
	ReferenceKindRemoteSourceControl ReferenceKind = "remoteSourceControl"
	// ReferenceKindRegistry names a registry-identity + version dependency.
	ReferenceKindRegistry ReferenceKind = "registry"
	// ReferenceKindEdited names a user-initiated local override of a managed dependency.
	ReferenceKindEdited ReferenceKind = "edited"
)

// PackageReference names a package by identity, kind, and location.
//
// Two references with the same Identity but different Location are distinct
// for change detection (a package's source URL can move) but share the same
// key in the pin store, keyed by Identity alone.
type PackageReference struct {
	Identity PackageIdentity
	Kind     ReferenceKind
	Location string
}

// SameLocation reports whether two references share both identity and location.
func (r PackageReference) SameLocation(other PackageReference) bool {
	return r.Identity == other.Identity && r.Location == other.Location
}
