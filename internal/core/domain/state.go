package domain

// Revision identifies an exact source-control commit.
type Revision string

// CheckoutKind discriminates the three shapes a source-control checkout can take.
type CheckoutKind int

const (
	// CheckoutKindVersion pins a checkout to a tagged version and its resolved revision.
	CheckoutKindVersion CheckoutKind = iota
	// CheckoutKindRevision pins a checkout to a bare revision with no branch or version.
	CheckoutKindRevision
	// CheckoutKindBranch tracks a named branch at a specific revision.
	CheckoutKindBranch
)

// CheckoutState is the tagged union spec.md §3 describes for source-control checkouts:
// version(Version, revision) | revision(Revision) | branch(name, revision).
type CheckoutState struct {
	Kind     CheckoutKind
	Version  Version
	Revision Revision
	Branch   string
}

// NewVersionCheckout constructs a version-pinned CheckoutState.
func NewVersionCheckout(v Version, rev Revision) CheckoutState {
	return CheckoutState{Kind: CheckoutKindVersion, Version: v, Revision: rev}
}

// NewRevisionCheckout constructs a bare-revision CheckoutState.
func NewRevisionCheckout(rev Revision) CheckoutState {
	return CheckoutState{Kind: CheckoutKindRevision, Revision: rev}
}

// NewBranchCheckout constructs a branch-tracking CheckoutState.
func NewBranchCheckout(branch string, rev Revision) CheckoutState {
	return CheckoutState{Kind: CheckoutKindBranch, Branch: branch, Revision: rev}
}

// Equal reports whether two checkout states denote the identical variant and payload.
func (c CheckoutState) Equal(other CheckoutState) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case CheckoutKindVersion:
		return c.Version.Equal(other.Version) && c.Revision == other.Revision
	case CheckoutKindRevision:
		return c.Revision == other.Revision
	case CheckoutKindBranch:
		return c.Branch == other.Branch && c.Revision == other.Revision
	default:
		return false
	}
}

// ManagedStateKind discriminates the variants of ManagedDependencyState.
type ManagedStateKind int

const (
	// ManagedStateSourceControlCheckout is a materialized SCM working copy.
	ManagedStateSourceControlCheckout ManagedStateKind = iota
	// ManagedStateRegistryDownload is a materialized registry archive extraction.
	ManagedStateRegistryDownload
	// ManagedStateFileSystem is an unversioned local path dependency.
	ManagedStateFileSystem
	// ManagedStateEdited is a user override of a managed dependency.
	ManagedStateEdited
	// ManagedStateCustom is a dependency materialized by a custom container.
	ManagedStateCustom
)

// ManagedDependencyState is the tagged union spec.md §3 defines over the five
// on-disk shapes a managed dependency can take.
type ManagedDependencyState struct {
	Kind ManagedStateKind

	// sourceControlCheckout payload.
	Checkout CheckoutState

	// registryDownload payload.
	RegistryVersion Version

	// fileSystem payload.
	Path string

	// edited payload.
	EditedBasedOn    *ManagedDependency
	EditedUnmanaged  string
	editedHasBasedOn bool

	// custom payload.
	CustomVersion Version
	CustomPath    string
}

// NewSourceControlCheckoutState constructs a sourceControlCheckout state.
func NewSourceControlCheckoutState(c CheckoutState) ManagedDependencyState {
	return ManagedDependencyState{Kind: ManagedStateSourceControlCheckout, Checkout: c}
}

// NewRegistryDownloadState constructs a registryDownload state.
func NewRegistryDownloadState(v Version) ManagedDependencyState {
	return ManagedDependencyState{Kind: ManagedStateRegistryDownload, RegistryVersion: v}
}

// NewFileSystemState constructs a fileSystem state.
func NewFileSystemState(path string) ManagedDependencyState {
	return ManagedDependencyState{Kind: ManagedStateFileSystem, Path: path}
}

// NewEditedState constructs an edited state. basedOn may be nil if the
// package had no prior managed state (a fresh local override).
func NewEditedState(basedOn *ManagedDependency, unmanagedPath string) ManagedDependencyState {
	return ManagedDependencyState{
		Kind:             ManagedStateEdited,
		EditedBasedOn:    basedOn,
		EditedUnmanaged:  unmanagedPath,
		editedHasBasedOn: basedOn != nil,
	}
}

// HasBasedOn reports whether the edited state records an original managed dependency.
func (s ManagedDependencyState) HasBasedOn() bool {
	return s.editedHasBasedOn
}

// NewCustomState constructs a custom state.
func NewCustomState(v Version, path string) ManagedDependencyState {
	return ManagedDependencyState{Kind: ManagedStateCustom, CustomVersion: v, CustomPath: path}
}

// ManagedDependency is a single entry in the Managed Dependency Store (C1):
// {packageRef, state, subpath}. Its identity is the store's primary key.
type ManagedDependency struct {
	PackageRef PackageReference
	State      ManagedDependencyState
	Subpath    string
}

// Identity is a convenience accessor for the primary key.
func (m ManagedDependency) Identity() PackageIdentity {
	return m.PackageRef.Identity
}
