package domain

// PinStateKind discriminates the three shapes a persisted pin can take.
type PinStateKind int

const (
	// PinStateVersion pins to a version, optionally with its resolved revision.
	PinStateVersion PinStateKind = iota
	// PinStateRevision pins to a bare revision.
	PinStateRevision
	// PinStateBranch pins to a branch name at a specific revision.
	PinStateBranch
)

// PinState is spec.md §3's `PinState = version(Version, revision?) | revision(Revision) | branch(name, revision)`.
type PinState struct {
	Kind     PinStateKind
	Version  Version
	Revision Revision // optional when Kind == PinStateVersion
	Branch   string
}

// NewVersionPin constructs a version pin. rev may be empty when the revision is unknown.
func NewVersionPin(v Version, rev Revision) PinState {
	return PinState{Kind: PinStateVersion, Version: v, Revision: rev}
}

// NewRevisionPin constructs a bare-revision pin.
func NewRevisionPin(rev Revision) PinState {
	return PinState{Kind: PinStateRevision, Revision: rev}
}

// NewBranchPin constructs a branch-tracking pin.
func NewBranchPin(branch string, rev Revision) PinState {
	return PinState{Kind: PinStateBranch, Branch: branch, Revision: rev}
}

// AsCheckoutState converts a source-control-shaped pin into the equivalent
// CheckoutState, used when reconciling against the managed store.
func (p PinState) AsCheckoutState() CheckoutState {
	switch p.Kind {
	case PinStateVersion:
		return NewVersionCheckout(p.Version, p.Revision)
	case PinStateBranch:
		return NewBranchCheckout(p.Branch, p.Revision)
	default:
		return NewRevisionCheckout(p.Revision)
	}
}

// ResolvedPackage is a durable pin: {packageRef, state, originHash?}.
// OriginHash is populated only on the top-level store (spec.md §3 invariant
// I3); it is carried per-entry here purely so adapters can serialize the
// pair without a second lookup.
type ResolvedPackage struct {
	PackageRef PackageReference
	State      PinState
	OriginHash string // empty unless this pin was last written alongside a known origin hash
}

// Identity is a convenience accessor for the primary key.
func (r ResolvedPackage) Identity() PackageIdentity {
	return r.PackageRef.Identity
}

// FromManagedDependency derives a ResolvedPackage per spec.md §4.2's `add`
// rule: sourceControlCheckout mirrors the checkout state, registryDownload(V)
// becomes version(V, nil), and fileSystem/edited/custom are not pinnable.
// ok is false for the unpinnable variants.
func FromManagedDependency(dep ManagedDependency) (ResolvedPackage, bool) {
	switch dep.State.Kind {
	case ManagedStateSourceControlCheckout:
		return ResolvedPackage{
			PackageRef: dep.PackageRef,
			State:      checkoutToPinState(dep.State.Checkout),
		}, true
	case ManagedStateRegistryDownload:
		return ResolvedPackage{
			PackageRef: dep.PackageRef,
			State:      NewVersionPin(dep.State.RegistryVersion, ""),
		}, true
	default:
		return ResolvedPackage{}, false
	}
}

func checkoutToPinState(c CheckoutState) PinState {
	switch c.Kind {
	case CheckoutKindVersion:
		return NewVersionPin(c.Version, c.Revision)
	case CheckoutKindBranch:
		return NewBranchPin(c.Branch, c.Revision)
	default:
		return NewRevisionPin(c.Revision)
	}
}
