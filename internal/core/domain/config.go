package domain

// Configuration is the enumerated set of workspace behavior knobs spec.md §6 names.
type Configuration struct {
	// SkipDependenciesUpdates forces containers to never fetch upstream state.
	SkipDependenciesUpdates bool

	// PrefetchBasedOnResolvedFile pre-warms pinned containers before resolve-from-lock proceeds.
	PrefetchBasedOnResolvedFile bool

	// Traits is the set of enabled trait names, keyed by root package identity.
	Traits map[PackageIdentity]map[string]bool
}

// UpdateStrategy controls how aggressively a container refreshes upstream state (spec.md §4.3).
type UpdateStrategy struct {
	Kind             UpdateStrategyKind
	IfNeededRevision Revision // populated only for UpdateStrategyIfNeeded
}

// UpdateStrategyKind discriminates the three UpdateStrategy variants.
type UpdateStrategyKind int

const (
	// UpdateStrategyNever forbids any network fetch.
	UpdateStrategyNever UpdateStrategyKind = iota
	// UpdateStrategyIfNeeded fetches only if the given revision cannot be satisfied locally.
	UpdateStrategyIfNeeded
	// UpdateStrategyAlways always refreshes from upstream.
	UpdateStrategyAlways
)

// NeverStrategy is the shared never() UpdateStrategy value.
var NeverStrategy = UpdateStrategy{Kind: UpdateStrategyNever}

// AlwaysStrategy is the shared always() UpdateStrategy value.
var AlwaysStrategy = UpdateStrategy{Kind: UpdateStrategyAlways}

// IfNeededStrategy constructs an ifNeeded(revision) UpdateStrategy.
func IfNeededStrategy(rev Revision) UpdateStrategy {
	return UpdateStrategy{Kind: UpdateStrategyIfNeeded, IfNeededRevision: rev}
}
