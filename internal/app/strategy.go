package app

// StrategyKind discriminates the three ways Resolve can be driven
// (spec.md §4.7).
type StrategyKind int

const (
	// StrategyLockFile treats the lock file as authoritative: resolve-from-lock
	// only, erroring if precomputation says real resolution is required.
	StrategyLockFile StrategyKind = iota
	// StrategyUpdate runs a full resolve+update, skipping precomputation
	// entirely when Force is set.
	StrategyUpdate
	// StrategyBestEffort resolves from the lock when it's trustworthy and
	// falls back to a full update otherwise.
	StrategyBestEffort
)

// Strategy selects one of spec.md §4.7's three resolution strategies.
type Strategy struct {
	Kind StrategyKind

	// Force applies only to StrategyUpdate: skip precomputation, always solve.
	Force bool

	// UpdateBranches controls branch-freeze semantics (spec.md §4.5 step 3,
	// P6): false reuses a previously pinned branch revision instead of the
	// freshly observed upstream head.
	UpdateBranches bool
}

// LockFile constructs the lockFile strategy.
func LockFile() Strategy { return Strategy{Kind: StrategyLockFile} }

// Update constructs the update(force) strategy.
func Update(force, updateBranches bool) Strategy {
	return Strategy{Kind: StrategyUpdate, Force: force, UpdateBranches: updateBranches}
}

// BestEffort constructs the bestEffort strategy.
func BestEffort(updateBranches bool) Strategy {
	return Strategy{Kind: StrategyBestEffort, UpdateBranches: updateBranches}
}
