package domain

import "go.trai.ch/zerr"

var (
	// ErrIdentityAlreadyExists is returned when a graph or store already has an entry for an identity.
	ErrIdentityAlreadyExists = zerr.New("package identity already exists")

	// ErrPackageNotFound is returned when a requested package identity is not present.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrIllegalTransition is returned when a reconciler binding implies a state
	// transition the data model forbids (e.g. unversioned for a registry package).
	ErrIllegalTransition = zerr.New("illegal managed dependency state transition")

	// ErrExcludedBinding is returned when the resolver emits a binding the core
	// must never see; a solver bug, not a user-facing condition.
	ErrExcludedBinding = zerr.New("resolver returned an excluded binding")

	// ErrExhaustedAttempts is the fatal inconsistency error of spec.md §4.9: after
	// materializing a resolution, the reloaded manifests still reference packages
	// that were not materialized.
	ErrExhaustedAttempts = zerr.New("exhausted attempts: required packages still missing after checkout")

	// ErrLockFileStale is returned by the lockFile strategy when precomputation
	// determines resolution is required but the lock file is supposed to be authoritative.
	ErrLockFileStale = zerr.New("lock file is stale or missing and cannot be used as authoritative")

	// ErrNoRootPackages is returned when an orchestrator entry point is invoked
	// with no root manifests loaded.
	ErrNoRootPackages = zerr.New("no root packages specified")

	// ErrInvalidPackageReference is returned for malformed root references or
	// identities that cannot be mapped to a canonical form.
	ErrInvalidPackageReference = zerr.New("invalid package reference")

	// ErrIntegrityCheckFailed is returned when a container's revision fails
	// its integrity check against the requested version.
	ErrIntegrityCheckFailed = zerr.New("container integrity check failed")

	// ErrResolutionFailed wraps a solver-reported unsatisfiable result.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrCycleDetected is returned when a package requirement graph contains a cycle.
	ErrCycleDetected = zerr.New("cycle detected in package requirement graph")

	// ErrMissingDependency is returned when a graph references a package not present in it.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrPersistence wraps a pin-store or managed-store load/save failure.
	ErrPersistence = zerr.New("persistence failure")
)
