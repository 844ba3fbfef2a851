package ports

import (
	"time"

	"github.com/forgepm/resolve/internal/core/domain"
)

// ObservabilityScope is the propagation-policy sink spec.md §7 describes:
// diagnostics accumulate here, and the orchestrator checks ErrorsReported
// after every major phase before deciding whether to proceed.
//
//go:generate go run go.uber.org/mock/mockgen -source=observability.go -destination=mocks/mock_observability.go -package=mocks
type ObservabilityScope interface {
	// Report records an error, optionally scoped to a package identity.
	Report(err error, pkg *domain.PackageIdentity)

	// Warn records a non-fatal warning. The resolution core itself does not
	// call it; an edited/binding conflict is not reported.
	Warn(msg string, pkg *domain.PackageIdentity)

	// ErrorsReported reports whether Report has been called this cycle.
	ErrorsReported() bool
}

// Delegate receives the observable lifecycle events spec.md §6 names. All
// methods are optional to implement meaningfully; a no-op delegate is valid.
type Delegate interface {
	WillResolveDependencies(reason string)
	DidResolveDependencies(duration time.Duration)
	WillUpdateDependencies()
	DidUpdateDependencies(duration time.Duration)
	WillComputeVersion(pkg domain.PackageIdentity, location string)
	DidComputeVersion(pkg domain.PackageIdentity, location string, version domain.Version, duration time.Duration)
	DependenciesUpToDate()
}

// Tracer is the entry point for creating spans over units of resolve/checkout
// work, mirroring the shape of a delegate but suited to structured tracing
// backends (spec.md §5's suspension points are natural span boundaries).
type Tracer interface {
	Start(name string) Span
}

// Span represents one traced unit of work.
type Span interface {
	End()
	RecordError(err error)
	SetAttribute(key string, value any)
}
