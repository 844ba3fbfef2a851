// Package observability implements the propagation-policy sink spec.md §7
// describes, logging every reported diagnostic through ports.Logger.
package observability

import (
	"sync"
	"sync/atomic"

	"github.com/forgepm/resolve/internal/core/domain"
	"github.com/forgepm/resolve/internal/core/ports"
)

// Scope implements ports.ObservabilityScope over a ports.Logger, accumulating
// whether any error has been reported so callers can gate later phases on
// ErrorsReported.
type Scope struct {
	logger   ports.Logger
	reported atomic.Bool
	mu       sync.Mutex
	errors   []error
}

var _ ports.ObservabilityScope = (*Scope)(nil)

// New constructs a Scope that logs through logger.
func New(logger ports.Logger) *Scope {
	return &Scope{logger: logger}
}

// Report records an error, optionally scoped to a package identity.
func (s *Scope) Report(err error, pkg *domain.PackageIdentity) {
	s.reported.Store(true)
	s.mu.Lock()
	s.errors = append(s.errors, err)
	s.mu.Unlock()

	if pkg != nil {
		s.logger.Error(err, "identity", pkg.String())
		return
	}
	s.logger.Error(err)
}

// Warn records a non-fatal warning.
func (s *Scope) Warn(msg string, pkg *domain.PackageIdentity) {
	if pkg != nil {
		s.logger.Warn(msg, "identity", pkg.String())
		return
	}
	s.logger.Warn(msg)
}

// ErrorsReported reports whether Report has been called on this scope.
func (s *Scope) ErrorsReported() bool {
	return s.reported.Load()
}

// Errors returns every error reported to this scope, in report order.
func (s *Scope) Errors() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]error, len(s.errors))
	copy(out, s.errors)
	return out
}
