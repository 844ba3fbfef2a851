// Package progrock implements ports.Tracer as a tracing sink on top of
// github.com/vito/progrock: one vertex per Start call (the orchestrator
// starts one per solve), mirroring the teacher's one-vertex-per-task model.
package progrock

import (
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/forgepm/resolve/internal/core/ports"
)

// Recorder implements ports.Tracer using progrock.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder writing to a default in-memory tape.
func New() ports.Tracer {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder over the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{w: w, rec: progrock.NewRecorder(w)}
}

// Start begins a new vertex named after the traced unit of work (the
// orchestrator uses "resolve.solve").
func (r *Recorder) Start(name string) ports.Span {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return &Span{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
