package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// RecordError attaches an error to the span; it is reported to progrock
// when the span ends.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute writes a key/value pair to the vertex's stdout stream, since
// progrock vertices have no native attribute bag.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End marks the vertex as finished, successfully or with the last error
// recorded via RecordError.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
