package irrelevant

import (
	"io"
	"os"
	"sync/atomic"
)

// Sink receives violated assumptions of [Warn], [Abort] and [Debug] directives.
type Sink interface {
	Report(v *Violation)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(v *Violation)

// Report calls f(v).
func (f SinkFunc) Report(v *Violation) { f(v) }

// NewWriterSink returns a sink writing every violation as a single line with a single Write call.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Report(v *Violation) {
	_, _ = io.WriteString(s.w, v.Error()+"\n")
}

var sink atomic.Pointer[Sink]

// SetSink replaces the process-wide sink, standard error by default. A nil sink restores the
// default one. The returned function puts the previous sink back.
func SetSink(s Sink) (restore func()) {
	if s == nil {
		s = NewWriterSink(os.Stderr)
	}

	prev := sink.Swap(&s)
	return func() {
		sink.Store(prev)
	}
}

func currentSink() Sink {
	if s := sink.Load(); s != nil {
		return *s
	}

	return NewWriterSink(os.Stderr)
}
