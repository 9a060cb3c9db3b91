package irrelevant_test

import (
	"sync"
	"testing"

	"github.com/sirkon/irrelevant"
)

type sauce struct {
	name string
}

type sauces []sauce

func (s sauces) IsEmpty() bool { return len(s) == 0 }

type permissionSet struct{}

type automaticProfiler struct{}

// recorder collects violations instead of writing them to stderr.
type recorder struct {
	mu  sync.Mutex
	got []*irrelevant.Violation
}

func (r *recorder) Report(v *irrelevant.Violation) {
	r.mu.Lock()
	r.got = append(r.got, v)
	r.mu.Unlock()
}

func (r *recorder) violations() []*irrelevant.Violation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*irrelevant.Violation, len(r.got))
	copy(out, r.got)
	return out
}

func record(t *testing.T) *recorder {
	t.Helper()

	r := &recorder{}
	t.Cleanup(irrelevant.SetSink(r))
	return r
}

// ensureNoSauces is a project wrapper marked as a directive helper.
func ensureNoSauces(s sauces) {
	irrelevant.Helper()
	irrelevant.Warn(s, "No sauces should come with a drink!", irrelevant.Holds(sauces.IsEmpty))
}

// ensureNoSaucesNested wraps the helper once more.
func ensureNoSaucesNested(s sauces) {
	irrelevant.Helper()
	ensureNoSauces(s)
}

// ensureNoSaucesUnmarked is the same wrapper without the helper mark.
func ensureNoSaucesUnmarked(s sauces) {
	irrelevant.Warn(s, "No sauces should come with a drink!", irrelevant.Holds(sauces.IsEmpty))
}

func catchPanic(f func()) (v any) {
	defer func() {
		v = recover()
	}()

	f()
	return nil
}
