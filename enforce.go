package irrelevant

import (
	"reflect"
	"runtime"
	"sync"
)

// Frames between runtime.Caller in locate and the directive call site:
// locate, enforce, entry point.
const callerSkip = 3

// helpers holds fully qualified names of functions marked with Helper.
var helpers sync.Map

// Helper marks the calling function as a directive helper. A violation raised through a helper
// is reported at the helper's caller rather than inside the helper, the same way [testing.T.Helper]
// works for test failures. Helpers may be nested.
func Helper() {
	var pc [1]uintptr
	if runtime.Callers(2, pc[:]) == 0 {
		return
	}

	frame, _ := runtime.CallersFrames(pc[:]).Next()
	if frame.Function != "" {
		helpers.Store(frame.Function, struct{}{})
	}
}

// enforce is the single check procedure behind Warn, Abort and Debug. Only the first qualifier
// is used.
func enforce[V any](strength Strength, v V, reason string, qualifiers []Qualifier) Ignored {
	if len(qualifiers) == 0 || qualifiers[0] == nil {
		return Ignored{}
	}

	q := qualifiers[0]
	holds, detail := q.assume(reflect.ValueOf(&v).Elem())
	if holds {
		return Ignored{}
	}

	violation := &Violation{
		Location: locate(callerSkip),
		Reason:   reason,
		Strength: strength,
		Variant:  q.variant(),
		Detail:   detail,
	}
	currentSink().Report(violation)

	if strength == StrengthAbort {
		panic(violation)
	}

	return Ignored{}
}

// locate returns the first frame at or above skip that is not a registered helper.
func locate(skip int) Location {
	var pcs [32]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	if n == 0 {
		return Location{File: "???"}
	}

	frames := runtime.CallersFrames(pcs[:n])
	var first Location
	for {
		frame, more := frames.Next()
		loc := Location{File: frame.File, Line: frame.Line}
		if first.File == "" {
			first = loc
		}
		if _, ok := helpers.Load(frame.Function); !ok {
			return loc
		}
		if !more {
			break
		}
	}

	return first
}
