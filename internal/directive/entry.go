package directive

import (
	"encoding"
	"fmt"

	"github.com/sirkon/irrelevant"
)

// Func is a kind of directive function.
type Func int

const (
	funcInvalid Func = iota

	// FuncDiscard takes a value and optional reasons: Discard(v, reason...).
	FuncDiscard

	// FuncNarrow takes a value of the explicitly given type: Narrow[T](v, reason...).
	FuncNarrow

	// FuncEnforce takes a value, a reason and optional qualifiers: Warn(v, reason, q...).
	FuncEnforce
)

// Entry describes a function recognised as a directive.
type Entry struct {
	Func     Func
	Strength irrelevant.Strength
}

var (
	_ encoding.TextMarshaler   = Entry{}
	_ encoding.TextUnmarshaler = (*Entry)(nil)
)

// MarshalText renders an entry as one of discard, narrow, warn, abort, debug.
func (e Entry) MarshalText() ([]byte, error) {
	switch e.Func {
	case FuncDiscard:
		return []byte("discard"), nil
	case FuncNarrow:
		return []byte("narrow"), nil
	case FuncEnforce:
		return e.Strength.MarshalText()
	default:
		return nil, fmt.Errorf("cannot marshal invalid directive Func(%d)", e.Func)
	}
}

// UnmarshalText for setting values with configs.
func (e *Entry) UnmarshalText(b []byte) error {
	switch string(b) {
	case "discard":
		*e = Entry{Func: FuncDiscard}
		return nil
	case "narrow":
		*e = Entry{Func: FuncNarrow}
		return nil
	}

	var s irrelevant.Strength
	if err := s.UnmarshalText(b); err != nil {
		return fmt.Errorf("unknown directive kind %q", b)
	}

	*e = Entry{Func: FuncEnforce, Strength: s}
	return nil
}

func (e Entry) String() string {
	v, err := e.MarshalText()
	if err != nil {
		return fmt.Sprintf("directive-invalid(%d)", e.Func)
	}

	return string(v)
}

// QualifierFunc is a kind of qualifier constructor.
type QualifierFunc int

const (
	qualifierInvalid QualifierFunc = iota

	// QualifierType is Type[T]().
	QualifierType

	// QualifierHolds is Holds(pred).
	QualifierHolds

	// QualifierThat is That(cond).
	QualifierThat
)

var qualifierValueMap = map[QualifierFunc]string{
	QualifierType:  "type",
	QualifierHolds: "holds",
	QualifierThat:  "that",
}

func (q QualifierFunc) String() string {
	v, ok := qualifierValueMap[q]
	if !ok {
		return fmt.Sprintf("qualifier-invalid(%d)", q)
	}

	return v
}

var _ encoding.TextUnmarshaler = (*QualifierFunc)(nil)

func (q *QualifierFunc) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range qualifierValueMap {
		if v == text {
			*q = k
			return nil
		}
	}

	return fmt.Errorf("unknown qualifier kind %q", text)
}
