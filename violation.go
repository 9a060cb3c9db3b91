package irrelevant

import (
	"errors"
	"strconv"
	"strings"
)

// ErrAssumptionViolated is the sentinel error of every [*Violation].
var ErrAssumptionViolated = errors.New("assumption violated")

// Location of a directive in the source code.
type Location struct {
	File string
	Line int

	// Column is 0 when unknown. The Go runtime does not expose columns of call sites.
	Column int
}

func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.File)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(l.Line))
	if l.Column > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(l.Column))
	}

	return b.String()
}

// Violation describes a false assumption found at a discard site.
type Violation struct {
	Location Location
	Reason   string
	Strength Strength
	Variant  Variant

	// Detail is set when the assumption could not even be evaluated properly, like a predicate
	// that does not accept the value's type.
	Detail string
}

// Error renders the violation as a single line:
//
//	[drinks.go:65] Assumption violated: no sauces should come with a drink
func (v *Violation) Error() string {
	if v == nil {
		return ErrAssumptionViolated.Error()
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(v.Location.String())
	b.WriteString("] Assumption violated: ")
	b.WriteString(v.Reason)
	if v.Detail != "" {
		b.WriteString(" (")
		b.WriteString(v.Detail)
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the sentinel for errors.Is.
func (v *Violation) Unwrap() error {
	return ErrAssumptionViolated
}
