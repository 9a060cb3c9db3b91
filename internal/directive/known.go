package directive

import (
	"maps"

	"github.com/sirkon/irrelevant"
)

// RuntimePath is the import path of the package providing directives.
const RuntimePath = "github.com/sirkon/irrelevant"

// Known is a table of functions recognised as directives and qualifier constructors.
type Known struct {
	directives map[Reference]Entry
	qualifiers map[Reference]QualifierFunc
}

// NewKnown returns the runtime package functions merged with custom ones, which are usually
// project wrappers over directives. Custom entries cannot override predefined ones.
func NewKnown(directives map[Reference]Entry, qualifiers map[Reference]QualifierFunc) *Known {
	predefined := map[Reference]Entry{
		{Package: RuntimePath, Name: "Discard"}: {Func: FuncDiscard},
		{Package: RuntimePath, Name: "Narrow"}:  {Func: FuncNarrow},
		{Package: RuntimePath, Name: "Warn"}:    {Func: FuncEnforce, Strength: irrelevant.StrengthWarn},
		{Package: RuntimePath, Name: "Abort"}:   {Func: FuncEnforce, Strength: irrelevant.StrengthAbort},
		{Package: RuntimePath, Name: "Debug"}:   {Func: FuncEnforce, Strength: irrelevant.StrengthDebug},
	}
	predefinedQualifiers := map[Reference]QualifierFunc{
		{Package: RuntimePath, Name: "Type"}:  QualifierType,
		{Package: RuntimePath, Name: "Holds"}: QualifierHolds,
		{Package: RuntimePath, Name: "That"}:  QualifierThat,
	}

	if directives == nil {
		directives = make(map[Reference]Entry)
	} else {
		directives = maps.Clone(directives)
	}
	maps.Insert(directives, maps.All(predefined))

	if qualifiers == nil {
		qualifiers = make(map[Reference]QualifierFunc)
	} else {
		qualifiers = maps.Clone(qualifiers)
	}
	maps.Insert(qualifiers, maps.All(predefinedQualifiers))

	return &Known{
		directives: directives,
		qualifiers: qualifiers,
	}
}

// Directive looks up a directive function.
func (k *Known) Directive(ref Reference) (Entry, bool) {
	e, ok := k.directives[ref]
	return e, ok
}

// Qualifier looks up a qualifier constructor.
func (k *Known) Qualifier(ref Reference) (QualifierFunc, bool) {
	q, ok := k.qualifiers[ref]
	return q, ok
}
