package directive

import (
	"go/ast"
	"go/types"

	"github.com/sirkon/irrelevant"
)

// Directive is a classified discard directive.
//
//	irrelevant.Warn(sauces, "no sauces", irrelevant.Holds(Sauces.IsEmpty))
//	// Target: sauces, Reason: "no sauces", Variant: predicate-name, Predicate: Sauces.IsEmpty
type Directive struct {
	Call  *ast.CallExpr
	Entry Entry

	// Target is nil when the first argument is not a plain identifier.
	Target *ast.Ident

	// Object is nil when Target does not name a variable.
	Object *types.Var

	Reason    string
	HasReason bool
	Variant   irrelevant.Variant

	// Qualifier is the qualifier argument as written, nil when absent.
	Qualifier ast.Expr

	// Narrowed is the stated type of a type-narrowing discard. NarrowedExpr is where it is
	// written, nil when the type argument was not given explicitly.
	Narrowed     types.Type
	NarrowedExpr ast.Expr

	// Predicate is set for predicate-name discards.
	Predicate ast.Expr

	// Condition is set for expression discards: either the argument of That or an opaque
	// qualifier value.
	Condition ast.Expr
}

// Name returns the name of the discarded value.
func (d *Directive) Name() string {
	if d.Target == nil {
		return ""
	}

	return d.Target.Name
}

// Strength returns the enforcement strength, zero for directives that never check at run time.
func (d *Directive) Strength() irrelevant.Strength {
	if d.Entry.Func != FuncEnforce {
		return 0
	}

	return d.Entry.Strength
}
