package dispatch

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"github.com/sirkon/irrelevant"
	"github.com/sirkon/irrelevant/internal/directive"
	"github.com/sirkon/irrelevant/internal/irrules"
)

// Resolver recognises directive functions and qualifier constructors behind call expressions.
type Resolver interface {
	Directive(call *ast.CallExpr) (directive.Entry, bool)
	Qualifier(call *ast.CallExpr) (directive.QualifierFunc, bool)
}

// Options switch optional checks on.
type Options struct {
	// RequireReason reports directives without a reason.
	RequireReason bool

	// StrictTypes demands type-narrowing discards to state the exact type rather than any type
	// the value is assignable to.
	StrictTypes bool

	// RequireTargetInAssumption reports expression assumptions that never mention the target.
	RequireTargetInAssumption bool
}

// Problem is a static obligation a directive fails.
type Problem struct {
	Rule    irrules.Rule
	Pos     token.Pos
	Message string
}

// Dispatcher classifies directives of a single type-checked package.
type Dispatcher struct {
	resolver Resolver
	info     *types.Info
	opts     Options
}

// New is [Dispatcher] constructor.
func New(resolver Resolver, info *types.Info, opts Options) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		info:     info,
		opts:     opts,
	}
}

// Dispatch classifies the call. It returns false when the call is not a directive. A directive
// is returned even when it has problems, as long as it has a target.
func (d *Dispatcher) Dispatch(call *ast.CallExpr) (*directive.Directive, []Problem, bool) {
	entry, ok := d.resolver.Directive(call)
	if !ok || len(call.Args) == 0 {
		return nil, nil, false
	}

	dir := &directive.Directive{
		Call:  call,
		Entry: entry,
	}
	var problems []Problem
	report := func(rule irrules.Rule, pos token.Pos, format string, a ...any) {
		problems = append(problems, Problem{
			Rule:    rule,
			Pos:     pos,
			Message: fmt.Sprintf(format, a...),
		})
	}

	d.target(dir, report)
	d.reason(dir, report)

	var qualifiers []ast.Expr
	if entry.Func == directive.FuncEnforce && len(call.Args) > 2 {
		qualifiers = call.Args[2:]
	}
	if len(qualifiers) > 1 {
		report(irrules.SingleQualifier(), qualifiers[1].Pos(), "discard takes at most one assumption, got %d", len(qualifiers))
	}
	if len(qualifiers) > 0 {
		dir.Qualifier = qualifiers[0]
	}

	d.classify(dir, report)
	d.obligations(dir, report)

	if d.opts.RequireReason && !dir.HasReason {
		report(irrules.MissingReason(), call.Pos(), "discard of %s does not say why it is irrelevant", targetName(dir))
	}

	return dir, problems, true
}

type reportFunc func(rule irrules.Rule, pos token.Pos, format string, a ...any)

func (d *Dispatcher) target(dir *directive.Directive, report reportFunc) {
	arg := ast.Unparen(dir.Call.Args[0])
	id, ok := arg.(*ast.Ident)
	if !ok {
		report(irrules.TargetMustBeVariable(), arg.Pos(), "discard target must be a variable named by an identifier")
		return
	}

	dir.Target = id
	v, ok := d.info.Uses[id].(*types.Var)
	if !ok {
		report(irrules.TargetMustBeVariable(), id.Pos(), "discard target %s is not a variable", id.Name)
		return
	}

	dir.Object = v
}

func (d *Dispatcher) reason(dir *directive.Directive, report reportFunc) {
	args := dir.Call.Args[1:]
	if dir.Entry.Func == directive.FuncEnforce && len(args) > 1 {
		args = args[:1]
	}
	if len(args) == 0 {
		return
	}
	if dir.Entry.Func != directive.FuncEnforce && dir.Call.Ellipsis.IsValid() {
		report(irrules.ReasonMustBeLiteral(), args[0].Pos(), "discard takes a single literal reason")
		return
	}
	if len(args) > 1 {
		report(irrules.ReasonMustBeLiteral(), args[1].Pos(), "discard takes a single literal reason")
	}

	lit, ok := ast.Unparen(args[0]).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		report(irrules.ReasonMustBeLiteral(), args[0].Pos(), "discard reason must be a string literal")
		return
	}

	text, err := strconv.Unquote(lit.Value)
	if err != nil {
		report(irrules.ReasonMustBeLiteral(), lit.Pos(), "malformed reason literal %s", lit.Value)
		return
	}

	dir.Reason = text
	dir.HasReason = text != ""
}

// classify is the dispatch table.
func (d *Dispatcher) classify(dir *directive.Directive, report reportFunc) {
	if dir.Entry.Func == directive.FuncNarrow {
		dir.Variant = irrelevant.VariantTypeNarrowing
		dir.NarrowedExpr = typeArgument(dir.Call.Fun)
		if dir.NarrowedExpr == nil {
			report(irrules.NarrowNeedsTypeArgument(), dir.Call.Pos(), "type-narrowing discard of %s must state the type explicitly", targetName(dir))
			return
		}
		dir.Narrowed = d.info.TypeOf(dir.NarrowedExpr)
		return
	}

	q := dir.Qualifier
	if q == nil {
		if dir.HasReason {
			dir.Variant = irrelevant.VariantReasonOnly
		} else {
			dir.Variant = irrelevant.VariantBare
		}
		return
	}

	call, ok := ast.Unparen(q).(*ast.CallExpr)
	if !ok {
		dir.Variant = irrelevant.VariantExpression
		dir.Condition = q
		return
	}

	kind, ok := d.resolver.Qualifier(call)
	switch {
	case ok && kind == directive.QualifierType:
		dir.Variant = irrelevant.VariantTypeNarrowing
		dir.NarrowedExpr = typeArgument(call.Fun)
		if dir.NarrowedExpr != nil {
			dir.Narrowed = d.info.TypeOf(dir.NarrowedExpr)
		}

	case ok && kind == directive.QualifierHolds && len(call.Args) == 1 && d.isPredicate(call.Args[0]):
		dir.Variant = irrelevant.VariantPredicateName
		dir.Predicate = ast.Unparen(call.Args[0])

	case ok && len(call.Args) == 1:
		dir.Variant = irrelevant.VariantExpression
		dir.Condition = call.Args[0]

	default:
		dir.Variant = irrelevant.VariantExpression
		dir.Condition = q
	}
}

func (d *Dispatcher) obligations(dir *directive.Directive, report reportFunc) {
	if dir.Object == nil {
		return
	}

	actual := dir.Object.Type()
	switch dir.Variant {
	case irrelevant.VariantTypeNarrowing:
		if dir.Narrowed == nil {
			return
		}

		if d.opts.StrictTypes {
			if !types.Identical(actual, dir.Narrowed) {
				report(irrules.StaleTypeAssumption(), dir.NarrowedExpr.Pos(), "stale type assumption: %s is %s, discard expects exactly %s", dir.Name(), actual, dir.Narrowed)
			}
			return
		}
		if !types.AssignableTo(actual, dir.Narrowed) {
			report(irrules.StaleTypeAssumption(), dir.NarrowedExpr.Pos(), "stale type assumption: %s is %s, discard expects %s", dir.Name(), actual, dir.Narrowed)
		}

	case irrelevant.VariantPredicateName:
		param := predicateParam(d.info.TypeOf(dir.Predicate))
		if param == nil {
			return
		}
		if !types.AssignableTo(actual, param) {
			report(irrules.PredicateMismatch(), dir.Predicate.Pos(), "predicate %s takes %s, %s is %s", types.ExprString(dir.Predicate), param, dir.Name(), actual)
		}

	case irrelevant.VariantExpression:
		if !d.opts.RequireTargetInAssumption {
			return
		}
		if !d.mentions(dir.Condition, dir.Object) {
			report(irrules.AssumptionIgnoresTarget(), dir.Condition.Pos(), "assumption does not refer to discarded %s", dir.Name())
		}
	}
}

// isPredicate tells if the expression names a func(T) bool predicate.
func (d *Dispatcher) isPredicate(e ast.Expr) bool {
	return isPredicateName(e) && predicateParam(d.info.TypeOf(e)) != nil
}

func (d *Dispatcher) mentions(expr ast.Expr, obj types.Object) bool {
	var found bool
	ast.Inspect(expr, func(n ast.Node) bool {
		if found {
			return false
		}
		if id, ok := n.(*ast.Ident); ok && d.info.Uses[id] == obj {
			found = true
		}
		return !found
	})

	return found
}

func targetName(dir *directive.Directive) string {
	if dir.Target == nil {
		return "value"
	}

	return dir.Target.Name
}
