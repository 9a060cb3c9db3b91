package tracing

import (
	"fmt"
	"go/ast"
	"go/token"

	"github.com/sirkon/irrelevant/internal/dispatch"
)

// ScrapEngine collects directives of a package and the source spans they are effective over.
type ScrapEngine struct {
	dispatcher *dispatch.Dispatcher
	scopes     *Scopes
	count      int

	r *ReporterPhase
}

// NewScrapEngine is [ScrapEngine] constructor.
func NewScrapEngine(dispatcher *dispatch.Dispatcher, r *ReporterPhase) *ScrapEngine {
	return &ScrapEngine{
		dispatcher: dispatcher,
		scopes:     NewScopes(),
		r:          r,
	}
}

// Scopes returns spans collected so far.
func (e *ScrapEngine) Scopes() *Scopes {
	return e.scopes
}

// Count returns the number of directives collected so far.
func (e *ScrapEngine) Count() int {
	return e.count
}

// Scrap classifies the call and registers its discard span. The stack holds the call's
// ancestors, the outermost first, and ends with the call itself.
func (e *ScrapEngine) Scrap(call *ast.CallExpr, stack []ast.Node) error {
	dir, problems, ok := e.dispatcher.Dispatch(call)
	if !ok {
		return nil
	}

	e.count++
	for _, p := range problems {
		e.r.Report(p.Rule, p.Message, p.Pos)
	}

	if dir.Object == nil {
		// Nothing to trace without a variable.
		return nil
	}

	end := scopeEnd(stack)
	if !end.IsValid() {
		return nil
	}

	if err := e.scopes.Add(dir, call.End(), end); err != nil {
		return fmt.Errorf("register discard of %s: %w", dir.Name(), err)
	}

	return nil
}

// scopeEnd returns the end of the innermost scope enclosing the last node of the stack.
func scopeEnd(stack []ast.Node) token.Pos {
	for i := len(stack) - 2; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.BlockStmt:
			return n.Rbrace

		case *ast.CaseClause, *ast.CommClause:
			return n.End()

		case *ast.IfStmt, *ast.ForStmt, *ast.RangeStmt, *ast.SwitchStmt, *ast.TypeSwitchStmt, *ast.SelectStmt:
			// Directive in a statement header: the whole statement is its scope.
			return n.End() - 1

		case *ast.File:
			return n.End()
		}
	}

	return token.NoPos
}
