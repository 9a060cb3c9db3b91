package tracing

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"github.com/sirkon/irrelevant/internal/irrules"
)

// TraceEngine reports uses of discarded values.
type TraceEngine struct {
	fset   *token.FileSet
	info   *types.Info
	scopes *Scopes

	r *ReporterPhase
}

// NewTraceEngine is [TraceEngine] constructor.
func NewTraceEngine(fset *token.FileSet, info *types.Info, scopes *Scopes, r *ReporterPhase) *TraceEngine {
	return &TraceEngine{
		fset:   fset,
		info:   info,
		scopes: scopes,
		r:      r,
	}
}

// Trace reports the identifier if it refers to a value discarded earlier in an enclosing scope.
func (e *TraceEngine) Trace(id *ast.Ident) {
	v, ok := e.info.Uses[id].(*types.Var)
	if !ok {
		return
	}

	for _, d := range e.scopes.Covering(id.Pos()) {
		if d.Object != v {
			continue
		}

		pos := e.fset.Position(d.Call.Pos())
		at := fmt.Sprintf("%s:%d:%d", filepath.Base(pos.Filename), pos.Line, pos.Column)
		if d.HasReason {
			e.r.Report(irrules.UseAfterDiscard(), fmt.Sprintf("%s was discarded at %s: %s", id.Name, at, d.Reason), id.Pos())
		} else {
			e.r.Report(irrules.UseAfterDiscard(), fmt.Sprintf("%s was discarded at %s", id.Name, at), id.Pos())
		}
		return
	}
}
