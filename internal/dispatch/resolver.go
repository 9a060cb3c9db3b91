package dispatch

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"

	"github.com/sirkon/irrelevant/internal/directive"
)

// TypesResolver resolves callees through type information.
type TypesResolver struct {
	known *directive.Known
	info  *types.Info
}

// NewTypesResolver is [TypesResolver] constructor.
func NewTypesResolver(known *directive.Known, info *types.Info) *TypesResolver {
	return &TypesResolver{
		known: known,
		info:  info,
	}
}

// Directive implements [Resolver].
func (r *TypesResolver) Directive(call *ast.CallExpr) (directive.Entry, bool) {
	ref, ok := r.callee(call)
	if !ok {
		return directive.Entry{}, false
	}

	return r.known.Directive(ref)
}

// Qualifier implements [Resolver].
func (r *TypesResolver) Qualifier(call *ast.CallExpr) (directive.QualifierFunc, bool) {
	ref, ok := r.callee(call)
	if !ok {
		return 0, false
	}

	return r.known.Qualifier(ref)
}

func (r *TypesResolver) callee(call *ast.CallExpr) (directive.Reference, bool) {
	fn, ok := typeutil.Callee(r.info, call).(*types.Func)
	if !ok {
		// Closures and builtins are never directives.
		return directive.Reference{}, false
	}

	pkg := fn.Pkg()
	if pkg == nil {
		return directive.Reference{}, false
	}

	ref := directive.Reference{
		Package: pkg.Path(),
		Name:    fn.Name(),
	}

	sig, _ := fn.Type().(*types.Signature)
	if sig != nil && sig.Recv() != nil {
		recv := sig.Recv().Type()
		if p, ok := recv.(*types.Pointer); ok {
			recv = p.Elem()
		}
		if nt, ok := recv.(*types.Named); ok {
			ref.Type = nt.Obj().Name()
		}
	}

	return ref, true
}
