package dispatch

import (
	"go/ast"
	"go/types"
)

// typeArgument returns the first explicit type argument of an instantiated function expression.
//
//	irrelevant.Type[*PermissionSet] // *PermissionSet
//	irrelevant.Type                 // nil
func typeArgument(fun ast.Expr) ast.Expr {
	switch f := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		return f.Index
	case *ast.IndexListExpr:
		if len(f.Indices) > 0 {
			return f.Indices[0]
		}
	}

	return nil
}

// isPredicateName tells if the expression just names a function:
//
//	isEmpty
//	Sauces.IsEmpty
//	(*Sauces).IsEmpty
//	kitchen.IsEmpty
//	isZero[int]
func isPredicateName(e ast.Expr) bool {
	switch v := ast.Unparen(e).(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		return isNamePath(v.X)
	case *ast.IndexExpr:
		return isPredicateName(v.X)
	case *ast.IndexListExpr:
		return isPredicateName(v.X)
	default:
		return false
	}
}

func isNamePath(e ast.Expr) bool {
	switch v := ast.Unparen(e).(type) {
	case *ast.Ident:
		return true
	case *ast.StarExpr:
		return isNamePath(v.X)
	case *ast.SelectorExpr:
		return isNamePath(v.X)
	case *ast.IndexExpr:
		return isNamePath(v.X)
	default:
		return false
	}
}

// predicateParam returns the parameter type of a func(T) bool predicate, nil for anything else.
func predicateParam(t types.Type) types.Type {
	if t == nil {
		return nil
	}

	sig, ok := t.Underlying().(*types.Signature)
	if !ok || sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return nil
	}

	return sig.Params().At(0).Type()
}
