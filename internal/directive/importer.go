package directive

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"sync"
)

// runtimeDecls are the declarations of the runtime package that matter for type checking
// directives. Bodies are irrelevant here.
const runtimeDecls = `package irrelevant

type Ignored struct{}

type Qualifier interface {
	qualifier()
}

func Discard[V any](v V, reason ...string) Ignored                  { return Ignored{} }
func Narrow[T any](v T, reason ...string) Ignored                   { return Ignored{} }
func Warn[V any](v V, reason string, qualifier ...Qualifier) Ignored  { return Ignored{} }
func Abort[V any](v V, reason string, qualifier ...Qualifier) Ignored { return Ignored{} }
func Debug[V any](v V, reason string, qualifier ...Qualifier) Ignored { return Ignored{} }

func Type[T any]() Qualifier                   { return nil }
func Holds[T any](pred func(T) bool) Qualifier { return nil }
func That(cond func() bool) Qualifier          { return nil }

func Helper() {}
`

// Importer serves the runtime package from its declarations and delegates any other path to
// the fallback importer. It lets single files be type-checked without a build system.
type Importer struct {
	fset     *token.FileSet
	fallback types.Importer

	once    sync.Once
	runtime *types.Package
	err     error
}

// NewImporter is [Importer] constructor. The fallback may be nil, then only the runtime
// package can be imported.
func NewImporter(fset *token.FileSet, fallback types.Importer) *Importer {
	return &Importer{
		fset:     fset,
		fallback: fallback,
	}
}

// Import implements types.Importer.
func (i *Importer) Import(path string) (*types.Package, error) {
	if path == RuntimePath {
		i.once.Do(i.checkRuntime)
		return i.runtime, i.err
	}

	if i.fallback == nil {
		return nil, fmt.Errorf("package %q is not available", path)
	}

	return i.fallback.Import(path)
}

func (i *Importer) checkRuntime() {
	file, err := parser.ParseFile(i.fset, "irrelevant.go", runtimeDecls, 0)
	if err != nil {
		i.err = fmt.Errorf("parse runtime declarations: %w", err)
		return
	}

	conf := types.Config{}
	i.runtime, i.err = conf.Check(RuntimePath, i.fset, []*ast.File{file}, nil)
	if i.err != nil {
		i.err = fmt.Errorf("check runtime declarations: %w", i.err)
	}
}
