// Package plan renders directives of a single Go file as the rewrites they stand for.
//
// Every directive consumes the target value, optionally states an obligation on its type,
// optionally checks an assumption at run time and finally rebinds the name to an explicitly
// ignored value:
//
//	Function serve:
//	  Warn [sauces] "drinks come without sauces" (predicate-name)
//	    Consume [sauces]
//	    Obligation [sauces] type=Sauces
//	    Check [sauces] assume="Sauces.IsEmpty(sauces)" strength=warn
//	    Rebind [sauces] -> Ignored
package plan

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"github.com/sirkon/irrelevant"
	"github.com/sirkon/irrelevant/internal/directive"
	"github.com/sirkon/irrelevant/internal/dispatch"
)

// ---------- Plan model ----------

type Node interface{ isNode() }

type Pos struct {
	File string
	Line int
	Col  int
}

// Rewrite is a single directive with the steps it expands to.
type Rewrite struct {
	Pos       Pos
	Name      string
	Directive string // discard|narrow|warn|abort|debug
	Variant   irrelevant.Variant
	Reason    string
	Steps     []Node
}

func (Rewrite) isNode() {}

// Consume moves the value into the directive.
type Consume struct {
	Name string
}

func (Consume) isNode() {}

// Obligation is a compile-time demand on the static type of the value.
type Obligation struct {
	Name string
	Type string
}

func (Obligation) isNode() {}

// Check is a run-time assumption check.
type Check struct {
	Name     string
	Assume   string
	Strength irrelevant.Strength
}

func (Check) isNode() {}

// Rebind replaces the value with an explicitly ignored one.
type Rebind struct {
	Name string
}

func (Rebind) isNode() {}

// Problem is an obligation the directive fails statically.
type Problem struct {
	Pos     Pos
	Code    string
	Message string
}

func (Problem) isNode() {}

type Function struct {
	Name  string
	Nodes []Node
}

type Program struct {
	File      string
	Functions []Function
}

// ---------- Translator ----------

type Translator struct {
	known *directive.Known
	opts  dispatch.Options

	fileSet *token.FileSet
	info    *types.Info
	pkg     *types.Package
}

// New is [Translator] constructor. Nil known means directives of the runtime package only.
func New(known *directive.Known, opts dispatch.Options) *Translator {
	if known == nil {
		known = directive.NewKnown(nil, nil)
	}

	return &Translator{
		known: known,
		opts:  opts,
	}
}

// TranslateFile parses and type-checks the file alone. Type errors are tolerated as long as
// directives themselves can be resolved.
func (t *Translator) TranslateFile(filename string, src []byte) (*Program, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	conf := types.Config{
		Importer: directive.NewImporter(fset, importer.Default()),
		Error:    func(error) {},
	}
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Instances:  make(map[*ast.Ident]types.Instance),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}
	t.pkg, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	t.info = info
	t.fileSet = fset

	d := dispatch.New(dispatch.NewTypesResolver(t.known, info), info, t.opts)

	prog := &Program{File: filepath.Base(filename)}
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Body == nil {
			continue
		}

		var nodes []Node
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			dir, problems, ok := d.Dispatch(call)
			if !ok {
				return true
			}

			nodes = append(nodes, t.rewrite(dir))
			for _, p := range problems {
				nodes = append(nodes, Problem{
					Pos:     t.posOf(p.Pos),
					Code:    p.Rule.Code(),
					Message: p.Message,
				})
			}
			return true
		})

		if len(nodes) > 0 {
			prog.Functions = append(prog.Functions, Function{Name: funcName(fn), Nodes: nodes})
		}
	}

	return prog, nil
}

// Translate renders a snippet with default settings.
func Translate(code string) (*Program, error) {
	return New(nil, dispatch.Options{}).TranslateFile("snippet.go", []byte(code))
}

func (t *Translator) rewrite(dir *directive.Directive) Rewrite {
	name := dir.Name()
	if name == "" {
		name = t.exprString(dir.Call.Args[0])
	}

	rw := Rewrite{
		Pos:       t.posOf(dir.Call.Pos()),
		Name:      name,
		Directive: dir.Entry.String(),
		Variant:   dir.Variant,
		Reason:    dir.Reason,
	}

	rw.Steps = append(rw.Steps, Consume{Name: name})
	switch dir.Variant {
	case irrelevant.VariantTypeNarrowing:
		if dir.Narrowed != nil {
			rw.Steps = append(rw.Steps, Obligation{Name: name, Type: t.typeString(dir.Narrowed)})
		}
		if dir.Strength() != 0 && dir.NarrowedExpr != nil {
			rw.Steps = append(rw.Steps, Check{
				Name:     name,
				Assume:   "type " + t.exprString(dir.NarrowedExpr),
				Strength: dir.Strength(),
			})
		}

	case irrelevant.VariantPredicateName:
		if sig, ok := t.info.TypeOf(dir.Predicate).(*types.Signature); ok && sig.Params().Len() == 1 {
			rw.Steps = append(rw.Steps, Obligation{Name: name, Type: t.typeString(sig.Params().At(0).Type())})
		}
		rw.Steps = append(rw.Steps, Check{
			Name:     name,
			Assume:   t.exprString(dir.Predicate) + "(" + name + ")",
			Strength: dir.Strength(),
		})

	case irrelevant.VariantExpression:
		rw.Steps = append(rw.Steps, Check{
			Name:     name,
			Assume:   condition(t.exprString(dir.Condition)),
			Strength: dir.Strength(),
		})
	}
	rw.Steps = append(rw.Steps, Rebind{Name: name})

	return rw
}

// condition unwraps parameterless closures returning a single expression.
//
//	func() bool { return len(sauces) == 0 } // len(sauces) == 0
func condition(s string) string {
	const prefix = "func() bool { return "
	if strings.HasPrefix(s, prefix) && strings.HasSuffix(s, " }") && !strings.Contains(s, "\n") {
		return strings.TrimSuffix(strings.TrimPrefix(s, prefix), " }")
	}

	return s
}

func funcName(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return fn.Name.Name
	}

	recv := fn.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	switch r := recv.(type) {
	case *ast.IndexExpr:
		recv = r.X
	case *ast.IndexListExpr:
		recv = r.X
	}
	if id, ok := recv.(*ast.Ident); ok {
		return id.Name + "." + fn.Name.Name
	}

	return fn.Name.Name
}

// ---------- Utilities ----------

func (t *Translator) posOf(p token.Pos) Pos {
	pos := t.fileSet.Position(p)
	return Pos{File: filepath.Base(pos.Filename), Line: pos.Line, Col: pos.Column}
}

func (t *Translator) exprString(e ast.Expr) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	_ = printer.Fprint(&b, t.fileSet, e)
	return b.String()
}

func (t *Translator) typeString(typ types.Type) string {
	return types.TypeString(typ, types.RelativeTo(t.pkg))
}
