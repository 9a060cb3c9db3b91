package analyzer

import (
	"fmt"
	"go/ast"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/irrelevant/internal/config"
	"github.com/sirkon/irrelevant/internal/directive"
	"github.com/sirkon/irrelevant/internal/dispatch"
	"github.com/sirkon/irrelevant/internal/tracing"
)

const doc = `report uses of discarded values and stale assumptions

Checks values explicitly ignored with github.com/sirkon/irrelevant directives:
they must not be used after the directive within its scope and assumptions
attached to directives must still fit the discarded values.`

// Analyzer reads its configuration from the -config flag.
var Analyzer = func() *analysis.Analyzer {
	r := &runner{}
	a := newAnalyzer(r)
	a.Flags.StringVar(&r.configPath, "config", "", "path to a YAML or TOML configuration file")
	return a
}()

// New returns an analyzer with the given configuration. Nil means defaults.
func New(cfg *config.Config) *analysis.Analyzer {
	r := &runner{cfg: cfg}
	r.once.Do(func() {}) // Nothing to load.
	return newAnalyzer(r)
}

func newAnalyzer(r *runner) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:     "irrelevant",
		Doc:      doc,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
		Run:      r.run,
	}
}

type runner struct {
	configPath string

	once sync.Once
	cfg  *config.Config
	err  error
}

func (r *runner) config() (*config.Config, error) {
	r.once.Do(func() {
		if r.configPath == "" {
			return
		}

		r.cfg, r.err = config.Load(r.configPath)
	})

	return r.cfg, r.err
}

var (
	callFilter  = []ast.Node{(*ast.CallExpr)(nil)}
	identFilter = []ast.Node{(*ast.Ident)(nil)}
)

func (r *runner) run(pass *analysis.Pass) (any, error) {
	cfg, err := r.config()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if !usesDirectives(pass, cfg) {
		return nil, nil
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	var rep tracing.Reporter
	dispatcher := dispatch.New(
		dispatch.NewTypesResolver(cfg.Known(), pass.TypesInfo),
		pass.TypesInfo,
		cfg.Options(),
	)
	scrap := tracing.NewScrapEngine(dispatcher, rep.Phase(tracing.ReportScrap))

	var scrapErr error
	pector.WithStack(callFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || scrapErr != nil {
			return scrapErr == nil
		}

		scrapErr = scrap.Scrap(n.(*ast.CallExpr), stack) // No need to assert check since we only get calls.
		return true
	})
	if scrapErr != nil {
		return nil, scrapErr
	}

	if scrap.Count() > 0 {
		tracer := tracing.NewTraceEngine(pass.Fset, pass.TypesInfo, scrap.Scopes(), rep.Phase(tracing.ReportTrace))
		pector.Preorder(identFilter, func(n ast.Node) {
			tracer.Trace(n.(*ast.Ident))
		})
	}

	for _, report := range rep.Reports() {
		pass.Report(analysis.Diagnostic{
			Pos:      report.Pos,
			Category: report.RuleCode.Code(),
			Message:  report.Message,
		})
	}

	return nil, nil
}

// usesDirectives tells if the package can contain directives at all.
func usesDirectives(pass *analysis.Pass, cfg *config.Config) bool {
	if cfg != nil && len(cfg.Directives) > 0 {
		return true
	}

	if pass.Pkg.Path() == directive.RuntimePath {
		return false
	}
	for _, imp := range pass.Pkg.Imports() {
		if imp.Path() == directive.RuntimePath {
			return true
		}
	}

	return false
}
