package plan

import (
	"embed"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"

	"github.com/sirkon/irrelevant"
	"github.com/sirkon/irrelevant/internal/dispatch"
)

//go:embed testdata
var planTestCases embed.FS

func TestTranslate(t *testing.T) {
	expected := map[string]*Program{
		"case_narrow.go": {
			File: "snippet.go",
			Functions: []Function{
				{
					Name: "add",
					Nodes: []Node{
						Rewrite{
							Name:      "perms",
							Directive: "narrow",
							Variant:   irrelevant.VariantTypeNarrowing,
							Reason:    "adding numbers does not require any privileges",
							Steps: []Node{
								Consume{Name: "perms"},
								Obligation{Name: "perms", Type: "*PermissionSet"},
								Rebind{Name: "perms"},
							},
						},
					},
				},
				{
					Name: "addStale",
					Nodes: []Node{
						Rewrite{
							Name:      "perms",
							Directive: "abort",
							Variant:   irrelevant.VariantTypeNarrowing,
							Reason:    "adding numbers does not require any privileges",
							Steps: []Node{
								Consume{Name: "perms"},
								Obligation{Name: "perms", Type: "*PermissionSet"},
								Check{Name: "perms", Assume: "type *PermissionSet", Strength: irrelevant.StrengthAbort},
								Rebind{Name: "perms"},
							},
						},
						Problem{
							Code:    "IRR030",
							Message: "stale type assumption: perms is [2]int, discard expects *kitchen.PermissionSet",
						},
					},
				},
			},
		},
		"case_predicate.go": {
			File: "snippet.go",
			Functions: []Function{
				{
					Name: "Drink.Serve",
					Nodes: []Node{
						Rewrite{
							Name:      "sauces",
							Directive: "warn",
							Variant:   irrelevant.VariantPredicateName,
							Reason:    "drinks come without sauces",
							Steps: []Node{
								Consume{Name: "sauces"},
								Obligation{Name: "sauces", Type: "Sauces"},
								Check{Name: "sauces", Assume: "Sauces.IsEmpty(sauces)", Strength: irrelevant.StrengthWarn},
								Rebind{Name: "sauces"},
							},
						},
						Rewrite{
							Name:      "count",
							Directive: "debug",
							Variant:   irrelevant.VariantExpression,
							Reason:    "nothing was counted",
							Steps: []Node{
								Consume{Name: "count"},
								Check{Name: "count", Assume: "count == 0", Strength: irrelevant.StrengthDebug},
								Rebind{Name: "count"},
							},
						},
					},
				},
			},
		},
		"case_reason.go": {
			File: "snippet.go",
			Functions: []Function{
				{
					Name: "drop",
					Nodes: []Node{
						Rewrite{
							Name:      "sauces",
							Directive: "discard",
							Variant:   irrelevant.VariantBare,
							Steps: []Node{
								Consume{Name: "sauces"},
								Rebind{Name: "sauces"},
							},
						},
						Rewrite{
							Name:      "reason",
							Directive: "discard",
							Variant:   irrelevant.VariantReasonOnly,
							Reason:    "logged elsewhere",
							Steps: []Node{
								Consume{Name: "reason"},
								Rebind{Name: "reason"},
							},
						},
					},
				},
				{
					Name: "loose",
					Nodes: []Node{
						Rewrite{
							Name:      "sauces",
							Directive: "discard",
							Variant:   irrelevant.VariantBare,
							Steps: []Node{
								Consume{Name: "sauces"},
								Rebind{Name: "sauces"},
							},
						},
						Problem{
							Code:    "IRR010",
							Message: "discard reason must be a string literal",
						},
					},
				},
			},
		},
	}

	files, err := planTestCases.ReadDir("testdata")
	if err != nil {
		t.Fatal(fmt.Errorf("list files for plan checks: %w", err))
	}

	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), "case_") {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			src, err := planTestCases.ReadFile("testdata/" + file.Name())
			if err != nil {
				t.Fatalf("read file %s: %s", file.Name(), err)
			}

			expectedPlan, ok := expected[file.Name()]
			if !ok {
				t.Fatal("no plan found for", file.Name())
			}

			got, err := Translate(string(src))
			if err != nil {
				t.Fatalf("translate case file: %s", err)
			}

			got = StripPos(got)
			if !reflect.DeepEqual(expectedPlan, got) {
				deepequal.SideBySide(t, "plan", expectedPlan, got)
			}
		})
	}
}

func TestTranslatePositions(t *testing.T) {
	src, err := planTestCases.ReadFile("testdata/case_narrow.go")
	if err != nil {
		t.Fatalf("read case file: %s", err)
	}

	prog, err := New(nil, dispatch.Options{}).TranslateFile("testdata/case_narrow.go", src)
	if err != nil {
		t.Fatalf("translate case file: %s", err)
	}

	rw := prog.Functions[0].Nodes[0].(Rewrite)
	if rw.Pos != (Pos{File: "case_narrow.go", Line: 8, Col: 2}) {
		t.Errorf("unexpected rewrite position %+v", rw.Pos)
	}
	problem := prog.Functions[1].Nodes[1].(Problem)
	if problem.Pos.Line != 13 {
		t.Errorf("unexpected problem position %+v", problem.Pos)
	}
}

func TestPretty(t *testing.T) {
	src, err := planTestCases.ReadFile("testdata/case_predicate.go")
	if err != nil {
		t.Fatalf("read case file: %s", err)
	}

	prog, err := Translate(string(src))
	if err != nil {
		t.Fatalf("translate case file: %s", err)
	}

	const indented = `Function Drink.Serve:
  Warn [sauces] "drinks come without sauces" (predicate-name)
    Consume [sauces]
    Obligation [sauces] type=Sauces
    Check [sauces] assume="Sauces.IsEmpty(sauces)" strength=warn
    Rebind [sauces] -> Ignored
  Debug [count] "nothing was counted" (expression)
    Consume [count]
    Check [count] assume="count == 0" strength=debug
    Rebind [count] -> Ignored

`
	if got := prog.Pretty(true); got != indented {
		t.Errorf("indented form mismatch:\n%s", got)
	}

	const braced = `Function Drink.Serve {
  Warn [sauces] "drinks come without sauces" (predicate-name) {
    Consume [sauces]
    Obligation [sauces] type=Sauces
    Check [sauces] assume="Sauces.IsEmpty(sauces)" strength=warn
    Rebind [sauces] -> Ignored
  }
  Debug [count] "nothing was counted" (expression) {
    Consume [count]
    Check [count] assume="count == 0" strength=debug
    Rebind [count] -> Ignored
  }
}

`
	if got := prog.Pretty(false); got != braced {
		t.Errorf("braced form mismatch:\n%s", got)
	}
}

func TestTranslateSyntaxError(t *testing.T) {
	if _, err := Translate("package kitchen\nfunc {"); err == nil {
		t.Fatal("syntax error was expected")
	}
}
