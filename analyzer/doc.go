// Package analyzer defines an Analyzer that checks values explicitly ignored with
// github.com/sirkon/irrelevant directives.
//
// # Analyzer irrelevant
//
// irrelevant: report uses of discarded values and stale assumptions
//
// A directive declares a value irrelevant from that point on:
//
//	irrelevant.Discard(sauces, "drinks are served without sauces")
//	return pour(drink, sauces) // sauces was discarded at kitchen.go:12:2
//
// The value must not be referred to again until the end of the innermost
// block, case clause or statement header enclosing the directive. Variables
// declared later with the same name in nested blocks are different values
// and are not reported.
//
// Assumptions attached to directives are checked against types too:
//
//	irrelevant.Warn(perms, "no privileges needed", irrelevant.Type[*PermissionSet]())
//
// is reported once perms stops being assignable to *PermissionSet, and
//
//	irrelevant.Warn(sauces, "no sauces", irrelevant.Holds(Sauces.IsEmpty))
//
// once the predicate stops accepting the discarded value.
//
// Every diagnostic category is a rule code, like IRR000. The -config flag points to
// a YAML or TOML file enabling stricter checks and registering project wrappers
// over directives:
//
//	require-reason: true
//	strict-types: true
//	require-target-in-assumption: true
//	directives:
//	  - ref: '"example.com/kit/assume".Ignore'
//	    kind: warn
package analyzer
