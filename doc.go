// Package irrelevant provides directives for discarding a value explicitly.
//
// A directive states that a value is not used from this point on, says why, and optionally
// checks an assumption about the value before it goes away:
//
//	func addNumbers(a, b uint32, perms *PermissionSet) uint32 {
//		irrelevant.Narrow[*PermissionSet](perms, "adding numbers does not require any privileges")
//		return a + b
//	}
//
//	func (CocoaMilk) New(allergens []Allergen, amount uint16, sauces Sauces) Dish {
//		irrelevant.Warn(sauces, "no sauces should come with a drink", irrelevant.Holds(Sauces.IsEmpty))
//		return &CocoaMilk{amount: amount}
//	}
//
// Directive shapes, by the optional third argument:
//
//   - none: [Discard] or [Warn] without a qualifier. The reason is documentation only.
//   - [Type]: the value must have a type assignable to the given one. [Narrow] states the same
//     with an explicit type argument and is enforced by the compiler itself.
//   - [Holds]: a named predicate (function or method expression) must return true.
//   - [That]: an arbitrary condition, evaluated lazily, must return true.
//
// Enforcement strength is picked by the entry point: [Warn] reports a violated assumption and
// continues, [Abort] reports and panics with the [*Violation], [Debug] behaves like [Warn] in
// builds with the irrelevant_debug tag and evaluates nothing otherwise.
//
// Reports go to the process-wide [Sink], standard error by default:
//
//	[kitchen/drinks.go:65] Assumption violated: no sauces should come with a drink
//
// Go cannot rebind a name from a function call, so the "this name is now inert" half of a
// directive is enforced statically by the analyzer in package
// github.com/sirkon/irrelevant/analyzer: any reference to the discarded variable in the rest of
// the enclosing block is reported.
package irrelevant
