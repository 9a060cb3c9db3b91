// Package dispatch classifies discard directives by the shape of their arguments.
//
// A directive is a call of a known directive function: a target identifier, an optional
// reason literal and an optional qualifier. The qualifier's shape selects the variant,
// checked in this order, first match wins:
//
//	absent                                  bare, or reason-only when a reason is given
//	Type[T]() or the type argument of Narrow type-narrowing
//	Holds(name), Holds(T.Method)            predicate-name
//	anything else                           expression
//
// Shapes overlap: Holds(pred) is an expression in general, while a name of a func(T) bool is
// a predicate and its parameter type is checked against the discarded value.
//
// Besides the variant, the dispatcher checks static obligations of a directive. The main one is
// the type obligation of type-narrowing discards: the value's type must still match the stated
// one, otherwise the assumption has gone stale.
package dispatch
