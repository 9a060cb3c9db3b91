package irrelevant

import (
	"fmt"
	"reflect"
)

// Qualifier is the optional assumption of a directive. Use [Type], [Holds] or [That] to get one.
type Qualifier interface {
	variant() Variant
	assume(v reflect.Value) (holds bool, detail string)
}

// Type states the discarded value must be of a type assignable to T.
//
// The analyzer checks this statically. At run time the check degrades to comparing the static
// type of the value against T once at the discard site. Prefer [Narrow] when no run time
// enforcement is needed, the compiler checks it.
func Type[T any]() Qualifier {
	return typeQualifier{want: reflect.TypeFor[T]()}
}

// Holds states the given predicate must return true for the discarded value. It is meant for
// named predicates and method expressions:
//
//	irrelevant.Warn(sauces, "no sauces should come with a drink", irrelevant.Holds(Sauces.IsEmpty))
//
// The predicate must not mutate its argument.
func Holds[T any](pred func(T) bool) Qualifier {
	return predicateQualifier[T]{pred: pred}
}

// That states the given condition must be true. The condition is called at most once, and not
// at all for [Debug] directives in builds without irrelevant_debug tag.
//
//	irrelevant.Abort(sauces, "no sauces should come with a drink", irrelevant.That(func() bool {
//		return len(sauces) == 0
//	}))
func That(cond func() bool) Qualifier {
	return conditionQualifier{cond: cond}
}

type typeQualifier struct {
	want reflect.Type
}

func (typeQualifier) variant() Variant { return VariantTypeNarrowing }

func (q typeQualifier) assume(v reflect.Value) (bool, string) {
	if v.Type().AssignableTo(q.want) {
		return true, ""
	}

	return false, fmt.Sprintf("value of type %s is not assignable to %s", v.Type(), q.want)
}

type predicateQualifier[T any] struct {
	pred func(T) bool
}

func (predicateQualifier[T]) variant() Variant { return VariantPredicateName }

func (q predicateQualifier[T]) assume(v reflect.Value) (bool, string) {
	if q.pred == nil {
		return false, "nil predicate"
	}

	want := reflect.TypeFor[T]()
	if !v.Type().AssignableTo(want) {
		return false, fmt.Sprintf("predicate takes %s, value is %s", want, v.Type())
	}

	// Going through a pointer keeps nil interface values intact.
	var arg T
	reflect.ValueOf(&arg).Elem().Set(v)

	return q.pred(arg), ""
}

type conditionQualifier struct {
	cond func() bool
}

func (conditionQualifier) variant() Variant { return VariantExpression }

func (q conditionQualifier) assume(reflect.Value) (bool, string) {
	if q.cond == nil {
		return false, "nil condition"
	}

	return q.cond(), ""
}
