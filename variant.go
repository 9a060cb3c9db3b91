package irrelevant

import (
	"encoding"
	"fmt"
)

// Variant is a kind of discard, selected by the shape of the directive's arguments.
type Variant int

const (
	variantInvalid Variant = iota

	// VariantBare is a discard without a reason and without a qualifier.
	VariantBare

	// VariantReasonOnly is a discard with a reason and without a qualifier.
	VariantReasonOnly

	// VariantTypeNarrowing demands the value's type to be assignable to the stated one.
	VariantTypeNarrowing

	// VariantPredicateName demands a named predicate to hold for the value.
	VariantPredicateName

	// VariantExpression demands an arbitrary condition to hold.
	VariantExpression
)

var variantValueMap = map[Variant]string{
	VariantBare:          "bare",
	VariantReasonOnly:    "reason-only",
	VariantTypeNarrowing: "type-narrowing",
	VariantPredicateName: "predicate-name",
	VariantExpression:    "expression",
}

func (v Variant) String() string {
	s, ok := variantValueMap[v]
	if !ok {
		return fmt.Sprintf("invalid(%d)", v)
	}

	return s
}

var _ encoding.TextUnmarshaler = (*Variant)(nil)

func (v *Variant) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, s := range variantValueMap {
		if s == text {
			*v = k
			return nil
		}
	}

	return fmt.Errorf("unknown discard variant %q", text)
}
