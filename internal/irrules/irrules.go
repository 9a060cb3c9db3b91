package irrules

import "fmt"

// Rule represents an irrelevant rule code (IRR-series).
type Rule int

const (
	ruleInvalid Rule = iota

	IRR000UseAfterDiscard
	IRR005TargetMustBeVariable
	IRR010ReasonMustBeLiteral
	IRR015MissingReason
	IRR030StaleTypeAssumption
	IRR031NarrowNeedsTypeArgument
	IRR035PredicateMismatch
	IRR040SingleQualifier
	IRR045AssumptionIgnoresTarget
)

// String returns the canonical code and short name of the rule.
// Example: "IRR000: UseAfterDiscard"
func (r Rule) String() string {
	switch r {
	case IRR000UseAfterDiscard:
		return "IRR000: UseAfterDiscard"
	case IRR005TargetMustBeVariable:
		return "IRR005: TargetMustBeVariable"
	case IRR010ReasonMustBeLiteral:
		return "IRR010: ReasonMustBeLiteral"
	case IRR015MissingReason:
		return "IRR015: MissingReason"
	case IRR030StaleTypeAssumption:
		return "IRR030: StaleTypeAssumption"
	case IRR031NarrowNeedsTypeArgument:
		return "IRR031: NarrowNeedsTypeArgument"
	case IRR035PredicateMismatch:
		return "IRR035: PredicateMismatch"
	case IRR040SingleQualifier:
		return "IRR040: SingleQualifier"
	case IRR045AssumptionIgnoresTarget:
		return "IRR045: AssumptionIgnoresTarget"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Code returns the bare rule code, like "IRR000".
func (r Rule) Code() string {
	if r <= ruleInvalid || r > IRR045AssumptionIgnoresTarget {
		return fmt.Sprintf("rule-unknown(%d)", r)
	}

	s := r.String()
	return s[:len("IRR000")]
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case IRR000UseAfterDiscard:
		return "A discarded value must not be used in the rest of its scope."
	case IRR005TargetMustBeVariable:
		return "Only a variable named by a plain identifier can be discarded."
	case IRR010ReasonMustBeLiteral:
		return "Discard reason must be a string literal."
	case IRR015MissingReason:
		return "Discards should say why the value is irrelevant."
	case IRR030StaleTypeAssumption:
		return "The discarded value's type no longer matches the stated one."
	case IRR031NarrowNeedsTypeArgument:
		return "Type-narrowing discard must state the type explicitly."
	case IRR035PredicateMismatch:
		return "Predicate does not accept the discarded value's type."
	case IRR040SingleQualifier:
		return "A discard takes at most one assumption."
	case IRR045AssumptionIgnoresTarget:
		return "Assumption does not refer to the discarded value."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors — for readability and stable call sites.

func UseAfterDiscard() Rule         { return IRR000UseAfterDiscard }
func TargetMustBeVariable() Rule    { return IRR005TargetMustBeVariable }
func ReasonMustBeLiteral() Rule     { return IRR010ReasonMustBeLiteral }
func MissingReason() Rule           { return IRR015MissingReason }
func StaleTypeAssumption() Rule     { return IRR030StaleTypeAssumption }
func NarrowNeedsTypeArgument() Rule { return IRR031NarrowNeedsTypeArgument }
func PredicateMismatch() Rule       { return IRR035PredicateMismatch }
func SingleQualifier() Rule         { return IRR040SingleQualifier }
func AssumptionIgnoresTarget() Rule { return IRR045AssumptionIgnoresTarget }
