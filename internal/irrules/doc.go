// Package irrules defines the canonical rule codes (IRR-series) enforced by the irrelevant analyzer.
//
// Every diagnostic the analyzer emits is classified by exactly one rule. The code is used as
// the diagnostic category, so it can be filtered in editors and CI output.
//
// # Structure
//
// Rule codes follow the format “IRR<NNN>: <Name>” and are grouped by functional area:
//
//	000–009  Discard scope (the rebinding half of a directive)
//	010–029  Directive form: target, reason
//	030–049  Assumptions: type obligations, predicates, expressions
//
// Example:
//
//	irrules.IRR000UseAfterDiscard.String()      → "IRR000: UseAfterDiscard"
//	irrules.IRR000UseAfterDiscard.Description() → "A discarded value must not be used in the rest of its scope."
//
// # Notes
//
//   - Rule identifiers are stable; never renumber existing codes.
//   - Unknown codes render as "rule-unknown(N)".
package irrules
