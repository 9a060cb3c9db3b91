// Package tracing tracks discarded values through the source of a package.
//
// Analysis runs in two phases sharing a single [Reporter]:
//
//   - Scrap
//     Every directive call is classified and its discard span is registered
//     in [Scopes]. A span starts right after the call and lasts until the end
//     of the innermost enclosing block, case clause or statement header.
//
//   - Trace
//     Every identifier referring to a variable is checked against the spans
//     covering its position. A reference to a discarded variable inside its
//     span is a use after discard.
//
// Spans are matched against type-checker objects rather than names: a variable
// declared with the same name in a nested block is a different object.
package tracing
