// Package expr compiles flat boolean equations into typed, executable
// evaluators.
//
// The equation language is the gate-fragment language: basic-event
// identifiers combined with `*` (AND), `+` (OR) and parentheses. The
// compiler parses it into a small expression tree (Var | And | Or) and
// binds every variable to a parameter slot, so evaluation is a pure
// recursive walk with no string handling and no reparsing per call.
//
// Evaluation uses arithmetic semantics over 0/1 inputs: AND multiplies,
// OR adds. All-zero input therefore yields 0, and any assignment that
// satisfies the boolean formula yields a value >= 1 (the number of
// satisfied minterms reachable through the additions).
//
// Malformed equations (unbalanced parentheses, dangling operators,
// empty terms) fail at compile time, never at first call.
package expr
