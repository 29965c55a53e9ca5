// Package result defines Result[S, F], an immutable success/failure value
// that replaces (value, error) tuples, sentinels and panics with a single
// composable type.
//
// Highlights:
// - Success/Fail: construct a Result in exactly one of its two states
// - Map/FlatMap/MapFailure: type-changing combinators, short-circuiting on failure
// - ConditionalMap/ConditionalFlatMap/Filter: guarded same-type combinators
// - OnSuccess/OnFailure/Always: side-effect handlers with panic containment
// - Get/GetOrDefault/GetOrElse/GetOrPanic/Unwrap: terminal unwraps
// - FailureText/FailureFrom: the string capability required of failure payloads
//
// Failure is data, not control flow: no combinator panics on the failure
// branch. The only sanctioned raise is GetOrPanic, and the only place a panic
// can originate is inside a caller-supplied handler, where it is recovered
// and folded back into a failure Result.
//
// For aggregating slices of Results see package many; for pending
// computations see package promise; for fluent chaining see package chain.
package result
