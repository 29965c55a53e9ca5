// Package chain provides a fluent wrapper around Result[S, F] for building
// synchronous pipelines without branching at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[SP, F] via a function
// - Map: transform the successful value (S -> SP)
// - Keep/Refine: conditional mapping and filtering
// - Ensure/Trap: side effects on success or failure without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
