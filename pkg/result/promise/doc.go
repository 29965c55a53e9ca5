// Package promise bridges Results and pending computations.
//
// Promise[T] is a one-shot, settle-once value backed by a goroutine. Lift and
// LiftValue collapse a Result holding a Promise into a Promise holding a
// Result, so a chain can stay in Result space across an asynchronous step.
// ForEach fans out one computation per element with no concurrency limit,
// waits for all settlements, and aggregates with package many.
//
// The failure type is fixed to error here; convert custom failure types with
// result.MapFailure after bridging. No cancellation is imposed on running
// computations anywhere in this package.
package promise
