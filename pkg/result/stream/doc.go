// Package stream lifts Result combinators over channels for concurrent
// fan-out/fan-in flows.
//
// Common usage:
// - ToChan: feed a slice into a channel of successes
// - MapStage/FlatMapStage/FilterStage: lift combinators into stages
// - Run: execute a stage over an input channel with a fixed number of workers
// - Collect: drain the output back into a slice
//
// Worker counts can be carried on the context with WithWorkerCount. Output
// ordering across workers is not preserved; aggregate with package many when
// order matters by collecting first and sorting by your own key.
package stream
