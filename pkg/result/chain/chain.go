package chain

import (
	"github.com/robphilipp/result/pkg/result"
)

// Chain wraps a result.Result to enable fluent composition
type Chain[S, F any] struct {
	res result.Result[S, F]
}

// Start creates a new chain from a result.Result
func Start[S, F any](r result.Result[S, F]) Chain[S, F] {
	return Chain[S, F]{res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[S, F any](value S) Chain[S, F] {
	return Chain[S, F]{res: result.Success[S, F](value)}
}

// Result returns the underlying result.Result
func (c Chain[S, F]) Result() result.Result[S, F] {
	return c.res
}

// Ensure performs a side effect on success without changing the result;
// a panicking fn becomes a failure, per result.OnSuccess
func (c Chain[S, F]) Ensure(fn func(S)) Chain[S, F] {
	return Chain[S, F]{res: c.res.OnSuccess(fn)}
}

// Trap performs a side effect on failure without changing the result
func (c Chain[S, F]) Trap(fn func(F)) Chain[S, F] {
	return Chain[S, F]{res: c.res.OnFailure(fn)}
}

// Keep applies mapper only when the predicate holds, passing the value
// through otherwise
func (c Chain[S, F]) Keep(predicate func(S) bool, mapper func(S) S) Chain[S, F] {
	return Chain[S, F]{res: c.res.ConditionalMap(predicate, mapper)}
}

// Refine turns a success whose value fails the predicate into a failure
func (c Chain[S, F]) Refine(predicate func(S) bool, failureProvider func() F) Chain[S, F] {
	return Chain[S, F]{res: c.res.Filter(predicate, failureProvider)}
}

// Then chains a function that returns result.Result[SP, F]
func Then[S, SP, F any](c Chain[S, F], next func(S) result.Result[SP, F]) Chain[SP, F] {
	return Chain[SP, F]{res: result.FlatMap(c.res, next)}
}

// Map chains a pure transformation function
func Map[S, SP, F any](c Chain[S, F], mapper func(S) SP) Chain[SP, F] {
	return Chain[SP, F]{res: result.Map(c.res, mapper)}
}

// Finally collapses the chain into a final value via handlers
func Finally[S, F, U any](c Chain[S, F], onSuccess func(S) U, onFailure func(F) U) U {
	if c.res.Succeeded() {
		return onSuccess(c.res.Value())
	}
	return onFailure(c.res.FailureValue())
}
