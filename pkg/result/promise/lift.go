package promise

import (
	"context"
	"errors"

	"github.com/robphilipp/result/pkg/result"
)

// The bridging layer fixes the failure type to error: a pending computation
// in Go fails with an error, and a settlement wait can itself only produce
// errors. Callers carrying a custom failure type convert with
// result.MapFailure after bridging.

// Lift collapses a Result whose success payload is a Promise of a Result
// into a single Promise of that Result. A failed input settles immediately
// as a failure; a rejected inner Promise settles as a failure carrying the
// rejection reason; a resolved inner Result passes through unchanged.
func Lift[SP any](ctx context.Context,
	r result.Result[*Promise[result.Result[SP, error]], error]) *Promise[result.Result[SP, error]] {

	if r.Failed() {
		return Resolve(result.Fail[SP](r.FailureValue()))
	}
	inner := r.Value()
	if inner == nil {
		return Resolve(result.Fail[SP, error](errors.New("lift: success holds no pending computation")))
	}
	return New(func() (result.Result[SP, error], error) {
		settled, err := inner.Await(ctx)
		if err != nil {
			return result.Fail[SP](err), nil
		}
		return settled, nil
	})
}

// LiftValue is the bare-value variant of Lift: the inner Promise settles
// with a plain value, which is wrapped in a success.
func LiftValue[SP any](ctx context.Context,
	r result.Result[*Promise[SP], error]) *Promise[result.Result[SP, error]] {

	if r.Failed() {
		return Resolve(result.Fail[SP](r.FailureValue()))
	}
	inner := r.Value()
	if inner == nil {
		return Resolve(result.Fail[SP, error](errors.New("lift: success holds no pending computation")))
	}
	return New(func() (result.Result[SP, error], error) {
		settled, err := inner.Await(ctx)
		if err != nil {
			return result.Fail[SP](err), nil
		}
		return result.Success[SP, error](settled), nil
	})
}
