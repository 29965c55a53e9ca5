package result

import "fmt"

// Map transforms the success value. On failure the payload is carried over
// untouched and the mapper is never invoked.
func Map[S, SP, F any](r Result[S, F], mapper func(S) SP) Result[SP, F] {
	if r.succeeded {
		return Success[SP, F](mapper(r.value))
	}
	return failFrom[SP](r)
}

// FlatMap composes operations where each step itself may fail. On success it
// returns next's Result directly, with no extra wrapping; on failure it
// propagates the failure.
func FlatMap[S, SP, F any](r Result[S, F], next func(S) Result[SP, F]) Result[SP, F] {
	if r.succeeded {
		return next(r.value)
	}
	return failFrom[SP](r)
}

// MapFailure remaps the failure payload; a success passes through with the
// failure type changed.
func MapFailure[S, F, FP any](r Result[S, F], mapper func(F) FP) Result[S, FP] {
	if r.succeeded {
		return Result[S, FP]{
			value:     r.value,
			succeeded: true,
			createdAt: r.createdAt,
			id:        r.id,
		}
	}
	return Fail[S, FP](mapper(r.failure))
}

// AsFailureOf forces a failure of a new success type. When the original
// failure payload is absent (a success, or a malformed zero Result), the
// fallback is used instead.
func AsFailureOf[SP, S, F any](r Result[S, F], fallback F) Result[SP, F] {
	if r.hasFailure {
		return Fail[SP, F](r.failure)
	}
	return Fail[SP, F](fallback)
}

// FromTuple bridges a standard (value, error) pair into a Result.
func FromTuple[S any](value S, err error) Result[S, error] {
	if err != nil {
		return Fail[S, error](err)
	}
	return Success[S, error](value)
}

// ConditionalMap applies mapper when the predicate holds for the success
// value, otherwise the value passes through as a new success. A failure
// propagates unchanged.
func (r Result[S, F]) ConditionalMap(predicate func(S) bool, mapper func(S) S) Result[S, F] {
	if !r.succeeded {
		return r
	}
	if predicate(r.value) {
		return Success[S, F](mapper(r.value))
	}
	return Success[S, F](r.value)
}

// ConditionalFlatMap applies next when the predicate holds for the success
// value, otherwise the value passes through as a new success. A failure
// propagates unchanged.
func (r Result[S, F]) ConditionalFlatMap(predicate func(S) bool, next func(S) Result[S, F]) Result[S, F] {
	if !r.succeeded {
		return r
	}
	if predicate(r.value) {
		return next(r.value)
	}
	return Success[S, F](r.value)
}

// Filter keeps a success whose value satisfies the predicate. Otherwise the
// Result becomes a failure built by failureProvider when one is given, or a
// generic "predicate not satisfied" payload when F can carry it. Failure
// types that are neither string-like nor error-like should always pass a
// provider; without one the failure payload is the zero F.
func (r Result[S, F]) Filter(predicate func(S) bool, failureProvider ...func() F) Result[S, F] {
	if !r.succeeded {
		return r
	}
	if predicate(r.value) {
		return Success[S, F](r.value)
	}
	if len(failureProvider) > 0 && failureProvider[0] != nil {
		return Fail[S, F](failureProvider[0]())
	}
	f, ok := FailureFrom[F]("predicate not satisfied")
	return failWith[S](f, ok)
}

// OnSuccess invokes handler for its side effects when the Result succeeded
// and returns the Result unchanged. A panicking handler is recovered and
// converted into a new failure Result, so it never escapes the chain.
func (r Result[S, F]) OnSuccess(handler func(S)) (out Result[S, F]) {
	out = r
	if !r.succeeded {
		return
	}
	defer recoverHandler(&out, "success handler")
	handler(r.value)
	return
}

// OnFailure invokes handler for its side effects when the Result failed and
// returns the Result unchanged. A panicking handler is recovered and
// converted into a new failure Result.
func (r Result[S, F]) OnFailure(handler func(F)) (out Result[S, F]) {
	out = r
	if r.succeeded {
		return
	}
	defer recoverHandler(&out, "failure handler")
	handler(r.failure)
	return
}

// Always invokes handler regardless of state, with the same panic
// containment as OnSuccess and OnFailure.
func (r Result[S, F]) Always(handler func()) (out Result[S, F]) {
	out = r
	defer recoverHandler(&out, "handler")
	handler()
	return
}

func recoverHandler[S, F any](out *Result[S, F], which string) {
	if cause := recover(); cause != nil {
		f, ok := FailureFrom[F](fmt.Sprintf("%s panicked: %v", which, cause))
		*out = failWith[S](f, ok)
	}
}
