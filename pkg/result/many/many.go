package many

import (
	"fmt"

	"github.com/robphilipp/result/pkg/result"
)

// FromAll succeeds with every success value, in input order, only when all
// inputs succeeded. Otherwise it fails with a message naming the failure
// count; individual failure detail is discarded. Use ForEachResult when the
// full failure list matters.
func FromAll[S, F any](results []result.Result[S, F]) result.Result[[]S, F] {
	values := make([]S, 0, len(results))
	failed := 0
	for _, r := range results {
		if r.Succeeded() {
			values = append(values, r.Value())
		} else {
			failed++
		}
	}
	if failed > 0 {
		f, _ := result.FailureFrom[F](fmt.Sprintf("%d of %d results failed", failed, len(results)))
		return result.Fail[[]S](f)
	}
	return result.Success[[]S, F](values)
}

// FromAny succeeds with the success values of the inputs that succeeded, in
// input order, silently dropping failures. It never fails; when every input
// failed the value is an empty slice.
func FromAny[S, F any](results []result.Result[S, F]) result.Result[[]S, F] {
	values := make([]S, 0, len(results))
	for _, r := range results {
		if r.Succeeded() {
			values = append(values, r.Value())
		}
	}
	return result.Success[[]S, F](values)
}

// ForEachResult applies handler to every input Result and succeeds with the
// transformed values, in input order, only when all transformed Results
// succeeded. Otherwise it fails with every failure payload, in input order.
func ForEachResult[S, SP, F any](
	results []result.Result[S, F],
	handler func(result.Result[S, F]) result.Result[SP, F]) result.Result[[]SP, []F] {

	values := make([]SP, 0, len(results))
	failures := make([]F, 0)
	for _, r := range results {
		transformed := handler(r)
		if transformed.Succeeded() {
			values = append(values, transformed.Value())
		} else {
			failures = append(failures, transformed.FailureValue())
		}
	}
	if len(failures) > 0 {
		return result.Fail[[]SP](failures)
	}
	return result.Success[[]SP, []F](values)
}

// ForEachElement applies a Result-producing handler to raw elements and
// aggregates with the ForEachResult contract.
func ForEachElement[E, S, F any](
	elements []E,
	handler func(E) result.Result[S, F]) result.Result[[]S, []F] {

	results := make([]result.Result[S, F], 0, len(elements))
	for _, e := range elements {
		results = append(results, handler(e))
	}
	return ForEachResult(results, func(r result.Result[S, F]) result.Result[S, F] {
		return r
	})
}

// Reduce left-folds values through reducer. A failing step records its
// payload and keeps the accumulator for the next step, so every failure is
// collected rather than only the first. The fold fails only when no step
// succeeded and at least one failed; an explicit flag tracks this, so an
// accumulator that legitimately ends up equal to initial still succeeds.
func Reduce[A, E, F any](
	values []E,
	reducer func(acc A, element E) result.Result[A, F],
	initial A) result.Result[A, []F] {

	acc := initial
	failures := make([]F, 0)
	anySucceeded := false
	for _, v := range values {
		step := reducer(acc, v)
		if step.Succeeded() {
			acc = step.Value()
			anySucceeded = true
		} else {
			failures = append(failures, step.FailureValue())
		}
	}
	if !anySucceeded && len(failures) > 0 {
		return result.Fail[A](failures)
	}
	return result.Success[A, []F](acc)
}
