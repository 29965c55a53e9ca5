package stream

import (
	"context"
	"sync"

	"github.com/robphilipp/result/pkg/result"
)

// Stage transforms one Result into another; stages are what Run fans out
// over workers.
type Stage[S, SP, F any] func(result.Result[S, F]) result.Result[SP, F]

// MapStage lifts a pure transformation over a stream element.
func MapStage[S, SP, F any](mapper func(S) SP) Stage[S, SP, F] {
	return func(r result.Result[S, F]) result.Result[SP, F] {
		return result.Map(r, mapper)
	}
}

// FlatMapStage lifts a Result-producing function over a stream element.
func FlatMapStage[S, SP, F any](next func(S) result.Result[SP, F]) Stage[S, SP, F] {
	return func(r result.Result[S, F]) result.Result[SP, F] {
		return result.FlatMap(r, next)
	}
}

// FilterStage lifts a predicate; values failing it become failures built by
// failureProvider.
func FilterStage[S, F any](predicate func(S) bool, failureProvider func() F) Stage[S, S, F] {
	return func(r result.Result[S, F]) result.Result[S, F] {
		return r.Filter(predicate, failureProvider)
	}
}

// ToChan feeds values into a channel of successes, stopping early when ctx
// is done. The channel closes once all values are sent.
func ToChan[S, F any](ctx context.Context, values []S) <-chan result.Result[S, F] {
	in := make(chan result.Result[S, F])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- result.Success[S, F](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Run drains in through stage using the given number of workers and emits
// the transformed Results on the returned channel, which closes when the
// input is exhausted or ctx is done. Ordering across workers is not
// preserved. A non-positive workers count falls back to the context option.
func Run[S, SP, F any](ctx context.Context, in <-chan result.Result[S, F],
	stage Stage[S, SP, F], workers int) <-chan result.Result[SP, F] {

	if workers <= 0 {
		workers = WorkerCount(ctx, 1)
	}

	out := make(chan result.Result[SP, F])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case r, ok := <-in:
					if !ok {
						return
					}

					select {
					case out <- stage(r):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Collect gathers everything from out until it closes or ctx is done.
func Collect[S, F any](ctx context.Context, out <-chan result.Result[S, F]) []result.Result[S, F] {
	collected := make([]result.Result[S, F], 0)

	for {
		select {
		case r, ok := <-out:
			if !ok {
				return collected
			}
			collected = append(collected, r)
		case <-ctx.Done():
			return collected
		}
	}
}
