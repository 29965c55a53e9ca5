package promise

import (
	"context"

	"github.com/robphilipp/result/pkg/result"
	"github.com/robphilipp/result/pkg/result/many"
)

// ForEach starts one pending computation per element, all at once, and waits
// for every one of them to settle; a rejection does not short-circuit the
// wait. When any computation was rejected the aggregate fails with every
// rejection reason; otherwise the resolved Results are aggregated under the
// many.ForEachResult contract. Output follows input-index order, not
// settlement order.
//
// Cancellation of ctx during the wait is catastrophic: the aggregate fails
// with a single-element list wrapping the cancellation cause. The
// computations themselves are not cancelled; wrap them before handing them
// in when cancellation is needed.
func ForEach[E, S any](ctx context.Context, elements []E,
	handler func(E) *Promise[result.Result[S, error]]) result.Result[[]S, []error] {

	pending := make([]*Promise[result.Result[S, error]], len(elements))
	for i, e := range elements {
		pending[i] = handler(e)
	}

	settled := make([]result.Result[S, error], len(elements))
	rejections := make([]error, 0)
	for i, p := range pending {
		res, err := p.Await(ctx)
		if err != nil {
			if result.IsCancellation(err) && ctx.Err() != nil {
				return result.Fail[[]S]([]error{err})
			}
			rejections = append(rejections, err)
			continue
		}
		settled[i] = res
	}
	if len(rejections) > 0 {
		return result.Fail[[]S](rejections)
	}
	return many.ForEachResult(settled, func(r result.Result[S, error]) result.Result[S, error] {
		return r
	})
}
