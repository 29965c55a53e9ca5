package stream

import "context"

type optionKey string

const workerOptionKey optionKey = "worker_options"

type workerOptions struct {
	maxCount int
}

// WithWorkerCount stores the default worker count for Run in the context.
func WithWorkerCount(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{maxCount: workers})
}

// WorkerCount returns the worker count stored in the context, or def when
// none was set.
func WorkerCount(ctx context.Context, def int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok && options.maxCount > 0 {
		return options.maxCount
	}
	return def
}
