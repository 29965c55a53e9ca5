package promise

import (
	"context"
	"fmt"
)

// Promise is a one-shot pending computation: it settles exactly once with a
// value or a rejection and then never changes. The zero Promise is not
// usable; construct one with New, Resolve or Reject.
type Promise[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// New launches fn on its own goroutine and returns the Promise it will
// settle. A panic inside fn rejects the Promise instead of crashing the
// program.
func New[T any](fn func() (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	go func() {
		defer close(p.done)
		defer func() {
			if cause := recover(); cause != nil {
				p.err = fmt.Errorf("promise panicked: %v", cause)
			}
		}()
		p.value, p.err = fn()
	}()
	return p
}

// Resolve returns an already-settled Promise holding value.
func Resolve[T any](value T) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{}), value: value}
	close(p.done)
	return p
}

// Reject returns an already-settled Promise holding a rejection.
func Reject[T any](err error) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{}), err: err}
	close(p.done)
	return p
}

// Await blocks until the Promise settles or ctx is done, whichever comes
// first. The computation itself is not cancelled by ctx; it runs to its
// natural settlement.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Settled reports whether the Promise has already settled.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
