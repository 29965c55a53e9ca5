package result

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of an operation that either produced a success
// value of type S or a failure of type F. A Result is always in exactly one
// of the two states; combinators never mutate it, they return a new Result.
type Result[S, F any] struct {
	id         uuid.UUID
	createdAt  time.Time
	value      S
	failure    F
	succeeded  bool
	hasFailure bool
}

func Success[S, F any](value S) Result[S, F] {
	return Result[S, F]{
		value:     value,
		succeeded: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[S, F any](failure F) Result[S, F] {
	return Result[S, F]{
		failure:    failure,
		succeeded:  false,
		hasFailure: true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// failWith builds a failure whose payload may be missing, e.g. when a
// generated message could not be coerced into F. AsFailureOf relies on the
// hasPayload flag to substitute a fallback.
func failWith[S, F any](failure F, hasPayload bool) Result[S, F] {
	return Result[S, F]{
		failure:    failure,
		succeeded:  false,
		hasFailure: hasPayload,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// failFrom carries a failure across a success-type change, keeping the
// identity and creation time of the originating Result.
func failFrom[SP, S, F any](from Result[S, F]) Result[SP, F] {
	return Result[SP, F]{
		failure:    from.failure,
		succeeded:  false,
		hasFailure: from.hasFailure,
		createdAt:  from.createdAt,
		id:         from.id,
	}
}

// Succeeded reports whether the Result holds a success value.
func (r Result[S, F]) Succeeded() bool {
	return r.succeeded
}

// Failed reports whether the Result holds a failure. Always the complement
// of Succeeded.
func (r Result[S, F]) Failed() bool {
	return !r.succeeded
}

// Value returns the success value, or the zero value of S when failed.
func (r Result[S, F]) Value() S {
	return r.value
}

// FailureValue returns the failure payload, or the zero value of F when
// the Result succeeded.
func (r Result[S, F]) FailureValue() F {
	return r.failure
}

func (r Result[S, F]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[S, F]) CreatedAt() time.Time {
	return r.createdAt
}

// Equals reports payload equality: both successes with equal values, or both
// failures with equal payloads. Identity and creation time are ignored, so a
// Result always equals a fresh copy of itself built from the same payload.
func (r Result[S, F]) Equals(other Result[S, F]) bool {
	if r.succeeded != other.succeeded {
		return false
	}
	if r.succeeded {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.failure, other.failure)
}

func (r Result[S, F]) NotEquals(other Result[S, F]) bool {
	return !r.Equals(other)
}

func (r Result[S, F]) String() string {
	if r.succeeded {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%s)", FailureText(r.failure))
}
