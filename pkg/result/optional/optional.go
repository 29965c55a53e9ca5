package optional

import (
	"errors"
	"fmt"

	"github.com/robphilipp/result/pkg/result"
)

// Optional holds a present value of type T or is empty. The zero Optional is
// Empty, so Optionals embed safely. Every transformation returns a new
// Optional; nothing mutates in place.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps a value that is definitely present.
func Of[T any](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

// OfNullable wraps a possibly-absent value; a nil pointer is the absent
// marker and yields Empty.
func OfNullable[T any](ptr *T) Optional[T] {
	if ptr == nil {
		return Empty[T]()
	}
	return Of(*ptr)
}

// FromOk wraps a (value, ok) pair, mirroring map lookups and type
// assertions.
func FromOk[T any](value T, ok bool) Optional[T] {
	if !ok {
		return Empty[T]()
	}
	return Of(value)
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// IsNotEmpty is always the complement of IsEmpty.
func (o Optional[T]) IsNotEmpty() bool {
	return o.present
}

// Get returns the value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) GetOrElse(def T) T {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[T]) GetOrElseFunc(fn func() T) T {
	if o.present {
		return o.value
	}
	return fn()
}

// GetOrPanic returns the value or panics with the supplied error (or a
// generic one when errSupplier is nil).
func (o Optional[T]) GetOrPanic(errSupplier func() error) T {
	if o.present {
		return o.value
	}
	if errSupplier != nil {
		panic(errSupplier())
	}
	panic(errors.New("optional: empty"))
}

// ToPtr returns a pointer to a copy of the value, or nil when empty.
func (o Optional[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	value := o.value
	return &value
}

// Filter keeps the value only when the predicate holds, otherwise Empty.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if o.present && predicate(o.value) {
		return Of(o.value)
	}
	return Empty[T]()
}

// IfPresent invokes fn only when a value is present and returns the Optional
// unchanged. Unlike Result's OnSuccess there is no panic containment; a
// panicking fn propagates to the caller.
func (o Optional[T]) IfPresent(fn func(T)) Optional[T] {
	if o.present {
		fn(o.value)
	}
	return o
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Empty"
}

// Map transforms the present value; absence propagates as absence.
func Map[T, U any](o Optional[T], mapper func(T) U) Optional[U] {
	if o.present {
		return Of(mapper(o.value))
	}
	return Empty[U]()
}

// MapPtr transforms with a mapper that may itself produce the absent marker;
// the mapped pointer is re-tested for nil.
func MapPtr[T, U any](o Optional[T], mapper func(T) *U) Optional[U] {
	if o.present {
		return OfNullable(mapper(o.value))
	}
	return Empty[U]()
}

// FlatMap chains the Optional with an Optional-producing mapper.
func FlatMap[T, U any](o Optional[T], mapper func(T) Optional[U]) Optional[U] {
	if o.present {
		return mapper(o.value)
	}
	return Empty[U]()
}

// Fold collapses the Optional into a single value.
func Fold[T, U any](o Optional[T], onEmpty func() U, onPresent func(T) U) U {
	if o.present {
		return onPresent(o.value)
	}
	return onEmpty()
}

// ToResult converts the Optional into a Result, failing with the provided
// payload when empty.
func ToResult[T, F any](o Optional[T], failure func() F) result.Result[T, F] {
	if o.present {
		return result.Success[T, F](o.value)
	}
	return result.Fail[T](failure())
}
