package result

import "errors"

// Get returns the success value and whether one is present.
func (r Result[S, F]) Get() (S, bool) {
	return r.value, r.succeeded
}

// GetOrDefault returns the success value, or def when failed.
func (r Result[S, F]) GetOrDefault(def S) S {
	if r.succeeded {
		return r.value
	}
	return def
}

// GetOrElse returns the success value, or lazily computes one from supplier.
func (r Result[S, F]) GetOrElse(supplier func() S) S {
	if r.succeeded {
		return r.value
	}
	return supplier()
}

// GetOrPanic returns the success value, or panics with an error built from
// the failure's text form. An optional supplier overrides the panic value.
// This is the single place the library raises instead of returning.
func (r Result[S, F]) GetOrPanic(errSupplier ...func() error) S {
	if r.succeeded {
		return r.value
	}
	if len(errSupplier) > 0 && errSupplier[0] != nil {
		panic(errSupplier[0]())
	}
	panic(errors.New(FailureText(r.failure)))
}

// Unwrap exposes the Result as a standard (value, error) pair. A failure
// whose payload is not already an error is wrapped via its text form.
func (r Result[S, F]) Unwrap() (S, error) {
	if r.succeeded {
		return r.value, nil
	}
	if err, ok := any(r.failure).(error); ok && !IsNil(err) {
		return r.value, err
	}
	return r.value, errors.New(FailureText(r.failure))
}
