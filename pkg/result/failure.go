package result

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// Displayable is the capability a failure payload needs wherever its text
// form is required (GetOrPanic, String, aggregation messages). Payloads that
// are plain strings or errors satisfy the need without implementing it.
type Displayable interface {
	String() string
}

// FailureText renders a failure payload for human consumption.
func FailureText[F any](f F) string {
	switch v := any(f).(type) {
	case nil:
		return "<no failure>"
	case string:
		return v
	case error:
		if IsNil(v) {
			return "<no failure>"
		}
		return v.Error()
	case Displayable:
		if IsNil(v) {
			return "<no failure>"
		}
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FailureFrom coerces a generated message into a failure payload of type F.
// It succeeds when F is string-like or error-like; for any other failure
// type the caller must supply the payload itself, and FailureFrom reports
// false alongside the zero value.
func FailureFrom[F any](msg string) (F, bool) {
	if f, ok := any(msg).(F); ok {
		return f, true
	}
	if f, ok := any(errors.New(msg)).(F); ok {
		return f, true
	}
	var zero F
	return zero, false
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
