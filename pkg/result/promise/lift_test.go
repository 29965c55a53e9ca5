package promise

import (
	"context"
	"errors"
	"testing"

	"github.com/robphilipp/result/pkg/result"
)

func TestLift_FailureShortCircuits(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	in := result.Fail[*Promise[result.Result[int, error]]](boom)

	p := Lift(context.Background(), in)
	if !p.Settled() {
		t.Fatalf("failed input must settle immediately")
	}
	res, err := p.Await(context.Background())
	if err != nil {
		t.Fatalf("bridging never rejects for a failure input, got: %v", err)
	}
	if !res.Failed() || !errors.Is(res.FailureValue(), boom) {
		t.Fatalf("expected failure 'boom', got: %v", res)
	}
}

func TestLift_FlattensInnerResult(t *testing.T) {
	t.Parallel()

	inner := Resolve(result.Success[int, error](42))
	in := result.Success[*Promise[result.Result[int, error]], error](inner)

	res, err := Lift(context.Background(), in).Await(context.Background())
	if err != nil || !res.Succeeded() || res.Value() != 42 {
		t.Fatalf("expected success 42 with one level of flattening, got: (%v, %v)", res, err)
	}
}

func TestLift_InnerFailurePassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("inner failed")
	inner := Resolve(result.Fail[int](boom))
	in := result.Success[*Promise[result.Result[int, error]], error](inner)

	res, err := Lift(context.Background(), in).Await(context.Background())
	if err != nil || !res.Failed() || !errors.Is(res.FailureValue(), boom) {
		t.Fatalf("a resolved failure Result passes through as-is, got: (%v, %v)", res, err)
	}
}

func TestLift_RejectionBecomesFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("rejected")
	inner := Reject[result.Result[int, error]](boom)
	in := result.Success[*Promise[result.Result[int, error]], error](inner)

	res, err := Lift(context.Background(), in).Await(context.Background())
	if err != nil {
		t.Fatalf("rejection must become a failure Result, not a rejection: %v", err)
	}
	if !res.Failed() || !errors.Is(res.FailureValue(), boom) {
		t.Fatalf("expected failure carrying rejection reason, got: %v", res)
	}
}

func TestLift_NilPromisePayload(t *testing.T) {
	t.Parallel()

	in := result.Success[*Promise[result.Result[int, error]], error](nil)
	res, err := Lift(context.Background(), in).Await(context.Background())
	if err != nil || !res.Failed() {
		t.Fatalf("a success with no pending computation must settle as a failure, got: (%v, %v)", res, err)
	}
}

func TestLiftValue_WrapsBareValue(t *testing.T) {
	t.Parallel()

	in := result.Success[*Promise[int], error](Resolve(7))
	res, err := LiftValue(context.Background(), in).Await(context.Background())
	if err != nil || !res.Succeeded() || res.Value() != 7 {
		t.Fatalf("expected success 7, got: (%v, %v)", res, err)
	}
}

func TestLiftValue_RejectionBecomesFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("rejected")
	in := result.Success[*Promise[int], error](Reject[int](boom))
	res, err := LiftValue(context.Background(), in).Await(context.Background())
	if err != nil || !res.Failed() || !errors.Is(res.FailureValue(), boom) {
		t.Fatalf("expected failure carrying rejection reason, got: (%v, %v)", res, err)
	}
}
