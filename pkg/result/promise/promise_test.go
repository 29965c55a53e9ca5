package promise

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNew_Resolves(t *testing.T) {
	t.Parallel()

	p := New(func() (int, error) { return 42, nil })
	v, err := p.Await(context.Background())
	if err != nil || v != 42 {
		t.Fatalf("expected (42, nil), got: (%v, %v)", v, err)
	}
	if !p.Settled() {
		t.Fatalf("awaited promise must report settled")
	}
}

func TestNew_Rejects(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := New(func() (int, error) { return 0, boom })
	if _, err := p.Await(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected rejection 'boom', got: %v", err)
	}
}

func TestNew_PanicBecomesRejection(t *testing.T) {
	t.Parallel()

	p := New(func() (int, error) { panic("exploded") })
	_, err := p.Await(context.Background())
	if err == nil || !strings.Contains(err.Error(), "exploded") {
		t.Fatalf("expected rejection describing the panic, got: %v", err)
	}
}

func TestResolveReject(t *testing.T) {
	t.Parallel()

	if v, err := Resolve("done").Await(context.Background()); err != nil || v != "done" {
		t.Fatalf("expected immediate value, got: (%v, %v)", v, err)
	}
	boom := errors.New("boom")
	if _, err := Reject[string](boom).Await(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected immediate rejection, got: %v", err)
	}
	if !Resolve(1).Settled() {
		t.Fatalf("resolved promise must be settled")
	}
}

func TestAwait_ContextCancelled(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	p := New(func() (int, error) {
		<-block
		return 1, nil
	})
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := p.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got: %v", err)
	}
	if p.Settled() {
		t.Fatalf("the computation itself must not be cancelled by the waiter")
	}
}

func TestAwait_MultipleWaiters(t *testing.T) {
	t.Parallel()

	p := New(func() (int, error) { return 5, nil })
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if v, err := p.Await(ctx); err != nil || v != 5 {
			t.Fatalf("every waiter sees the same settlement, got: (%v, %v)", v, err)
		}
	}
}
