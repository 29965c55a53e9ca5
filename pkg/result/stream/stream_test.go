package stream

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/robphilipp/result/pkg/result"
)

func TestToChanAndCollect(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := ToChan[int, string](ctx, []int{1, 2, 3})
	collected := Collect(ctx, in)
	if len(collected) != 3 {
		t.Fatalf("expected 3 results, got: %d", len(collected))
	}
	for _, r := range collected {
		if !r.Succeeded() {
			t.Fatalf("ToChan emits successes, got: %v", r)
		}
	}
}

func TestRun_MapStage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	out := Run(ctx,
		ToChan[int, string](ctx, []int{1, 2, 3, 4}),
		MapStage[int, int, string](func(v int) int { return v * 10 }),
		2)

	values := make([]int, 0)
	for _, r := range Collect(ctx, out) {
		if !r.Succeeded() {
			t.Fatalf("expected all successes, got: %v", r)
		}
		values = append(values, r.Value())
	}
	sort.Ints(values)
	want := []int{10, 20, 30, 40}
	for i, v := range values {
		if v != want[i] {
			t.Fatalf("expected %v, got: %v", want, values)
		}
	}
}

func TestRun_FlatMapAndFilterStages(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parse := FlatMapStage[int, int, string](func(v int) result.Result[int, string] {
		if v < 0 {
			return result.Fail[int, string]("negative")
		}
		return result.Success[int, string](v)
	})
	even := FilterStage[int, string](func(v int) bool { return v%2 == 0 }, func() string { return "odd" })

	first := Run(ctx, ToChan[int, string](ctx, []int{-1, 2, 3}), parse, 1)
	out := Run(ctx, first, even, 1)

	failures := 0
	successes := 0
	for _, r := range Collect(ctx, out) {
		if r.Succeeded() {
			successes++
			if r.Value() != 2 {
				t.Fatalf("only 2 survives both stages, got: %v", r.Value())
			}
		} else {
			failures++
		}
	}
	if successes != 1 || failures != 2 {
		t.Fatalf("expected 1 success and 2 failures, got: %d/%d", successes, failures)
	}
}

func TestRun_WorkerCountFromContext(t *testing.T) {
	t.Parallel()

	ctx := WithWorkerCount(context.Background(), 3)
	if got := WorkerCount(ctx, 1); got != 3 {
		t.Fatalf("expected 3 workers from context, got: %d", got)
	}
	if got := WorkerCount(context.Background(), 4); got != 4 {
		t.Fatalf("expected default 4, got: %d", got)
	}

	out := Run(ctx,
		ToChan[int, string](ctx, []int{1, 2, 3}),
		MapStage[int, int, string](func(v int) int { return v }),
		0)
	if len(Collect(ctx, out)) != 3 {
		t.Fatalf("run with context worker count must process all inputs")
	}
}

func TestRun_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := Run(ctx,
		ToChan[int, string](ctx, []int{1, 2, 3}),
		MapStage[int, int, string](func(v int) int {
			time.Sleep(10 * time.Millisecond)
			return v
		}),
		1)

	// cancelled before work begins: the output closes without
	// necessarily emitting anything
	collected := Collect(context.Background(), out)
	if len(collected) > 3 {
		t.Fatalf("unexpected results after cancellation: %v", collected)
	}
}
