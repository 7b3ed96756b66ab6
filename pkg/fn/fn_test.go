package fn

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResultOkErr(t *testing.T) {
	r := Ok(42)
	if !r.IsOk() || r.IsErr() {
		t.Fatal("Ok result should be ok")
	}
	v, err := r.Unwrap()
	if v != 42 || err != nil {
		t.Fatalf("Unwrap = (%v, %v), want (42, nil)", v, err)
	}

	boom := errors.New("boom")
	e := Err[int](boom)
	if e.IsOk() || !e.IsErr() {
		t.Fatal("Err result should be err")
	}
	if _, err := e.Unwrap(); !errors.Is(err, boom) {
		t.Fatalf("Unwrap err = %v, want boom", err)
	}
	if got := e.UnwrapOr(7); got != 7 {
		t.Fatalf("UnwrapOr = %d, want 7", got)
	}
}

func TestFromPair(t *testing.T) {
	if r := FromPair("x", nil); r.IsErr() {
		t.Fatal("FromPair with nil error should be ok")
	}
	if r := FromPair("", errors.New("bad")); r.IsOk() {
		t.Fatal("FromPair with error should be err")
	}
}

func TestRetrySucceedsOnSecondAttempt(t *testing.T) {
	calls := 0
	r := Retry(context.Background(), RetryOpts{MaxAttempts: 3, Wait: time.Millisecond}, func(context.Context) Result[string] {
		calls++
		if calls < 2 {
			return Err[string](errors.New("transient"))
		}
		return Ok("done")
	})
	if v := r.UnwrapOr(""); v != "done" {
		t.Fatalf("got %q, want done", v)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	var notified []int
	r := Retry(context.Background(), RetryOpts{
		MaxAttempts: 2,
		Wait:        time.Millisecond,
		OnFailure:   func(attempt int, err error) { notified = append(notified, attempt) },
	}, func(context.Context) Result[int] {
		calls++
		return Err[int](errors.New("down"))
	})
	if r.IsOk() {
		t.Fatal("expected failure")
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
	if len(notified) != 2 || notified[0] != 1 || notified[1] != 2 {
		t.Fatalf("notified = %v, want [1 2]", notified)
	}
}

func TestRetryRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Retry(ctx, RetryOpts{MaxAttempts: 5, Wait: time.Minute}, func(context.Context) Result[int] {
		return Err[int](errors.New("always"))
	})
	_, err := r.Unwrap()
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
