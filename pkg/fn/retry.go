package fn

import (
	"context"
	"time"
)

// RetryOpts configures retry behavior. The wait between attempts is fixed;
// polite scraping wants a predictable pause, not an escalating one.
type RetryOpts struct {
	MaxAttempts int
	Wait        time.Duration
	// OnFailure, if set, is called after each failed attempt with the
	// 1-based attempt number and the error.
	OnFailure func(attempt int, err error)
}

// Retry runs f up to MaxAttempts times, sleeping Wait between attempts.
// It returns the first success or the last failure. Context cancellation
// aborts the wait and surfaces ctx.Err().
func Retry[T any](ctx context.Context, opts RetryOpts, f func(context.Context) Result[T]) Result[T] {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}

	var result Result[T]
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		result = f(ctx)
		if result.IsOk() {
			return result
		}
		if opts.OnFailure != nil {
			_, err := result.Unwrap()
			opts.OnFailure(attempt, err)
		}
		if attempt == opts.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return Err[T](ctx.Err())
		case <-time.After(opts.Wait):
		}
	}
	return result
}
