package check

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/jolly-good-toolbelt/jgt-common/metrics"
)

// Retrier wraps operations so that errors of configured kinds are retried
// with a Fibonacci backoff sleep between attempts, capped at a maximum.
//
// A Retrier is immutable after construction and safe for concurrent use.
type Retrier struct {
	maxRetryCount int
	maxRetrySleep time.Duration
	matched       []error

	logger *zap.Logger

	attempts metrics.Counter
	sleeps   metrics.Histogram

	// test seam
	sleep func(context.Context, time.Duration) error
}

// RetryOption configures a Retrier.
type RetryOption func(*Retrier) error

// WithRetryLogger routes per-retry debug lines to the given logger.
func WithRetryLogger(l *zap.Logger) RetryOption {
	return func(r *Retrier) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithRetryLogger requires a non-nil logger"))
		}
		r.logger = l
		return nil
	}
}

// WithRetryMetrics sets the provider used to record attempt counts and
// backoff sleeps.
func WithRetryMetrics(p metrics.Provider) RetryOption {
	return func(r *Retrier) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithRetryMetrics requires a non-nil provider"))
		}
		r.attempts = p.Counter(metrics.RetryAttempts)
		r.sleeps = p.Histogram(metrics.RetrySleep)
		return nil
	}
}

// NewRetrier builds a Retrier that retries an operation up to maxRetryCount
// times (maxRetryCount+1 total attempts) when it fails with an error
// matching, via errors.Is, any sentinel in matched. Sleeps between attempts
// follow FibOrMax(attempt, maxRetrySleep).
//
// Construction fails with an error matching ErrInvalidRetryPolicy when
// maxRetryCount <= 0, maxRetrySleep <= 0, or matched is empty.
func NewRetrier(
	maxRetryCount int,
	maxRetrySleep time.Duration,
	matched []error,
	opts ...RetryOption,
) (*Retrier, error) {
	if maxRetryCount <= 0 {
		return nil, errorc.With(ErrInvalidRetryPolicy, errorc.String("", "max retry count must be greater than 0"))
	}
	if maxRetrySleep <= 0 {
		return nil, errorc.With(ErrInvalidRetryPolicy, errorc.String("", "max retry sleep must be greater than 0"))
	}
	if len(matched) == 0 {
		return nil, errorc.With(ErrInvalidRetryPolicy, errorc.String("", "no matched error kinds given"))
	}
	for _, kind := range matched {
		if kind == nil {
			return nil, errorc.With(ErrInvalidRetryPolicy, errorc.String("", "matched error kinds must be non-nil"))
		}
	}

	noop := metrics.NewNoop()
	r := &Retrier{
		maxRetryCount: maxRetryCount,
		maxRetrySleep: maxRetrySleep,
		matched:       append([]error(nil), matched...),
		logger:        zap.NewNop(),
		attempts:      noop.Counter(metrics.RetryAttempts),
		sleeps:        noop.Histogram(metrics.RetrySleep),
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Do invokes fn, retrying per the Retrier's policy. It returns nil on the
// first successful attempt, the last caught error once all attempts fail, a
// non-matching error as soon as it occurs, or ctx.Err() when ctx is
// cancelled during a backoff sleep.
func (r *Retrier) Do(ctx context.Context, fn func(context.Context) error) error {
	_, err := DoValue(ctx, r, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoValue is Do for operations that produce a value. On failure the zero
// value of R is returned alongside the error.
func DoValue[R any](ctx context.Context, r *Retrier, fn func(context.Context) (R, error)) (R, error) {
	var zero R

	for attempt := 0; ; attempt++ {
		v, err := fn(ctx)
		r.attempts.Add(1)
		if err == nil {
			return v, nil
		}
		if !r.matches(err) {
			return zero, err
		}
		if attempt == r.maxRetryCount {
			r.logger.Debug("max retry count exceeded", zap.Int("max_retry_count", r.maxRetryCount), zap.Error(err))
			return zero, err
		}

		retrySleep := FibOrMax(attempt+1, r.maxRetrySleep)
		r.logger.Debug(
			fmt.Sprintf("retry on error: %q encountered during call, trying again after a sleep of %s", err, retrySleep),
		)
		r.sleeps.Record(retrySleep.Seconds())
		if sleepErr := r.sleep(ctx, retrySleep); sleepErr != nil {
			return zero, sleepErr
		}
	}
}

func (r *Retrier) matches(err error) bool {
	for _, kind := range r.matched {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
