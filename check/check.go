package check

import (
	"context"
	"fmt"
	"time"

	"github.com/jolly-good-toolbelt/jgt-common/metrics"
)

// Until periodically calls op until isComplete accepts its outcome or the
// configured timeout is exceeded.
//
// op is invoked at least once; success on the very first call is valid. A
// non-nil error from op propagates immediately, without further attempts.
// When the outcome fails validation and the deadline has not passed, Until
// sleeps for the configured interval and tries again. The deadline is only
// checked after an attempt, so the total elapsed time may exceed the timeout
// by up to one interval plus one op execution; an in-flight attempt is never
// pre-empted.
//
// On deadline expiry Until returns a *TimeoutError carrying the last
// obtained outcome, matching ErrIncompleteAtTimeout. Cancelling ctx aborts a
// between-attempts sleep and returns ctx.Err().
func Until[R any](
	ctx context.Context,
	op func(context.Context) (R, error),
	isComplete func(R) bool,
	opts ...Option,
) (R, error) {
	var zero R

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return zero, err
		}
	}

	attempts := cfg.metrics.Counter(metrics.PollAttempts)
	duration := cfg.metrics.Histogram(metrics.PollDuration)

	start := cfg.now()
	deadline := start.Add(cfg.timeout)

	var last R
	attempt := 0
	for {
		attempt++
		result, err := op(ctx)
		attempts.Add(1)
		if err != nil {
			return zero, err
		}
		last = result

		if isComplete(result) {
			elapsed := cfg.now().Sub(start)
			duration.Record(elapsed.Seconds())
			cfg.tick(fmt.Sprintf("final response achieved in %s (%d attempts)", elapsed.Round(time.Millisecond), attempt))
			return result, nil
		}

		if cfg.now().After(deadline) {
			break
		}

		cfg.tick(fmt.Sprintf("attempt %d still pending, next check in %s", attempt, cfg.interval))
		if err := cfg.sleep(ctx, cfg.interval); err != nil {
			return zero, err
		}
	}

	duration.Record(cfg.now().Sub(start).Seconds())
	cfg.tick("response was still pending at timeout")
	return zero, &TimeoutError{LastOutcome: last, Timeout: cfg.timeout}
}
