package check

import (
	"context"
	"time"

	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"

	"github.com/jolly-good-toolbelt/jgt-common/metrics"
)

// Defaults applied when the corresponding option is not provided.
const (
	DefaultTimeout       = 300 * time.Second
	DefaultInterval      = 5 * time.Second
	DefaultMaxRetrySleep = 30 * time.Second
)

// config holds Until polling configuration.
type config struct {
	// timeout bounds the wall-clock time across attempts, not any single
	// attempt's execution time.
	timeout time.Duration

	// interval is the sleep between unsuccessful attempts.
	interval time.Duration

	logger  *zap.Logger
	onTick  func(string)
	metrics metrics.Provider

	// test seams
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

func defaultConfig() config {
	return config{
		timeout:  DefaultTimeout,
		interval: DefaultInterval,
		logger:   zap.NewNop(),
		metrics:  metrics.NewNoop(),
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// tick emits a human-readable progress line to the logger and, when
// configured, the on-tick hook.
func (c *config) tick(msg string) {
	c.logger.Debug(msg)
	if c.onTick != nil {
		c.onTick(msg)
	}
}

// Option configures Until.
type Option func(*config) error

// WithTimeout sets the maximum wall-clock time to keep polling (must be > 0).
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) error {
		if d <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithTimeout requires d > 0"))
		}
		cfg.timeout = d
		return nil
	}
}

// WithInterval sets the sleep between unsuccessful attempts (must be >= 0).
func WithInterval(d time.Duration) Option {
	return func(cfg *config) error {
		if d < 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithInterval requires d >= 0"))
		}
		cfg.interval = d
		return nil
	}
}

// WithLogger routes per-attempt debug lines to the given logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.logger = l
		return nil
	}
}

// WithOnTick registers a hook invoked with a human-readable progress string
// after each attempt.
func WithOnTick(fn func(string)) Option {
	return func(cfg *config) error {
		cfg.onTick = fn
		return nil
	}
}

// WithMetrics sets the provider used to record attempt counts and durations.
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.metrics = p
		return nil
	}
}

// sleepContext sleeps for d or until ctx is cancelled, whichever comes
// first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
