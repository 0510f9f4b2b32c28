package futures

import (
	"github.com/ygrebnov/errorc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/jolly-good-toolbelt/jgt-common/metrics"
)

// managerConfig holds Manager configuration.
type managerConfig struct {
	logger  *zap.Logger
	metrics metrics.Provider

	// limiter, when non-nil, throttles task execution (not submission):
	// workers wait for a token before invoking the operation.
	limiter *rate.Limiter

	// errorTagging wraps task errors with the handle ID and item index to
	// support correlation.
	errorTagging bool
}

func defaultManagerConfig() managerConfig {
	return managerConfig{
		logger:  zap.NewNop(),
		metrics: metrics.NewNoop(),
	}
}

// ManagerOption configures a Manager. Use NewManager(opts...) to construct
// one.
type ManagerOption func(*managerConfig) error

// WithLogger routes submission and completion debug lines to the given
// logger.
func WithLogger(l *zap.Logger) ManagerOption {
	return func(cfg *managerConfig) error {
		if l == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithLogger requires a non-nil logger"))
		}
		cfg.logger = l
		return nil
	}
}

// WithMetrics sets the provider used to record task counts and in-flight
// gauge.
func WithMetrics(p metrics.Provider) ManagerOption {
	return func(cfg *managerConfig) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.metrics = p
		return nil
	}
}

// WithRateLimit caps task execution at perSec operations per second with the
// given burst. Useful when fanning out against external services.
func WithRateLimit(perSec float64, burst int) ManagerOption {
	return func(cfg *managerConfig) error {
		if perSec <= 0 || burst <= 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithRateLimit requires perSec > 0 and burst > 0"))
		}
		cfg.limiter = rate.NewLimiter(rate.Limit(perSec), burst)
		return nil
	}
}

// WithErrorTagging enables wrapping task errors with the handle ID and item
// index.
func WithErrorTagging() ManagerOption {
	return func(cfg *managerConfig) error {
		cfg.errorTagging = true
		return nil
	}
}
