package check

import (
	"errors"
	"fmt"
	"time"
)

const Namespace = "check"

var (
	ErrInvalidConfig       = errors.New(Namespace + ": invalid configuration")
	ErrInvalidRetryPolicy  = errors.New(Namespace + ": invalid retry policy")
	ErrIncompleteAtTimeout = errors.New(Namespace + ": response was still pending at timeout")
)

// TimeoutError is returned by Until when no attempt satisfies the completion
// predicate before the deadline. It carries the last obtained outcome and
// the configured timeout for diagnostics, and matches ErrIncompleteAtTimeout
// with errors.Is.
type TimeoutError struct {
	// LastOutcome is the outcome of the final attempt, which still failed
	// validation.
	LastOutcome any

	// Timeout is the configured polling timeout.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s (timeout=%s)", ErrIncompleteAtTimeout.Error(), e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return ErrIncompleteAtTimeout }
