// Package metrics defines the minimal instrument surface recorded by the
// check and futures packages. NewNoop is the default provider and discards
// everything; BasicProvider keeps values in memory, which is enough for
// tests and lightweight introspection.
package metrics

// Provider constructs instruments by name. Requests for the same name must
// return the same underlying instrument. Implementations must be safe for
// concurrent use.
type Provider interface {
	Counter(name string) Counter
	UpDownCounter(name string) UpDownCounter
	Histogram(name string) Histogram
}

// Counter records monotonic counts (e.g., poll attempts, submitted tasks).
type Counter interface {
	Add(n int64)
}

// UpDownCounter records values that move both ways (e.g., in-flight tasks).
type UpDownCounter interface {
	Add(n int64)
}

// Histogram records a distribution of float64 measurements
// (e.g., durations in seconds).
type Histogram interface {
	Record(v float64)
}

// Instrument names recorded by this module.
const (
	PollAttempts   = "check_poll_attempts"
	PollDuration   = "check_poll_duration_seconds"
	RetryAttempts  = "check_retry_attempts"
	RetrySleep     = "check_retry_sleep_seconds"
	TasksSubmitted = "futures_tasks_submitted"
	TasksCompleted = "futures_tasks_completed"
	TasksFailed    = "futures_tasks_failed"
	TasksInFlight  = "futures_tasks_inflight"
)
