// Package check provides poll-until-complete and retry-with-backoff helpers
// for code that has to wait on slow or eventually-consistent operations,
// typically from test bodies.
//
// Until repeatedly invokes an operation until a caller-supplied predicate
// accepts its outcome or a wall-clock timeout elapses. The timeout is only
// checked after an attempt, so an in-flight attempt is never pre-empted.
//
// Retrier wraps an operation so that errors of configured kinds trigger a
// retry after a Fibonacci backoff sleep, capped at a maximum. Errors of any
// other kind propagate immediately.
//
// Defaults
// Unless overridden via options, the following defaults apply:
//   - Until timeout: 300s
//   - Until interval: 5s
//   - Retrier max sleep between attempts: 30s
//
// Both helpers log progress at debug level through an optional zap logger
// and accept an optional metrics provider; with neither configured they are
// silent.
package check
