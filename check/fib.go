package check

import "time"

// FibOrMax returns the nth Fibonacci number as a duration in seconds, or
// max, whichever is smaller (fib(0)=0, fib(1)=1, fib(2)=1, ...).
//
// The sequence is evaluated iteratively; as soon as the running value
// exceeds a positive max, max is returned without completing the sequence.
// A max of zero disables the cap. Useful for retrying failed operations with
// progressively longer gaps between attempts.
func FibOrMax(n int, max time.Duration) time.Duration {
	current, next := time.Duration(0), time.Second
	for i := 0; i < n; i++ {
		current, next = next, current+next
		if max > 0 && current > max {
			return max
		}
	}
	return current
}
