// Package pool provides the bounded execution pool underlying the futures
// package. The intake queue is unbounded, so Submit never blocks the caller;
// only the number of concurrently executing funcs is capped.
package pool

// Pool runs submitted funcs with bounded concurrency.
type Pool interface {
	// Submit enqueues fn for execution and returns immediately.
	Submit(fn func())

	// Drain blocks until every submitted fn has finished executing.
	Drain()
}
