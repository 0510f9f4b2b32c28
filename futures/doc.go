// Package futures provides fan-out/fan-in helpers over a shared, bounded
// worker pool, meant for "spot" parallelism: places where otherwise
// synchronous code (testing is one such use case) needs to do a batch of
// slow things in parallel and then go synchronous again.
//
// A Manager owns the pool. Its size is configured once, the pool itself is
// created lazily on first submission, and Shutdown drains in-flight work
// before releasing it. A package-level default manager preserves the
// configure/use/shutdown call surface for applications that want a single
// process-wide pool; libraries should prefer an injected Manager.
//
// SubmitEach fans a callback out over a collection and returns a mapping
// from task handle to originating item. Harvesting is the caller's choice:
// AsCompletedValues and AsCompletedPairs deliver results over a channel in
// completion order (never submission order), SetWhenCompleted applies an
// assignment per item as results land, and MapEach/MapWithItems/SetEach
// compose submission with a harvest.
//
// A task's failure is captured in its Result and surfaced only when that
// task is harvested; sibling tasks are unaffected. Harvest channels must be
// drained fully, exactly once.
package futures
