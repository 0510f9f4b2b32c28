package futures

import "github.com/google/uuid"

// Result is a task's outcome: either a produced value or a captured error.
type Result[R any] struct {
	Value R
	Err   error
}

// Pair couples an originating item with its task's Result, enabling callers
// to build an item-to-result mapping even when completion order differs from
// submission order.
type Pair[T, R any] struct {
	Item   T
	Result Result[R]
}

// Handle is an opaque, independently-completable handle to one submitted
// unit of work, associated with exactly one input item.
type Handle[R any] struct {
	id    uuid.UUID
	index int

	done    chan struct{}
	outcome Result[R] // written once, before done is closed
}

func newHandle[R any](index int) *Handle[R] {
	return &Handle[R]{id: uuid.New(), index: index, done: make(chan struct{})}
}

// ID returns the handle's unique identifier.
func (h *Handle[R]) ID() uuid.UUID { return h.id }

// Index returns the position of the originating item within the submitted
// collection.
func (h *Handle[R]) Index() int { return h.index }

// Done returns a channel closed when the task has completed or failed.
func (h *Handle[R]) Done() <-chan struct{} { return h.done }

// Outcome blocks until the task completes and returns its Result.
func (h *Handle[R]) Outcome() Result[R] {
	<-h.done
	return h.outcome
}

// Wait blocks until the task completes and returns its deferred value and
// error.
func (h *Handle[R]) Wait() (R, error) {
	res := h.Outcome()
	return res.Value, res.Err
}

func (h *Handle[R]) complete(res Result[R]) {
	h.outcome = res
	close(h.done)
}
