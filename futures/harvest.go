package futures

import (
	"errors"
	"sync"
)

// AsCompleted yields each handle's Result over the returned channel as its
// task completes, in completion order (never submission order). The channel
// is finite: it delivers exactly one Result per handle, then closes. It must
// be drained fully, exactly once.
func AsCompleted[R any](handles ...*Handle[R]) <-chan Result[R] {
	out := make(chan Result[R])
	var wg sync.WaitGroup
	for _, h := range handles {
		if h == nil {
			continue
		}
		wg.Add(1)
		go func(h *Handle[R]) {
			defer wg.Done()
			out <- h.Outcome()
		}(h)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// AsCompletedValues is AsCompleted over the keys of a handle-to-item
// mapping, as returned by SubmitEach.
func AsCompletedValues[T, R any](handles map[*Handle[R]]T) <-chan Result[R] {
	hs := make([]*Handle[R], 0, len(handles))
	for h := range handles {
		hs = append(hs, h)
	}
	return AsCompleted(hs...)
}

// AsCompletedPairs yields (item, Result) pairs as each task completes, with
// the same ordering and draining contract as AsCompleted. The item in each
// Pair is the one the handle was associated with at submission.
func AsCompletedPairs[T, R any](handles map[*Handle[R]]T) <-chan Pair[T, R] {
	out := make(chan Pair[T, R])
	var wg sync.WaitGroup
	for h, item := range handles {
		if h == nil {
			continue
		}
		wg.Add(1)
		go func(h *Handle[R], item T) {
			defer wg.Done()
			out <- Pair[T, R]{Item: item, Result: h.Outcome()}
		}(h, item)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// SetWhenCompleted applies assign(item, value) for each successful task as
// it completes. Failed tasks are skipped and their errors returned joined;
// one task's failure does not affect the assignments of its siblings.
func SetWhenCompleted[T, R any](handles map[*Handle[R]]T, assign func(T, R)) error {
	var errs []error
	for pair := range AsCompletedPairs(handles) {
		if pair.Result.Err != nil {
			errs = append(errs, pair.Result.Err)
			continue
		}
		assign(pair.Item, pair.Result.Value)
	}
	return errors.Join(errs...)
}
