package futures

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SubmitEach submits op(item) for every item in items to m's shared pool and
// returns immediately, without waiting for completion. The returned mapping
// associates each handle with its originating item (not its result), so
// callers can correlate results back to inputs after choosing a harvesting
// strategy.
//
// Submission follows the iteration order of items; completion order is
// unspecified. SubmitEach fails only when the manager's pool is unconfigured
// or already shut down.
func SubmitEach[T, R any](
	ctx context.Context,
	m *Manager,
	items []T,
	op func(context.Context, T) (R, error),
) (map[*Handle[R]]T, error) {
	p, err := m.Pool()
	if err != nil {
		return nil, err
	}

	handles := make(map[*Handle[R]]T, len(items))
	for i := range items {
		item := items[i]
		h := newHandle[R](i)
		handles[h] = item

		m.submitted.Add(1)
		m.inflight.Add(1)
		m.cfg.logger.Debug("task submitted",
			zap.Stringer("handle_id", h.id),
			zap.Int("item_index", i),
		)

		p.Submit(func() {
			res := runTask(ctx, m, op, item)
			if res.Err != nil && m.cfg.errorTagging {
				res.Err = newTaggedError(res.Err, h.id, h.index)
			}
			m.observeDone(res.Err)
			h.complete(res)
		})
	}
	return handles, nil
}

// runTask executes one operation inside a worker: rate-limit token first,
// then the operation, with panic recovery so a misbehaving task cannot kill
// the pool.
func runTask[T, R any](
	ctx context.Context,
	m *Manager,
	op func(context.Context, T) (R, error),
	item T,
) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrTaskPanicked, p)}
		}
	}()

	if lim := m.cfg.limiter; lim != nil {
		if err := lim.Wait(ctx); err != nil {
			return Result[R]{Err: err}
		}
	}

	v, err := op(ctx, item)
	return Result[R]{Value: v, Err: err}
}

// MapEach is SubmitEach followed by AsCompletedValues: it fans op out over
// items and returns a channel of results in completion order.
func MapEach[T, R any](
	ctx context.Context,
	m *Manager,
	items []T,
	op func(context.Context, T) (R, error),
) (<-chan Result[R], error) {
	handles, err := SubmitEach(ctx, m, items, op)
	if err != nil {
		return nil, err
	}
	return AsCompletedValues(handles), nil
}

// MapWithItems is SubmitEach followed by AsCompletedPairs: like MapEach, but
// each result arrives alongside its originating item.
func MapWithItems[T, R any](
	ctx context.Context,
	m *Manager,
	items []T,
	op func(context.Context, T) (R, error),
) (<-chan Pair[T, R], error) {
	handles, err := SubmitEach(ctx, m, items, op)
	if err != nil {
		return nil, err
	}
	return AsCompletedPairs(handles), nil
}

// SetEach fans op out over items and applies assign(item, value) as each
// task completes. It is SubmitEach followed by SetWhenCompleted.
func SetEach[T, R any](
	ctx context.Context,
	m *Manager,
	items []T,
	assign func(T, R),
	op func(context.Context, T) (R, error),
) error {
	handles, err := SubmitEach(ctx, m, items, op)
	if err != nil {
		return err
	}
	return SetWhenCompleted(handles, assign)
}
