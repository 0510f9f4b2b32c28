package futures

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAsCompleted_DeliversInCompletionOrder(t *testing.T) {
	m := newTestManager(t, 3)

	// Longer items sleep longer, so completion order inverts submission
	// order.
	delays := []time.Duration{60 * time.Millisecond, 30 * time.Millisecond, 5 * time.Millisecond}
	handles, err := SubmitEach(context.Background(), m, delays, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})
	require.NoError(t, err)

	hs := make([]*Handle[time.Duration], 0, len(handles))
	for h := range handles {
		hs = append(hs, h)
	}

	var got []time.Duration
	for res := range AsCompleted(hs...) {
		require.NoError(t, res.Err)
		got = append(got, res.Value)
	}

	require.Len(t, got, 3)
	require.Equal(t, 5*time.Millisecond, got[0], "fastest task should be harvested first")
}

func TestAsCompleted_ChannelClosesAfterExactlyOneDeliveryPerHandle(t *testing.T) {
	m := newTestManager(t, 2)

	handles, err := SubmitEach(context.Background(), m, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
		return v, nil
	})
	require.NoError(t, err)

	ch := AsCompletedValues(handles)
	n := 0
	for range ch {
		n++
	}
	require.Equal(t, 3, n)

	_, open := <-ch
	require.False(t, open)
}

func TestAsCompleted_SkipsNilHandles(t *testing.T) {
	m := newTestManager(t, 1)

	handles, err := SubmitEach(context.Background(), m, []int{7}, func(_ context.Context, v int) (int, error) {
		return v, nil
	})
	require.NoError(t, err)

	var hs []*Handle[int]
	for h := range handles {
		hs = append(hs, h, nil)
	}

	var got []int
	for res := range AsCompleted(hs...) {
		got = append(got, res.Value)
	}
	require.Equal(t, []int{7}, got)
}

type workItem struct {
	mu       sync.Mutex
	input    int
	response int
}

func (w *workItem) setResponse(v int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.response = v
}

func TestSetWhenCompleted_AssignsResultsToItems(t *testing.T) {
	m := newTestManager(t, 3)

	items := []*workItem{{input: 1}, {input: 2}, {input: 3}}
	handles, err := SubmitEach(context.Background(), m, items, func(_ context.Context, w *workItem) (int, error) {
		return w.input * 100, nil
	})
	require.NoError(t, err)

	err = SetWhenCompleted(handles, func(w *workItem, v int) { w.setResponse(v) })
	require.NoError(t, err)

	for _, w := range items {
		require.Equal(t, w.input*100, w.response)
	}
}

func TestSetWhenCompleted_JoinsTaskErrors(t *testing.T) {
	m := newTestManager(t, 2)

	items := []*workItem{{input: 1}, {input: 2}, {input: 3}}
	handles, err := SubmitEach(context.Background(), m, items, func(_ context.Context, w *workItem) (int, error) {
		if w.input == 2 {
			return 0, errBoom
		}
		return w.input, nil
	})
	require.NoError(t, err)

	err = SetWhenCompleted(handles, func(w *workItem, v int) { w.setResponse(v) })
	require.ErrorIs(t, err, errBoom)

	require.Equal(t, 1, items[0].response)
	require.Zero(t, items[1].response, "failed task must not assign")
	require.Equal(t, 3, items[2].response, "siblings of a failed task must still be assigned")
}

func TestSetEach_Composition(t *testing.T) {
	m := newTestManager(t, 2)

	items := []*workItem{{input: 4}, {input: 5}}
	err := SetEach(context.Background(), m, items,
		func(w *workItem, v int) { w.setResponse(v) },
		func(_ context.Context, w *workItem) (int, error) { return w.input + 1, nil },
	)
	require.NoError(t, err)
	require.Equal(t, 5, items[0].response)
	require.Equal(t, 6, items[1].response)
}

func TestHandle_WaitAndOutcomeAgree(t *testing.T) {
	m := newTestManager(t, 1)

	handles, err := SubmitEach(context.Background(), m, []int{21}, func(_ context.Context, v int) (int, error) {
		return v * 2, nil
	})
	require.NoError(t, err)

	for h := range handles {
		<-h.Done()
		res := h.Outcome()
		v, err := h.Wait()
		require.NoError(t, err)
		require.Equal(t, 42, v)
		require.Equal(t, res.Value, v)
		require.NoError(t, res.Err)
	}
}

func TestAsCompletedValues_LargeFanOut(t *testing.T) {
	m := newTestManager(t, 8)

	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	handles, err := SubmitEach(context.Background(), m, items, func(_ context.Context, v int) (int, error) {
		return v, nil
	})
	require.NoError(t, err)

	var got []int
	for res := range AsCompletedValues(handles) {
		require.NoError(t, res.Err)
		got = append(got, res.Value)
	}
	sort.Ints(got)
	require.Equal(t, items, got)
}
