package check

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFibOrMax_Sequence(t *testing.T) {
	// Backoff sequence for attempts 1..8 with a 30s cap.
	expected := []time.Duration{
		1 * time.Second,
		1 * time.Second,
		2 * time.Second,
		3 * time.Second,
		5 * time.Second,
		8 * time.Second,
		13 * time.Second,
		21 * time.Second,
	}
	for i, want := range expected {
		require.Equal(t, want, FibOrMax(i+1, 30*time.Second), "attempt %d", i+1)
	}

	// fib(9)=34 exceeds the cap; the cap wins.
	require.Equal(t, 30*time.Second, FibOrMax(9, 30*time.Second))
}

func TestFibOrMax_MonotonicUntilCapped(t *testing.T) {
	max := 30 * time.Second
	prev := time.Duration(-1)
	for n := 1; n <= 20; n++ {
		v := FibOrMax(n, max)
		require.GreaterOrEqual(t, v, prev, "backoff must be non-decreasing at n=%d", n)
		require.LessOrEqual(t, v, max, "backoff must never exceed the cap at n=%d", n)
		prev = v
	}
	require.Equal(t, max, prev, "backoff must reach and hold the cap")
}

func TestFibOrMax_ZeroIndexAndNoCap(t *testing.T) {
	require.Equal(t, time.Duration(0), FibOrMax(0, 30*time.Second))
	require.Equal(t, 34*time.Second, FibOrMax(9, 0), "zero max disables the cap")
	require.Equal(t, 55*time.Second, FibOrMax(10, 0))
}

func TestFibOrMax_CapShortCircuits(t *testing.T) {
	// A huge index must not overflow once the cap is crossed.
	require.Equal(t, time.Second, FibOrMax(1000, time.Second))
}
