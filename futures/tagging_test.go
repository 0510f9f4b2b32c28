package futures

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTagging_WrapsWithHandleMetadata(t *testing.T) {
	m := newTestManager(t, 2, WithErrorTagging())

	items := []string{"ok", "bad"}
	handles, err := SubmitEach(context.Background(), m, items, func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", fmt.Errorf("processing %s: %w", s, errBoom)
		}
		return s, nil
	})
	require.NoError(t, err)

	for h, item := range handles {
		_, err := h.Wait()
		if item != "bad" {
			require.NoError(t, err)
			continue
		}

		require.ErrorIs(t, err, errBoom, "tagging must preserve the underlying error kind")

		id, ok := ExtractHandleID(err)
		require.True(t, ok)
		require.Equal(t, h.ID(), id)

		idx, ok := ExtractItemIndex(err)
		require.True(t, ok)
		require.Equal(t, 1, idx)

		require.Contains(t, fmt.Sprintf("%+v", err), "task(index=1")
	}
}

func TestErrorTagging_DisabledByDefault(t *testing.T) {
	m := newTestManager(t, 1)

	handles, err := SubmitEach(context.Background(), m, []int{1}, func(_ context.Context, _ int) (int, error) {
		return 0, errBoom
	})
	require.NoError(t, err)

	for h := range handles {
		_, err := h.Wait()
		require.ErrorIs(t, err, errBoom)

		_, ok := ExtractHandleID(err)
		require.False(t, ok, "errors must pass through untagged by default")
	}
}

func TestExtract_NoMetadata(t *testing.T) {
	_, ok := ExtractHandleID(errBoom)
	require.False(t, ok)
	_, ok = ExtractItemIndex(errBoom)
	require.False(t, ok)

	id, ok := ExtractHandleID(nil)
	require.False(t, ok)
	require.Equal(t, [16]byte{}, [16]byte(id))
}
