package outbox_test

import (
	"context"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/outbox"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("success_append_and_list_pending", func(t *testing.T) {
		repo := outbox.NewRepository(storage.NewMemoryStore())

		err := repo.Append(ctx, "order", "order-1", "order.placed", map[string]any{
			"orderId": "order-1",
			"total":   826.0,
		})
		require.NoError(t, err)

		pending, err := repo.ListPending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "order.placed", pending[0].EventType)
		assert.Equal(t, outbox.StatusPending, pending[0].Status)
		assert.JSONEq(t, `{"orderId":"order-1","total":826}`, string(pending[0].Payload))
	})

	t.Run("success_mark_sent_removes_from_pending", func(t *testing.T) {
		repo := outbox.NewRepository(storage.NewMemoryStore())

		require.NoError(t, repo.Append(ctx, "order", "order-1", "order.placed", map[string]any{}))

		pending, err := repo.ListPending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		require.NoError(t, repo.MarkSent(ctx, pending[0].ID))

		pending, err = repo.ListPending(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("success_failed_events_stay_out_of_pending", func(t *testing.T) {
		repo := outbox.NewRepository(storage.NewMemoryStore())

		require.NoError(t, repo.Append(ctx, "order", "order-1", "order.placed", map[string]any{}))

		pending, err := repo.ListPending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		require.NoError(t, repo.MarkFailed(ctx, pending[0].ID))

		pending, err = repo.ListPending(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("success_limit_is_honored", func(t *testing.T) {
		repo := outbox.NewRepository(storage.NewMemoryStore())

		for i := 0; i < 5; i++ {
			require.NoError(t, repo.Append(ctx, "order", "order-x", "order.placed", map[string]any{}))
		}

		pending, err := repo.ListPending(ctx, 3)
		require.NoError(t, err)
		assert.Len(t, pending, 3)
	})
}
