package cart_test

import (
	"context"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/cart"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userID = "user-123"

func newCartService() cart.Service {
	store := storage.NewMemoryStore()
	cat := catalog.NewService(cache.NewMemoryCache())
	return cart.NewService(cart.NewRepository(store), cat)
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success_add_new_product_snapshots_price", func(t *testing.T) {
		svc := newCartService()

		err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"})
		require.NoError(t, err)

		res, err := svc.Detail(ctx, userID)
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "Lakme Absolute Matte Lipstick - Red Rush", res.Items[0].Name)
		assert.Equal(t, float64(350), res.Items[0].Price)
		assert.Equal(t, 1, res.Items[0].Qty)
	})

	t.Run("success_repeated_adds_increment_a_single_line", func(t *testing.T) {
		svc := newCartService()

		for i := 0; i < 4; i++ {
			require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))
		}

		res, _ := svc.Detail(ctx, userID)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 4, res.Items[0].Qty)
		assert.Equal(t, 4, res.TotalItems)
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		svc := newCartService()

		err := svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "999"})
		assert.ErrorIs(t, err, cart.ErrProductNotFound)
	})

	t.Run("error_missing_product_id", func(t *testing.T) {
		svc := newCartService()

		err := svc.AddItem(ctx, userID, cart.AddItemRequest{})
		assert.ErrorIs(t, err, cart.ErrInvalidInput)
	})
}

func TestCartService_UpdateQty(t *testing.T) {
	ctx := context.Background()

	t.Run("success_sets_quantity_exactly", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "4"}))

		require.NoError(t, svc.UpdateQty(ctx, userID, "4", cart.UpdateQtyRequest{Qty: 7}))

		res, _ := svc.Detail(ctx, userID)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 7, res.Items[0].Qty)
		assert.Equal(t, 7, res.TotalItems)
	})

	t.Run("success_qty_below_one_removes_the_line", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "4"}))

		require.NoError(t, svc.UpdateQty(ctx, userID, "4", cart.UpdateQtyRequest{Qty: 0}))

		res, _ := svc.Detail(ctx, userID)
		assert.Empty(t, res.Items)
		assert.Equal(t, 0, res.TotalItems)
	})

	t.Run("success_unknown_product_is_a_noop", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "4"}))

		require.NoError(t, svc.UpdateQty(ctx, userID, "999", cart.UpdateQtyRequest{Qty: 3}))

		res, _ := svc.Detail(ctx, userID)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 1, res.Items[0].Qty)
	})

	t.Run("success_other_lines_are_untouched", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "13"}))

		require.NoError(t, svc.UpdateQty(ctx, userID, "1", cart.UpdateQtyRequest{Qty: 5}))

		res, _ := svc.Detail(ctx, userID)
		require.Len(t, res.Items, 2)
		// 5 x 350 + 1 x 299
		assert.Equal(t, float64(5*350+299), res.Subtotal)
	})
}

func TestCartService_IncrementDecrement(t *testing.T) {
	ctx := context.Background()

	t.Run("success_increment_adds_one", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "9"}))

		require.NoError(t, svc.Increment(ctx, userID, "9"))

		count, _ := svc.Count(ctx, userID)
		assert.Equal(t, 2, count)
	})

	t.Run("success_decrement_clamps_at_one", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "9"}))

		// Quantity is 1; decrement must not remove the line.
		require.NoError(t, svc.Decrement(ctx, userID, "9"))

		res, _ := svc.Detail(ctx, userID)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 1, res.Items[0].Qty)
	})

	t.Run("success_decrement_above_one_subtracts", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "9"}))
		require.NoError(t, svc.Increment(ctx, userID, "9"))
		require.NoError(t, svc.Increment(ctx, userID, "9"))

		require.NoError(t, svc.Decrement(ctx, userID, "9"))

		count, _ := svc.Count(ctx, userID)
		assert.Equal(t, 2, count)
	})
}

func TestCartService_RemoveAndClear(t *testing.T) {
	ctx := context.Background()

	t.Run("success_remove_deletes_line", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "2"}))

		require.NoError(t, svc.RemoveItem(ctx, userID, "1"))

		res, _ := svc.Detail(ctx, userID)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "2", res.Items[0].ProductID)
	})

	t.Run("success_remove_absent_is_noop", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))

		require.NoError(t, svc.RemoveItem(ctx, userID, "999"))

		count, _ := svc.Count(ctx, userID)
		assert.Equal(t, 1, count)
	})

	t.Run("success_clear_empties_cart", func(t *testing.T) {
		svc := newCartService()
		require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))

		require.NoError(t, svc.Clear(ctx, userID))

		res, _ := svc.Detail(ctx, userID)
		assert.Empty(t, res.Items)
		assert.Equal(t, float64(0), res.Subtotal)
	})
}

func TestCartService_Totals(t *testing.T) {
	ctx := context.Background()
	svc := newCartService()

	require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))  // 350
	require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "1"}))  // 350
	require.NoError(t, svc.AddItem(ctx, userID, cart.AddItemRequest{ProductID: "14"})) // 449

	res, err := svc.Detail(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalItems)
	assert.Equal(t, float64(2*350+449), res.Subtotal)

	sum := 0.0
	for _, it := range res.Items {
		sum += it.LineTotal
	}
	assert.Equal(t, res.Subtotal, sum)
}
