package wishlist_test

import (
	"context"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/wishlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) wishlist.Service {
	t.Helper()
	store := storage.NewMemoryStore()
	cat := catalog.NewService(cache.NewMemoryCache())
	return wishlist.NewService(wishlist.NewRepository(store), cat)
}

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success_add_snapshots_product", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Add(ctx, "user-1", "3")
		require.NoError(t, err)
		assert.Equal(t, "Added to your wishlist!", res.Message)

		list, err := svc.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "3", list.Items[0].ProductID)
		assert.Equal(t, "Nykaa SKINgenius Foundation", list.Items[0].Name)
		assert.Equal(t, 699.0, list.Items[0].Price)
		assert.False(t, list.Items[0].AddedAt.IsZero())
	})

	t.Run("error_duplicate_add_conflicts", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", "3")
		require.NoError(t, err)

		_, err = svc.Add(ctx, "user-1", "3")
		assert.ErrorIs(t, err, wishlist.ErrItemAlreadyExists)

		list, err := svc.List(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 1, list.ItemCount)
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", "999")
		assert.ErrorIs(t, err, wishlist.ErrProductNotFound)
	})
}

func TestWishlistService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("success_remove_existing", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", "1")
		require.NoError(t, err)
		_, err = svc.Add(ctx, "user-1", "2")
		require.NoError(t, err)

		require.NoError(t, svc.Remove(ctx, "user-1", "1"))

		list, err := svc.List(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "2", list.Items[0].ProductID)
	})

	t.Run("error_remove_absent_item", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.Remove(ctx, "user-1", "1")
		assert.ErrorIs(t, err, wishlist.ErrItemNotFound)
	})
}

func TestWishlistService_Contains(t *testing.T) {
	ctx := context.Background()

	t.Run("success_reports_membership", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", "5")
		require.NoError(t, err)

		found, err := svc.Contains(ctx, "user-1", "5")
		require.NoError(t, err)
		assert.True(t, found)

		found, err = svc.Contains(ctx, "user-1", "6")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("success_users_are_isolated", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", "5")
		require.NoError(t, err)

		found, err := svc.Contains(ctx, "user-2", "5")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
