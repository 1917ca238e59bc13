package catalog_test

import (
	"context"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog() catalog.Service {
	return catalog.NewService(cache.NewMemoryCache())
}

func TestCatalogService_GetByID(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	t.Run("success_known_id", func(t *testing.T) {
		p, ok := svc.GetByID(ctx, "1")
		require.True(t, ok)
		assert.Equal(t, "Lakme Absolute Matte Lipstick - Red Rush", p.Name)
		assert.Equal(t, float64(350), p.Price)
	})

	t.Run("success_unknown_id_is_not_found", func(t *testing.T) {
		_, ok := svc.GetByID(ctx, "999")
		assert.False(t, ok)
	})
}

func TestCatalogService_GetByCategory(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	t.Run("success_books_returns_the_two_seeded_books_in_order", func(t *testing.T) {
		books := svc.GetByCategory(ctx, "Books")
		require.Len(t, books, 2)
		assert.Equal(t, "The Alchemist by Paulo Coelho", books[0].Name)
		assert.Equal(t, "Atomic Habits by James Clear", books[1].Name)
		for _, p := range books {
			assert.Equal(t, "Books", p.Category)
		}
	})

	t.Run("success_match_is_case_insensitive", func(t *testing.T) {
		assert.Len(t, svc.GetByCategory(ctx, "books"), 2)
		assert.Len(t, svc.GetByCategory(ctx, "BOOKS"), 2)
	})

	t.Run("success_unknown_category_is_empty", func(t *testing.T) {
		assert.Empty(t, svc.GetByCategory(ctx, "Groceries"))
	})
}

func TestCatalogService_Search(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	t.Run("success_matches_name_substring", func(t *testing.T) {
		got := svc.Search(ctx, "lipstick")
		require.Len(t, got, 1)
		assert.Equal(t, "1", got[0].ID)
	})

	t.Run("success_matches_category_substring", func(t *testing.T) {
		got := svc.Search(ctx, "fitness")
		assert.Len(t, got, 2)
	})

	t.Run("success_empty_query_matches_all", func(t *testing.T) {
		assert.Len(t, svc.Search(ctx, ""), 14)
	})

	t.Run("success_no_match_is_empty", func(t *testing.T) {
		assert.Empty(t, svc.Search(ctx, "refrigerator"))
	})
}

func TestCatalogService_Featured(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	// First six products rated >= 4.2 in catalog order; ratings do not
	// re-sort the result.
	got := svc.Featured(ctx)
	require.Len(t, got, 6)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		assert.GreaterOrEqual(t, p.Rating, 4.2)
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "6", "7"}, ids)
}

func TestCatalogService_NewArrivals(t *testing.T) {
	svc := newCatalog()

	got := svc.NewArrivals(context.Background())
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.True(t, p.IsNewArrival)
	}
	assert.Len(t, got, 6)
}

func TestCatalogService_Categories(t *testing.T) {
	svc := newCatalog()

	got := svc.Categories(context.Background())
	assert.Equal(t, []string{
		"Makeup & Beauty",
		"Electronics",
		"Home Decor",
		"Gym & Fitness",
		"Bags",
		"Books",
	}, got)
}

func TestCatalogService_HomeFeed(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	t.Run("success_feed_and_cached_feed_agree", func(t *testing.T) {
		first, err := svc.HomeFeed(ctx)
		require.NoError(t, err)
		assert.Len(t, first.Featured, 6)
		assert.Len(t, first.NewArrivals, 6)

		second, err := svc.HomeFeed(ctx)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
