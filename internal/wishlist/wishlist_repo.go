package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

// Item is the snapshot taken when a product is wished: price, rating and
// stock state are frozen at add time, matching what the wishlist screen
// renders.
type Item struct {
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Image         string    `json:"image"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	InStock       bool      `json:"inStock"`
	AddedAt       time.Time `json:"addedAt"`
}

type Repository interface {
	Get(ctx context.Context, userID string) ([]Item, error)
	Save(ctx context.Context, userID string, items []Item) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func wishlistKey(userID string) string {
	return fmt.Sprintf("wishlists:%s", userID)
}

func (r *repository) Get(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	ok, err := storage.LoadJSON(ctx, r.store, wishlistKey(userID), &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Item{}, nil
	}
	return items, nil
}

func (r *repository) Save(ctx context.Context, userID string, items []Item) error {
	return storage.SaveJSON(ctx, r.store, wishlistKey(userID), items)
}
