package cart

import (
	"context"
	"fmt"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

// Line is a cart line item. Price and image are snapshots taken when the
// product was added; at most one line exists per product id.
type Line struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
}

type Repository interface {
	Get(ctx context.Context, userID string) ([]Line, error)
	Save(ctx context.Context, userID string, lines []Line) error
	Clear(ctx context.Context, userID string) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func cartKey(userID string) string {
	return fmt.Sprintf("carts:%s", userID)
}

func (r *repository) Get(ctx context.Context, userID string) ([]Line, error) {
	var lines []Line
	ok, err := storage.LoadJSON(ctx, r.store, cartKey(userID), &lines)
	if err != nil {
		return nil, err
	}
	if !ok {
		// A user with no cart yet simply has an empty one.
		return []Line{}, nil
	}
	return lines, nil
}

func (r *repository) Save(ctx context.Context, userID string, lines []Line) error {
	return storage.SaveJSON(ctx, r.store, cartKey(userID), lines)
}

func (r *repository) Clear(ctx context.Context, userID string) error {
	return r.store.Delete(ctx, cartKey(userID))
}
