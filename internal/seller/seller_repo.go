package seller

import (
	"context"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

// Inventory records are seller-owned and separate from the immutable
// storefront catalog.
const productsKey = "seller:products"

type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	Stock         int       `json:"stock"`
	Image         string    `json:"image,omitempty"`
	Description   string    `json:"description,omitempty"`
	IsNewArrival  bool      `json:"isNewArrival"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Save(ctx context.Context, products []Product) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	var products []Product
	ok, err := storage.LoadJSON(ctx, r.store, productsKey, &products)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Product{}, nil
	}
	return products, nil
}

func (r *repository) Save(ctx context.Context, products []Product) error {
	return storage.SaveJSON(ctx, r.store, productsKey, products)
}
