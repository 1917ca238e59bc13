package address

import (
	"context"
	"fmt"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Line      string `json:"line"`
	Landmark  string `json:"landmark,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	IsDefault bool   `json:"isDefault"`
}

type Repository interface {
	Get(ctx context.Context, userID string) ([]Address, error)
	Save(ctx context.Context, userID string, addresses []Address) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func addressKey(userID string) string {
	return fmt.Sprintf("addresses:%s", userID)
}

func (r *repository) Get(ctx context.Context, userID string) ([]Address, error) {
	var addresses []Address
	ok, err := storage.LoadJSON(ctx, r.store, addressKey(userID), &addresses)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Address{}, nil
	}
	return addresses, nil
}

func (r *repository) Save(ctx context.Context, userID string, addresses []Address) error {
	return storage.SaveJSON(ctx, r.store, addressKey(userID), addresses)
}
