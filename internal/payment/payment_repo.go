package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

// Method is a saved payment method. Card numbers are never stored in full:
// only the last four digits survive the add request.
type Method struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Last4     string    `json:"last4,omitempty"`
	CardName  string    `json:"cardName,omitempty"`
	Expiry    string    `json:"expiry,omitempty"`
	UPIID     string    `json:"upiId,omitempty"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	Get(ctx context.Context, userID string) ([]Method, error)
	Save(ctx context.Context, userID string, methods []Method) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func methodsKey(userID string) string {
	return fmt.Sprintf("payment_methods:%s", userID)
}

func (r *repository) Get(ctx context.Context, userID string) ([]Method, error) {
	var methods []Method
	ok, err := storage.LoadJSON(ctx, r.store, methodsKey(userID), &methods)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Method{}, nil
	}
	return methods, nil
}

func (r *repository) Save(ctx context.Context, userID string, methods []Method) error {
	return storage.SaveJSON(ctx, r.store, methodsKey(userID), methods)
}
