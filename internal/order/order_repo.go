package order

import (
	"context"
	"fmt"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"
)

const (
	StatusConfirmed = "CONFIRMED"
	StatusShipped   = "SHIPPED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
}

type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"orderNumber"`
	UserID        string     `json:"userId"`
	Status        string     `json:"status"`
	Items         []Item     `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	AddressID     string     `json:"addressId"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID string     `json:"transactionId,omitempty"`
	SnapToken     string     `json:"snapToken,omitempty"`
	RedirectURL   string     `json:"redirectUrl,omitempty"`
	PlacedAt      time.Time  `json:"placedAt"`
	DeliveryDate  time.Time  `json:"deliveryDate"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

type Repository interface {
	List(ctx context.Context, userID string) ([]Order, error)
	GetByID(ctx context.Context, userID, orderID string) (Order, bool, error)
	Create(ctx context.Context, o Order) error
	Update(ctx context.Context, o Order) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func ordersKey(userID string) string {
	return fmt.Sprintf("orders:%s", userID)
}

// List returns the user's orders newest first.
func (r *repository) List(ctx context.Context, userID string) ([]Order, error) {
	var orders []Order
	ok, err := storage.LoadJSON(ctx, r.store, ordersKey(userID), &orders)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Order{}, nil
	}

	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

func (r *repository) GetByID(ctx context.Context, userID, orderID string) (Order, bool, error) {
	orders, err := r.List(ctx, userID)
	if err != nil {
		return Order{}, false, err
	}

	for _, o := range orders {
		if o.ID == orderID {
			return o, true, nil
		}
	}
	return Order{}, false, nil
}

func (r *repository) Create(ctx context.Context, o Order) error {
	var orders []Order
	if _, err := storage.LoadJSON(ctx, r.store, ordersKey(o.UserID), &orders); err != nil {
		return err
	}

	orders = append(orders, o)
	return storage.SaveJSON(ctx, r.store, ordersKey(o.UserID), orders)
}

func (r *repository) Update(ctx context.Context, o Order) error {
	var orders []Order
	if _, err := storage.LoadJSON(ctx, r.store, ordersKey(o.UserID), &orders); err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = o
			return storage.SaveJSON(ctx, r.store, ordersKey(o.UserID), orders)
		}
	}
	return fmt.Errorf("order %s not found for user %s", o.ID, o.UserID)
}
