package cart

import (
	"context"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"

	"github.com/go-playground/validator/v10"
)

///go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, userID string) (CartDetailResponse, error)
	Count(ctx context.Context, userID string) (int, error)

	AddItem(ctx context.Context, userID string, req AddItemRequest) error
	UpdateQty(ctx context.Context, userID, productID string, req UpdateQtyRequest) error

	Increment(ctx context.Context, userID, productID string) error
	Decrement(ctx context.Context, userID, productID string) error

	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type service struct {
	repo     Repository
	catalog  catalog.Service
	validate *validator.Validate
}

func NewService(r Repository, cat catalog.Service) Service {
	return &service{
		repo:     r,
		catalog:  cat,
		validate: validator.New(),
	}
}

func (s *service) Detail(ctx context.Context, userID string) (CartDetailResponse, error) {
	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return CartDetailResponse{}, ErrCartFailed
	}

	items := make([]CartItemResponse, 0, len(lines))
	totalItems := 0
	subtotal := 0.0
	for _, l := range lines {
		items = append(items, CartItemResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price,
			Image:     l.Image,
			Qty:       l.Qty,
			LineTotal: l.Price * float64(l.Qty),
		})
		totalItems += l.Qty
		subtotal += l.Price * float64(l.Qty)
	}

	return CartDetailResponse{
		Items:      items,
		TotalItems: totalItems,
		Subtotal:   subtotal,
	}, nil
}

func (s *service) Count(ctx context.Context, userID string) (int, error) {
	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return 0, ErrCartFailed
	}

	count := 0
	for _, l := range lines {
		count += l.Qty
	}
	return count, nil
}

// AddItem appends a new line with quantity 1, or bumps the quantity when the
// product is already in the cart. Price is snapshotted from the catalog at
// add time.
func (s *service) AddItem(ctx context.Context, userID string, req AddItemRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return ErrInvalidInput
	}

	product, ok := s.catalog.GetByID(ctx, req.ProductID)
	if !ok {
		return ErrProductNotFound
	}
	if !product.InStock {
		return ErrProductOutOfStock
	}

	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrCartFailed
	}

	found := false
	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Qty++
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, Line{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Qty:       1,
		})
	}

	if err := s.repo.Save(ctx, userID, lines); err != nil {
		return ErrCartFailed
	}
	return nil
}

// UpdateQty sets the quantity exactly. A quantity below 1 removes the line;
// an unknown product id is a no-op, never an error.
func (s *service) UpdateQty(ctx context.Context, userID, productID string, req UpdateQtyRequest) error {
	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrCartFailed
	}

	changed := false
	next := lines[:0]
	for _, l := range lines {
		if l.ProductID != productID {
			next = append(next, l)
			continue
		}
		changed = true
		if req.Qty < 1 {
			continue // drop the line
		}
		l.Qty = req.Qty
		next = append(next, l)
	}

	if !changed {
		return nil
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return ErrCartFailed
	}
	return nil
}

func (s *service) Increment(ctx context.Context, userID, productID string) error {
	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrCartFailed
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty++
			if err := s.repo.Save(ctx, userID, lines); err != nil {
				return ErrCartFailed
			}
			return nil
		}
	}
	return nil
}

// Decrement lowers the quantity by one but never below 1: decrementing a
// quantity-1 line is a no-op. Removal goes through RemoveItem or the
// quantity stepper's explicit UpdateQty(0).
func (s *service) Decrement(ctx context.Context, userID, productID string) error {
	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrCartFailed
	}

	for i := range lines {
		if lines[i].ProductID == productID {
			if lines[i].Qty <= 1 {
				return nil
			}
			lines[i].Qty--
			if err := s.repo.Save(ctx, userID, lines); err != nil {
				return ErrCartFailed
			}
			return nil
		}
	}
	return nil
}

// RemoveItem deletes the line unconditionally; absent ids are a no-op.
func (s *service) RemoveItem(ctx context.Context, userID, productID string) error {
	lines, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrCartFailed
	}

	next := lines[:0]
	removed := false
	for _, l := range lines {
		if l.ProductID == productID {
			removed = true
			continue
		}
		next = append(next, l)
	}
	if !removed {
		return nil
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return ErrCartFailed
	}
	return nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return ErrCartFailed
	}
	return nil
}
