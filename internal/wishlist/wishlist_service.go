package wishlist

import (
	"context"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, userID, productID string) (AddItemResponse, error)
	List(ctx context.Context, userID string) (WishlistResponse, error)
	Remove(ctx context.Context, userID, productID string) error
	Contains(ctx context.Context, userID, productID string) (bool, error)
}

type service struct {
	repo    Repository
	catalog catalog.Service
}

func NewService(r Repository, cat catalog.Service) Service {
	return &service{
		repo:    r,
		catalog: cat,
	}
}

// Add inserts a snapshot of the product. Adding an id that is already
// present is rejected with ErrItemAlreadyExists so the client can tell an
// insertion apart from a repeat tap.
func (s *service) Add(ctx context.Context, userID, productID string) (AddItemResponse, error) {
	product, ok := s.catalog.GetByID(ctx, productID)
	if !ok {
		return AddItemResponse{}, ErrProductNotFound
	}

	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return AddItemResponse{}, ErrWishlistFailed
	}

	for _, it := range items {
		if it.ProductID == productID {
			return AddItemResponse{}, ErrItemAlreadyExists
		}
	}

	items = append(items, Item{
		ProductID:     product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Image:         product.Image,
		Rating:        product.Rating,
		Reviews:       product.Reviews,
		InStock:       product.InStock,
		AddedAt:       time.Now(),
	})

	if err := s.repo.Save(ctx, userID, items); err != nil {
		return AddItemResponse{}, ErrWishlistFailed
	}

	return AddItemResponse{
		Message: "Added to your wishlist!",
	}, nil
}

func (s *service) List(ctx context.Context, userID string) (WishlistResponse, error) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return WishlistResponse{}, ErrWishlistFailed
	}

	itemResponses := make([]WishlistItemResponse, 0, len(items))
	for _, it := range items {
		itemResponses = append(itemResponses, WishlistItemResponse(it))
	}

	return WishlistResponse{
		UserID:    userID,
		Items:     itemResponses,
		ItemCount: len(itemResponses),
	}, nil
}

// Remove deletes the entry; removing an absent id reports ErrItemNotFound so
// only real removals show a success message.
func (s *service) Remove(ctx context.Context, userID, productID string) error {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return ErrWishlistFailed
	}

	next := items[:0]
	removed := false
	for _, it := range items {
		if it.ProductID == productID {
			removed = true
			continue
		}
		next = append(next, it)
	}

	if !removed {
		return ErrItemNotFound
	}

	if err := s.repo.Save(ctx, userID, next); err != nil {
		return ErrWishlistFailed
	}
	return nil
}

// Contains drives the heart-toggle rendering on product cards.
func (s *service) Contains(ctx context.Context, userID, productID string) (bool, error) {
	items, err := s.repo.Get(ctx, userID)
	if err != nil {
		return false, ErrWishlistFailed
	}

	for _, it := range items {
		if it.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}
