package catalog

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"
)

const (
	featuredMinRating = 4.2
	featuredLimit     = 6

	homeFeedCacheKey = "catalog:home_feed"
	homeFeedCacheTTL = 5 * time.Minute
)

type Service interface {
	List(ctx context.Context) []Product
	// GetByID reports found=false for an unknown id; that is an expected
	// outcome, not an error.
	GetByID(ctx context.Context, id string) (Product, bool)
	GetByCategory(ctx context.Context, category string) []Product
	Search(ctx context.Context, query string) []Product
	Featured(ctx context.Context) []Product
	NewArrivals(ctx context.Context) []Product
	Categories(ctx context.Context) []string
	HomeFeed(ctx context.Context) (HomeFeed, error)
}

type HomeFeed struct {
	Featured    []Product `json:"featured"`
	NewArrivals []Product `json:"newArrivals"`
}

type service struct {
	products []Product
	byID     map[string]Product
	cache    cache.Cache
}

func NewService(c cache.Cache) Service {
	products := seedProducts()

	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return &service{
		products: products,
		byID:     byID,
		cache:    c,
	}
}

func (s *service) List(_ context.Context) []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *service) GetByID(_ context.Context, id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// GetByCategory matches the category case-insensitively and preserves
// catalog order.
func (s *service) GetByCategory(_ context.Context, category string) []Product {
	out := []Product{}
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search does a case-insensitive substring match on name or category. An
// empty query matches everything.
func (s *service) Search(_ context.Context, query string) []Product {
	q := strings.ToLower(query)

	out := []Product{}
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the first 6 products rated 4.2 or better, in catalog
// order. Deliberately not re-sorted by rating.
func (s *service) Featured(_ context.Context) []Product {
	out := []Product{}
	for _, p := range s.products {
		if p.Rating >= featuredMinRating {
			out = append(out, p)
			if len(out) == featuredLimit {
				break
			}
		}
	}
	return out
}

func (s *service) NewArrivals(_ context.Context) []Product {
	out := []Product{}
	for _, p := range s.products {
		if p.IsNewArrival {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists distinct categories in first-seen catalog order.
func (s *service) Categories(_ context.Context) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range s.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func (s *service) HomeFeed(ctx context.Context) (HomeFeed, error) {
	if raw, ok, err := s.cache.Get(ctx, homeFeedCacheKey); err == nil && ok {
		var feed HomeFeed
		if err := json.Unmarshal(raw, &feed); err == nil {
			return feed, nil
		}
	}

	feed := HomeFeed{
		Featured:    s.Featured(ctx),
		NewArrivals: s.NewArrivals(ctx),
	}

	if raw, err := json.Marshal(feed); err == nil {
		_ = s.cache.Set(ctx, homeFeedCacheKey, raw, homeFeedCacheTTL)
	}

	return feed, nil
}
