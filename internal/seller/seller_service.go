package seller

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/cloudinary"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const maxImageSize = 5 << 20

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

//go:generate mockgen -source=seller_service.go -destination=../mock/seller/seller_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) (ProductListResponse, error)
	GetByID(ctx context.Context, productID string) (ProductResponse, error)
	Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error)
	Delete(ctx context.Context, productID string) error
	Stats(ctx context.Context) (StatsResponse, error)
	ExportCSV(ctx context.Context) ([]byte, error)
	UploadImage(ctx context.Context, productID string, file multipart.File, header *multipart.FileHeader) (UploadImageResponse, error)
}

type service struct {
	repo     Repository
	uploader cloudinary.Service
	validate *validator.Validate
}

func NewService(r Repository, uploader cloudinary.Service) Service {
	return &service{
		repo:     r,
		uploader: uploader,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context) (ProductListResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return ProductListResponse{}, ErrSellerFailed
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return ProductListResponse{Products: out}, nil
}

func (s *service) GetByID(ctx context.Context, productID string) (ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return ProductResponse{}, ErrSellerFailed
	}

	for _, p := range products {
		if p.ID == productID {
			return toProductResponse(p), nil
		}
	}
	return ProductResponse{}, ErrProductNotFound
}

func (s *service) Create(ctx context.Context, req CreateProductRequest) (ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return ProductResponse{}, ErrInvalidInput
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return ProductResponse{}, ErrSellerFailed
	}

	now := time.Now()
	p := Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Stock:         req.Stock,
		Image:         req.Image,
		Description:   req.Description,
		IsNewArrival:  req.IsNewArrival,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	products = append(products, p)
	if err := s.repo.Save(ctx, products); err != nil {
		return ProductResponse{}, ErrSellerFailed
	}

	return toProductResponse(p), nil
}

func (s *service) Update(ctx context.Context, productID string, req UpdateProductRequest) (ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return ProductResponse{}, ErrInvalidInput
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return ProductResponse{}, ErrSellerFailed
	}

	idx := -1
	for i, p := range products {
		if p.ID == productID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ProductResponse{}, ErrProductNotFound
	}

	p := products[idx]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		p.OriginalPrice = *req.OriginalPrice
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.IsNewArrival != nil {
		p.IsNewArrival = *req.IsNewArrival
	}
	p.UpdatedAt = time.Now()

	products[idx] = p
	if err := s.repo.Save(ctx, products); err != nil {
		return ProductResponse{}, ErrSellerFailed
	}

	return toProductResponse(p), nil
}

func (s *service) Delete(ctx context.Context, productID string) error {
	products, err := s.repo.List(ctx)
	if err != nil {
		return ErrSellerFailed
	}

	next := products[:0]
	found := false
	for _, p := range products {
		if p.ID == productID {
			found = true
			continue
		}
		next = append(next, p)
	}

	if !found {
		return ErrProductNotFound
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return ErrSellerFailed
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return StatsResponse{}, ErrSellerFailed
	}

	stats := StatsResponse{TotalProducts: len(products)}
	for _, p := range products {
		if p.Stock > 0 {
			stats.InStock++
		} else {
			stats.OutOfStock++
		}
		if p.IsNewArrival {
			stats.NewArrivals++
		}
	}
	return stats, nil
}

// ExportCSV renders the inventory as a CSV download for offline bookkeeping.
func (s *service) ExportCSV(ctx context.Context) ([]byte, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrSellerFailed
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "name", "category", "price", "original_price", "stock", "new_arrival"}
	if err := w.Write(header); err != nil {
		return nil, ErrSellerFailed
	}

	for _, p := range products {
		record := []string{
			p.ID,
			p.Name,
			p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			strconv.FormatFloat(p.OriginalPrice, 'f', 2, 64),
			strconv.Itoa(p.Stock),
			strconv.FormatBool(p.IsNewArrival),
		}
		if err := w.Write(record); err != nil {
			return nil, ErrSellerFailed
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, ErrSellerFailed
	}
	return buf.Bytes(), nil
}

// UploadImage validates size and content type before handing the file to the
// uploader, then stores the returned URL on the product.
func (s *service) UploadImage(ctx context.Context, productID string, file multipart.File, header *multipart.FileHeader) (UploadImageResponse, error) {
	if header.Size > maxImageSize {
		return UploadImageResponse{}, ErrImageTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return UploadImageResponse{}, ErrUnsupportedImageType
	}

	if _, err := s.GetByID(ctx, productID); err != nil {
		return UploadImageResponse{}, err
	}

	url, err := s.uploader.UploadImage(ctx, file, fmt.Sprintf("product-%s", productID))
	if err != nil {
		return UploadImageResponse{}, ErrSellerFailed
	}

	if _, err := s.Update(ctx, productID, UpdateProductRequest{Image: &url}); err != nil {
		return UploadImageResponse{}, err
	}

	return UploadImageResponse{URL: url}, nil
}

func toProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Stock:         p.Stock,
		InStock:       p.Stock > 0,
		Image:         p.Image,
		Description:   p.Description,
		IsNewArrival:  p.IsNewArrival,
	}
}
