package seller_test

import (
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/seller"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================== FAKE UPLOADER ====================

type fakeUploader struct {
	uploadFn func(ctx context.Context, file multipart.File, filename string) (string, error)
}

func (f *fakeUploader) UploadImage(ctx context.Context, file multipart.File, filename string) (string, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, file, filename)
	}
	return "https://cdn.example.com/" + filename + ".jpg", nil
}

func (f *fakeUploader) DeleteImage(_ context.Context, _ string) error { return nil }

// ==================== HELPER FUNCTIONS ====================

func newTestService(t *testing.T) seller.Service {
	t.Helper()
	return seller.NewService(seller.NewRepository(storage.NewMemoryStore()), &fakeUploader{})
}

func createReq() seller.CreateProductRequest {
	return seller.CreateProductRequest{
		Name:     "Handmade Jute Bag",
		Price:    799,
		Category: "Bags",
		Stock:    12,
	}
}

// ==================== TEST CASES ====================

func TestSellerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_create_product", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Handmade Jute Bag", res.Name)
		assert.True(t, res.InStock)
	})

	t.Run("error_zero_price", func(t *testing.T) {
		svc := newTestService(t)

		req := createReq()
		req.Price = 0
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, seller.ErrInvalidInput)
	})

	t.Run("error_missing_name", func(t *testing.T) {
		svc := newTestService(t)

		req := createReq()
		req.Name = ""
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, seller.ErrInvalidInput)
	})
}

func TestSellerService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success_partial_update", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		newStock := 0
		res, err := svc.Update(ctx, created.ID, seller.UpdateProductRequest{Stock: &newStock})
		require.NoError(t, err)

		assert.Equal(t, 0, res.Stock)
		assert.False(t, res.InStock)
		assert.Equal(t, "Handmade Jute Bag", res.Name)
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		svc := newTestService(t)

		newStock := 3
		_, err := svc.Update(ctx, "missing-id", seller.UpdateProductRequest{Stock: &newStock})
		assert.ErrorIs(t, err, seller.ErrProductNotFound)
	})
}

func TestSellerService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success_delete", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err = svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, seller.ErrProductNotFound)
	})

	t.Run("error_delete_absent", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.Delete(ctx, "missing-id")
		assert.ErrorIs(t, err, seller.ErrProductNotFound)
	})
}

func TestSellerService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("success_counts", func(t *testing.T) {
		svc := newTestService(t)

		inStock := createReq()
		_, err := svc.Create(ctx, inStock)
		require.NoError(t, err)

		outOfStock := createReq()
		outOfStock.Name = "Steel Water Bottle"
		outOfStock.Stock = 0
		outOfStock.IsNewArrival = true
		_, err = svc.Create(ctx, outOfStock)
		require.NoError(t, err)

		stats, err := svc.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.TotalProducts)
		assert.Equal(t, 1, stats.InStock)
		assert.Equal(t, 1, stats.OutOfStock)
		assert.Equal(t, 1, stats.NewArrivals)
	})
}

func TestSellerService_ExportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("success_header_and_rows", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		data, err := svc.ExportCSV(ctx)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "id,name,category,price,original_price,stock,new_arrival", lines[0])
		assert.Contains(t, lines[1], "Handmade Jute Bag")
		assert.Contains(t, lines[1], "799.00")
	})
}

func TestSellerService_UploadImage(t *testing.T) {
	ctx := context.Background()

	header := func(size int64, contentType string) *multipart.FileHeader {
		h := &multipart.FileHeader{
			Filename: "photo.jpg",
			Size:     size,
		}
		h.Header = map[string][]string{"Content-Type": {contentType}}
		return h
	}

	t.Run("success_upload_sets_image_url", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		res, err := svc.UploadImage(ctx, created.ID, nil, header(1024, "image/jpeg"))
		require.NoError(t, err)
		assert.Contains(t, res.URL, "product-"+created.ID)

		got, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, res.URL, got.Image)
	})

	t.Run("error_image_too_large", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		_, err = svc.UploadImage(ctx, created.ID, nil, header(6<<20, "image/jpeg"))
		assert.ErrorIs(t, err, seller.ErrImageTooLarge)
	})

	t.Run("error_unsupported_type", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, createReq())
		require.NoError(t, err)

		_, err = svc.UploadImage(ctx, created.ID, nil, header(1024, "image/gif"))
		assert.ErrorIs(t, err, seller.ErrUnsupportedImageType)
	})
}
