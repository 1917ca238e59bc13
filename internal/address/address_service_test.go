package address_test

import (
	"context"
	"testing"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/address"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) address.Service {
	t.Helper()
	return address.NewService(address.NewRepository(storage.NewMemoryStore()))
}

func validCreateReq() address.CreateAddressRequest {
	return address.CreateAddressRequest{
		Name:    "Priya Sharma",
		Phone:   "+91 98765 43210",
		Line:    "42, MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
	}
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_first_address_becomes_default", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Create(ctx, "user-1", validCreateReq())
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID)
		assert.True(t, res.IsDefault)
	})

	t.Run("success_second_address_not_default", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Create(ctx, "user-1", validCreateReq())
		require.NoError(t, err)

		second := validCreateReq()
		second.Line = "7, Brigade Road"
		res, err := svc.Create(ctx, "user-1", second)
		require.NoError(t, err)
		assert.False(t, res.IsDefault)
	})

	t.Run("success_explicit_default_displaces_old_one", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Create(ctx, "user-1", validCreateReq())
		require.NoError(t, err)

		second := validCreateReq()
		second.Line = "7, Brigade Road"
		second.IsDefault = true
		res, err := svc.Create(ctx, "user-1", second)
		require.NoError(t, err)
		assert.True(t, res.IsDefault)

		old, err := svc.GetByID(ctx, "user-1", first.ID)
		require.NoError(t, err)
		assert.False(t, old.IsDefault)
	})

	t.Run("error_bad_pincode", func(t *testing.T) {
		svc := newTestService(t)

		req := validCreateReq()
		req.Pincode = "56001" // 5 digits
		_, err := svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, address.ErrInvalidInput)
	})

	t.Run("error_missing_required_fields", func(t *testing.T) {
		svc := newTestService(t)

		req := validCreateReq()
		req.City = ""
		_, err := svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, address.ErrInvalidInput)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success_partial_update", func(t *testing.T) {
		svc := newTestService(t)

		created, err := svc.Create(ctx, "user-1", validCreateReq())
		require.NoError(t, err)

		newLine := "99, Residency Road"
		res, err := svc.Update(ctx, "user-1", created.ID, address.UpdateAddressRequest{
			Line: &newLine,
		})
		require.NoError(t, err)

		assert.Equal(t, "99, Residency Road", res.Line)
		assert.Equal(t, "Bengaluru", res.City)
	})

	t.Run("error_unknown_address", func(t *testing.T) {
		svc := newTestService(t)

		newLine := "99, Residency Road"
		_, err := svc.Update(ctx, "user-1", "missing-id", address.UpdateAddressRequest{
			Line: &newLine,
		})
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success_deleting_default_promotes_next", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Create(ctx, "user-1", validCreateReq())
		require.NoError(t, err)

		second := validCreateReq()
		second.Line = "7, Brigade Road"
		secondRes, err := svc.Create(ctx, "user-1", second)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, "user-1", first.ID))

		remaining, err := svc.GetByID(ctx, "user-1", secondRes.ID)
		require.NoError(t, err)
		assert.True(t, remaining.IsDefault)
	})

	t.Run("error_delete_absent_address", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.Delete(ctx, "user-1", "missing-id")
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}

func TestAddressService_SetDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("success_switches_default", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Create(ctx, "user-1", validCreateReq())
		require.NoError(t, err)

		second := validCreateReq()
		second.Line = "7, Brigade Road"
		secondRes, err := svc.Create(ctx, "user-1", second)
		require.NoError(t, err)

		res, err := svc.SetDefault(ctx, "user-1", secondRes.ID)
		require.NoError(t, err)
		assert.True(t, res.IsDefault)

		old, err := svc.GetByID(ctx, "user-1", first.ID)
		require.NoError(t, err)
		assert.False(t, old.IsDefault)
	})

	t.Run("error_unknown_address", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.SetDefault(ctx, "user-1", "missing-id")
		assert.ErrorIs(t, err, address.ErrAddressNotFound)
	})
}
