package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/payment"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) payment.Service {
	t.Helper()
	return payment.NewService(payment.NewRepository(storage.NewMemoryStore()))
}

func TestPaymentService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success_card_is_masked", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type:       "card",
			CardNumber: "4111 1111 1111 1234",
			CardName:   "Priya Sharma",
			Expiry:     "09/28",
		})
		require.NoError(t, err)

		assert.Equal(t, "**** **** **** 1234", res.Label)
		assert.NotContains(t, res.Label, "4111")
		assert.True(t, res.IsDefault)
	})

	t.Run("success_upi_label_is_id", func(t *testing.T) {
		svc := newTestService(t)

		res, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type:  "upi",
			UPIID: "priya@okhdfc",
		})
		require.NoError(t, err)
		assert.Equal(t, "priya@okhdfc", res.Label)
	})

	t.Run("error_card_without_number", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type:     "card",
			CardName: "Priya Sharma",
			Expiry:   "09/28",
		})
		assert.ErrorIs(t, err, payment.ErrInvalidInput)
	})

	t.Run("error_unknown_type", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{Type: "cheque"})
		assert.ErrorIs(t, err, payment.ErrInvalidInput)
	})
}

func TestPaymentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success_deleting_default_promotes_next", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type: "upi", UPIID: "priya@okhdfc",
		})
		require.NoError(t, err)

		second, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type: "upi", UPIID: "priya@oksbi",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, "user-1", first.ID))

		promoted, err := svc.GetByID(ctx, "user-1", second.ID)
		require.NoError(t, err)
		assert.True(t, promoted.IsDefault)
	})

	t.Run("error_delete_absent_method", func(t *testing.T) {
		svc := newTestService(t)

		err := svc.Delete(ctx, "user-1", "missing-id")
		assert.ErrorIs(t, err, payment.ErrMethodNotFound)
	})
}

func TestPaymentService_SetDefault(t *testing.T) {
	ctx := context.Background()

	t.Run("success_switches_default", func(t *testing.T) {
		svc := newTestService(t)

		first, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type: "upi", UPIID: "priya@okhdfc",
		})
		require.NoError(t, err)

		second, err := svc.Add(ctx, "user-1", payment.AddMethodRequest{
			Type: "upi", UPIID: "priya@oksbi",
		})
		require.NoError(t, err)

		res, err := svc.SetDefault(ctx, "user-1", second.ID)
		require.NoError(t, err)
		assert.True(t, res.IsDefault)

		old, err := svc.GetByID(ctx, "user-1", first.ID)
		require.NoError(t, err)
		assert.False(t, old.IsDefault)
	})
}

func TestSimulatedGateway_Authorize(t *testing.T) {
	t.Run("success_after_delay", func(t *testing.T) {
		gw := payment.NewSimulatedGateway(10 * time.Millisecond)

		res, err := gw.Authorize(context.Background(), payment.AuthorizationRequest{
			OrderID: "order-1",
			Amount:  826,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, res.TransactionID)
	})

	t.Run("error_cancelled_context_aborts", func(t *testing.T) {
		gw := payment.NewSimulatedGateway(5 * time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		_, err := gw.Authorize(ctx, payment.AuthorizationRequest{
			OrderID: "order-1",
			Amount:  826,
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("error_zero_amount_declined", func(t *testing.T) {
		gw := payment.NewSimulatedGateway(0)

		_, err := gw.Authorize(context.Background(), payment.AuthorizationRequest{
			OrderID: "order-1",
			Amount:  0,
		})
		assert.ErrorIs(t, err, payment.ErrPaymentDeclined)
	})
}
