package order_test

import (
	"context"
	"testing"

	mockpayment "github.com/Latha-Maheswari/modern-buy-easy/internal/mock/payment"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/order"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/payment"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/address"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/auth"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/cart"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/catalog"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/outbox"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/cache"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/shared/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Checkout against a mocked gateway, verifying the exact charge handed over
// and the behavior when the gateway declines.
func TestOrderService_Checkout_GatewayContract(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, gateway payment.Gateway) (*checkoutEnv, order.Service) {
		t.Helper()

		store := storage.NewMemoryStore()
		users := auth.NewRepository(store)
		authSvc := auth.NewService(users, email.NewNoopService(), auth.Config{JWTSecret: "test-secret"})

		reg, err := authSvc.Register(ctx, auth.RegisterRequest{
			Name:     "Priya Sharma",
			Email:    "priya@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		cat := catalog.NewService(cache.NewMemoryCache())
		carts := cart.NewService(cart.NewRepository(store), cat)
		addresses := address.NewService(address.NewRepository(store))
		methods := payment.NewService(payment.NewRepository(store))

		orders := order.NewService(order.Deps{
			Repo:       order.NewRepository(store),
			OutboxRepo: outbox.NewRepository(store),
			CartSvc:    carts,
			AddressSvc: addresses,
			PaymentSvc: methods,
			Gateway:    gateway,
			Users:      users,
		})

		env := &checkoutEnv{
			orders:    orders,
			carts:     carts,
			addresses: addresses,
			methods:   methods,
			userID:    reg.ID,
		}
		return env, orders
	}

	t.Run("success_gateway_receives_grand_total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mockpayment.NewMockGateway(ctrl)

		env, orders := setup(t, gw)
		addrID := env.addAddress(t)
		methodID := env.addPaymentMethod(t)

		require.NoError(t, env.carts.AddItem(ctx, env.userID, cart.AddItemRequest{ProductID: "1"}))
		require.NoError(t, env.carts.AddItem(ctx, env.userID, cart.AddItemRequest{ProductID: "1"}))

		gw.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req payment.AuthorizationRequest) (payment.AuthorizationResult, error) {
				assert.Equal(t, 826.0, req.Amount)
				assert.Equal(t, "priya@example.com", req.CustomerEmail)
				require.Len(t, req.Items, 1)
				assert.Equal(t, 2, req.Items[0].Qty)
				return payment.AuthorizationResult{TransactionID: "txn-1"}, nil
			})

		res, err := orders.Checkout(ctx, env.userID, order.CheckoutRequest{
			AddressID:       addrID,
			PaymentMethodID: methodID,
		})
		require.NoError(t, err)
		assert.Equal(t, "txn-1", res.TransactionID)
	})

	t.Run("error_gateway_decline_surfaces_and_keeps_cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := mockpayment.NewMockGateway(ctrl)

		env, orders := setup(t, gw)
		addrID := env.addAddress(t)
		methodID := env.addPaymentMethod(t)

		require.NoError(t, env.carts.AddItem(ctx, env.userID, cart.AddItemRequest{ProductID: "1"}))

		gw.EXPECT().
			Authorize(gomock.Any(), gomock.Any()).
			Return(payment.AuthorizationResult{}, payment.ErrPaymentDeclined)

		_, err := orders.Checkout(ctx, env.userID, order.CheckoutRequest{
			AddressID:       addrID,
			PaymentMethodID: methodID,
		})
		assert.ErrorIs(t, err, payment.ErrPaymentDeclined)

		count, err := env.carts.Count(ctx, env.userID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
