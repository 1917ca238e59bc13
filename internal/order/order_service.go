package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/address"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/auth"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/cart"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/outbox"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GST applied on the cart subtotal at checkout.
var taxRate = decimal.NewFromFloat(0.18)

const deliveryLeadDays = 5

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	Checkout(ctx context.Context, userID string, req CheckoutRequest) (OrderResponse, error)
	List(ctx context.Context, userID string) (OrderListResponse, error)
	Detail(ctx context.Context, userID, orderID string) (OrderResponse, error)
	Cancel(ctx context.Context, userID, orderID string) (OrderResponse, error)
}

type service struct {
	repo       Repository
	outboxRepo outbox.Repository
	cartSvc    cart.Service
	addressSvc address.Service
	paymentSvc payment.Service
	gateway    payment.Gateway
	users      auth.Repository
	logger     *zap.Logger
}

type Deps struct {
	Repo       Repository
	OutboxRepo outbox.Repository
	CartSvc    cart.Service
	AddressSvc address.Service
	PaymentSvc payment.Service
	Gateway    payment.Gateway
	Users      auth.Repository
	Logger     *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.CartSvc == nil {
		panic("cart service cannot be nil")
	}
	if deps.AddressSvc == nil {
		panic("address service cannot be nil")
	}
	if deps.PaymentSvc == nil {
		panic("payment service cannot be nil")
	}
	if deps.Gateway == nil {
		panic("payment gateway cannot be nil")
	}
	if deps.Users == nil {
		panic("user repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		cartSvc:    deps.CartSvc,
		addressSvc: deps.AddressSvc,
		paymentSvc: deps.PaymentSvc,
		gateway:    deps.Gateway,
		users:      deps.Users,
		logger:     deps.Logger,
	}
}

// Checkout validates the preconditions, authorizes payment, persists the
// order and clears the cart. Precondition failures leave every piece of
// state untouched.
func (s *service) Checkout(ctx context.Context, userID string, req CheckoutRequest) (OrderResponse, error) {
	logger := s.logger.With(
		zap.String("user_id", userID),
		zap.String("address_id", req.AddressID),
	)

	cartDetail, err := s.cartSvc.Detail(ctx, userID)
	if err != nil {
		return OrderResponse{}, ErrCheckoutFailed
	}
	if len(cartDetail.Items) == 0 {
		return OrderResponse{}, ErrEmptyCart
	}

	if _, err := s.addressSvc.GetByID(ctx, userID, req.AddressID); err != nil {
		return OrderResponse{}, ErrAddressRequired
	}

	method, err := s.paymentSvc.GetByID(ctx, userID, req.PaymentMethodID)
	if err != nil {
		return OrderResponse{}, ErrPaymentMethodRequired
	}

	subtotal := decimal.NewFromFloat(cartDetail.Subtotal)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax)

	orderID := uuid.NewString()
	now := time.Now()

	authItems := make([]payment.AuthorizationItem, 0, len(cartDetail.Items))
	for _, it := range cartDetail.Items {
		authItems = append(authItems, payment.AuthorizationItem{
			ID:    it.ProductID,
			Name:  it.Name,
			Price: it.Price,
			Qty:   it.Qty,
		})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return OrderResponse{}, ErrCheckoutFailed
	}

	authResult, err := s.gateway.Authorize(ctx, payment.AuthorizationRequest{
		OrderID:       orderID,
		Amount:        total.InexactFloat64(),
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
		CustomerPhone: user.Phone,
		Items:         authItems,
	})
	if err != nil {
		// A cancelled ctx means the customer backed out mid-payment; nothing
		// has been written yet, so just surface it.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return OrderResponse{}, err
		}
		logger.Warn("payment authorization failed", zap.Error(err))
		return OrderResponse{}, payment.ErrPaymentDeclined
	}

	items := make([]Item, 0, len(cartDetail.Items))
	for _, it := range cartDetail.Items {
		items = append(items, Item{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Qty:       it.Qty,
		})
	}

	o := Order{
		ID:            orderID,
		OrderNumber:   fmt.Sprintf("ORD%d", now.UnixMilli()),
		UserID:        userID,
		Status:        StatusConfirmed,
		Items:         items,
		Subtotal:      subtotal.InexactFloat64(),
		Tax:           tax.InexactFloat64(),
		Total:         total.InexactFloat64(),
		AddressID:     req.AddressID,
		PaymentMethod: method.Label,
		TransactionID: authResult.TransactionID,
		SnapToken:     authResult.SnapToken,
		RedirectURL:   authResult.RedirectURL,
		PlacedAt:      now,
		DeliveryDate:  now.AddDate(0, 0, deliveryLeadDays),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		logger.Error("order persist failed", zap.Error(err))
		return OrderResponse{}, ErrCheckoutFailed
	}

	if err := s.cartSvc.Clear(ctx, userID); err != nil {
		// The order is already placed; an uncleaned cart is recoverable.
		logger.Warn("cart clear after checkout failed", zap.Error(err))
	}

	payload := OrderPlacedPayload{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      userID,
		Email:       user.Email,
		Name:        user.Name,
		Total:       o.Total,
	}
	if err := s.outboxRepo.Append(ctx, "order", o.ID, "order.placed", payload); err != nil {
		logger.Warn("outbox append failed", zap.Error(err))
	}

	logger.Info("order placed",
		zap.String("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
	)

	return toOrderResponse(o), nil
}

func (s *service) List(ctx context.Context, userID string) (OrderListResponse, error) {
	orders, err := s.repo.List(ctx, userID)
	if err != nil {
		return OrderListResponse{}, ErrCheckoutFailed
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return OrderListResponse{Orders: out}, nil
}

func (s *service) Detail(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	o, ok, err := s.repo.GetByID(ctx, userID, orderID)
	if err != nil {
		return OrderResponse{}, ErrCheckoutFailed
	}
	if !ok {
		return OrderResponse{}, ErrOrderNotFound
	}
	return toOrderResponse(o), nil
}

// Cancel is only allowed while the order is still CONFIRMED; once shipped it
// has left the warehouse.
func (s *service) Cancel(ctx context.Context, userID, orderID string) (OrderResponse, error) {
	o, ok, err := s.repo.GetByID(ctx, userID, orderID)
	if err != nil {
		return OrderResponse{}, ErrCheckoutFailed
	}
	if !ok {
		return OrderResponse{}, ErrOrderNotFound
	}

	if o.Status != StatusConfirmed {
		return OrderResponse{}, ErrCannotCancel
	}

	now := time.Now()
	o.Status = StatusCancelled
	o.CancelledAt = &now

	if err := s.repo.Update(ctx, o); err != nil {
		return OrderResponse{}, ErrCheckoutFailed
	}

	if err := s.outboxRepo.Append(ctx, "order", o.ID, "order.cancelled", map[string]string{
		"orderId":     o.ID,
		"orderNumber": o.OrderNumber,
		"userId":      userID,
	}); err != nil {
		s.logger.Warn("outbox append failed", zap.Error(err))
	}

	return toOrderResponse(o), nil
}

func toOrderResponse(o Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Image:     it.Image,
			Qty:       it.Qty,
			LineTotal: decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty))).InexactFloat64(),
		})
	}

	return OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		Items:         items,
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		Total:         o.Total,
		AddressID:     o.AddressID,
		PaymentMethod: o.PaymentMethod,
		TransactionID: o.TransactionID,
		SnapToken:     o.SnapToken,
		RedirectURL:   o.RedirectURL,
		PlacedAt:      o.PlacedAt,
		DeliveryDate:  o.DeliveryDate,
		CancelledAt:   o.CancelledAt,
	}
}
