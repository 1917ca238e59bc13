package order

import "time"

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	AddressID       string `json:"addressId" binding:"required"`
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Qty       int     `json:"qty"`
	LineTotal float64 `json:"lineTotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	Tax           float64             `json:"tax"`
	Total         float64             `json:"total"`
	AddressID     string              `json:"addressId"`
	PaymentMethod string              `json:"paymentMethod"`
	TransactionID string              `json:"transactionId,omitempty"`
	SnapToken     string              `json:"snapToken,omitempty"`
	RedirectURL   string              `json:"redirectUrl,omitempty"`
	PlacedAt      time.Time           `json:"placedAt"`
	DeliveryDate  time.Time           `json:"deliveryDate"`
	CancelledAt   *time.Time          `json:"cancelledAt,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

// ==================== EVENT PAYLOADS ====================

// OrderPlacedPayload is the outbox payload for the order.placed event; the
// consumer uses it to send the confirmation email.
type OrderPlacedPayload struct {
	OrderID     string  `json:"orderId"`
	OrderNumber string  `json:"orderNumber"`
	UserID      string  `json:"userId"`
	Email       string  `json:"email"`
	Name        string  `json:"name"`
	Total       float64 `json:"total"`
}
