package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AuthorizationRequest describes the charge handed to the gateway. Amount is
// in rupees; the Midtrans implementation converts to the gross amount its
// API expects.
type AuthorizationRequest struct {
	OrderID       string
	Amount        float64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []AuthorizationItem
}

type AuthorizationItem struct {
	ID    string
	Name  string
	Price float64
	Qty   int
}

type AuthorizationResult struct {
	TransactionID string `json:"transactionId"`
	SnapToken     string `json:"snapToken,omitempty"`
	RedirectURL   string `json:"redirectUrl,omitempty"`
}

// Gateway is the payment boundary of checkout. Authorize blocks until the
// charge is accepted, fails, or ctx is cancelled; a cancelled ctx must leave
// no side effects behind.
//
//go:generate mockgen -source=gateway.go -destination=../mock/payment/gateway_mock.go -package=mock
type Gateway interface {
	Authorize(ctx context.Context, req AuthorizationRequest) (AuthorizationResult, error)
}

// simulatedGateway stands in for a PSP in development. It sleeps for the
// configured latency to mimic the network round-trip, honoring ctx so an
// abandoned checkout aborts instead of completing in the background.
type simulatedGateway struct {
	delay time.Duration
}

func NewSimulatedGateway(delay time.Duration) Gateway {
	return &simulatedGateway{delay: delay}
}

func (g *simulatedGateway) Authorize(ctx context.Context, req AuthorizationRequest) (AuthorizationResult, error) {
	if err := ctx.Err(); err != nil {
		return AuthorizationResult{}, err
	}
	if req.Amount <= 0 {
		return AuthorizationResult{}, ErrPaymentDeclined
	}

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return AuthorizationResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	return AuthorizationResult{
		TransactionID: "sim-" + uuid.NewString(),
	}, nil
}
