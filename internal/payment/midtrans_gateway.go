package payment

import (
	"context"

	midtransgo "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// midtransGateway authorizes through Midtrans Snap. The returned token and
// redirect URL are passed to the client, which completes the payment in the
// Snap flow.
type midtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(serverKey string, isProduction bool) Gateway {
	env := midtransgo.Sandbox
	if isProduction {
		env = midtransgo.Production
	}

	c := snap.Client{}
	c.New(serverKey, env)

	return &midtransGateway{client: c}
}

func (g *midtransGateway) Authorize(ctx context.Context, req AuthorizationRequest) (AuthorizationResult, error) {
	if err := ctx.Err(); err != nil {
		return AuthorizationResult{}, err
	}

	snapReq := &snap.Request{
		TransactionDetails: midtransgo.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: int64(req.Amount),
		},
		CustomerDetail: &midtransgo.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
	}

	var items []midtransgo.ItemDetails
	for _, item := range req.Items {
		items = append(items, midtransgo.ItemDetails{
			ID:    item.ID,
			Price: int64(item.Price),
			Qty:   int32(item.Qty),
			Name:  item.Name,
		})
	}
	snapReq.Items = &items

	snapResp, err := g.client.CreateTransaction(snapReq)
	if err != nil {
		return AuthorizationResult{}, err
	}

	return AuthorizationResult{
		TransactionID: req.OrderID,
		SnapToken:     snapResp.Token,
		RedirectURL:   snapResp.RedirectURL,
	}, nil
}
