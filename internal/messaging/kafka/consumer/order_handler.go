package consumer

import (
	"context"
	"encoding/json"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/order"

	"go.uber.org/zap"
)

func handleOrderPlaced(ctx context.Context, payload []byte, emailSvc email.Service, logger *zap.Logger) error {
	var data order.OrderPlacedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	logger.Info("sending order confirmation",
		zap.String("order_number", data.OrderNumber),
		zap.String("user_id", data.UserID),
	)

	return emailSvc.SendOrderConfirmation(ctx, data.Email, data.Name, data.OrderNumber, data.Total)
}
