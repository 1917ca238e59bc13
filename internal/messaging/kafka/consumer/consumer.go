package consumer

import (
	"context"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeMessages reads order events and dispatches them. Unknown event
// types are committed and skipped so the partition keeps moving.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, emailSvc email.Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("kafka.consumer")

	logger.Info("started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("fetch failed", zap.Error(err))
			continue
		}

		eventType := headerValue(msg.Headers, "event_type")

		switch eventType {
		case "order.placed":
			if err := handleOrderPlaced(ctx, msg.Value, emailSvc, logger); err != nil {
				logger.Error("order.placed handling failed", zap.Error(err))
				continue
			}
			if err := reader.CommitMessages(ctx, msg); err != nil {
				logger.Warn("commit failed", zap.Error(err))
			}
		default:
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
