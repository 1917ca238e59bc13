package producer

import (
	"context"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/internal/outbox"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ProcessOutboxEvents polls the outbox and relays pending events to Kafka.
// Runs until ctx is cancelled.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.L()
	}
	logger = logger.Named("outbox.worker")

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("interval", 5*time.Second))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, logger); err != nil {
				logger.Error("outbox batch failed", zap.Error(err))
			}
		}
	}
}

func processPendingEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) error {
	events, err := repo.ListPending(ctx, 10)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Debug("processing pending events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Warn("publish failed",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Warn("mark sent failed",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("event published",
			zap.String("event_id", event.ID),
			zap.String("event_type", event.EventType),
		)
	}

	return nil
}
