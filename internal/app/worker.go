package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/Latha-Maheswari/modern-buy-easy/configs"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/messaging/kafka/producer"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/outbox"

	"go.uber.org/zap"
)

// RunWorker polls the outbox and relays pending events to Kafka until
// SIGINT/SIGTERM.
func RunWorker(cfg configs.Config, logger *zap.Logger) error {
	logger.Info("starting outbox processor")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("kafka.broker required for the outbox worker")
	}

	store, err := buildStore(cfg)
	if err != nil {
		return err
	}
	outboxRepo := outbox.NewRepository(store)

	kafkaWriter, err := connectKafkaWithRetry(cfg.Kafka.Broker, cfg.Kafka.TopicEvents, 5, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger)

	<-ctx.Done()

	logger.Info("shutting down outbox processor")
	time.Sleep(1 * time.Second)
	logger.Info("outbox processor stopped")

	return nil
}
