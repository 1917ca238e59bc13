package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Latha-Maheswari/modern-buy-easy/configs"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/email"
	"github.com/Latha-Maheswari/modern-buy-easy/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reads order events from Kafka and sends the matching customer
// notifications until SIGINT/SIGTERM.
func RunConsumer(cfg configs.Config, logger *zap.Logger) error {
	logger.Info("starting notification consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("kafka.broker required for the consumer")
	}

	emailSvc := email.NewNoopService()
	if cfg.Email.ResendAPIKey != "" {
		var err error
		emailSvc, err = email.NewResendService(cfg.Email.ResendAPIKey, cfg.Email.FromEmail)
		if err != nil {
			return err
		}
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Kafka.Broker},
		Topic:   cfg.Kafka.TopicEvents,
		GroupID: "notification-consumer-group",
	})
	defer reader.Close()
	logger.Info("kafka reader initialized", zap.String("topic", cfg.Kafka.TopicEvents))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go consumer.ConsumeMessages(ctx, reader, emailSvc, logger)

	<-ctx.Done()

	logger.Info("notification consumer stopped")
	return nil
}
