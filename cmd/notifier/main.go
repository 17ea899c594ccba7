package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tair/launchpad-payments/internal/notifier"
	"github.com/tair/launchpad-payments/internal/payment/config"
	"github.com/tair/launchpad-payments/kafka"
	"github.com/tair/launchpad-payments/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.Init("payment-notifier", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	if len(cfg.KafkaBrokers) == 0 {
		logger.Logger.Fatal().Msg("KAFKA_BROKERS must be set")
	}

	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicPaymentEvents})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	mailer := notifier.NewSMTPMailer(cfg.SMTP)
	notifier.NewReceiptNotifier(mailer, cfg.MailFrom).Register(consumer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	logger.Logger.Info().
		Str("smtp_host", cfg.SMTP.Host).
		Str("group_id", cfg.KafkaGroupID).
		Msg("Payment notifier started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
}
