package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/config"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/events"
	"github.com/lFelipelalves/Crm-Wsc-Clean/internal/messaging/kafka/consumer"

	"go.uber.org/zap"
)

// RunConsumer delivers queued dispatch events until SIGINT/SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	infra, err := connect(cfg, true)
	if err != nil {
		return err
	}
	defer infra.Close()

	dl, err := buildDelivery(cfg, infra, zap.L())
	if err != nil {
		return err
	}

	reader := consumer.NewReader(cfg.Kafka.Broker, cfg.Kafka.GroupID, events.OutreachDispatchTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeOutreachDispatch(ctx, reader, dl.sender, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
