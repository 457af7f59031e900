package bootstrap

import (
	"context"
	"log/slog"

	"parking-reservation/internal/infra/messaging"
	"parking-reservation/internal/pkg/config"
	"parking-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if !cfg.Kafka.Enabled() {
		logger.Info("KAFKA_BROKERS not set, reservation events are not published")
		return messaging.NewNoopPublisher(logger), nil
	}

	producer, err := messaging.NewProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	pub := messaging.NewKafkaPublisher(producer, cfg.Kafka.Topic, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
