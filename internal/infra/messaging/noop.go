package messaging

import (
	"context"
	"log/slog"

	"parking-reservation/internal/usecase/shared"
)

// NoopPublisher is used when no brokers are configured.
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(_ context.Context, ev shared.Event) error {
	p.logger.Debug("event dropped, no brokers configured", slog.String("type", string(ev.Type)))
	return nil
}
