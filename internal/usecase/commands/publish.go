package commands

import (
	"context"
	"log/slog"

	"parking-reservation/internal/usecase/shared"
)

// Event delivery never decides the outcome of a command.
func publishBestEffort(ctx context.Context, p shared.EventPublisher, logger *slog.Logger, ev shared.Event) {
	if err := p.Publish(ctx, ev); err != nil {
		logger.Warn("failed to publish event",
			"event_type", string(ev.Type),
			"key", ev.Key,
			"error", err.Error(),
		)
	}
}
