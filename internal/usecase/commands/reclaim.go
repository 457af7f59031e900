package commands

import (
	"context"
	"log/slog"

	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/reclaim.go -package=commandsmock

// ReclaimCommands physically removes expired holds. Conflict checks already
// ignore them, so this only bounds ledger growth.
type ReclaimCommands interface {
	ReclaimExpired(ctx context.Context) (int64, error)
}

type reclaimUseCaseImpl struct {
	ledger    shared.HoldLedger
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReclaimUseCase(ledger shared.HoldLedger, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) ReclaimCommands {
	return &reclaimUseCaseImpl{ledger: ledger, publisher: publisher, clock: clk, logger: logger}
}

func (uc *reclaimUseCaseImpl) ReclaimExpired(ctx context.Context) (int64, error) {
	now := uc.clock.Now()
	removed, err := uc.ledger.DeleteExpired(ctx, now)
	if err != nil {
		return 0, errs.Wrap(err, "delete expired holds")
	}
	if removed > 0 {
		publishBestEffort(ctx, uc.publisher, uc.logger, shared.HoldsReclaimed(removed, now))
		uc.logger.Info("expired holds reclaimed", "removed", removed)
	}
	return removed, nil
}
