package commands

import (
	"context"
	"log/slog"

	"parking-reservation/internal/domain/capacity"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/capacity.go -package=commandsmock

type CapacityCommands interface {
	SetCapacity(ctx context.Context, totalSlots int) (capacity.SlotCapacity, error)
}

type capacityUseCaseImpl struct {
	store     shared.CapacityStore
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCapacityUseCase(store shared.CapacityStore, publisher shared.EventPublisher, clk clock.Clock, logger *slog.Logger) CapacityCommands {
	return &capacityUseCaseImpl{store: store, publisher: publisher, clock: clk, logger: logger}
}

func (uc *capacityUseCaseImpl) SetCapacity(ctx context.Context, totalSlots int) (capacity.SlotCapacity, error) {
	c, err := capacity.New(totalSlots)
	if err != nil {
		return capacity.SlotCapacity{}, err
	}
	if err := uc.store.Upsert(ctx, c); err != nil {
		return capacity.SlotCapacity{}, errs.Wrap(err, "store capacity")
	}

	publishBestEffort(ctx, uc.publisher, uc.logger, shared.CapacityUpdated(c.Total, uc.clock.Now()))
	uc.logger.Info("slot capacity updated", "total_slots", c.Total)
	return c, nil
}
