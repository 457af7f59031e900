package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

type ReserveResult struct {
	Hold reservation.Hold
	// nil when the booking entry could not be written; the hold still stands
	BookingID *uuid.UUID
}

func (r ReserveResult) Mirrored() bool {
	return r.BookingID != nil
}

type CancelResult struct {
	Entry         reservation.BookingEntry
	ReleasedHolds int64
}

type ReservationCommands interface {
	Reserve(ctx context.Context, req reservation.HoldRequest) (*ReserveResult, error)
	Cancel(ctx context.Context, bookingID string) (*CancelResult, error)
}

type reservationUseCaseImpl struct {
	ledger    shared.HoldLedger
	history   shared.BookingHistory
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewReservationUseCase(
	ledger shared.HoldLedger,
	history shared.BookingHistory,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationUseCaseImpl{
		ledger:    ledger,
		history:   history,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// Reserve places an exclusive hold on req.SlotID, then mirrors it into the
// holder's booking history. The ledger decides exclusivity; a failed mirror
// is logged and does not fail the reservation.
func (uc *reservationUseCaseImpl) Reserve(ctx context.Context, req reservation.HoldRequest) (*ReserveResult, error) {
	now := uc.clock.Now()

	hold, err := reservation.NewHold(req, now)
	if err != nil {
		return nil, err
	}

	existing, err := uc.ledger.FindActive(ctx, hold.SlotID, now)
	if err != nil {
		return nil, errs.Wrap(err, "check slot availability")
	}
	if existing != nil {
		return nil, slotHeldError(hold.SlotID, existing.ExpiresAt)
	}

	if err := uc.ledger.Insert(ctx, hold); err != nil {
		if errs.Is(err, errs.ErrConflict) {
			// lost the race against a concurrent reserve for the same slot
			return nil, errs.Wrapf(reservation.ErrSlotHeld, "slot %s", hold.SlotID)
		}
		return nil, errs.Wrap(err, "insert hold")
	}

	result := &ReserveResult{Hold: hold}

	entry, err := reservation.MirrorHold(hold)
	if err == nil {
		err = uc.history.Append(ctx, entry)
	}
	if err != nil {
		uc.logger.Error("hold recorded without booking entry",
			"kind", "orphan_hold",
			"error", errs.Mark(err, errs.ErrInconsistency).Error(),
			"hold_id", hold.ID.String(),
			"slot_id", hold.SlotID,
			"holder_id", hold.HolderID,
			"resource_tag", hold.ResourceTag,
		)
	} else {
		result.BookingID = &entry.BookingID
	}

	var bookingID *string
	if result.BookingID != nil {
		s := result.BookingID.String()
		bookingID = &s
	}
	publishBestEffort(ctx, uc.publisher, uc.logger, shared.HoldCreated(hold, bookingID))

	uc.logger.Info("slot reserved",
		"slot_id", hold.SlotID,
		"holder_id", hold.HolderID,
		"expires_at", hold.ExpiresAt,
		"mirrored", result.Mirrored(),
	)
	return result, nil
}

// Cancel removes the booking entry first, then every ledger hold with the
// same slot and resource tag. The slot is free as soon as Cancel returns.
func (uc *reservationUseCaseImpl) Cancel(ctx context.Context, rawBookingID string) (*CancelResult, error) {
	bookingID, err := reservation.ParseBookingID(rawBookingID)
	if err != nil {
		return nil, err
	}

	entry, err := uc.history.FindByID(ctx, bookingID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(reservation.ErrBookingNotFound, "booking %s", bookingID)
		}
		return nil, errs.Wrap(err, "find booking")
	}

	if err := uc.history.Remove(ctx, bookingID); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(reservation.ErrBookingNotFound, "booking %s", bookingID)
		}
		return nil, errs.Wrap(err, "remove booking entry")
	}

	released, err := uc.ledger.DeleteBySlotAndTag(ctx, entry.SlotID, entry.ResourceTag)
	if err != nil {
		uc.logger.Error("booking removed but hold not released",
			"kind", "dangling_hold",
			"error", errs.Mark(err, errs.ErrInconsistency).Error(),
			"booking_id", bookingID.String(),
			"slot_id", entry.SlotID,
			"resource_tag", entry.ResourceTag,
		)
		return nil, errs.Wrap(err, "release hold")
	}

	now := uc.clock.Now()
	publishBestEffort(ctx, uc.publisher, uc.logger, shared.HoldCancelled(*entry, released, now))

	uc.logger.Info("booking cancelled",
		"booking_id", bookingID.String(),
		"slot_id", entry.SlotID,
		"released_holds", released,
	)
	return &CancelResult{Entry: *entry, ReleasedHolds: released}, nil
}

func slotHeldError(slotID string, until time.Time) error {
	return errs.Wrapf(reservation.ErrSlotHeld, "slot %s held until %s", slotID, until.Format(time.RFC3339))
}
