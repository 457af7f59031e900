package shared

import (
	"context"
	"time"

	"parking-reservation/internal/domain/capacity"
	"parking-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/ports.go -package=sharedmock

// HoldLedger is the authoritative record of slot holds. Every read that
// takes now ignores holds whose ExpiresAt is not after now.
type HoldLedger interface {
	// FindActive returns nil, nil when slotID has no unexpired hold.
	FindActive(ctx context.Context, slotID string, now time.Time) (*reservation.Hold, error)
	// Insert refuses, with an error marked errs.ErrConflict, to store a hold
	// while another unexpired hold exists for the same slot.
	Insert(ctx context.Context, h reservation.Hold) error
	DeleteBySlotAndTag(ctx context.Context, slotID, resourceTag string) (int64, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	ListActive(ctx context.Context, now time.Time) ([]reservation.Hold, error)
}

// BookingHistory stores holder-scoped booking entries keyed by booking id.
type BookingHistory interface {
	Append(ctx context.Context, e reservation.BookingEntry) error
	FindByID(ctx context.Context, bookingID uuid.UUID) (*reservation.BookingEntry, error)
	Remove(ctx context.Context, bookingID uuid.UUID) error
	ListAll(ctx context.Context) ([]reservation.BookingEntry, error)
	ListByHolder(ctx context.Context, holderID string) ([]reservation.BookingEntry, error)
}

type CapacityStore interface {
	// Get reports found=false when capacity was never configured.
	Get(ctx context.Context) (c capacity.SlotCapacity, found bool, err error)
	Upsert(ctx context.Context, c capacity.SlotCapacity) error
}

type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
