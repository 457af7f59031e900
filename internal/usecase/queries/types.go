package queries

import (
	"time"

	"parking-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// BookingView is a booking entry with its status resolved at read time.
type BookingView struct {
	BookingID     uuid.UUID
	HolderID      string
	SlotID        string
	ResourceTag   string
	DurationLabel string
	BookedAt      time.Time
	EndsAt        time.Time
	Status        reservation.Status
}

type CapacityView struct {
	TotalSlots int
	Configured bool
}

func toBookingView(e reservation.BookingEntry, now time.Time) BookingView {
	return BookingView{
		BookingID:     e.BookingID,
		HolderID:      e.HolderID,
		SlotID:        e.SlotID,
		ResourceTag:   e.ResourceTag,
		DurationLabel: e.DurationLabel,
		BookedAt:      e.BookedAt,
		EndsAt:        e.EndsAt(),
		Status:        e.StatusAt(now),
	}
}
