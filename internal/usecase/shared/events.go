package shared

import (
	"time"

	"parking-reservation/internal/domain/reservation"
)

type EventType string

const (
	EventHoldCreated     EventType = "hold.created"
	EventHoldCancelled   EventType = "hold.cancelled"
	EventHoldsReclaimed  EventType = "holds.reclaimed"
	EventCapacityUpdated EventType = "capacity.updated"
)

// Event is a reservation state change emitted to collaborators.
// Key groups events per slot so consumers see them in order.
type Event struct {
	Type       EventType `json:"type"`
	Key        string    `json:"-"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type HoldPayload struct {
	SlotID        string    `json:"slotId"`
	HolderID      string    `json:"holderId"`
	ResourceTag   string    `json:"resourceTag"`
	DurationLabel string    `json:"durationLabel"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `json:"expiresAt"`
	BookingID     *string   `json:"bookingId,omitempty"`
}

type CancelPayload struct {
	BookingID     string `json:"bookingId"`
	SlotID        string `json:"slotId"`
	ResourceTag   string `json:"resourceTag"`
	HolderID      string `json:"holderId"`
	ReleasedHolds int64  `json:"releasedHolds"`
}

type ReclaimPayload struct {
	Removed int64 `json:"removed"`
}

type CapacityPayload struct {
	TotalSlots int `json:"totalSlots"`
}

func HoldCreated(h reservation.Hold, bookingID *string) Event {
	return Event{
		Type:       EventHoldCreated,
		Key:        h.SlotID,
		OccurredAt: h.CreatedAt,
		Payload: HoldPayload{
			SlotID:        h.SlotID,
			HolderID:      h.HolderID,
			ResourceTag:   h.ResourceTag,
			DurationLabel: h.DurationLabel,
			CreatedAt:     h.CreatedAt,
			ExpiresAt:     h.ExpiresAt,
			BookingID:     bookingID,
		},
	}
}

func HoldCancelled(e reservation.BookingEntry, released int64, at time.Time) Event {
	return Event{
		Type:       EventHoldCancelled,
		Key:        e.SlotID,
		OccurredAt: at,
		Payload: CancelPayload{
			BookingID:     e.BookingID.String(),
			SlotID:        e.SlotID,
			ResourceTag:   e.ResourceTag,
			HolderID:      e.HolderID,
			ReleasedHolds: released,
		},
	}
}

func HoldsReclaimed(removed int64, at time.Time) Event {
	return Event{
		Type:       EventHoldsReclaimed,
		OccurredAt: at,
		Payload:    ReclaimPayload{Removed: removed},
	}
}

func CapacityUpdated(total int, at time.Time) Event {
	return Event{
		Type:       EventCapacityUpdated,
		OccurredAt: at,
		Payload:    CapacityPayload{TotalSlots: total},
	}
}
