package reservation

import (
	"time"

	"parking-reservation/internal/domain/duration"
	"parking-reservation/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// BookingEntry is the holder-scoped mirror of a Hold.
type BookingEntry struct {
	BookingID     uuid.UUID
	HolderID      string
	SlotID        string
	ResourceTag   string
	DurationLabel string
	BookedAt      time.Time
}

// MirrorHold builds the booking entry paired with h. The entry gets its own
// identifier; slot, tag, holder and label are copied from the hold.
func MirrorHold(h Hold) (BookingEntry, error) {
	var e BookingEntry
	if err := copier.Copy(&e, &h); err != nil {
		return BookingEntry{}, errs.Mark(errs.Wrap(err, "copy hold fields"), ErrMirrorFailed)
	}
	e.BookingID = uuid.New()
	e.BookedAt = h.CreatedAt
	return e, nil
}

func (e BookingEntry) EndsAt() time.Time {
	return e.BookedAt.Add(duration.For(e.DurationLabel))
}

func (e BookingEntry) StatusAt(now time.Time) Status {
	if e.EndsAt().After(now) {
		return StatusActive
	}
	return StatusExpired
}

// Pairs reports whether e mirrors h: same slot and tag, booked within window
// of the hold's creation.
func (e BookingEntry) Pairs(h Hold, window time.Duration) bool {
	if e.SlotID != h.SlotID || e.ResourceTag != h.ResourceTag {
		return false
	}
	d := e.BookedAt.Sub(h.CreatedAt)
	if d < 0 {
		d = -d
	}
	return d <= window
}

func ParseBookingID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Wrapf(ErrInvalidBookingID, "%q", raw)
	}
	return id, nil
}
