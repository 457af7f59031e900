package reservation

import (
	"strings"
	"time"

	"parking-reservation/internal/domain/duration"
	"parking-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type HoldRequest struct {
	SlotID        string
	HolderID      string
	ResourceTag   string
	DurationLabel string
}

func (r HoldRequest) normalized() HoldRequest {
	return HoldRequest{
		SlotID:        strings.TrimSpace(r.SlotID),
		HolderID:      strings.TrimSpace(r.HolderID),
		ResourceTag:   strings.TrimSpace(r.ResourceTag),
		DurationLabel: strings.TrimSpace(r.DurationLabel),
	}
}

func (r HoldRequest) Validate() error {
	var missing []string
	if r.SlotID == "" {
		missing = append(missing, "slotId")
	}
	if r.HolderID == "" {
		missing = append(missing, "holderId")
	}
	if r.ResourceTag == "" {
		missing = append(missing, "resourceTag")
	}
	if r.DurationLabel == "" {
		missing = append(missing, "durationLabel")
	}
	if len(missing) > 0 {
		return errs.Wrapf(ErrMissingField, "missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Hold is one exclusive claim on a slot in the reservation ledger.
// ExpiresAt is fixed at creation.
type Hold struct {
	ID            uuid.UUID
	SlotID        string
	HolderID      string
	ResourceTag   string
	DurationLabel string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

// NewHold trims and validates req. Unknown duration labels are not an error;
// they fall back to duration.DefaultMinutes.
func NewHold(req HoldRequest, now time.Time) (Hold, error) {
	req = req.normalized()
	if err := req.Validate(); err != nil {
		return Hold{}, err
	}
	return Hold{
		ID:            uuid.New(),
		SlotID:        req.SlotID,
		HolderID:      req.HolderID,
		ResourceTag:   req.ResourceTag,
		DurationLabel: req.DurationLabel,
		CreatedAt:     now,
		ExpiresAt:     now.Add(duration.For(req.DurationLabel)),
	}, nil
}

func (h Hold) ActiveAt(now time.Time) bool {
	return h.ExpiresAt.After(now)
}

func (h Hold) Age(now time.Time) time.Duration {
	return now.Sub(h.CreatedAt)
}
