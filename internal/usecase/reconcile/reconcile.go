// Package reconcile compares the reservation ledger with booking history and
// repairs what can be repaired safely. A pass is idempotent.
package reconcile

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

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/reconcile/reconcile.go -package=reconcilemock

type Options struct {
	// holds younger than this may still be waiting for their booking entry
	OrphanGrace time.Duration
	MatchWindow time.Duration
	Repair      bool
}

type OrphanHold struct {
	HoldID      uuid.UUID
	SlotID      string
	HolderID    string
	ResourceTag string
	CreatedAt   time.Time
	ExpiresAt   time.Time
	Released    bool
}

type OrphanBooking struct {
	BookingID   uuid.UUID
	HolderID    string
	SlotID      string
	ResourceTag string
	BookedAt    time.Time
}

type Report struct {
	RanAt          time.Time
	ActiveHolds    int
	Bookings       int
	Matched        int
	OrphanHolds    []OrphanHold
	OrphanBookings []OrphanBooking
	Released       int
}

type Reconciler interface {
	Run(ctx context.Context) (*Report, error)
}

type reconcilerImpl struct {
	ledger  shared.HoldLedger
	history shared.BookingHistory
	clock   clock.Clock
	logger  *slog.Logger
	opts    Options
}

func NewReconciler(ledger shared.HoldLedger, history shared.BookingHistory, clk clock.Clock, logger *slog.Logger, opts Options) Reconciler {
	return &reconcilerImpl{ledger: ledger, history: history, clock: clk, logger: logger, opts: opts}
}

func (r *reconcilerImpl) Run(ctx context.Context) (*Report, error) {
	now := r.clock.Now()

	holds, err := r.ledger.ListActive(ctx, now)
	if err != nil {
		return nil, errs.Wrap(err, "list active holds")
	}
	entries, err := r.history.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list bookings")
	}

	report := &Report{RanAt: now, ActiveHolds: len(holds), Bookings: len(entries)}
	pairedEntries := pair(holds, entries, r.opts.MatchWindow)

	for _, h := range holds {
		if _, ok := pairedEntries[h.ID]; ok {
			report.Matched++
			continue
		}
		orphan := OrphanHold{
			HoldID:      h.ID,
			SlotID:      h.SlotID,
			HolderID:    h.HolderID,
			ResourceTag: h.ResourceTag,
			CreatedAt:   h.CreatedAt,
			ExpiresAt:   h.ExpiresAt,
		}
		if r.opts.Repair && h.Age(now) > r.opts.OrphanGrace {
			released, err := r.ledger.DeleteByID(ctx, h.ID)
			if err != nil {
				return nil, errs.Wrapf(err, "release orphan hold %s", h.ID)
			}
			orphan.Released = released
			if released {
				report.Released++
			}
		}
		r.logger.Warn("hold has no booking entry",
			"kind", "orphan_hold",
			"error", errs.ErrInconsistency.Error(),
			"hold_id", h.ID.String(),
			"slot_id", h.SlotID,
			"resource_tag", h.ResourceTag,
			"released", orphan.Released,
		)
		report.OrphanHolds = append(report.OrphanHolds, orphan)
	}

	matchedBookings := make(map[uuid.UUID]struct{}, len(pairedEntries))
	for _, id := range pairedEntries {
		matchedBookings[id] = struct{}{}
	}
	for _, e := range entries {
		if _, ok := matchedBookings[e.BookingID]; ok {
			continue
		}
		if e.StatusAt(now) != reservation.StatusActive {
			continue
		}
		// display-only: never mutated, the holder may still cancel it
		r.logger.Warn("active booking has no hold",
			"kind", "orphan_booking",
			"error", errs.ErrInconsistency.Error(),
			"booking_id", e.BookingID.String(),
			"slot_id", e.SlotID,
			"resource_tag", e.ResourceTag,
		)
		report.OrphanBookings = append(report.OrphanBookings, OrphanBooking{
			BookingID:   e.BookingID,
			HolderID:    e.HolderID,
			SlotID:      e.SlotID,
			ResourceTag: e.ResourceTag,
			BookedAt:    e.BookedAt,
		})
	}

	r.logger.Info("reconciliation finished",
		"active_holds", report.ActiveHolds,
		"bookings", report.Bookings,
		"matched", report.Matched,
		"orphan_holds", len(report.OrphanHolds),
		"orphan_bookings", len(report.OrphanBookings),
		"released", report.Released,
	)
	return report, nil
}

type pairKey struct {
	slotID string
	tag    string
}

// pair matches each hold to at most one booking entry with the same slot and
// tag, choosing the entry booked closest to the hold's creation.
// The result maps hold id to booking id.
func pair(holds []reservation.Hold, entries []reservation.BookingEntry, window time.Duration) map[uuid.UUID]uuid.UUID {
	candidates := make(map[pairKey][]reservation.BookingEntry)
	for _, e := range entries {
		k := pairKey{slotID: e.SlotID, tag: e.ResourceTag}
		candidates[k] = append(candidates[k], e)
	}

	used := make(map[uuid.UUID]struct{})
	out := make(map[uuid.UUID]uuid.UUID, len(holds))
	for _, h := range holds {
		var (
			best     *reservation.BookingEntry
			bestDist time.Duration
		)
		cands := candidates[pairKey{slotID: h.SlotID, tag: h.ResourceTag}]
		for i := range cands {
			e := &cands[i]
			if _, taken := used[e.BookingID]; taken || !e.Pairs(h, window) {
				continue
			}
			d := e.BookedAt.Sub(h.CreatedAt).Abs()
			if best == nil || d < bestDist {
				best, bestDist = e, d
			}
		}
		if best != nil {
			used[best.BookingID] = struct{}{}
			out[h.ID] = best.BookingID
		}
	}
	return out
}
