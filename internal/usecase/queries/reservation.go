package queries

import (
	"context"
	"sort"
	"strings"

	"parking-reservation/internal/domain/duration"
	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/reservation.go -package=queriesmock

type ReservationQueries interface {
	ListActiveSlots(ctx context.Context) ([]string, error)
	ListAllBookings(ctx context.Context) ([]BookingView, error)
	ListBookingsFor(ctx context.Context, holderID string) ([]BookingView, error)
	ListDurations() []duration.Option
}

type reservationQueriesImpl struct {
	ledger  shared.HoldLedger
	history shared.BookingHistory
	clock   clock.Clock
}

func NewReservationQueries(ledger shared.HoldLedger, history shared.BookingHistory, clk clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{ledger: ledger, history: history, clock: clk}
}

// ListActiveSlots returns the distinct slot ids with an unexpired hold, sorted.
func (q *reservationQueriesImpl) ListActiveSlots(ctx context.Context) ([]string, error) {
	holds, err := q.ledger.ListActive(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "list active holds")
	}

	seen := make(map[string]struct{}, len(holds))
	slots := make([]string, 0, len(holds))
	for _, h := range holds {
		if _, ok := seen[h.SlotID]; ok {
			continue
		}
		seen[h.SlotID] = struct{}{}
		slots = append(slots, h.SlotID)
	}
	sort.Strings(slots)
	return slots, nil
}

// ListAllBookings orders by holder, then booking time.
func (q *reservationQueriesImpl) ListAllBookings(ctx context.Context) ([]BookingView, error) {
	entries, err := q.history.ListAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list bookings")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.HolderID != b.HolderID {
			return a.HolderID < b.HolderID
		}
		if !a.BookedAt.Equal(b.BookedAt) {
			return a.BookedAt.Before(b.BookedAt)
		}
		return a.BookingID.String() < b.BookingID.String()
	})
	return q.views(entries), nil
}

// ListBookingsFor returns an empty list for holders with no bookings.
func (q *reservationQueriesImpl) ListBookingsFor(ctx context.Context, holderID string) ([]BookingView, error) {
	holderID = strings.TrimSpace(holderID)
	if holderID == "" {
		return nil, errs.Wrap(reservation.ErrMissingField, "missing holderId")
	}

	entries, err := q.history.ListByHolder(ctx, holderID)
	if err != nil {
		return nil, errs.Wrap(err, "list holder bookings")
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].BookedAt.Before(entries[j].BookedAt)
	})
	return q.views(entries), nil
}

func (q *reservationQueriesImpl) ListDurations() []duration.Option {
	return duration.Options()
}

func (q *reservationQueriesImpl) views(entries []reservation.BookingEntry) []BookingView {
	now := q.clock.Now()
	out := make([]BookingView, 0, len(entries))
	for _, e := range entries {
		out = append(out, toBookingView(e, now))
	}
	return out
}
