package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"

	"github.com/google/uuid"
)

type BookingHistory struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]reservation.BookingEntry
	logger  *slog.Logger
}

func NewBookingHistory(logger *slog.Logger) *BookingHistory {
	return &BookingHistory{entries: make(map[uuid.UUID]reservation.BookingEntry), logger: logger}
}

func (s *BookingHistory) Append(_ context.Context, e reservation.BookingEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[e.BookingID]; ok {
		return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "booking "+e.BookingID.String(), nil)
	}
	s.entries[e.BookingID] = e
	return nil
}

func (s *BookingHistory) FindByID(_ context.Context, bookingID uuid.UUID) (*reservation.BookingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[bookingID]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking "+bookingID.String(), nil)
	}
	return &e, nil
}

func (s *BookingHistory) Remove(_ context.Context, bookingID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[bookingID]; !ok {
		return infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking "+bookingID.String(), nil)
	}
	delete(s.entries, bookingID)
	return nil
}

func (s *BookingHistory) ListAll(_ context.Context) ([]reservation.BookingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reservation.BookingEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HolderID != out[j].HolderID {
			return out[i].HolderID < out[j].HolderID
		}
		return byBookedAt(out[i], out[j])
	})
	return out, nil
}

func (s *BookingHistory) ListByHolder(_ context.Context, holderID string) ([]reservation.BookingEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]reservation.BookingEntry, 0)
	for _, e := range s.entries {
		if e.HolderID == holderID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return byBookedAt(out[i], out[j]) })
	return out, nil
}

func byBookedAt(a, b reservation.BookingEntry) bool {
	if !a.BookedAt.Equal(b.BookedAt) {
		return a.BookedAt.Before(b.BookedAt)
	}
	return a.BookingID.String() < b.BookingID.String()
}
