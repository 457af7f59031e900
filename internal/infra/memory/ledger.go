// Package memory provides process-local stores for development and tests.
// A single mutex per store makes check-and-insert atomic.
package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/infra"

	"github.com/google/uuid"
)

type HoldLedger struct {
	mu     sync.RWMutex
	holds  map[uuid.UUID]reservation.Hold
	logger *slog.Logger
}

func NewHoldLedger(logger *slog.Logger) *HoldLedger {
	return &HoldLedger{holds: make(map[uuid.UUID]reservation.Hold), logger: logger}
}

func (l *HoldLedger) FindActive(_ context.Context, slotID string, now time.Time) (*reservation.Hold, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if h, ok := l.activeLocked(slotID, now); ok {
		return &h, nil
	}
	return nil, nil
}

func (l *HoldLedger) Insert(_ context.Context, h reservation.Hold) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.activeLocked(h.SlotID, h.CreatedAt); ok {
		return infra.WrapRepoErr(l.logger, infra.KindConflict, "slot already held: "+h.SlotID, nil)
	}
	if _, ok := l.holds[h.ID]; ok {
		return infra.WrapRepoErr(l.logger, infra.KindDuplicateKey, "hold id "+h.ID.String(), nil)
	}
	l.holds[h.ID] = h
	return nil
}

func (l *HoldLedger) DeleteBySlotAndTag(_ context.Context, slotID, resourceTag string) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var n int64
	for id, h := range l.holds {
		if h.SlotID == slotID && h.ResourceTag == resourceTag {
			delete(l.holds, id)
			n++
		}
	}
	return n, nil
}

func (l *HoldLedger) DeleteByID(_ context.Context, id uuid.UUID) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.holds[id]; !ok {
		return false, nil
	}
	delete(l.holds, id)
	return true, nil
}

func (l *HoldLedger) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var n int64
	for id, h := range l.holds {
		if !h.ActiveAt(now) {
			delete(l.holds, id)
			n++
		}
	}
	return n, nil
}

func (l *HoldLedger) ListActive(_ context.Context, now time.Time) ([]reservation.Hold, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]reservation.Hold, 0, len(l.holds))
	for _, h := range l.holds {
		if h.ActiveAt(now) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SlotID != out[j].SlotID {
			return out[i].SlotID < out[j].SlotID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (l *HoldLedger) activeLocked(slotID string, now time.Time) (reservation.Hold, bool) {
	for _, h := range l.holds {
		if h.SlotID == slotID && h.ActiveAt(now) {
			return h, true
		}
	}
	return reservation.Hold{}, false
}
